package visualizer

import (
	"math"
	"slices"

	"github.com/vovakirdan/sortviz/internal/core"
)

// Layout constants in screen cells.
const (
	SidePadding = 4 // Total horizontal margin split across both sides
	TopPadding  = 3 // Rows reserved for the header
)

// Layout holds the metrics derived from the current array and screen size.
type Layout struct {
	Left     int     // X of the first bar
	BarWidth int     // Columns per bar
	Scale    float64 // Rows per unit above MinValue
	MinValue int
	MaxValue int
	Fits     bool // False if the screen cannot show one column per value
}

// Surface owns the sample array and its layout metrics.
// Sort routines mutate the array in place; since they only permute it, the
// value range and hence the layout stay valid until SetData or Resize.
type Surface struct {
	width  int
	height int
	data   []int
	layout Layout
}

// NewSurface creates an empty surface of the given screen size.
func NewSurface(width, height int) *Surface {
	s := &Surface{width: width, height: height}
	s.relayout()
	return s
}

// SetData replaces the array and recomputes the layout.
func (s *Surface) SetData(data []int) {
	s.data = data
	s.relayout()
}

// Resize changes the screen size and recomputes the layout.
func (s *Surface) Resize(width, height int) {
	s.width = width
	s.height = height
	s.relayout()
}

// Data returns the owned array. Callers may permute it in place.
func (s *Surface) Data() []int {
	return s.data
}

// Layout returns the current layout metrics.
func (s *Surface) Layout() Layout {
	return s.layout
}

// Width returns the screen width the layout was computed for.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the screen height the layout was computed for.
func (s *Surface) Height() int {
	return s.height
}

func (s *Surface) relayout() {
	n := len(s.data)
	usableW := s.width - SidePadding
	usableH := s.height - TopPadding

	l := Layout{}
	if n == 0 || usableW < n || usableH < 1 {
		s.layout = l
		return
	}

	l.MinValue = slices.Min(s.data)
	l.MaxValue = slices.Max(s.data)
	l.BarWidth = usableW / n
	l.Left = (s.width - l.BarWidth*n) / 2
	if l.MaxValue > l.MinValue {
		// The smallest value still gets one row.
		l.Scale = float64(usableH-1) / float64(l.MaxValue-l.MinValue)
	}
	l.Fits = true
	s.layout = l
}

// BarRect returns the screen rectangle of the bar at index i.
// Bars grow upward from the bottom row.
func (s *Surface) BarRect(i int) core.Rect {
	l := s.layout
	h := 1 + int(math.Round(float64(s.data[i]-l.MinValue)*l.Scale))
	return core.NewRect(l.Left+i*l.BarWidth, s.height-h, l.BarWidth, h)
}
