package visualizer

import (
	"fmt"

	"github.com/vovakirdan/sortviz/internal/core"
	"github.com/vovakirdan/sortviz/internal/registry"
)

const barRune = '█'

// Render draws the header and the bars into dst.
// The surface is resized to dst first if their sizes differ.
func (v *Visualizer) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() != v.surface.Width() || dst.Height() != v.surface.Height() {
		v.surface.Resize(dst.Width(), dst.Height())
	}

	v.renderHeader(dst)

	if !v.surface.Layout().Fits {
		v.renderTooSmall(dst)
		return
	}

	v.renderBars(dst)
}

func (v *Visualizer) renderHeader(dst *core.Screen) {
	order := "Ascending"
	if !v.settings.Ascending {
		order = "Descending"
	}
	title := fmt.Sprintf("%s - %s", registry.Title(v.algorithm), order)
	dst.DrawTextCentered(0, title, v.theme.Accent)

	status := fmt.Sprintf("%s | steps: %d | comparisons: %d",
		v.mode, v.stats.Steps, v.stats.Comparisons)
	dst.DrawTextCentered(1, status, v.theme.Text)
}

// renderTooSmall shows a "window too small" message.
func (v *Visualizer) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", v.theme.Text)

	n := len(v.surface.Data())
	var hint string
	switch {
	case n == 0:
		return
	case v.surface.Width()-SidePadding < n:
		hint = fmt.Sprintf("Need %d columns for %d values", n+SidePadding, n)
	default:
		hint = fmt.Sprintf("Need %d rows", TopPadding+1)
	}
	dst.DrawTextCentered(y+1, hint, v.theme.Text)
}

func (v *Visualizer) renderBars(dst *core.Screen) {
	highlights := make(map[int]core.Color)
	if v.stepper != nil {
		for _, m := range v.stepper.Marks() {
			switch m.Role {
			case core.RolePrimary:
				highlights[m.Index] = v.theme.Primary
			case core.RoleSecondary:
				highlights[m.Index] = v.theme.Secondary
			}
		}
	}

	for i := range v.surface.Data() {
		color := v.theme.BarColor(i)
		if c, ok := highlights[i]; ok {
			color = c
		}
		dst.DrawRect(v.surface.BarRect(i), barRune, color)
	}
}
