package sorting

import (
	"github.com/vovakirdan/sortviz/internal/core"
	"github.com/vovakirdan/sortviz/internal/registry"
)

// Insertion is a step-driven insertion sort. One step per shift of the
// element being inserted.
type Insertion struct {
	progress
	data    []int
	next    int  // Index of the next element to insert
	pos     int  // Current slot of the element being inserted
	current int  // Value being inserted
	active  bool // An insertion is in progress
}

// NewInsertion creates an insertion sort over data.
func NewInsertion(data []int, ascending bool) *Insertion {
	return &Insertion{
		progress: progress{ascending: ascending},
		data:     data,
		next:     1,
	}
}

func init() {
	registry.Register(IDInsertion, "Insertion Sort", func(data []int, ascending bool) core.Stepper {
		return NewInsertion(data, ascending)
	})
}

// Step moves the element being inserted one slot towards its place.
func (s *Insertion) Step() bool {
	if s.done {
		return false
	}

	for {
		if !s.active {
			if s.next >= len(s.data) {
				return s.finish()
			}
			s.pos = s.next
			s.current = s.data[s.next]
			s.active = true
		}

		if s.pos > 0 && s.outOfOrder(s.data[s.pos-1], s.current) {
			s.data[s.pos] = s.data[s.pos-1]
			s.pos--
			s.data[s.pos] = s.current
			return s.mutated(secondary(s.pos-1), primary(s.pos))
		}

		s.active = false
		s.next++
	}
}
