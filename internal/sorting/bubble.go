package sorting

import (
	"github.com/vovakirdan/sortviz/internal/core"
	"github.com/vovakirdan/sortviz/internal/registry"
)

// Bubble is a step-driven bubble sort. One step per swap; comparisons that
// need no swap are consumed within the same step.
type Bubble struct {
	progress
	data []int
	pass int // Completed passes; the last pass elements are in place
	j    int // Next comparison is data[j] vs data[j+1]
}

// NewBubble creates a bubble sort over data.
func NewBubble(data []int, ascending bool) *Bubble {
	return &Bubble{
		progress: progress{ascending: ascending},
		data:     data,
	}
}

func init() {
	registry.Register(IDBubble, "Bubble Sort", func(data []int, ascending bool) core.Stepper {
		return NewBubble(data, ascending)
	})
}

// Step advances to the next swap.
func (b *Bubble) Step() bool {
	if b.done {
		return false
	}

	n := len(b.data)
	for b.pass < n-1 {
		for b.j < n-b.pass-1 {
			j := b.j
			b.j++
			if b.outOfOrder(b.data[j], b.data[j+1]) {
				b.data[j], b.data[j+1] = b.data[j+1], b.data[j]
				return b.mutated(primary(j), secondary(j+1))
			}
		}
		b.pass++
		b.j = 0
	}

	return b.finish()
}
