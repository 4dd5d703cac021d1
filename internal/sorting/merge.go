package sorting

import (
	"github.com/vovakirdan/sortviz/internal/core"
	"github.com/vovakirdan/sortviz/internal/registry"
)

// span is one merge of data[lo..mid] with data[mid+1..hi], inclusive.
type span struct {
	lo, mid, hi int
}

// Merge is a step-driven top-down merge sort. The recursive descent is
// flattened up front into the post-order list of merges it would perform;
// since the descent writes nothing it costs no steps. One step per write
// into data, including tail copies.
//
// This makes merge sort advance at a coarser pace than bubble and insertion
// sort, which step per swap: a merge step is a single write, not an exchange.
type Merge struct {
	progress
	data     []int
	schedule []span
	next     int // Index into schedule of the next merge to load

	left, right []int
	i, j, k     int
	active      bool
}

// NewMerge creates a merge sort over data.
func NewMerge(data []int, ascending bool) *Merge {
	m := &Merge{
		progress: progress{ascending: ascending},
		data:     data,
	}
	m.plan(0, len(data)-1)
	return m
}

func init() {
	registry.Register(IDMerge, "Merge Sort", func(data []int, ascending bool) core.Stepper {
		return NewMerge(data, ascending)
	})
}

// plan records merges in the order the recursive algorithm performs them.
func (m *Merge) plan(lo, hi int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	m.plan(lo, mid)
	m.plan(mid+1, hi)
	m.schedule = append(m.schedule, span{lo: lo, mid: mid, hi: hi})
}

// Step performs the next merge write.
func (m *Merge) Step() bool {
	if m.done {
		return false
	}

	for {
		if !m.active {
			if m.next >= len(m.schedule) {
				return m.finish()
			}
			m.load(m.schedule[m.next])
		}

		switch {
		case m.i < len(m.left) && m.j < len(m.right):
			// Ties take from the left run, keeping the sort stable.
			if m.outOfOrder(m.left[m.i], m.right[m.j]) {
				return m.write(m.right[m.j], &m.j)
			}
			return m.write(m.left[m.i], &m.i)
		case m.i < len(m.left):
			return m.write(m.left[m.i], &m.i)
		case m.j < len(m.right):
			return m.write(m.right[m.j], &m.j)
		}

		m.active = false
		m.next++
	}
}

func (m *Merge) load(s span) {
	m.left = append(m.left[:0], m.data[s.lo:s.mid+1]...)
	m.right = append(m.right[:0], m.data[s.mid+1:s.hi+1]...)
	m.i, m.j, m.k = 0, 0, s.lo
	m.active = true
}

func (m *Merge) write(v int, cursor *int) bool {
	m.data[m.k] = v
	k := m.k
	m.k++
	*cursor++
	return m.mutated(secondary(k))
}
