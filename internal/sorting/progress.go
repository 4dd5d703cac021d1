// Package sorting implements step-driven sort routines. Each routine is an
// explicit state machine over a shared slice: one Step call performs one
// visible mutation, so a driver can redraw between mutations.
package sorting

import "github.com/vovakirdan/sortviz/internal/core"

// Algorithm IDs as registered with the registry.
const (
	IDBubble    = "bubble"
	IDInsertion = "insertion"
	IDMerge     = "merge"
)

// progress holds the bookkeeping shared by all routines.
type progress struct {
	ascending bool
	done      bool
	marks     []core.Mark
	stats     core.SortStats
}

// Done reports whether the routine has finished.
func (p *progress) Done() bool {
	return p.done
}

// Marks returns the indices touched by the most recent step.
func (p *progress) Marks() []core.Mark {
	return p.marks
}

// Stats returns the work counters.
func (p *progress) Stats() core.SortStats {
	return p.stats
}

// outOfOrder reports whether a must come after b in the current direction.
func (p *progress) outOfOrder(a, b int) bool {
	p.stats.Comparisons++
	if p.ascending {
		return a > b
	}
	return a < b
}

// mutated records a visible step with its highlighted indices.
// Negative indices are dropped.
func (p *progress) mutated(marks ...core.Mark) bool {
	p.marks = p.marks[:0]
	for _, m := range marks {
		if m.Index >= 0 {
			p.marks = append(p.marks, m)
		}
	}
	p.stats.Steps++
	return true
}

// finish marks the routine as complete.
func (p *progress) finish() bool {
	p.done = true
	p.marks = nil
	return false
}

func primary(i int) core.Mark   { return core.Mark{Index: i, Role: core.RolePrimary} }
func secondary(i int) core.Mark { return core.Mark{Index: i, Role: core.RoleSecondary} }
