package core

// MarkRole describes why an index is highlighted after a step.
type MarkRole int

const (
	// RolePrimary marks the slot the step acted on (drawn red).
	RolePrimary MarkRole = iota
	// RoleSecondary marks the partner slot, or the slot just written (drawn green).
	RoleSecondary
)

// Mark highlights one array index for the frame following a step.
type Mark struct {
	Index int
	Role  MarkRole
}

// SortStats counts the work done by a sort routine so far.
type SortStats struct {
	Steps       int // Visible mutations (one per Step call that returned true)
	Comparisons int // Element comparisons, including those that caused no mutation
}

// Stepper is a sort routine expressed as a resumable state machine.
// Each Step call performs exactly one visible mutation of the shared array and
// returns true, or finds no work left and returns false. Once Step has
// returned false it keeps returning false.
type Stepper interface {
	Step() bool
	Done() bool
	// Marks returns the indices touched by the most recent step.
	// Empty once the routine is done.
	Marks() []Mark
	Stats() SortStats
}

// RunToCompletion steps s until it reports completion and returns the
// number of steps that mutated the array.
func RunToCompletion(s Stepper) int {
	n := 0
	for s.Step() {
		n++
	}
	return n
}
