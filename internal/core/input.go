package core

// Action represents a semantic visualizer action, abstracted from physical key presses.
type Action int

const (
	ActionNone            Action = iota
	ActionReset                  // R - regenerate data, abort any running sort
	ActionStart                  // Space - start sorting
	ActionToggleOrder            // A - flip ascending/descending (idle only)
	ActionSwitchAlgorithm        // S - cycle to the next algorithm (idle only)
	ActionQuit                   // Q, Esc, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionReset:
		return "Reset"
	case ActionStart:
		return "Start"
	case ActionToggleOrder:
		return "ToggleOrder"
	case ActionSwitchAlgorithm:
		return "SwitchAlgorithm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the actions triggered between two ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
