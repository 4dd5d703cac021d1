package core

// RuntimeConfig contains configuration passed to the visualizer at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second (default 30)
	Seed     int64 // RNG seed for reproducible data
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// State represents the visualizer's externally visible status.
type State struct {
	Sorting   bool   // Whether a sort routine is active
	Algorithm string // ID of the selected algorithm
	Ascending bool   // Current direction flag
	Steps     int    // Steps taken by the current or last routine
}

// StepResult is returned by Visualizer.Step() after each tick.
type StepResult struct {
	State State
	// Finished is true on the tick a routine ran to completion.
	Finished bool
}
