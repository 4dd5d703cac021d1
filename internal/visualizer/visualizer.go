// Package visualizer drives sort routines one step per tick and draws the
// array as colored bars. It is the platform-independent half of the event
// loop: the tui package feeds it input frames and ticks.
package visualizer

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sortviz/internal/config"
	"github.com/vovakirdan/sortviz/internal/core"
	"github.com/vovakirdan/sortviz/internal/data"
	"github.com/vovakirdan/sortviz/internal/registry"
)

// Mode is the event loop state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeSorting
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	if m == ModeSorting {
		return "sorting"
	}
	return "idle"
}

// Visualizer is the idle/sorting state machine around a Surface.
type Visualizer struct {
	settings  config.Settings
	theme     config.Theme
	surface   *Surface
	rng       *rand.Rand
	logger    *log.Logger
	algorithm string
	mode      Mode
	stepper   core.Stepper
	stats     core.SortStats // Counters of the current or last routine
}

// New creates a visualizer. The theme is fixed for its lifetime.
// A nil logger discards output. If settings.Algorithm is not registered
// the first registered algorithm is selected.
func New(settings config.Settings, theme config.Theme, logger *log.Logger) *Visualizer {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	algorithm := settings.Algorithm
	if !registry.Exists(algorithm) {
		algorithm = registry.Next("")
	}

	return &Visualizer{
		settings:  settings,
		theme:     theme,
		surface:   NewSurface(0, 0),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:    logger,
		algorithm: algorithm,
	}
}

// Reset sizes the surface to the screen, reseeds the RNG and generates
// fresh data. Any running routine is discarded.
func (v *Visualizer) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	v.rng = rand.New(rand.NewSource(seed))
	v.surface.Resize(cfg.ScreenW, cfg.ScreenH)
	v.regenerate()
	v.logger.Debug("reset", "seed", seed, "width", cfg.ScreenW, "height", cfg.ScreenH)
}

// Resize recomputes the layout for a new screen size without touching data.
func (v *Visualizer) Resize(width, height int) {
	v.surface.Resize(width, height)
}

// Step applies the actions of one frame and advances the running routine
// by at most one step.
func (v *Visualizer) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionReset) {
		if v.mode == ModeSorting {
			v.logger.Info("sort aborted", "algorithm", v.algorithm, "steps", v.stats.Steps)
		}
		v.regenerate()
		v.logger.Info("data regenerated", "size", len(v.surface.Data()))
	}

	if in.Has(core.ActionStart) {
		v.start()
	}

	if in.Has(core.ActionToggleOrder) {
		if v.mode == ModeIdle {
			v.settings.Ascending = !v.settings.Ascending
			v.logger.Info("order toggled", "ascending", v.settings.Ascending)
		} else {
			v.logger.Debug("toggle order rejected while sorting")
		}
	}

	if in.Has(core.ActionSwitchAlgorithm) {
		if v.mode == ModeIdle {
			v.algorithm = registry.Next(v.algorithm)
			v.logger.Info("algorithm switched", "algorithm", v.algorithm)
		} else {
			v.logger.Debug("switch algorithm rejected while sorting")
		}
	}

	finished := v.advance()
	return core.StepResult{State: v.State(), Finished: finished}
}

// start creates a routine over the surface's array. No-op unless idle.
func (v *Visualizer) start() {
	if v.mode != ModeIdle {
		v.logger.Debug("start rejected while sorting")
		return
	}

	stepper, err := registry.Create(v.algorithm, v.surface.Data(), v.settings.Ascending)
	if err != nil {
		v.logger.Error("cannot start sort", "error", err)
		return
	}

	v.stepper = stepper
	v.stats = core.SortStats{}
	v.mode = ModeSorting
	v.logger.Info("sort started",
		"algorithm", v.algorithm,
		"ascending", v.settings.Ascending,
		"size", len(v.surface.Data()),
	)
}

// advance runs one step and reports whether the routine just completed.
func (v *Visualizer) advance() bool {
	if v.mode != ModeSorting {
		return false
	}

	more := v.stepper.Step()
	v.stats = v.stepper.Stats()
	if more {
		return false
	}

	v.logger.Info("sort finished",
		"algorithm", v.algorithm,
		"steps", v.stats.Steps,
		"comparisons", v.stats.Comparisons,
	)
	v.stepper = nil
	v.mode = ModeIdle
	return true
}

func (v *Visualizer) regenerate() {
	v.stepper = nil
	v.mode = ModeIdle
	v.stats = core.SortStats{}
	v.surface.SetData(data.FromSettings(v.rng, v.settings))
}

// State returns the externally visible status.
func (v *Visualizer) State() core.State {
	return core.State{
		Sorting:   v.mode == ModeSorting,
		Algorithm: v.algorithm,
		Ascending: v.settings.Ascending,
		Steps:     v.stats.Steps,
	}
}

// Mode returns the current event loop state.
func (v *Visualizer) Mode() Mode {
	return v.mode
}

// Stats returns the counters of the current or last routine.
func (v *Visualizer) Stats() core.SortStats {
	return v.stats
}

// Data returns a copy of the current array.
func (v *Visualizer) Data() []int {
	return append([]int(nil), v.surface.Data()...)
}

// Settings returns the current settings, including the direction flag.
func (v *Visualizer) Settings() config.Settings {
	s := v.settings
	s.Algorithm = v.algorithm
	return s
}
