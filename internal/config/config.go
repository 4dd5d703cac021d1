// Package config provides YAML-based configuration loading and validation
// for the visualizer: sort settings, tick rate and color theme.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/sortviz/internal/core"
)

// ErrInvalidSettings is wrapped by all validation failures.
var ErrInvalidSettings = errors.New("invalid settings")

// Limits enforced by Validate.
const (
	MinSize = 2
	MaxSize = 1000
	MinFPS  = 1
	MaxFPS  = 120

	// MaxMagnitude bounds the absolute value of Min and Max.
	MaxMagnitude = 1 << 30
)

// Config is the top-level configuration file layout.
type Config struct {
	FPS      int         `yaml:"fps"`
	Settings Settings    `yaml:"settings"`
	Theme    ThemeConfig `yaml:"theme"`
}

// Settings controls the generated data and how it is sorted.
type Settings struct {
	Size      int    `yaml:"size"`      // Number of values
	Min       int    `yaml:"min"`       // Inclusive lower bound of values
	Max       int    `yaml:"max"`       // Inclusive upper bound of values
	Ascending bool   `yaml:"ascending"` // Sort direction
	Algorithm string `yaml:"algorithm"` // Initially selected algorithm ID
}

// ThemeConfig names the colors used for drawing, as written in YAML.
type ThemeConfig struct {
	Gradient  []string `yaml:"gradient"`
	Primary   string   `yaml:"primary"`
	Secondary string   `yaml:"secondary"`
	Text      string   `yaml:"text"`
	Accent    string   `yaml:"accent"`
}

// Theme is the resolved, immutable color set handed to the renderer.
type Theme struct {
	Gradient  []core.Color // Bar colors, cycled by index
	Primary   core.Color   // Slot a step acted on
	Secondary core.Color   // Partner or written slot
	Text      core.Color
	Accent    core.Color
}

// BarColor returns the resting color for the bar at index i.
func (t Theme) BarColor(i int) core.Color {
	if len(t.Gradient) == 0 {
		return core.ColorDefault
	}
	return t.Gradient[i%len(t.Gradient)]
}

// Validate checks settings and tick rate. Errors wrap ErrInvalidSettings.
func (c Config) Validate() error {
	if err := c.Settings.Validate(); err != nil {
		return err
	}
	if c.FPS < MinFPS || c.FPS > MaxFPS {
		return fmt.Errorf("config: fps %d outside [%d, %d]: %w", c.FPS, MinFPS, MaxFPS, ErrInvalidSettings)
	}
	if _, err := c.Theme.Resolve(); err != nil {
		return fmt.Errorf("config: %w: %w", ErrInvalidSettings, err)
	}
	return nil
}

// Validate checks that the settings describe generatable data.
func (s Settings) Validate() error {
	if s.Size < MinSize || s.Size > MaxSize {
		return fmt.Errorf("config: size %d outside [%d, %d]: %w", s.Size, MinSize, MaxSize, ErrInvalidSettings)
	}
	if s.Min < -MaxMagnitude || s.Max > MaxMagnitude {
		return fmt.Errorf("config: bounds [%d, %d] exceed ±%d: %w", s.Min, s.Max, MaxMagnitude, ErrInvalidSettings)
	}
	if s.Min >= s.Max {
		return fmt.Errorf("config: min %d must be below max %d: %w", s.Min, s.Max, ErrInvalidSettings)
	}
	return nil
}

// Resolve converts color names into a Theme.
func (tc ThemeConfig) Resolve() (Theme, error) {
	var t Theme
	if len(tc.Gradient) == 0 {
		return t, errors.New("theme: gradient needs at least one color")
	}

	t.Gradient = make([]core.Color, 0, len(tc.Gradient))
	for _, name := range tc.Gradient {
		c, err := core.ParseColor(name)
		if err != nil {
			return Theme{}, fmt.Errorf("theme gradient: %w", err)
		}
		t.Gradient = append(t.Gradient, c)
	}

	fields := []struct {
		name string
		src  string
		dst  *core.Color
	}{
		{"primary", tc.Primary, &t.Primary},
		{"secondary", tc.Secondary, &t.Secondary},
		{"text", tc.Text, &t.Text},
		{"accent", tc.Accent, &t.Accent},
	}
	for _, f := range fields {
		c, err := core.ParseColor(f.src)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: %w", f.name, err)
		}
		*f.dst = c
	}

	return t, nil
}
