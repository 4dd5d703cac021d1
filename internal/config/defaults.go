package config

import (
	_ "embed"
)

//go:embed defaults/sortviz.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// Mirrors defaults/sortviz.yaml and is used if the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		FPS: 30,
		Settings: Settings{
			Size:      60,
			Min:       0,
			Max:       100,
			Ascending: true,
			Algorithm: "bubble",
		},
		Theme: ThemeConfig{
			Gradient:  []string{"dark-gray", "gray", "light-gray"},
			Primary:   "red",
			Secondary: "green",
			Text:      "white",
			Accent:    "cyan",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
