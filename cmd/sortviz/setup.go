package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sortviz/internal/config"
	"github.com/vovakirdan/sortviz/internal/registry"
)

// loadConfig loads the config file and applies flags the user set explicitly.
// algorithm overrides the configured algorithm when non-empty.
func loadConfig(cmd *cobra.Command, algorithm string) (config.Config, config.Theme, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, config.Theme{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.FPS = flagFPS
	}
	if flags.Changed("size") {
		cfg.Settings.Size = flagSize
	}
	if flags.Changed("min") {
		cfg.Settings.Min = flagMin
	}
	if flags.Changed("max") {
		cfg.Settings.Max = flagMax
	}
	if flags.Changed("descending") {
		cfg.Settings.Ascending = !flagDescending
	}
	if algorithm != "" {
		cfg.Settings.Algorithm = algorithm
	}

	if err := cfg.Validate(); err != nil {
		return cfg, config.Theme{}, err
	}
	if !registry.Exists(cfg.Settings.Algorithm) {
		return cfg, config.Theme{}, fmt.Errorf("unknown algorithm %q (run 'sortviz list' to see available algorithms)", cfg.Settings.Algorithm)
	}

	theme, err := cfg.Theme.Resolve()
	if err != nil {
		return cfg, config.Theme{}, err
	}
	return cfg, theme, nil
}

// newLogger creates the application logger. With a path it appends to that
// file; otherwise it writes to fallback. The returned closer is never nil.
func newLogger(path string, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w := fallback
	var closer io.Closer = io.NopCloser(nil)
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "sortviz",
		Level:           level,
	})
	return logger, closer, nil
}
