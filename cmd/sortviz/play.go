package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sortviz/internal/core"
	"github.com/vovakirdan/sortviz/internal/platform/tui"
	"github.com/vovakirdan/sortviz/internal/visualizer"
)

var playCmd = &cobra.Command{
	Use:   "play [algorithm]",
	Short: "Start the interactive visualizer",
	Long: `Start the visualizer with the given algorithm selected
(default: the configured algorithm).

Controls:
  R        - Reset (new random data, aborts a running sort)
  Space    - Start sorting
  A        - Toggle ascending/descending (when not sorting)
  S        - Switch algorithm (when not sorting)
  Q/Esc    - Quit

Examples:
  sortviz play
  sortviz play insertion --fps 60
  sortviz play merge --size 30 --min 1 --max 50
  sortviz play --log-file /tmp/sortviz.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	algorithm := ""
	if len(args) > 0 {
		algorithm = args[0]
	}

	cfg, theme, err := loadConfig(cmd, algorithm)
	if err != nil {
		return err
	}

	// The UI owns the terminal, so logs only go to an explicit file.
	logger, closer, err := newLogger(flagLogFile, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.FPS,
		Seed:     flagSeed,
	}

	logger.Info("starting visualizer",
		"algorithm", cfg.Settings.Algorithm,
		"size", cfg.Settings.Size,
		"min", cfg.Settings.Min,
		"max", cfg.Settings.Max,
		"ascending", cfg.Settings.Ascending,
		"fps", cfg.FPS,
	)

	vis := visualizer.New(cfg.Settings, theme, logger)
	return tui.Run(vis, rc, logger)
}
