// sortviz animates sorting algorithms as colored bars in the terminal.
//
// Usage:
//
//	sortviz                  - Start the visualizer (same as play)
//	sortviz play [algorithm] - Start the visualizer with an algorithm selected
//	sortviz list             - List available algorithms
//	sortviz run <algorithm>  - Sort headless and print before/after plots
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 30)
//	--seed <value>    - Set RNG seed for reproducible data
//	--size <n>        - Number of values
//	--min, --max      - Inclusive value bounds
//	--descending      - Start in descending order
//	--config <path>   - Config file (default search: ~/.sortviz/config.yaml, ./configs/sortviz.yaml)
//	--log-file <path> - Write logs to a file
//	--log-level <lvl> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import algorithms to register them
	_ "github.com/vovakirdan/sortviz/internal/sorting"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagSize       int
	flagMin        int
	flagMax        int
	flagDescending bool
	flagConfig     string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sortviz",
	Short: "Sorting Algorithm Visualizer - watch sorts run in your terminal",
	Long: `sortviz draws an array of random values as bars and animates a
sorting algorithm over it, one swap or write per frame.

Available commands:
  play     - Start the interactive visualizer (default)
  list     - Show all available algorithms
  run      - Sort without a UI and print the result

Examples:
  sortviz
  sortviz play merge --size 40
  sortviz run insertion --seed 7 --descending`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.IntVar(&flagSize, "size", 0, "Number of values (overrides config)")
	pf.IntVar(&flagMin, "min", 0, "Smallest value (overrides config)")
	pf.IntVar(&flagMax, "max", 0, "Largest value (overrides config)")
	pf.BoolVar(&flagDescending, "descending", false, "Sort in descending order")
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
}
