package main

import (
	"cmp"
	"fmt"
	"io"
	"math/rand"
	"os"
	"slices"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sortviz/internal/config"
	"github.com/vovakirdan/sortviz/internal/core"
	"github.com/vovakirdan/sortviz/internal/data"
	"github.com/vovakirdan/sortviz/internal/registry"
)

var (
	flagPlot      bool
	flagPlotWidth int
)

var runCmd = &cobra.Command{
	Use:   "run <algorithm>",
	Short: "Sort without a UI and print the result",
	Long: `Generate data, step the algorithm to completion and print
step and comparison counts, plus ASCII plots of the data before and after.

Examples:
  sortviz run bubble
  sortviz run merge --size 200 --seed 42
  sortviz run insertion --descending --plot=false`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&flagPlot, "plot", true, "Print before/after plots")
	runCmd.Flags().IntVar(&flagPlotWidth, "plot-width", 80, "Plot width in columns")
}

// runResult summarizes a headless sort.
type runResult struct {
	Before []int
	After  []int
	Stats  core.SortStats
	Sorted bool
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd, args[0])
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(flagLogFile, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("running", "algorithm", cfg.Settings.Algorithm, "size", cfg.Settings.Size, "seed", seed)

	res, err := sortHeadless(cfg.Settings, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	logger.Info("done", "steps", res.Stats.Steps, "comparisons", res.Stats.Comparisons, "sorted", res.Sorted)
	printResult(cmd.OutOrStdout(), cfg.Settings, res)

	if !res.Sorted {
		return fmt.Errorf("%s produced an unsorted result", cfg.Settings.Algorithm)
	}
	return nil
}

// sortHeadless generates data from s and sorts it with s.Algorithm.
func sortHeadless(s config.Settings, rng *rand.Rand) (runResult, error) {
	values := data.FromSettings(rng, s)
	res := runResult{Before: slices.Clone(values)}

	stepper, err := registry.Create(s.Algorithm, values, s.Ascending)
	if err != nil {
		return res, err
	}
	core.RunToCompletion(stepper)

	res.After = values
	res.Stats = stepper.Stats()
	res.Sorted = slices.IsSortedFunc(values, func(a, b int) int {
		if s.Ascending {
			return cmp.Compare(a, b)
		}
		return cmp.Compare(b, a)
	})
	return res, nil
}

func printResult(w io.Writer, s config.Settings, res runResult) {
	order := "ascending"
	if !s.Ascending {
		order = "descending"
	}

	fmt.Fprintf(w, "%s (%s), %d values in [%d, %d]\n", registry.Title(s.Algorithm), order, s.Size, s.Min, s.Max)
	fmt.Fprintf(w, "  Steps:       %d\n", res.Stats.Steps)
	fmt.Fprintf(w, "  Comparisons: %d\n", res.Stats.Comparisons)
	fmt.Fprintln(w)

	if !flagPlot || len(res.Before) == 0 {
		return
	}

	for _, p := range []struct {
		caption string
		values  []int
	}{
		{"before", res.Before},
		{"after", res.After},
	} {
		fmt.Fprintln(w, asciigraph.Plot(toFloats(p.values),
			asciigraph.Height(10),
			asciigraph.Width(flagPlotWidth),
			asciigraph.Caption(p.caption),
		))
		fmt.Fprintln(w)
	}
}

func toFloats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
