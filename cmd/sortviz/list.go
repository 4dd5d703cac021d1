package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sortviz/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available algorithms",
	Long:  `Shows a list of all sorting algorithms the visualizer can run.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	algos := registry.List()

	if len(algos) == 0 {
		fmt.Fprintln(out, "No algorithms available.")
		return
	}

	fmt.Fprintln(out, "Available algorithms:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, a := range algos {
		if len(a.ID) > maxIDLen {
			maxIDLen = len(a.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, a := range algos {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, a.ID, a.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'sortviz play <id>' to watch one.")
}
