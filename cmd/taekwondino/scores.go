package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/taekwondino/internal/platform/tui"
	"github.com/vovakirdan/taekwondino/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs, with run statistics.

Examples:
  taekwondino scores
  taekwondino scores --limit 25
  taekwondino scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse all runs in a scrollable table")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open runs database: %w", err)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	if flagInteractive {
		return tui.RunScoreboard(store, width, height)
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tui.RenderScoreboard(runs, width))
	if len(runs) == 0 {
		fmt.Fprintln(out, "\nRun 'taekwondino play' to set the first high score!")
		return nil
	}

	stats, err := store.GetStats()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nBest: %d  Runs: %d  Cleared: %d  Average: %.0f  Monsters stomped: %d\n",
		stats.HighScore, stats.Runs, stats.Completed, stats.AvgScore, stats.TotalKills)
	return nil
}
