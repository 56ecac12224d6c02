package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/iota/internal/platform/tui"
	"github.com/vovakirdan/iota/internal/storage"
)

var (
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <scenario-id>...",
	Short: "Show recorded runs for scenarios",
	Long: `Display the top 10 runs and run statistics for each scenario.

Examples:
  iota scores basics
  iota scores basics wildcard-cross -i
  iota scores basics --clear`,
	Args: cobra.MinimumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs instead of showing them")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		for _, id := range args {
			if err := store.ClearRuns(id); err != nil {
				fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
				return
			}
			logger.Info("cleared runs", "scenario", id)
		}
		return
	}

	if flagInteractive && term.IsTerminal(int(os.Stdout.Fd())) {
		runScoreboard(store, args)
		return
	}

	for _, id := range args {
		if err := printScores(store, id); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			return
		}
	}
}

func printScores(store *storage.Store, scenarioID string) error {
	runs, err := store.TopRuns(scenarioID, 10)
	if err != nil {
		return err
	}

	title := scenarioID
	if len(runs) > 0 && runs[0].ScenarioName != "" {
		title = runs[0].ScenarioName
	}
	fmt.Printf("Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'iota replay <file>' to record one.")
		fmt.Println()
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "Rank", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "----", "-----", "------", "----")

	for i, row := range tui.RunRows(runs) {
		fmt.Printf("  %-4d  %-6s  %-8s  %s\n", i+1, row[1], row[2], runs[i].CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.ScenarioStats(scenarioID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Average: %.1f  Passed: %d/%d\n", stats.HighScore, stats.AvgScore, stats.Passed, stats.RunsCount)
	fmt.Println()
	return nil
}

func runScoreboard(store *storage.Store, ids []string) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	entries := make([]tui.ScenarioEntry, len(ids))
	for i, id := range ids {
		entries[i] = tui.ScenarioEntry{ID: id, Title: id}
		if runs, err := store.TopRuns(id, 1); err == nil && len(runs) > 0 && runs[0].ScenarioName != "" {
			entries[i].Title = runs[0].ScenarioName
		}
	}

	if err := tui.RunScoreboard(store, entries, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		os.Exit(1)
	}
}
