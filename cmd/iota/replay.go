package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/iota/internal/games/iota/core"
	"github.com/vovakirdan/iota/internal/games/iota/scenario"
	"github.com/vovakirdan/iota/internal/games/iota/scenario/formats"
	"github.com/vovakirdan/iota/internal/platform/tui"
	"github.com/vovakirdan/iota/internal/storage"
)

var (
	flagNoSave bool
	flagQuiet  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <file|dir>",
	Short: "Run scenarios and check their expectations",
	Long: `Plays every scenario against a fresh grid, prints the outcome of each
play and the final board, and records the run in the history database.
Exits with status 1 if any play did not match its expectation.

Examples:
  iota replay scenarios
  iota replay scenarios/basics.yaml
  iota replay scenarios --no-save --quiet`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record runs in the history database")
	replayCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only print the summary line of each scenario")
}

func runReplay(cmd *cobra.Command, args []string) {
	rules, err := activeRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		os.Exit(1)
	}

	scenarios, err := loadScenarios(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(scenarios) == 0 {
		fmt.Println("No scenarios found.")
		return
	}

	var store *storage.Store
	if !flagNoSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			// Continue without storage - replay still works
			logger.Warn("could not open run history", "err", err)
			store = nil
		}
	}

	runner := scenario.NewRunner(rules, logger)
	theme := outputTheme()
	failed := 0

	for _, s := range scenarios {
		report, err := runner.Run(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed++
			continue
		}
		printReport(report, theme)
		if !report.Passed() {
			failed++
		}

		if store != nil {
			if _, err := store.SaveRun(runFromReport(report)); err != nil {
				logger.Warn("could not save run", "scenario", report.ScenarioID, "err", err)
			}
		}
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if len(scenarios) > 1 {
		fmt.Printf("%d/%d scenarios passed\n", len(scenarios)-failed, len(scenarios))
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// loadScenarios loads a single file, or every scenario under a directory.
func loadScenarios(path string) ([]scenario.Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return scenario.NewLoader(path).LoadAll()
	}
	s, err := scenario.NewLoader(filepath.Dir(path)).LoadFile(path)
	if err != nil {
		return nil, err
	}
	return []scenario.Scenario{s}, nil
}

func printReport(report scenario.Report, theme tui.Theme) {
	status := "PASS"
	if !report.Passed() {
		status = "FAIL"
	}
	fmt.Printf("%s  %s  total %d  (%d plays, %s)\n",
		status, report.ScenarioID, report.Total, len(report.Results), report.Duration.Round(time.Microsecond))

	if flagQuiet {
		return
	}

	if report.Name != "" {
		fmt.Printf("  %s\n", report.Name)
	}
	for _, res := range report.Results {
		fmt.Printf("  %2d. %s\n", res.Index, describePlay(res))
	}
	fmt.Println()
	fmt.Println(tui.RenderBoard(report.Final(), theme, nil))
	fmt.Println()
}

func describePlay(res scenario.PlayResult) string {
	var desc string
	switch {
	case res.Play.Kind == formats.PlayProbe:
		desc = fmt.Sprintf("probe %s: allowed=%v", res.Play.Items[0], res.Allowed)
	case res.Err != nil:
		desc = fmt.Sprintf("%v", res.Err)
	default:
		desc = fmt.Sprintf("%d card(s) for %d points", len(res.Play.Items), res.Score)
	}
	if !res.OK() {
		desc += "  <-- " + res.Mismatch
	}
	return desc
}

// runFromReport converts a report into a history record.
func runFromReport(report scenario.Report) storage.Run {
	run := storage.Run{
		ScenarioID:   report.ScenarioID,
		ScenarioName: report.Name,
		Total:        report.Total,
		Mismatches:   report.Mismatches,
		Duration:     report.Duration,
		Plays:        make([]storage.PlayRecord, 0, len(report.Results)),
	}
	for _, res := range report.Results {
		rec := storage.PlayRecord{
			Index: res.Index,
			Kind:  res.Play.Kind.String(),
			Score: res.Score,
			OK:    res.OK(),
		}
		if reason, ok := core.ReasonOf(res.Err); ok {
			rec.Reason = string(reason)
		}
		run.Plays = append(run.Plays, rec)
	}
	return run
}
