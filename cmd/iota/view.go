package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/iota/internal/games/iota/scenario"
	"github.com/vovakirdan/iota/internal/platform/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view <file|dir> [scenario-id]",
	Short: "Step through a scenario interactively",
	Long: `Opens a full-screen viewer over the board after each play of a scenario.
When given a directory, the scenario ID picks which one to show.

Controls:
  Left/Right - Previous/next play
  Home/End   - First/last play
  Space      - Autoplay
  Q/Esc      - Quit

Examples:
  iota view scenarios/basics.yaml
  iota view scenarios wildcard-cross`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runView,
}

func runView(cmd *cobra.Command, args []string) {
	rules, err := activeRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		os.Exit(1)
	}

	s, err := pickScenario(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	frames, err := scenario.Replay(s, rules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	title := s.ID
	if s.Name != "" {
		title = s.Name
	}
	if err := tui.RunViewer(title, frames); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		os.Exit(1)
	}
}

func pickScenario(args []string) (scenario.Scenario, error) {
	if len(args) == 2 {
		return scenario.NewLoader(args[0]).LoadByID(args[1])
	}
	scenarios, err := loadScenarios(args[0])
	if err != nil {
		return scenario.Scenario{}, err
	}
	if len(scenarios) != 1 {
		return scenario.Scenario{}, fmt.Errorf("%s holds %d scenarios, pass a scenario ID", args[0], len(scenarios))
	}
	return scenarios[0], nil
}
