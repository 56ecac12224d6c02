// iota checks and replays scripted Iota games in the terminal.
//
// Usage:
//
//	iota list <dir>            - List scenarios in a directory
//	iota replay <file|dir>     - Run scenarios and check their expectations
//	iota view <file>           - Step through a scenario interactively
//	iota scores <scenario>...  - Show recorded runs for scenarios
//	iota cards                 - Print the card universe of the active rules
//
// Global flags:
//
//	--db <path>         - Set database path (default: ~/.iota/runs.db)
//	--rules <path>      - Set rules config YAML (default: search config dirs)
//	--log-level <level> - Set log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/iota/internal/config"
	"github.com/vovakirdan/iota/internal/games/iota/core"
	"github.com/vovakirdan/iota/internal/platform/tui"
)

var (
	// Global flags
	flagDBPath   string
	flagRules    string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "iota",
	Short: "Iota - check and replay scripted Iota games",
	Long: `Iota replays scripted games of the Iota card game against the rules
engine, checks every play against its expected outcome and keeps a history
of runs.

Available commands:
  list     - Show the scenarios in a directory
  replay   - Run scenarios and report mismatches
  view     - Step through a scenario interactively
  scores   - View recorded runs
  cards    - Print the card universe

Examples:
  iota list scenarios
  iota replay scenarios
  iota replay scenarios/basics.yaml --log-level debug
  iota view scenarios/wildcards.yaml
  iota scores basics`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "iota",
			Level:           level,
		})
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.iota/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagRules, "rules", "", "Path to custom rules config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(cardsCmd)
}

// activeRules loads the rules config and converts it to core rules.
func activeRules() (core.Rules, error) {
	cfg, err := config.LoadRules(flagRules)
	if err != nil {
		return core.Rules{}, err
	}
	return cfg.Build()
}

// outputTheme picks the styled theme on a terminal and plain text otherwise.
func outputTheme() tui.Theme {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return tui.DefaultTheme()
	}
	return tui.PlainTheme()
}
