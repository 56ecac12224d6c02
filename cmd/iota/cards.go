package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/iota/internal/games/iota/core"
	"github.com/vovakirdan/iota/internal/platform/tui"
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Print the card universe of the active rules",
	Long: `Lists every concrete card the active rules allow, one row per color.
Use --rules to check a custom palette.`,
	Args: cobra.NoArgs,
	Run:  runCards,
}

func runCards(cmd *cobra.Command, args []string) {
	rules, err := activeRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		os.Exit(1)
	}

	theme := outputTheme()
	universe := rules.Universe()
	byColor := make(map[core.Color][]string)
	for _, c := range universe.Sorted() {
		style := theme.Cards[c.Color()]
		byColor[c.Color()] = append(byColor[c.Color()], style.Render(tui.CardGlyph(c, theme)))
	}

	for _, color := range rules.Colors() {
		fmt.Printf("  %-7s %s\n", color, strings.Join(byColor[color], " "))
	}
	fmt.Println()
	fmt.Printf("%d cards, plus wildcards (%s)\n", len(universe), strings.Repeat(theme.WildcardGlyph, 3))
}
