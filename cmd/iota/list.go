package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/iota/internal/games/iota/scenario"
)

var listCmd = &cobra.Command{
	Use:   "list <dir>",
	Short: "List the scenarios in a directory",
	Long: `Shows every valid scenario file found under the directory, sorted by ID.
Files that fail to parse are skipped.`,
	Args: cobra.ExactArgs(1),
	Run:  runList,
}

func runList(cmd *cobra.Command, args []string) {
	scenarios, err := scenario.NewLoader(args[0]).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(scenarios) == 0 {
		fmt.Println("No scenarios found.")
		return
	}

	fmt.Println("Available scenarios:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range scenarios {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Plays", "Name")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "-----", "----")

	for _, s := range scenarios {
		fmt.Printf("  %-*s  %-5d  %s\n", maxIDLen, s.ID, len(s.Plays), s.Name)
	}

	fmt.Println()
	fmt.Printf("Run 'iota replay %s' to check them all.\n", args[0])
}
