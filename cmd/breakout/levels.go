package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all registered levels",
	Long: `Shows the built-in levels followed by any level files registered from the
config (levels.files) or with --level-file, in play order.`,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	levels := registry.Levels()

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %s\n", "#", maxIDLen, "ID", "Title")
	fmt.Printf("  %-3s  %-*s  %s\n", "-", maxIDLen, "--", "-----")

	for i, l := range levels {
		title := l.Title
		if !l.Builtin() {
			title += " (" + l.Path + ")"
		}
		fmt.Printf("  %-3d  %-*s  %s\n", i+1, maxIDLen, l.ID, title)
	}

	fmt.Println()
	fmt.Println("Run 'breakout play <id>' to play a level.")
	return nil
}
