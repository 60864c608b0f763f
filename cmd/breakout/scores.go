package main

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top 10 runs for a level, or a per-level summary when no level
is given.

Examples:
  breakout scores
  breakout scores one
  breakout scores one --all
  breakout scores one --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded run instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs for the level")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagScoresClear {
			return errors.New("--clear needs a level")
		}
		return printSummary(store)
	}

	src, err := registry.Level(args[0])
	if err != nil {
		return fmt.Errorf("%w\nRun 'breakout levels' to see available levels", err)
	}

	if flagScoresClear {
		if err := store.ClearScores(src.ID); err != nil {
			return fmt.Errorf("error clearing scores: %w", err)
		}
		fmt.Printf("Cleared all runs for %s.\n", src.Title)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(src.ID)
	} else {
		scores, err = store.TopScores(src.ID, 10)
	}
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", src.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'breakout play %s' to set the first high score!\n", src.ID)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Result", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "------", "----", "----")

	for i, entry := range scores {
		result := "-"
		if entry.Won {
			result = "clear"
		}
		fmt.Printf("  %-4d  %-8d  %-6s  %-6s  %s\n",
			i+1, entry.Score, result, entry.Duration.Round(time.Second), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.HighScore(src.ID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

// printSummary prints one line per level that has been played.
func printSummary(store *storage.Store) error {
	stats, err := store.AllLevelStats()
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-12s  %-5s  %-5s  %-6s  %-8s  %s\n", "Level", "Runs", "Wins", "Best", "Average", "Last played")
	fmt.Printf("  %-12s  %-5s  %-5s  %-6s  %-8s  %s\n", "-----", "----", "----", "----", "-------", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-12s  %-5d  %-5d  %-6d  %-8.1f  %s\n",
			id, s.Runs, s.Wins, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
