package main

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// runMenu loops level menu -> game -> level menu until the player quits.
func runMenu() error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	seeded := cfg.Seed != 0

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		game, err := registry.Create("breakout")
		if err != nil {
			return fmt.Errorf("error creating game: %w", err)
		}

		// Fresh drops for each game unless the seed was pinned
		if !seeded {
			cfg.Seed = time.Now().UnixNano()
		}

		goBack, err := tui.Run(game, store, cfg, menuResult.LevelIndex, logger)
		if err != nil {
			return fmt.Errorf("error running game: %w", err)
		}
		if !goBack {
			return nil
		}
	}
}
