package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing. With no argument a level menu is shown and you return to
it after each level; with a level ID or 1-based number that level starts
directly.

Controls:
  Left/Right, A/D - Move paddle
  Space           - Launch the ball
  P               - Pause
  Enter           - Next level (after a clear)
  R               - Replay the level
  Esc/B           - Back to the level menu
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Wider paddle, slower ball
  normal - Config values as they are
  hard   - Narrower paddle, faster ball
  fixed  - No launch-speed progression across levels

Examples:
  breakout play
  breakout play 3
  breakout play three --difficulty easy
  breakout play --config ./my-breakout.toml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// runtimeConfig creates the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// resolveLevel accepts a level ID or a 1-based position.
func resolveLevel(arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(registry.Levels()) {
			return 0, fmt.Errorf("%w: level %d of %d", registry.ErrUnknownLevel, n, len(registry.Levels()))
		}
		return n - 1, nil
	}
	return registry.LevelIndex(arg)
}

func runPlay(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runMenu()
	}

	index, err := resolveLevel(args[0])
	if err != nil {
		if errors.Is(err, registry.ErrUnknownLevel) {
			return fmt.Errorf("%w\nRun 'breakout levels' to see available levels", err)
		}
		return err
	}

	game, err := registry.Create("breakout")
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, runtimeConfig(), index, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
