// breakout is a terminal brick breaker: a ball, a paddle, a grid of bricks
// and falling power-ups.
//
// Usage:
//
//	breakout play [level]    - Play a level, or pick one from the menu
//	breakout levels          - List registered levels
//	breakout scores [level]  - Show high scores
//	breakout serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible power-up drops
//	--db <path>         - Set database path (default: ~/.arcade/breakout.db)
//	--config <path>     - Custom YAML or TOML config
//	--level-file <path> - Register an extra level file (repeatable)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelFiles []string
	flagLogLevel   string
	flagLogFile    string

	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break bricks in your terminal",
	Long: `Breakout is a terminal brick breaker. Bounce the ball off the paddle,
clear every destructible brick, and catch the power-ups that fall out.

Available commands:
  play     - Play a level (menu when no level is given)
  levels   - Show all registered levels
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  breakout play
  breakout play two --difficulty hard
  breakout play --level-file ./castle.lvl castle
  breakout serve --ssh :2222
  breakout scores one`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML, or TOML by extension)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringSliceVar(&flagLevelFiles, "level-file", nil, "Extra level file to register (repeatable)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (play discards logs otherwise)")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup builds the logger, hands the config flags to the game and registers
// user level files.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		path, pathErr := config.ExpandHome(flagLogFile)
		if pathErr != nil {
			return pathErr
		}
		logFile, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) //#nosec G304 -- user-supplied log path
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = logFile
	case cmd.Name() != playCmd.Name():
		// Only the full-screen game needs stderr kept clean
		out = os.Stderr
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "breakout",
	})

	breakout.SetLogger(logger)
	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)

	registerLevelFiles()
	return nil
}

// registerLevelFiles adds the config's level files, then the --level-file
// flags. A bad file is logged and skipped.
func registerLevelFiles() {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		logger.Warn("config load failed", "path", flagConfig, "err", err)
	}

	files := append([]string{}, cfg.Levels.Files...)
	files = append(files, flagLevelFiles...)
	for _, f := range files {
		src, err := registry.RegisterLevelFile(f)
		if err != nil {
			logger.Warn("level file skipped", "path", f, "err", err)
			continue
		}
		logger.Debug("level file registered", "id", src.ID, "path", src.Path)
	}
}
