package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid breakout config")

// LoadBreakout loads the breakout configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default.
// A custom path ending in .toml is decoded as TOML.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	// Try custom path first
	if customPath != "" {
		path, err := ExpandHome(customPath)
		if err != nil {
			return cfg, err
		}
		data, err := os.ReadFile(path) //#nosec G304 -- user-supplied config path
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultBreakoutConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/breakout.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultBreakoutConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode picks the format from the file extension. Fields missing from the
// file keep the values already in cfg.
func decode(path string, data []byte, cfg *BreakoutConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects configurations the simulation cannot run with.
func (c BreakoutConfig) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"world.level_area", c.World.LevelArea},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"ball.radius", c.Ball.Radius},
		{"powerups.width", c.PowerUps.Width},
		{"powerups.height", c.PowerUps.Height},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidConfig, p.name, p.v)
		}
	}
	if c.World.LevelArea > 1 {
		return fmt.Errorf("%w: world.level_area must be at most 1, got %g", ErrInvalidConfig, c.World.LevelArea)
	}
	if c.Physics.ShakeDuration < 0 {
		return fmt.Errorf("%w: physics.shake_duration must not be negative", ErrInvalidConfig)
	}
	switch c.Ball.Walls {
	case "", "stop", "reflect":
	default:
		return fmt.Errorf("%w: ball.walls must be stop or reflect, got %q", ErrInvalidConfig, c.Ball.Walls)
	}
	for name, k := range c.PowerUps.Kinds {
		if k.Duration < 0 {
			return fmt.Errorf("%w: powerups.kinds.%s.duration must not be negative", ErrInvalidConfig, name)
		}
		if k.Chance < 0 {
			return fmt.Errorf("%w: powerups.kinds.%s.chance must not be negative", ErrInvalidConfig, name)
		}
	}
	if c.Particles.Amount < 0 || c.Particles.PerFrame < 0 {
		return fmt.Errorf("%w: particle counts must not be negative", ErrInvalidConfig)
	}
	return nil
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust paddle and ball based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width *= 1.5
		cfg.Ball.VelocityX *= 0.8
		cfg.Ball.VelocityY *= 0.8
	case DifficultyHard:
		cfg.Paddle.Width *= 0.8
		cfg.Ball.VelocityX *= 1.25
		cfg.Ball.VelocityY *= 1.25
	}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
