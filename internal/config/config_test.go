package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg BreakoutConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultBreakoutConfig(), cfg)
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultBreakoutConfig().Validate())
}

func TestLoadBreakoutCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("paddle:\n  width: 140\nball:\n  walls: reflect\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadBreakout(path)
	require.NoError(t, err)

	assert.Equal(t, 140.0, cfg.Paddle.Width)
	assert.Equal(t, "reflect", cfg.Ball.Walls)
	// Untouched sections keep their defaults
	assert.Equal(t, 20.0, cfg.Ball.Radius)
	assert.Equal(t, 800.0, cfg.World.Width)
}

func TestLoadBreakoutCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte(`
[world]
width = 1024.0

[powerups.kinds.chaos]
chance = 5
duration = 3.5
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadBreakout(path)
	require.NoError(t, err)

	assert.Equal(t, 1024.0, cfg.World.Width)
	assert.Equal(t, PowerUpKindConfig{Chance: 5, Duration: 3.5}, cfg.PowerUps.Kinds["chaos"])
	assert.Equal(t, PowerUpKindConfig{Chance: 55, Duration: 20}, cfg.PowerUps.Kinds["sticky"])
}

func TestLoadBreakoutMissingCustomPath(t *testing.T) {
	_, err := LoadBreakout(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadBreakoutBrokenCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paddle: [unclosed"), 0o600))

	cfg, err := LoadBreakout(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultBreakoutConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
	}{
		{"zero width", func(c *BreakoutConfig) { c.World.Width = 0 }},
		{"negative radius", func(c *BreakoutConfig) { c.Ball.Radius = -1 }},
		{"level area above one", func(c *BreakoutConfig) { c.World.LevelArea = 1.5 }},
		{"unknown wall mode", func(c *BreakoutConfig) { c.Ball.Walls = "bounce" }},
		{"negative duration", func(c *BreakoutConfig) {
			c.PowerUps.Kinds["sticky"] = PowerUpKindConfig{Chance: 55, Duration: -1}
		}},
		{"negative chance", func(c *BreakoutConfig) {
			c.PowerUps.Kinds["speed"] = PowerUpKindConfig{Chance: -3}
		}},
		{"negative shake", func(c *BreakoutConfig) { c.Physics.ShakeDuration = -0.1 }},
		{"negative particles", func(c *BreakoutConfig) { c.Particles.Amount = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	easy := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&easy, DifficultyEasy)
	assert.True(t, easy.Difficulty.Enabled)
	assert.InDelta(t, 150.0, easy.Paddle.Width, 1e-9)
	assert.InDelta(t, -280.0, easy.Ball.VelocityY, 1e-9)

	hard := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&hard, DifficultyHard)
	assert.InDelta(t, 0.7, hard.Difficulty.InitialLevel, 1e-9)
	assert.InDelta(t, 80.0, hard.Paddle.Width, 1e-9)
	assert.InDelta(t, 125.0, hard.Ball.VelocityX, 1e-9)

	fixed := DefaultBreakoutConfig()
	fixed.Difficulty.Enabled = true
	ApplyBreakoutPreset(&fixed, DifficultyFixed)
	assert.False(t, fixed.Difficulty.Enabled)
	assert.Equal(t, DefaultBreakoutConfig().Paddle, fixed.Paddle)
}

func TestParsePreset(t *testing.T) {
	assert.Equal(t, DifficultyHard, ParsePreset("hard"))
	assert.Equal(t, DifficultyPreset(""), ParsePreset(""))
	assert.Equal(t, DifficultyPreset(""), ParsePreset("nightmare"))
}
