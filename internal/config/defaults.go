package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the hardcoded configuration used when the
// embedded defaults cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		World: WorldConfig{
			Width:     800,
			Height:    600,
			LevelArea: 0.5,
		},
		Paddle: PaddleConfig{
			Width:         100,
			Height:        20,
			Velocity:      500,
			EnlargeAmount: 50,
		},
		Ball: BallConfig{
			Radius:    20,
			VelocityX: 100,
			VelocityY: -350,
			Walls:     "stop",
		},
		Physics: PhysicsConfig{
			Strength:      2,
			ShakeDuration: 0.05,
			BrickPoints:   10,
		},
		PowerUps: PowerUpsConfig{
			Width:           60,
			Height:          20,
			FallSpeed:       150,
			SpeedMultiplier: 1.2,
			Kinds: map[string]PowerUpKindConfig{
				"speed":             {Chance: 55, Duration: 0},
				"sticky":            {Chance: 55, Duration: 20},
				"pass-through":      {Chance: 55, Duration: 10},
				"pad-size-increase": {Chance: 55, Duration: 0},
				"confuse":           {Chance: 15, Duration: 15},
				"chaos":             {Chance: 15, Duration: 15},
			},
		},
		Particles: ParticlesConfig{
			Amount:   500,
			Life:     0.8,
			PerFrame: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 3,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
