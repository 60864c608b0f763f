// Package config provides YAML/TOML configuration loading and difficulty
// presets for the breakout simulation.
package config

// BreakoutConfig contains all tuning for a breakout session. World units are
// abstract pixels; the terminal front end scales them to cells.
type BreakoutConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Paddle     PaddleConfig     `yaml:"paddle" toml:"paddle"`
	Ball       BallConfig       `yaml:"ball" toml:"ball"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	PowerUps   PowerUpsConfig   `yaml:"powerups" toml:"powerups"`
	Particles  ParticlesConfig  `yaml:"particles" toml:"particles"`
	Levels     LevelsConfig     `yaml:"levels" toml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// WorldConfig defines the play-field dimensions.
type WorldConfig struct {
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	LevelArea float64 `yaml:"level_area" toml:"level_area"` // fraction of the height covered by bricks
}

// PaddleConfig defines the player paddle.
type PaddleConfig struct {
	Width         float64 `yaml:"width" toml:"width"`
	Height        float64 `yaml:"height" toml:"height"`
	Velocity      float64 `yaml:"velocity" toml:"velocity"` // units per second
	EnlargeAmount float64 `yaml:"enlarge_amount" toml:"enlarge_amount"`
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius    float64 `yaml:"radius" toml:"radius"`
	VelocityX float64 `yaml:"velocity_x" toml:"velocity_x"`
	VelocityY float64 `yaml:"velocity_y" toml:"velocity_y"`
	Walls     string  `yaml:"walls" toml:"walls"` // "stop" or "reflect"
}

// PhysicsConfig defines collision response tuning.
type PhysicsConfig struct {
	Strength      float64 `yaml:"strength" toml:"strength"`             // paddle deflection multiplier
	ShakeDuration float64 `yaml:"shake_duration" toml:"shake_duration"` // seconds
	BrickPoints   int     `yaml:"brick_points" toml:"brick_points"`
}

// PowerUpsConfig defines falling power-ups.
type PowerUpsConfig struct {
	Width           float64                      `yaml:"width" toml:"width"`
	Height          float64                      `yaml:"height" toml:"height"`
	FallSpeed       float64                      `yaml:"fall_speed" toml:"fall_speed"`
	SpeedMultiplier float64                      `yaml:"speed_multiplier" toml:"speed_multiplier"`
	Kinds           map[string]PowerUpKindConfig `yaml:"kinds" toml:"kinds"`
}

// PowerUpKindConfig is the drop chance (one in Chance) and effect duration of one kind.
type PowerUpKindConfig struct {
	Chance   int     `yaml:"chance" toml:"chance"`
	Duration float64 `yaml:"duration" toml:"duration"`
}

// ParticlesConfig defines the ball trail.
type ParticlesConfig struct {
	Amount   int     `yaml:"amount" toml:"amount"`
	Life     float64 `yaml:"life" toml:"life"`
	PerFrame int     `yaml:"per_frame" toml:"per_frame"`
}

// LevelsConfig lists extra level files registered next to the built-in levels.
type LevelsConfig struct {
	Files []string `yaml:"files" toml:"files"`
}

// DifficultyConfig defines how the ball speeds up over the level sequence.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "level" or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // level index at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // added to ball speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. The empty string and unknown
// values return "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
