package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Target frames per second (default 60)
	Seed     int64 // RNG seed for power-up and particle draws
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// PostEffects are the screen-space distortion flags sampled once per frame by
// the post-processing stage. The simulation sets them; it never renders them.
type PostEffects struct {
	Shake     bool
	Confuse   bool
	Chaos     bool
	ShakeTime float64 // Seconds of shake remaining
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	GameOver bool    // Whether the session has ended (level won)
	Paused   bool    // Whether the game is paused
	Level    int     // Active level index
	LevelID  string  // Active level name
	Bricks   int     // Destructible bricks still standing
	Misses   int     // Balls lost on the current level
	Elapsed  float64 // Seconds played on the current level
	Effects  PostEffects
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
