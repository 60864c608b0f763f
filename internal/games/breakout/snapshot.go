package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Snapshot captures the authoritative simulation state for determinism
// checks. Particles are cosmetic and left out.
type Snapshot struct {
	Frame      uint64
	Score      int
	Misses     int
	LevelIndex int
	State      string

	Paddle       [4]float64 // X, Y, W, H
	PaddleColor  core.RGB
	Ball         [4]float64 // X, Y, VX, VY
	BallColor    core.RGB
	BallFlags    [3]bool // Stuck, Sticky, PassThrough
	Effects      core.PostEffects
	BricksAlive  []bool // storage order
	PowerUpCount int

	// Each power-up is 6 floats: Kind, X, Y, Duration, Destroyed, Activated
	PowerUpData []float64

	// RNG state, when the game runs on SimpleRNG
	RNGState uint64
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	w := &g.world
	snap := Snapshot{
		Frame:       g.frames,
		Score:       g.score,
		Misses:      g.misses,
		LevelIndex:  g.levelIndex,
		State:       g.state,
		Paddle:      [4]float64{w.Paddle.Position.X, w.Paddle.Position.Y, w.Paddle.Size.X, w.Paddle.Size.Y},
		PaddleColor: w.Paddle.Color,
		Ball:        [4]float64{w.Ball.Position.X, w.Ball.Position.Y, w.Ball.Velocity.X, w.Ball.Velocity.Y},
		BallColor:   w.Ball.Color,
		BallFlags:   [3]bool{w.Ball.Stuck, w.Ball.Sticky, w.Ball.PassThrough},
		Effects:     w.Effects,
	}

	snap.BricksAlive = make([]bool, len(w.Level.Bricks))
	for i, b := range w.Level.Bricks {
		snap.BricksAlive[i] = !b.Destroyed
	}

	snap.PowerUpCount = len(g.powerups.Items)
	snap.PowerUpData = make([]float64, 0, len(g.powerups.Items)*6)
	for _, p := range g.powerups.Items {
		snap.PowerUpData = append(snap.PowerUpData,
			float64(p.Kind), p.Position.X, p.Position.Y, p.Duration, flag(p.Destroyed), flag(p.Activated))
	}

	if rng, ok := g.rng.(*SimpleRNG); ok {
		snap.RNGState = rng.State()
	}
	return snap
}

// ApplySnapshot restores the ball, paddle, bricks, power-ups and counters.
// The level must be the one the snapshot was taken on.
func (g *Game) ApplySnapshot(snap Snapshot) {
	w := &g.world
	g.frames = snap.Frame
	g.score = snap.Score
	g.misses = snap.Misses
	g.levelIndex = snap.LevelIndex
	g.state = snap.State

	w.Paddle.Position = core.V(snap.Paddle[0], snap.Paddle[1])
	w.Paddle.Size = core.V(snap.Paddle[2], snap.Paddle[3])
	w.Paddle.Color = snap.PaddleColor
	w.Ball.Position = core.V(snap.Ball[0], snap.Ball[1])
	w.Ball.Velocity = core.V(snap.Ball[2], snap.Ball[3])
	w.Ball.Color = snap.BallColor
	w.Ball.Stuck, w.Ball.Sticky, w.Ball.PassThrough = snap.BallFlags[0], snap.BallFlags[1], snap.BallFlags[2]
	w.Effects = snap.Effects

	if len(snap.BricksAlive) == len(w.Level.Bricks) {
		for i, alive := range snap.BricksAlive {
			w.Level.Bricks[i].Destroyed = !alive
		}
	}

	g.powerups.Reset()
	for i := 0; i+5 < len(snap.PowerUpData); i += 6 {
		d := snap.PowerUpData[i : i+6]
		kind := PowerUpKind(d[0])
		if kind < 0 || kind >= powerUpKindCount {
			continue
		}
		rule := g.powerups.Settings.Rules[kind]
		p, err := NewPowerUp(kind, core.V(d[1], d[2]), g.powerups.Settings.Size,
			g.powerups.Settings.Velocity, d[3], rule.Color)
		if err != nil {
			continue
		}
		p.Destroyed = d[4] != 0
		p.Activated = d[5] != 0
		g.powerups.Items = append(g.powerups.Items, p)
	}

	if rng, ok := g.rng.(*SimpleRNG); ok && snap.RNGState != 0 {
		rng.SetState(snap.RNGState)
	}
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Misses)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}

	for _, v := range snap.Paddle {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.Ball {
		h = h*31 + math.Float64bits(v)
	}
	for _, c := range [...]core.RGB{snap.PaddleColor, snap.BallColor} {
		h = h*31 + math.Float64bits(c.R)
		h = h*31 + math.Float64bits(c.G)
		h = h*31 + math.Float64bits(c.B)
	}
	for _, b := range snap.BallFlags {
		h = h*31 + uint64(flag(b))
	}
	h = h*31 + uint64(flag(snap.Effects.Shake))
	h = h*31 + uint64(flag(snap.Effects.Confuse))
	h = h*31 + uint64(flag(snap.Effects.Chaos))
	h = h*31 + math.Float64bits(snap.Effects.ShakeTime)

	for _, alive := range snap.BricksAlive {
		h = h*31 + uint64(flag(alive))
	}

	h = h*31 + uint64(snap.PowerUpCount) //#nosec G115 -- hash computation
	for _, v := range snap.PowerUpData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + snap.RNGState

	return h
}
