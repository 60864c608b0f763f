package breakout

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Game states
const (
	StatePlaying = "playing" // Ball stuck or in flight
	StatePaused  = "paused"  // Game paused
	StateWin     = "win"     // Every destructible brick on the level is gone
)

// GridSource is a re-readable level grid.
type GridSource interface {
	Open() (io.ReadCloser, error)
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives soft-fail warnings. Discarded unless the platform sets one.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register("breakout", func() registry.Game { return New() })
}

// Options overrides what Reset would otherwise load from the config search
// path, the level registry and the runtime seed.
type Options struct {
	Config *config.BreakoutConfig
	Levels []GridSource
	Names  []string
	RNG    Source

	// ParticleRNG feeds the ball trail only. It is never shared with RNG.
	ParticleRNG Source
}

// particleSeedSalt derives the trail's seed from the session seed.
const particleSeedSalt int64 = 0x5bd1e995

// Game is the frame orchestrator. It owns the session World and runs every
// subsystem once per frame in a fixed order.
type Game struct {
	opts Options

	world     World
	resolver  *Resolver
	powerups  *PowerUpManager
	particles *ParticleGenerator
	rng       Source

	levels     []GridSource
	names      []string
	levelIndex int
	walls      WallMode

	state   string
	score   int
	misses  int
	elapsed float64
	frames  uint64

	initialVelocity core.Vec2

	runtime    core.RuntimeConfig
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager
	log        *log.Logger
}

// New creates a game that loads its config, levels and RNG on Reset.
func New() *Game {
	return &Game{}
}

// NewWithOptions creates a game with injected config, levels or RNG.
func NewWithOptions(opts Options) *Game {
	return &Game{opts: opts}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset initializes or restarts the session on the first level. An unusable
// config is logged and replaced by the defaults.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if err := g.Setup(runtime); err != nil {
		g.log.Error("breakout config rejected, using defaults", "err", err)
		cfg := config.DefaultBreakoutConfig()
		g.opts.Config = &cfg
		if err := g.Setup(runtime); err != nil {
			g.log.Error("breakout defaults rejected", "err", err)
		}
	}
}

// Setup builds the session from config. Construction-time invariant
// violations (negative durations, bad sizes) are returned here and never
// surface mid-frame.
func (g *Game) Setup(runtime core.RuntimeConfig) error {
	g.runtime = runtime
	g.log = logger

	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.cfg = cfg
	g.walls = ParseWallMode(cfg.Ball.Walls)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = g.opts.RNG
	if g.rng == nil {
		g.rng = NewSimpleRNG(runtime.Seed)
	}

	settings, err := powerUpSettings(cfg)
	if err != nil {
		return err
	}
	g.powerups, err = NewPowerUpManager(settings, g.rng)
	if err != nil {
		return err
	}
	g.resolver = NewResolver(cfg.Physics.Strength, core.V(cfg.Ball.VelocityX, cfg.Ball.VelocityY),
		cfg.Physics.ShakeDuration, g.powerups)
	particleRNG := g.opts.ParticleRNG
	if particleRNG == nil {
		particleRNG = NewSimpleRNG(runtime.Seed ^ particleSeedSalt)
	}
	g.particles = NewParticleGenerator(cfg.Particles.Amount, cfg.Particles.Life, particleRNG)

	g.loadSources()

	g.world = World{
		Width:  cfg.World.Width,
		Height: cfg.World.Height,
	}
	paddle := NewBody(core.Vec2{}, core.V(cfg.Paddle.Width, cfg.Paddle.Height), core.TexturePaddle)
	g.world.Paddle = &paddle
	g.world.Ball = NewBall(core.Vec2{}, cfg.Ball.Radius, core.Vec2{})

	return g.SelectLevel(0)
}

func (g *Game) loadConfig() (config.BreakoutConfig, error) {
	if g.opts.Config != nil {
		return *g.opts.Config, nil
	}
	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		g.log.Warn("config load failed, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultBreakoutConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// loadSources takes injected levels or falls back to the registry.
func (g *Game) loadSources() {
	g.levels = g.levels[:0]
	g.names = g.names[:0]

	if len(g.opts.Levels) > 0 {
		for i, src := range g.opts.Levels {
			name := fmt.Sprintf("level-%d", i+1)
			if i < len(g.opts.Names) {
				name = g.opts.Names[i]
			}
			g.levels = append(g.levels, src)
			g.names = append(g.names, name)
		}
		return
	}

	for _, src := range registry.Levels() {
		g.levels = append(g.levels, src)
		g.names = append(g.names, src.ID)
	}
}

// powerUpSettings converts the config section into manager settings.
func powerUpSettings(cfg config.BreakoutConfig) (PowerUpSettings, error) {
	s := DefaultPowerUpSettings()
	s.Size = core.V(cfg.PowerUps.Width, cfg.PowerUps.Height)
	s.Velocity = core.V(0, cfg.PowerUps.FallSpeed)
	s.SpeedMultiplier = cfg.PowerUps.SpeedMultiplier
	s.EnlargeAmount = cfg.Paddle.EnlargeAmount
	for name, k := range cfg.PowerUps.Kinds {
		kind, ok := ParsePowerUpKind(name)
		if !ok {
			return s, fmt.Errorf("breakout: unknown power-up kind %q", name)
		}
		s.Rules[kind].Chance = k.Chance
		s.Rules[kind].Duration = k.Duration
	}
	return s, nil
}

// SelectLevel makes level i active, reloads it from its source and resets
// the player. The score and timers start over.
func (g *Game) SelectLevel(i int) error {
	if i < 0 || i >= len(g.levels) {
		return fmt.Errorf("%w: index %d of %d", registry.ErrUnknownLevel, i, len(g.levels))
	}
	g.levelIndex = i

	factor := g.difficulty.SpeedFactor(i)
	g.initialVelocity = core.V(g.cfg.Ball.VelocityX, g.cfg.Ball.VelocityY).Scale(factor)
	g.resolver.InitialVelocity = g.initialVelocity

	g.ResetLevel()
	g.ResetPlayer()
	g.particles.Reset()
	g.score = 0
	g.misses = 0
	g.elapsed = 0
	g.state = StatePlaying
	return nil
}

// ResetLevel rebuilds the active level from its source grid. A source that
// cannot be read or parsed yields an empty level and a warning.
func (g *Game) ResetLevel() {
	levelHeight := g.world.Height * g.cfg.World.LevelArea
	name := g.names[g.levelIndex]

	rc, err := g.levels[g.levelIndex].Open()
	if err != nil {
		g.log.Warn("level source unreadable", "level", name, "err", err)
		g.world.Level = &Level{Name: name}
		return
	}
	defer rc.Close()

	lvl, err := LoadLevel(rc, g.world.Width, levelHeight)
	if err != nil {
		g.log.Warn("level source malformed", "level", name, "err", err)
	}
	lvl.Name = name
	g.world.Level = lvl
}

// ResetPlayer puts the paddle and ball back to their initial layout and clears
// every power-up and screen effect.
func (g *Game) ResetPlayer() {
	w := &g.world
	w.Paddle.Size = core.V(g.cfg.Paddle.Width, g.cfg.Paddle.Height)
	w.Paddle.Position = core.V(w.Width/2-w.Paddle.Size.X/2, w.Height-w.Paddle.Size.Y)
	w.Paddle.Color = core.White

	r := w.Ball.Radius
	w.Ball.Reset(w.Paddle.Position.Add(core.V(w.Paddle.Size.X/2-r, -r*2)), g.initialVelocity)

	g.powerups.Reset()
	w.Effects = core.PostEffects{}
}

// Step handles pause, restart and level advance, then runs one frame of input
// and simulation over dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.world.Level == nil {
		return core.StepResult{State: g.State()}
	}

	switch g.state {
	case StateWin:
		if in.Has(core.ActionConfirm) {
			g.selectOrWarn((g.levelIndex + 1) % len(g.levels))
		} else if in.Has(core.ActionRestart) {
			g.selectOrWarn(g.levelIndex)
		}
		return core.StepResult{State: g.State()}
	case StatePaused:
		if in.Has(core.ActionPause) {
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.state = StatePaused
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionRestart) {
		g.selectOrWarn(g.levelIndex)
		return core.StepResult{State: g.State()}
	}

	g.frames++
	g.elapsed += dt
	g.ProcessInput(dt, in)
	g.Update(dt)

	return core.StepResult{State: g.State()}
}

func (g *Game) selectOrWarn(i int) {
	if err := g.SelectLevel(i); err != nil {
		g.log.Warn("level select failed", "index", i, "err", err)
	}
}

// ProcessInput moves the paddle while left or right is held and releases a
// stuck ball on launch. A stuck ball travels with the paddle.
func (g *Game) ProcessInput(dt float64, in core.InputFrame) {
	if g.state != StatePlaying {
		return
	}
	w := &g.world
	paddle, ball := w.Paddle, w.Ball
	step := g.cfg.Paddle.Velocity * dt
	maxX := w.Width - paddle.Size.X

	x := paddle.Position.X
	if in.Has(core.ActionLeft) {
		x -= step
	}
	if in.Has(core.ActionRight) {
		x += step
	}
	x = core.ClampF(x, 0, max(maxX, 0))

	if moved := x - paddle.Position.X; moved != 0 {
		paddle.Position.X = x
		if ball.Stuck {
			ball.Position.X += moved
		}
	}
	if in.Has(core.ActionLaunch) {
		ball.Stuck = false
	}
}

// Update runs the fixed per-frame sequence: ball motion, brick and paddle
// collisions, particles, power-ups, shake countdown, then the life-loss and
// level-completion checks.
func (g *Game) Update(dt float64) {
	if g.state != StatePlaying {
		return
	}
	w := &g.world

	w.Ball.Move(dt, w.Width, g.walls)

	destroyed := g.resolver.ResolveBricks(w)
	g.score += len(destroyed) * g.cfg.Physics.BrickPoints
	g.resolver.ResolvePaddle(w)

	g.particles.Update(dt, &w.Ball.Body, g.cfg.Particles.PerFrame, core.V(w.Ball.Radius/2, w.Ball.Radius/2))
	g.powerups.Update(dt, w)

	if w.Effects.ShakeTime > 0 {
		w.Effects.ShakeTime -= dt
		if w.Effects.ShakeTime <= 0 {
			w.Effects.ShakeTime = 0
			w.Effects.Shake = false
		}
	}

	if w.Ball.Position.Y >= w.Height {
		g.misses++
		g.ResetLevel()
		g.ResetPlayer()
	}

	if w.Level.IsCompleted() {
		g.state = StateWin
		g.ResetPlayer()
		w.Effects.Chaos = true
	}
}

// Draw hands the level, paddle, power-ups, particles and ball to the batch,
// back to front.
func (g *Game) Draw(batch core.SpriteBatch) {
	w := &g.world
	if w.Level != nil {
		w.Level.Draw(batch)
	}
	if w.Paddle != nil {
		w.Paddle.Draw(batch)
	}
	if g.powerups != nil {
		g.powerups.Draw(batch)
	}
	if g.particles != nil && w.Ball != nil && !w.Ball.Stuck {
		g.particles.Draw(batch)
	}
	if w.Ball != nil {
		w.Ball.Draw(batch)
	}
}

// WorldSize returns the play-field size.
func (g *Game) WorldSize() core.Vec2 {
	return core.V(g.world.Width, g.world.Height)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.score,
		GameOver: g.state == StateWin,
		Paused:   g.state == StatePaused,
		Level:    g.levelIndex,
		Misses:   g.misses,
		Elapsed:  g.elapsed,
		Effects:  g.world.Effects,
	}
	if g.levelIndex < len(g.names) {
		st.LevelID = g.names[g.levelIndex]
	}
	if g.world.Level != nil {
		st.Bricks = g.world.Level.Remaining()
	}
	return st
}

// World exposes the session context.
func (g *Game) World() *World {
	return &g.world
}

// PowerUps returns the live power-up manager.
func (g *Game) PowerUps() *PowerUpManager {
	return g.powerups
}

// Particles returns the particle generator.
func (g *Game) Particles() *ParticleGenerator {
	return g.particles
}

// LevelIndex returns the active level index.
func (g *Game) LevelIndex() int {
	return g.levelIndex
}

// LevelCount returns the number of playable levels.
func (g *Game) LevelCount() int {
	return len(g.levels)
}

// Status returns the orchestrator state string.
func (g *Game) Status() string {
	return g.state
}
