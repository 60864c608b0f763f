package breakout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ErrNegativeDuration is returned when a power-up is built with a negative duration.
var ErrNegativeDuration = errors.New("breakout: negative power-up duration")

// PowerUpKind is one of the fixed set of power-up types.
type PowerUpKind int

const (
	PowerUpSpeed       PowerUpKind = iota // multiply ball velocity
	PowerUpSticky                         // ball glues to the paddle on contact
	PowerUpPassThrough                    // ball ploughs through destructible bricks
	PowerUpPadSize                        // widen the paddle
	PowerUpConfuse                        // mirror and invert the screen
	PowerUpChaos                          // shuffle the screen
	powerUpKindCount
)

// PowerUpKinds lists every kind in spawn-roll order.
func PowerUpKinds() []PowerUpKind {
	kinds := make([]PowerUpKind, 0, powerUpKindCount)
	for k := PowerUpKind(0); k < powerUpKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// String returns the config name of the kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeed:
		return "speed"
	case PowerUpSticky:
		return "sticky"
	case PowerUpPassThrough:
		return "pass-through"
	case PowerUpPadSize:
		return "pad-size-increase"
	case PowerUpConfuse:
		return "confuse"
	case PowerUpChaos:
		return "chaos"
	default:
		return "unknown"
	}
}

// Texture returns the texture handle of the kind.
func (k PowerUpKind) Texture() core.TextureID {
	switch k {
	case PowerUpSpeed:
		return core.TexturePowerUpSpeed
	case PowerUpSticky:
		return core.TexturePowerUpSticky
	case PowerUpPassThrough:
		return core.TexturePowerUpPassThrough
	case PowerUpPadSize:
		return core.TexturePowerUpPadSize
	case PowerUpConfuse:
		return core.TexturePowerUpConfuse
	default:
		return core.TexturePowerUpChaos
	}
}

// ParsePowerUpKind maps a config name back to its kind.
func ParsePowerUpKind(name string) (PowerUpKind, bool) {
	for _, k := range PowerUpKinds() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// PowerUp is a falling item. Catching it sets both Destroyed (gone from the
// field) and Activated (effect running); it stays in the manager until its
// timer clears Activated.
type PowerUp struct {
	Body
	Kind      PowerUpKind
	Duration  float64 // seconds; 0 means instantaneous
	Activated bool
}

// NewPowerUp creates a power-up. Negative durations are rejected.
func NewPowerUp(kind PowerUpKind, pos, size, velocity core.Vec2, duration float64, color core.RGB) (*PowerUp, error) {
	if duration < 0 {
		return nil, fmt.Errorf("%w: %s %g", ErrNegativeDuration, kind, duration)
	}
	p := &PowerUp{
		Body:     NewBody(pos, size, kind.Texture()),
		Kind:     kind,
		Duration: duration,
	}
	p.Velocity = velocity
	p.Color = color
	return p, nil
}

// PowerUpRule is the per-kind drop and effect tuning.
type PowerUpRule struct {
	Chance   int // one in Chance per destroyed brick; 0 disables the kind
	Duration float64
	Color    core.RGB
}

// PowerUpSettings holds the manager tuning.
type PowerUpSettings struct {
	Size            core.Vec2
	Velocity        core.Vec2
	SpeedMultiplier float64
	EnlargeAmount   float64
	Rules           [powerUpKindCount]PowerUpRule
}

// DefaultPowerUpSettings returns the stock drop table.
func DefaultPowerUpSettings() PowerUpSettings {
	return PowerUpSettings{
		Size:            core.V(60, 20),
		Velocity:        core.V(0, 150),
		SpeedMultiplier: 1.2,
		EnlargeAmount:   50,
		Rules: [powerUpKindCount]PowerUpRule{
			PowerUpSpeed:       {Chance: 55, Duration: 0, Color: core.RGB{R: 0.5, G: 0.5, B: 1.0}},
			PowerUpSticky:      {Chance: 55, Duration: 20, Color: core.RGB{R: 1.0, G: 0.5, B: 1.0}},
			PowerUpPassThrough: {Chance: 55, Duration: 10, Color: core.RGB{R: 0.5, G: 1.0, B: 0.5}},
			PowerUpPadSize:     {Chance: 55, Duration: 0, Color: core.RGB{R: 1.0, G: 0.6, B: 0.4}},
			PowerUpConfuse:     {Chance: 15, Duration: 15, Color: core.RGB{R: 1.0, G: 0.3, B: 0.3}},
			PowerUpChaos:       {Chance: 15, Duration: 15, Color: core.RGB{R: 0.9, G: 0.25, B: 0.25}},
		},
	}
}

// Validate checks the settings for values that cannot be simulated.
func (s PowerUpSettings) Validate() error {
	if s.Size.X <= 0 || s.Size.Y <= 0 {
		return fmt.Errorf("breakout: power-up size %gx%g must be positive", s.Size.X, s.Size.Y)
	}
	for k, r := range s.Rules {
		if r.Duration < 0 {
			return fmt.Errorf("%w: %s %g", ErrNegativeDuration, PowerUpKind(k), r.Duration)
		}
		if r.Chance < 0 {
			return fmt.Errorf("breakout: %s chance %d must not be negative", PowerUpKind(k), r.Chance)
		}
	}
	return nil
}

// Sticky and pass-through tints.
var (
	stickyPaddleColor = core.RGB{R: 1.0, G: 0.5, B: 1.0}
	passThroughColor  = core.RGB{R: 1.0, G: 0.5, B: 0.5}
)

// PowerUpManager owns the live power-up collection.
type PowerUpManager struct {
	Items    []*PowerUp
	Settings PowerUpSettings

	rng Source
}

// NewPowerUpManager creates a manager drawing from rng.
func NewPowerUpManager(settings PowerUpSettings, rng Source) (*PowerUpManager, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &PowerUpManager{
		Settings: settings,
		rng:      rng,
	}, nil
}

// Spawn rolls every kind independently at origin. Any subset may drop.
func (m *PowerUpManager) Spawn(origin core.Vec2) {
	for _, k := range PowerUpKinds() {
		rule := m.Settings.Rules[k]
		if rule.Chance <= 0 || m.rng.Intn(rule.Chance) != 0 {
			continue
		}
		p, err := NewPowerUp(k, origin, m.Settings.Size, m.Settings.Velocity, rule.Duration, rule.Color)
		if err != nil {
			continue
		}
		m.Items = append(m.Items, p)
	}
}

// Update runs one frame of the lifecycle: catch and fall-off, then movement
// and timers, then removal of every item that is destroyed and not activated.
func (m *PowerUpManager) Update(dt float64, w *World) {
	paddle := w.Paddle.Box()
	for _, p := range m.Items {
		if p.Destroyed {
			continue
		}
		if p.Position.Y >= w.Height {
			p.Destroyed = true
			continue
		}
		if Overlaps(paddle, p.Box()) {
			p.Destroyed = true
			p.Activated = true
			m.activate(p.Kind, w)
		}
	}

	for _, p := range m.Items {
		p.Position = p.Position.Add(p.Velocity.Scale(dt))
		if !p.Activated {
			continue
		}
		// Instantaneous effects already applied on catch.
		if p.Duration == 0 {
			p.Activated = false
			continue
		}
		p.Duration -= dt
		if p.Duration <= 0 {
			p.Activated = false
			if !m.IsOtherActive(p.Kind) {
				m.deactivate(p.Kind, w)
			}
		}
	}

	for i := 0; i < len(m.Items); {
		if p := m.Items[i]; p.Destroyed && !p.Activated {
			last := len(m.Items) - 1
			m.Items[i] = m.Items[last]
			m.Items[last] = nil
			m.Items = m.Items[:last]
			continue
		}
		i++
	}
}

// IsOtherActive reports whether any item of kind is still activated.
func (m *PowerUpManager) IsOtherActive(kind PowerUpKind) bool {
	for _, p := range m.Items {
		if p.Activated && p.Kind == kind {
			return true
		}
	}
	return false
}

// Reset drops every item.
func (m *PowerUpManager) Reset() {
	clear(m.Items)
	m.Items = m.Items[:0]
}

// Draw draws the items still falling.
func (m *PowerUpManager) Draw(batch core.SpriteBatch) {
	for _, p := range m.Items {
		p.Draw(batch)
	}
}

func (m *PowerUpManager) activate(kind PowerUpKind, w *World) {
	switch kind {
	case PowerUpSpeed:
		w.Ball.Velocity = w.Ball.Velocity.Scale(m.Settings.SpeedMultiplier)
	case PowerUpSticky:
		w.Ball.Sticky = true
		w.Paddle.Color = stickyPaddleColor
	case PowerUpPassThrough:
		w.Ball.PassThrough = true
		w.Ball.Color = passThroughColor
	case PowerUpPadSize:
		w.Paddle.Size.X += m.Settings.EnlargeAmount
	case PowerUpConfuse:
		if !w.Effects.Chaos {
			w.Effects.Confuse = true
		}
	case PowerUpChaos:
		if !w.Effects.Confuse {
			w.Effects.Chaos = true
		}
	}
}

func (m *PowerUpManager) deactivate(kind PowerUpKind, w *World) {
	switch kind {
	case PowerUpSticky:
		w.Ball.Sticky = false
		w.Paddle.Color = core.White
	case PowerUpPassThrough:
		w.Ball.PassThrough = false
		w.Ball.Color = core.White
	case PowerUpConfuse:
		w.Effects.Confuse = false
	case PowerUpChaos:
		w.Effects.Chaos = false
	}
}
