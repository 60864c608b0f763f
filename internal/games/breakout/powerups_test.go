package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func newTestManager(t *testing.T, rng Source) *PowerUpManager {
	t.Helper()
	m, err := NewPowerUpManager(DefaultPowerUpSettings(), rng)
	require.NoError(t, err)
	return m
}

// powerUpWorld has the paddle at (350, 580) 100x20 and a free ball.
func powerUpWorld() *World {
	return worldWith(ballAt(core.V(400, 300), 10, core.V(100, -350)))
}

// dropOnPaddle adds an item of kind already overlapping the paddle.
func dropOnPaddle(t *testing.T, m *PowerUpManager, kind PowerUpKind) *PowerUp {
	t.Helper()
	rule := m.Settings.Rules[kind]
	p, err := NewPowerUp(kind, core.V(370, 570), m.Settings.Size, m.Settings.Velocity, rule.Duration, rule.Color)
	require.NoError(t, err)
	m.Items = append(m.Items, p)
	return p
}

func TestSpawnRollsEveryKind(t *testing.T) {
	m := newTestManager(t, alwaysSource{})
	m.Spawn(core.V(10, 20))

	require.Len(t, m.Items, 6)
	for i, p := range m.Items {
		assert.Equal(t, PowerUpKind(i), p.Kind)
		assert.Equal(t, core.V(10, 20), p.Position)
		assert.Equal(t, core.V(60, 20), p.Size)
		assert.Equal(t, core.V(0, 150), p.Velocity)
		assert.False(t, p.Activated)
		assert.False(t, p.Destroyed)
	}
}

func TestSpawnIndependentRolls(t *testing.T) {
	// speed, sticky, pass-through, pad-size, confuse, chaos
	rng := &scriptedSource{values: []int{1, 0, 7, 3, 2, 0}}
	m := newTestManager(t, rng)
	m.Spawn(core.Vec2{})

	require.Len(t, m.Items, 2)
	assert.Equal(t, PowerUpSticky, m.Items[0].Kind)
	assert.Equal(t, PowerUpChaos, m.Items[1].Kind)
	assert.Equal(t, 20.0, m.Items[0].Duration)
	assert.Equal(t, 15.0, m.Items[1].Duration)
}

func TestSpawnNothing(t *testing.T) {
	m := newTestManager(t, &scriptedSource{})
	m.Spawn(core.Vec2{})
	assert.Empty(t, m.Items)
}

func TestNewPowerUpRejectsNegativeDuration(t *testing.T) {
	_, err := NewPowerUp(PowerUpSticky, core.Vec2{}, core.V(1, 1), core.Vec2{}, -1, core.White)
	assert.ErrorIs(t, err, ErrNegativeDuration)

	settings := DefaultPowerUpSettings()
	settings.Rules[PowerUpChaos].Duration = -0.5
	_, err = NewPowerUpManager(settings, alwaysSource{})
	assert.ErrorIs(t, err, ErrNegativeDuration)
}

func TestPowerUpKindNames(t *testing.T) {
	for _, k := range PowerUpKinds() {
		parsed, ok := ParsePowerUpKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, parsed)
	}
	_, ok := ParsePowerUpKind("multiball")
	assert.False(t, ok)
}

func TestFallOffDestroysWithoutEffect(t *testing.T) {
	m := newTestManager(t, alwaysSource{})
	w := powerUpWorld()
	p, err := NewPowerUp(PowerUpPadSize, core.V(10, 600), m.Settings.Size, m.Settings.Velocity, 0, core.White)
	require.NoError(t, err)
	m.Items = append(m.Items, p)

	m.Update(0.016, w)

	assert.True(t, p.Destroyed)
	assert.False(t, p.Activated)
	assert.Empty(t, m.Items)
	assert.Equal(t, 100.0, w.Paddle.Size.X)
}

func TestFallingItemMoves(t *testing.T) {
	m := newTestManager(t, alwaysSource{})
	w := powerUpWorld()
	p, err := NewPowerUp(PowerUpSpeed, core.V(10, 100), m.Settings.Size, m.Settings.Velocity, 0, core.White)
	require.NoError(t, err)
	m.Items = append(m.Items, p)

	m.Update(0.5, w)

	require.Len(t, m.Items, 1)
	assert.Equal(t, core.V(10, 175), p.Position)
}

func TestInstantPowerUpAppliesOnce(t *testing.T) {
	m := newTestManager(t, alwaysSource{})
	w := powerUpWorld()
	p := dropOnPaddle(t, m, PowerUpSpeed)

	m.Update(0.016, w)

	assert.True(t, p.Destroyed)
	assert.False(t, p.Activated, "zero-duration items retire without a timer")
	assert.Equal(t, 0.0, p.Duration, "never decremented")
	assert.Empty(t, m.Items)
	assert.InDelta(t, 120.0, w.Ball.Velocity.X, 1e-9)
	assert.InDelta(t, -420.0, w.Ball.Velocity.Y, 1e-9)

	m.Update(0.016, w)
	assert.InDelta(t, 120.0, w.Ball.Velocity.X, 1e-9)
}

func TestPadSizeIsPermanent(t *testing.T) {
	m := newTestManager(t, alwaysSource{})
	w := powerUpWorld()
	dropOnPaddle(t, m, PowerUpPadSize)

	m.Update(0.016, w)
	for range 100 {
		m.Update(1, w)
	}

	assert.Equal(t, 150.0, w.Paddle.Size.X)
}

func TestStickyLifecycle(t *testing.T) {
	m := newTestManager(t, alwaysSource{})
	w := powerUpWorld()
	p := dropOnPaddle(t, m, PowerUpSticky)

	m.Update(0, w)
	assert.True(t, w.Ball.Sticky)
	assert.Equal(t, core.RGB{R: 1, G: 0.5, B: 1}, w.Paddle.Color)
	require.Len(t, m.Items, 1, "caught timed items stay until they expire")
	assert.True(t, p.Destroyed)
	assert.True(t, p.Activated)

	m.Update(19, w)
	assert.True(t, w.Ball.Sticky)
	assert.InDelta(t, 1.0, p.Duration, 1e-9)

	m.Update(1.5, w)
	assert.False(t, w.Ball.Sticky)
	assert.Equal(t, core.White, w.Paddle.Color)
	assert.Empty(t, m.Items)
}

func TestPassThroughLifecycle(t *testing.T) {
	m := newTestManager(t, alwaysSource{})
	w := powerUpWorld()
	dropOnPaddle(t, m, PowerUpPassThrough)

	m.Update(0, w)
	assert.True(t, w.Ball.PassThrough)
	assert.Equal(t, core.RGB{R: 1, G: 0.5, B: 0.5}, w.Ball.Color)

	m.Update(10, w)
	assert.False(t, w.Ball.PassThrough)
	assert.Equal(t, core.White, w.Ball.Color)
}

func TestSameKindGuard(t *testing.T) {
	m := newTestManager(t, alwaysSource{})
	w := powerUpWorld()

	first := dropOnPaddle(t, m, PowerUpSticky)
	m.Update(0, w)
	m.Update(10, w)

	second := dropOnPaddle(t, m, PowerUpSticky)
	m.Update(0, w)
	require.True(t, second.Activated)

	// First timer runs out while the second is still active
	m.Update(10.5, w)
	assert.False(t, first.Activated)
	assert.True(t, second.Activated)
	assert.True(t, w.Ball.Sticky, "effect must survive while another sticky is active")
	assert.Len(t, m.Items, 1)

	m.Update(10, w)
	assert.False(t, w.Ball.Sticky)
	assert.Empty(t, m.Items)
}

func TestConfuseAndChaosExclusive(t *testing.T) {
	m := newTestManager(t, alwaysSource{})
	w := powerUpWorld()

	dropOnPaddle(t, m, PowerUpChaos)
	m.Update(0, w)
	assert.True(t, w.Effects.Chaos)

	dropOnPaddle(t, m, PowerUpConfuse)
	m.Update(0, w)
	assert.False(t, w.Effects.Confuse, "confuse refuses while chaos is active")
	assert.True(t, w.Effects.Chaos)

	m.Update(15, w)
	assert.False(t, w.Effects.Chaos)
	assert.False(t, w.Effects.Confuse)
}

func TestConfuseLifecycle(t *testing.T) {
	m := newTestManager(t, alwaysSource{})
	w := powerUpWorld()

	dropOnPaddle(t, m, PowerUpConfuse)
	m.Update(0, w)
	assert.True(t, w.Effects.Confuse)

	dropOnPaddle(t, m, PowerUpChaos)
	m.Update(0, w)
	assert.False(t, w.Effects.Chaos)

	m.Update(14, w)
	assert.True(t, w.Effects.Confuse)
	m.Update(1, w)
	assert.False(t, w.Effects.Confuse)
}

func TestCleanupKeepsActivated(t *testing.T) {
	m := newTestManager(t, alwaysSource{})
	w := powerUpWorld()

	gone, err := NewPowerUp(PowerUpSpeed, core.V(10, 700), m.Settings.Size, m.Settings.Velocity, 0, core.White)
	require.NoError(t, err)
	live, err := NewPowerUp(PowerUpSpeed, core.V(10, 10), m.Settings.Size, m.Settings.Velocity, 0, core.White)
	require.NoError(t, err)
	m.Items = append(m.Items, gone, live)
	caught := dropOnPaddle(t, m, PowerUpConfuse)

	m.Update(0.1, w)

	assert.ElementsMatch(t, []*PowerUp{live, caught}, m.Items)
}

func TestManagerReset(t *testing.T) {
	m := newTestManager(t, alwaysSource{})
	m.Spawn(core.Vec2{})
	m.Reset()
	assert.Empty(t, m.Items)
	assert.False(t, m.IsOtherActive(PowerUpSticky))
}

func TestManagerDrawSkipsCaught(t *testing.T) {
	m := newTestManager(t, alwaysSource{})
	w := powerUpWorld()
	dropOnPaddle(t, m, PowerUpSticky)
	m.Spawn(core.V(10, 10))
	m.Update(0, w)

	batch := &recordingBatch{}
	m.Draw(batch)
	assert.Len(t, batch.sprites, 6, "the caught sticky is no longer drawn")
}
