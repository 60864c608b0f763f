package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

type gridSource string

func (g gridSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(string(g))), nil
}

func newTestModel(t *testing.T, store *storage.Store, grids ...string) (Model, *breakout.Game) {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	sources := make([]breakout.GridSource, len(grids))
	for i, g := range grids {
		sources[i] = gridSource(g)
	}
	game := breakout.NewWithOptions(breakout.Options{Config: &cfg, Levels: sources})
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 31, TickRate: 60, Seed: 7}, 0)
	m.Init()
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestModelTickMovesPaddle(t *testing.T) {
	m, game := newTestModel(t, nil, "2 2\n")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := update(t, m, TickMsg(time.Now()))

	assert.NotNil(t, cmd, "ticking continues")
	assert.InDelta(t, 350+500.0/60, game.World().Paddle.Position.X, 1e-9)
	assert.Equal(t, "level-1", m.gameState.LevelID)
}

func TestModelOneShotPause(t *testing.T) {
	m, game := newTestModel(t, nil, "2 2\n")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m, _ = update(t, m, TickMsg(time.Now()))
	assert.True(t, game.State().Paused)

	// The press is consumed, so the next tick does not unpause
	_, _ = update(t, m, TickMsg(time.Now()))
	assert.True(t, game.State().Paused)
}

func TestModelRecordsWin(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	m, game := newTestModel(t, store, "2\n")
	game.World().Level.Bricks[0].Destroyed = true

	m, _ = update(t, m, TickMsg(time.Now()))
	require.True(t, m.gameState.GameOver)
	// A second tick on the win screen does not record again
	_, _ = update(t, m, TickMsg(time.Now()))

	scores, err := store.TopScores("level-1", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.True(t, scores[0].Won)
}

func TestModelQuitSkipsEmptyRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	m, _ := newTestModel(t, store, "2\n")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())

	scores, err := store.AllScores("level-1")
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestModelBack(t *testing.T) {
	m, _ := newTestModel(t, nil, "2\n")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
	assert.Nil(t, cmd, "inside a session the menu takes over")

	m, _ = newTestModel(t, nil, "2\n")
	m.standalone = true
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd)
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, game := newTestModel(t, nil, "2 2\n")
	game.World().Paddle.Position.X = 10

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 41})

	assert.Equal(t, 10.0, game.World().Paddle.Position.X)
	assert.Equal(t, 120, m.screen.Width())
	assert.Equal(t, 40, m.screen.Height())
}

func TestModelViewDrawsFieldAndHUD(t *testing.T) {
	m, _ := newTestModel(t, nil, "2 2\n")
	m, _ = update(t, m, TickMsg(time.Now()))

	view := m.View()
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 31)
	assert.Contains(t, view, "█")
	assert.Contains(t, view, "●")
	assert.Contains(t, lines[len(lines)-1], "level-1")
	assert.Contains(t, lines[len(lines)-1], "score 0")
}

func TestModelStartLevel(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	game := breakout.NewWithOptions(breakout.Options{
		Config: &cfg,
		Levels: []breakout.GridSource{gridSource("2\n"), gridSource("3 3\n")},
	})
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, 1)
	m.Init()

	assert.Equal(t, 1, game.LevelIndex())
	assert.NotZero(t, m.config.Seed, "a zero seed is replaced")
}
