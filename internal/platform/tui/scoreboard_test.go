package tui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

func newScoreboardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	for _, run := range []struct {
		score   int
		won     bool
		elapsed time.Duration
	}{
		{300, true, 90 * time.Second},
		{500, false, 30 * time.Second},
		{200, true, 60 * time.Second},
	} {
		_, err := store.SaveScore("one", run.score, run.won, run.elapsed)
		require.NoError(t, err)
	}
	return store
}

func pressScoreboard(m ScoreboardModel, msg tea.KeyMsg) ScoreboardModel {
	next, _ := m.Update(msg)
	return next.(ScoreboardModel)
}

func scoreColumn(rows []table.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r[1]
	}
	return out
}

func TestScoreboardOpensOnFirstLevel(t *testing.T) {
	m := NewScoreboardModel(newScoreboardStore(t), 100, 30)

	rows := m.table.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"500", "300", "200"}, scoreColumn(rows))
	assert.Equal(t, table.Row{"#2", "300", "clear", "1:30", rows[1][4]}, rows[1])
	assert.Equal(t, "-", rows[0][2])

	summary := m.summary()
	assert.Contains(t, summary, "runs 3")
	assert.Contains(t, summary, "clears 2")
	assert.Contains(t, summary, "best 500")
	assert.Contains(t, summary, "fastest clear 1:00")
}

func TestScoreboardClearsOnlyFilter(t *testing.T) {
	m := NewScoreboardModel(newScoreboardStore(t), 100, 30)

	m = pressScoreboard(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	rows := m.table.Rows()
	assert.Equal(t, []string{"300", "200"}, scoreColumn(rows))
	assert.Equal(t, "#1", rows[0][0], "ranks count only the visible runs")
	assert.Contains(t, m.View(), "(clears)")

	m = pressScoreboard(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	assert.Len(t, m.table.Rows(), 3)
}

func TestScoreboardLevelSwitchWraps(t *testing.T) {
	m := NewScoreboardModel(newScoreboardStore(t), 100, 30)
	levels := registry.Levels()

	m = pressScoreboard(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.cursor)
	assert.Empty(t, m.table.Rows())
	assert.Equal(t, "not played yet", m.summary())
	assert.Contains(t, m.View(), "No runs recorded yet.")

	m = pressScoreboard(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = pressScoreboard(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, len(levels)-1, m.cursor)
}

func TestScoreboardColumnsFitCells(t *testing.T) {
	cols := runColumns([]table.Row{{"#1", "1234567", "clear", "12:05", "Jan 02 15:04"}})

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = c.Width
	}
	assert.Equal(t, []int{4, 7, 6, 5, 12}, widths)
}

func TestScoreboardNarrowUsesSwitcher(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 30)

	view := m.View()
	assert.Contains(t, view, "< Standard (1/")
	assert.NotContains(t, view, "Levels")
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)

	back := pressScoreboard(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, back.IsGoingBack())
	assert.False(t, back.IsQuitting())
	assert.Empty(t, back.View())

	quit := pressScoreboard(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.True(t, quit.IsQuitting())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Space invader", truncate("Space invader", 14))
	assert.Equal(t, "A few sm.", truncate("A few small gaps", 9))
}
