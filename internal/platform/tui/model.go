package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// hudHeight is the number of rows under the play field.
const hudHeight = 1

// levelSelector is implemented by games with more than one level.
type levelSelector interface {
	SelectLevel(i int) error
}

// Model is the Bubble Tea model that runs one breakout session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	startLevel int
	keys       *KeyState
	keyMapper  *KeyMapper
	lastTick   time.Time
	gameState  core.GameState
	logger     *log.Logger
	standalone bool // quit the program on back instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the current run has been recorded
}

// NewModel creates a model for game starting on startLevel.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, startLevel int) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, fieldHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		startLevel: startLevel,
		keys:       NewKeyState(),
		keyMapper:  NewKeyMapper(),
		logger:     log.New(io.Discard),
	}
}

// WithLogger returns a copy of the model that logs to l.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

func fieldHeight(screenH int) int {
	return max(screenH-hudHeight, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.startLevel > 0 {
		if sel, ok := m.game.(levelSelector); ok {
			if err := sel.SelectLevel(m.startLevel); err != nil {
				m.logger.Warn("cannot start on level", "index", m.startLevel, "err", err)
			}
		}
	}
	// gameState is set on the first tick (value receiver)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records key presses in the key table.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.recordRun(false)
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionBack {
		m.recordRun(false)
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	m.keys.Press(action, time.Now())
	return m, nil
}

// handleResize rescales the screen. The world is resolution independent, so
// the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, fieldHeight(msg.Height))
	return m, nil
}

// handleTick runs one simulation frame over the wall-clock time since the
// previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.keys.Frame(now), dt)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !wasOver:
		m.recordRun(true)
	case !m.gameState.GameOver && wasOver:
		// Next level or replay started
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the current run once. Unfinished runs are only kept when
// they scored.
func (m *Model) recordRun(won bool) {
	if m.scoreSaved || m.store == nil {
		return
	}
	st := m.game.State()
	if !won && st.Score == 0 {
		return
	}
	elapsed := time.Duration(st.Elapsed * float64(time.Second))
	if _, err := m.store.SaveScore(st.LevelID, st.Score, won, elapsed); err != nil {
		m.logger.Warn("cannot save score", "level", st.LevelID, "err", err)
		return
	}
	m.scoreSaved = true
}

// render draws the current frame into the screen buffer.
func (m *Model) render() {
	m.screen.Clear()
	m.game.Draw(NewScreenBatch(m.screen, m.game.WorldSize()))

	st := m.game.State()
	PostProcess(m.screen, st.Effects, st.Elapsed)

	mid := m.screen.Height() / 2
	switch {
	case st.GameOver:
		m.screen.DrawTextCentered(mid, " LEVEL CLEAR ")
		m.screen.DrawTextCentered(mid+1, fmt.Sprintf(" score %d ", st.Score))
	case st.Paused:
		m.screen.DrawTextCentered(mid, " PAUSED ")
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen) + "\n" + RenderHUD(m.game.State(), m.config.ScreenW)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in its own Bubble Tea program until the player quits or
// backs out. Returns true if the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, startLevel int, logger *log.Logger) (goBack bool, err error) {
	model := NewModel(game, store, cfg, startLevel).WithLogger(logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
