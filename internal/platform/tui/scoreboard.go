package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

const (
	sidebarMinWidth = 80  // narrower terminals get a single level switcher
	sidebarWidth    = 24  // level list, padding included
	runLimit        = 100 // runs loaded per level
	dateLayout      = "Jan 02 15:04"
)

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextLevel  key.Binding
	PrevLevel  key.Binding
	ClearsOnly key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextLevel, k.PrevLevel, k.ClearsOnly, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.ClearsOnly, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		NextLevel:  key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next level")),
		PrevLevel:  key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev level")),
		ClearsOnly: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clears only")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the recorded runs of one level at a time, with a
// per-level summary and an optional filter for cleared runs.
type ScoreboardModel struct {
	levels []registry.LevelSource
	stats  map[string]*storage.LevelStats
	cursor int

	store      *storage.Store
	runs       []storage.ScoreEntry // best first
	clearsOnly bool

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard opened on the first level. A nil
// store shows every level as unplayed.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		levels: registry.Levels(),
		stats:  map[string]*storage.LevelStats{},
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	if store != nil {
		if stats, err := store.AllLevelStats(); err == nil {
			m.stats = stats
		}
	}
	m.selectLevel(0)
	return m
}

// selectLevel loads the runs of level i and rebuilds the table.
func (m *ScoreboardModel) selectLevel(i int) {
	m.runs = nil
	if len(m.levels) == 0 {
		m.rebuild()
		return
	}
	m.cursor = (i%len(m.levels) + len(m.levels)) % len(m.levels)
	if m.store != nil {
		if runs, err := m.store.TopScores(m.levels[m.cursor].ID, runLimit); err == nil {
			m.runs = runs
		}
	}
	m.rebuild()
}

// visibleRuns applies the clears-only filter.
func (m *ScoreboardModel) visibleRuns() []storage.ScoreEntry {
	if !m.clearsOnly {
		return m.runs
	}
	var out []storage.ScoreEntry
	for _, r := range m.runs {
		if r.Won {
			out = append(out, r)
		}
	}
	return out
}

// rebuild sizes the columns to the visible runs and refills the table.
func (m *ScoreboardModel) rebuild() {
	runs := m.visibleRuns()
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		result := "-"
		if r.Won {
			result = "clear"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(r.Score),
			result,
			formatClock(r.Duration.Seconds()),
			r.CreatedAt.Format(dateLayout),
		}
	}

	t := table.New(
		table.WithColumns(runColumns(rows)),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	m.table = t
}

// runColumns fits each column to its widest cell.
func runColumns(rows []table.Row) []table.Column {
	titles := []string{"Rank", "Score", "Result", "Time", "Date"}
	cols := make([]table.Column, len(titles))
	for i, title := range titles {
		cols[i] = table.Column{Title: title, Width: len(title)}
	}
	cols[4].Width = len(dateLayout)
	for _, row := range rows {
		for i, cell := range row {
			cols[i].Width = max(cols[i].Width, len([]rune(cell)))
		}
	}
	return cols
}

// summary describes the selected level: run count, clears, best score and
// the fastest clear among the loaded runs.
func (m ScoreboardModel) summary() string {
	if len(m.levels) == 0 {
		return "no levels registered"
	}
	st := m.stats[m.levels[m.cursor].ID]
	if st == nil || st.Runs == 0 {
		return "not played yet"
	}

	parts := []string{
		fmt.Sprintf("runs %d", st.Runs),
		fmt.Sprintf("clears %d", st.Wins),
		fmt.Sprintf("best %d", st.HighScore),
	}
	var fastest time.Duration
	for _, r := range m.runs {
		if r.Won && (fastest == 0 || r.Duration < fastest) {
			fastest = r.Duration
		}
	}
	if fastest > 0 {
		parts = append(parts, "fastest clear "+formatClock(fastest.Seconds()))
	}
	return strings.Join(parts, "  ")
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextLevel):
			m.selectLevel(m.cursor + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevLevel):
			m.selectLevel(m.cursor - 1)
			return m, nil
		case key.Matches(msg, m.keys.ClearsOnly):
			m.clearsOnly = !m.clearsOnly
			m.rebuild()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.rebuild()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.levels) > 0 {
		title += " - " + m.levels[m.cursor].Title
	}
	if m.clearsOnly {
		title += " (clears)"
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(centerText(m.summary(), m.width)))
	b.WriteString("\n\n")

	board := boardFrameStyle.Render(m.tableView())
	if m.width >= sidebarMinWidth {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", board))
	} else {
		b.WriteString(centerText(m.switcher(), m.width))
		b.WriteString("\n\n")
		b.WriteString(board)
	}

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// sidebar lists every level with its best score.
func (m ScoreboardModel) sidebar() string {
	const scoreW = 6
	nameW := sidebarWidth - 2 - len("> ") - scoreW

	var sb strings.Builder
	sb.WriteString("Levels\n")
	for i, l := range m.levels {
		best := "-"
		if st := m.stats[l.ID]; st != nil && st.Runs > 0 {
			best = strconv.Itoa(st.HighScore)
		}
		line := fmt.Sprintf("%-*s%*s", nameW, truncate(l.Title, nameW), scoreW, best)
		if i == m.cursor {
			sb.WriteString(boardActiveStyle.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}
	return boardFrameStyle.Width(sidebarWidth).Render(strings.TrimSuffix(sb.String(), "\n"))
}

// switcher is the narrow-terminal replacement for the sidebar.
func (m ScoreboardModel) switcher() string {
	if len(m.levels) == 0 {
		return ""
	}
	return fmt.Sprintf("< %s (%d/%d) >", m.levels[m.cursor].Title, m.cursor+1, len(m.levels))
}

func (m ScoreboardModel) tableView() string {
	if len(m.table.Rows()) > 0 {
		return m.table.View()
	}
	if m.clearsOnly {
		return boardEmptyStyle.Render("No clears recorded yet.")
	}
	return boardEmptyStyle.Render("No runs recorded yet.\nClear the level to set a high score!")
}

// truncate shortens s to n runes, marking the cut with a period.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 1 {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to the level menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
