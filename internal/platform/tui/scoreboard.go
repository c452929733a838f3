package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/mobhold/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth = 50  // Minimum table width
	maxScores     = 100 // Max scores to load
	maxRuns       = 50  // Max runs to load
)

// scoreboardTab selects the table shown.
type scoreboardTab int

const (
	tabTopScores scoreboardTab = iota
	tabRecentRuns
	tabCount
)

func (t scoreboardTab) String() string {
	if t == tabRecentRuns {
		return "Recent Runs"
	}
	return "Top Scores"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev tab"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	gameID   string
	title    string
	tab      scoreboardTab
	store    *storage.Store
	scores   []storage.ScoreEntry
	runs     []storage.Run
	stats    *storage.GameStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a new scoreboard model for one game.
func NewScoreboardModel(store *storage.Store, gameID, title string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		gameID: gameID,
		title:  title,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// tableWidth is the space left for columns inside the border.
func (m ScoreboardModel) tableWidth() int {
	return max(tableMinWidth, m.width-6)
}

// createTable creates a table with columns for the current tab.
func (m ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	switch m.tab {
	case tabRecentRuns:
		columns = []table.Column{
			{Title: "When", Width: 14},
			{Title: "Score", Width: 8},
			{Title: "Kills", Width: 6},
			{Title: "Time", Width: 6},
			{Title: "Killed by", Width: 12},
			{Title: "Loadout", Width: 20},
		}
		used := 14 + 8 + 6 + 6 + 12 + 2*6
		if rest := m.tableWidth() - used; rest > 20 {
			columns[5].Width = rest
		}
	default:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 12},
			{Title: "Date", Width: 20},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)), // Leave room for header, stats, help and margins
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

	return t
}

// load reads scores, runs and aggregate stats from the store.
func (m *ScoreboardModel) load() {
	m.scores, m.runs, m.stats, m.loadErr = nil, nil, nil, nil
	if m.store == nil {
		return
	}

	var err error
	if m.scores, err = m.store.TopScores(m.gameID, maxScores); err != nil {
		m.loadErr = err
		return
	}
	if m.runs, err = m.store.RecentRuns(m.gameID, maxRuns); err != nil {
		m.loadErr = err
		return
	}
	if m.stats, err = m.store.GetGameStats(m.gameID); err != nil {
		m.loadErr = err
	}
}

// updateTableRows fills the table for the current tab.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	switch m.tab {
	case tabRecentRuns:
		rows = make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			rows[i] = table.Row{
				humanize.Time(r.CreatedAt),
				humanize.Comma(int64(r.Score)),
				humanize.Comma(int64(r.Kills)),
				formatDuration(r.Duration.Seconds()),
				r.KilledBy,
				strings.Join(r.Loadout, ", "),
			}
		}
	default:
		rows = make([]table.Row, len(m.scores))
		for i, s := range m.scores {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				humanize.Comma(int64(s.Score)),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchTab(delta int) {
	m.tab = scoreboardTab((int(m.tab) + delta + int(tabCount)) % int(tabCount))
	m.table = m.createTable()
	m.updateTableRows()
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
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.switchTab(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.switchTab(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText(strings.ToUpper(m.title)+" - SCOREBOARD", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	if line := m.statsLine(); line != "" {
		statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		b.WriteString(centerText(statsStyle.Render(line), m.width))
		b.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, tabCount)
	for t := range tabCount {
		if t == m.tab {
			tabs[t] = activeTabStyle.Render(t.String())
		} else {
			tabs[t] = tabStyle.Render(t.String())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// statsLine summarizes every stored score.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	line := fmt.Sprintf("%s games  best %s  avg %s",
		humanize.Comma(int64(m.stats.GamesCount)),
		humanize.Comma(int64(m.stats.HighScore)),
		humanize.Comma(int64(m.stats.AvgScore)),
	)
	if !m.stats.LastPlayed.IsZero() {
		line += "  last played " + humanize.Time(m.stats.LastPlayed)
	}
	return line
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load scores:\n" + m.loadErr.Error())
	case m.tab == tabTopScores && len(m.scores) == 0:
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	case m.tab == tabRecentRuns && len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.")
	}
	return m.table.View()
}

// formatDuration renders seconds as m:ss.
func formatDuration(secs float64) string {
	s := int(secs)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunScoreboard runs the scoreboard screen for one game.
func RunScoreboard(store *storage.Store, gameID, title string, width, height int) error {
	model := NewScoreboardModel(store, gameID, title, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
