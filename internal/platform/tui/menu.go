package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/mobhold/internal/core"
	"github.com/vovakirdan/mobhold/internal/storage"
)

// Difficulties offered by the menu, in display order.
var Difficulties = []string{"easy", "normal", "hard", "fixed"}

// menuItem is a selectable menu row.
type menuItem int

const (
	itemPlay menuItem = iota
	itemDifficulty
	itemScoreboard
	itemQuit
	itemCount
)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	gameID     string
	title      string
	cursor     menuItem
	difficulty int // Index into Difficulties
	best       int
	width      int
	height     int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	result     MenuResult
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, gameID, title, difficulty string, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		gameID:     gameID,
		title:      title,
		difficulty: 1,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
	for i, d := range Difficulties {
		if d == difficulty {
			m.difficulty = i
		}
	}
	if store != nil {
		if best, err := store.HighScore(gameID); err == nil {
			m.best = best
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.result.Quit = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp:
		m.cursor = (m.cursor + itemCount - 1) % itemCount

	case core.ActionDown:
		m.cursor = (m.cursor + 1) % itemCount

	case core.ActionLeft:
		if m.cursor == itemDifficulty {
			m.difficulty = (m.difficulty + len(Difficulties) - 1) % len(Difficulties)
		}

	case core.ActionRight:
		if m.cursor == itemDifficulty {
			m.difficulty = (m.difficulty + 1) % len(Difficulties)
		}

	case core.ActionConfirm:
		switch m.cursor {
		case itemPlay:
			m.result.Play = true
			return m, tea.Quit
		case itemDifficulty:
			m.difficulty = (m.difficulty + 1) % len(Difficulties)
		case itemScoreboard:
			m.result.WantsScoreboard = true
			return m, tea.Quit
		case itemQuit:
			m.result.Quit = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) itemLabel(i menuItem) string {
	switch i {
	case itemPlay:
		return "Play"
	case itemDifficulty:
		return fmt.Sprintf("Difficulty: < %s >", Difficulties[m.difficulty])
	case itemScoreboard:
		return "Scoreboard"
	default:
		return "Quit"
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.result.Quit {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(spaced(m.title)), m.width))
	b.WriteString("\n\n")

	subtitle := "Survive the horde"
	if m.best > 0 {
		subtitle = fmt.Sprintf("Best score %s", humanize.Comma(int64(m.best)))
	}
	b.WriteString(centerText(dimStyle.Render(subtitle), m.width))
	b.WriteString("\n\n")

	for i := range itemCount {
		line := "  " + m.itemLabel(i)
		if i == m.cursor {
			line = activeStyle.Render("> " + m.itemLabel(i))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// spaced renders "Mobhold" as "  M O B H O L D  ".
func spaced(s string) string {
	letters := strings.Split(strings.ToUpper(s), "")
	return "  " + strings.Join(letters, " ") + "  "
}

// Result returns what the user chose.
func (m MenuModel) Result() MenuResult {
	r := m.result
	r.Difficulty = Difficulties[m.difficulty]
	r.Config = m.config
	return r
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Difficulty      string
	Config          core.RuntimeConfig
	Play            bool
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, gameID, title, difficulty string, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, gameID, title, difficulty, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
