package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mobhold/internal/core"
	"github.com/vovakirdan/mobhold/internal/logging"
	"github.com/vovakirdan/mobhold/internal/registry"
	"github.com/vovakirdan/mobhold/internal/storage"
)

// bestScorer is implemented by games that show the stored high score.
type bestScorer interface {
	SetBestScore(best int)
}

// runRecorder is implemented by games that persist a run summary.
type runRecorder interface {
	RunRecord() storage.Run
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	scoreSaved bool // Whether the run has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.loadBest()
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The game picks up the
// new size on its next render, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the game by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.TickInterval()
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.loadBest()
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickInterval())
	}

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickInterval())
}

// loadBest passes the stored high score to the game.
func (m Model) loadBest() {
	bs, ok := m.game.(bestScorer)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("loading high score", "error", err)
		return
	}
	bs.SetBestScore(best)
}

// saveRun stores the final score and, when available, the run summary.
// Failures are logged; the game continues regardless.
func (m Model) saveRun() {
	if m.store == nil {
		return
	}
	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.logger.Error("saving score", "error", err)
		}
	}
	rr, ok := m.game.(runRecorder)
	if !ok {
		return
	}
	id, err := m.store.SaveRun(rr.RunRecord())
	if err != nil {
		m.logger.Error("saving run", "error", err)
		return
	}
	m.logger.Info("run saved", "id", id, "score", m.gameState.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".mobhold", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks and drags steer the player
	)

	_, err := p.Run()
	return err
}
