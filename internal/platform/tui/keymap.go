package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mobhold/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Choice1    key.Binding
	Choice2    key.Binding
	Choice3    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Choice1, k.Choice2, k.Choice3},
		{k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up", "k"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down", "j"),
			key.WithHelp("s/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left", "h"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right", "l"),
			key.WithHelp("d/→", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "take upgrade"),
		),
		Choice1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "option 1")),
		Choice2: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "option 2")),
		Choice3: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "option 3")),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys    GameKeyMap
	actions []binding
}

type binding struct {
	key    *key.Binding
	action core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{keys: DefaultGameKeyMap()}
	k := &km.keys
	km.actions = []binding{
		{&k.Up, core.ActionUp},
		{&k.Down, core.ActionDown},
		{&k.Left, core.ActionLeft},
		{&k.Right, core.ActionRight},
		{&k.Confirm, core.ActionConfirm},
		{&k.Choice1, core.ActionChoice1},
		{&k.Choice2, core.ActionChoice2},
		{&k.Choice3, core.ActionChoice3},
		{&k.Pause, core.ActionPause},
		{&k.Restart, core.ActionRestart},
		{&k.Quit, core.ActionQuit},
	}
	return km
}

// Keys returns the bindings, for help views.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.actions {
		if key.Matches(msg, *b.key) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// IsScreenshot reports whether the key requests a screen dump.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Screenshot)
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records a left-button press or drag as a click.
// Returns false for other mouse events.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Button != tea.MouseButtonLeft {
		return false
	}
	switch msg.Action {
	case tea.MouseActionPress:
		frame.SetClick(msg.X, msg.Y, false)
	case tea.MouseActionMotion:
		frame.SetClick(msg.X, msg.Y, true)
	default:
		return false
	}
	return true
}
