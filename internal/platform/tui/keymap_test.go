package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mobhold/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runeKey('w'), core.ActionUp, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"1", runeKey('1'), core.ActionChoice1, false},
		{"3", runeKey('3'), core.ActionChoice3, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey: got (%v, %v), expected (%v, %v)", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameSkipsQuit(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("expected quit request")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit must not be forwarded to the game")
	}

	km.MapKeyToFrame(runeKey('d'), &frame)
	if !frame.Has(core.ActionRight) {
		t.Error("expected right action")
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.MouseMsg
		mapped bool
		held   bool
	}{
		{"press", tea.MouseMsg{X: 5, Y: 7, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, true, false},
		{"drag", tea.MouseMsg{X: 5, Y: 7, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion}, true, true},
		{"release", tea.MouseMsg{X: 5, Y: 7, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}, false, false},
		{"right button", tea.MouseMsg{X: 5, Y: 7, Button: tea.MouseButtonRight, Action: tea.MouseActionPress}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			mapped := km.MapMouseToFrame(tt.msg, &frame)
			if mapped != tt.mapped {
				t.Fatalf("mapped: got %v, expected %v", mapped, tt.mapped)
			}
			if !mapped {
				if frame.Click != nil {
					t.Error("unexpected click")
				}
				return
			}
			if frame.Click == nil || frame.Click.X != 5 || frame.Click.Y != 7 || frame.Click.Held != tt.held {
				t.Errorf("click: got %+v, expected (5, 7, held=%v)", frame.Click, tt.held)
			}
		})
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")

	out := RenderScreen(s)
	if out == "" {
		t.Fatal("expected output")
	}
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestRenderScreenRows(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawTextColored(0, 0, "xy", core.ColorBrown)
	s.DrawText(0, 1, "abc")

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "xy") || !strings.Contains(lines[1], "abc") {
		t.Errorf("rows = %q, expected xy then abc", lines)
	}
	if styleFor(core.Color(250)).GetForeground() != styleFor(core.ColorDefault).GetForeground() {
		t.Error("unknown colors should render with the default style")
	}
}
