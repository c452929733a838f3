package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mobhold/internal/core"
	"github.com/vovakirdan/mobhold/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

func press(m tea.Model, msgs ...tea.KeyMsg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestMenuDifficultyCycle(t *testing.T) {
	m := NewMenuModel(nil, "mobhold", "Mobhold", "hard", testRuntime())
	if got := m.Result().Difficulty; got != "hard" {
		t.Fatalf("initial difficulty: got %q, expected %q", got, "hard")
	}

	down := tea.KeyMsg{Type: tea.KeyDown}
	right := tea.KeyMsg{Type: tea.KeyRight}
	next := press(m, down, right).(MenuModel)
	if got := next.Result().Difficulty; got != "fixed" {
		t.Errorf("after right: got %q, expected %q", got, "fixed")
	}

	next = press(next, right).(MenuModel)
	if got := next.Result().Difficulty; got != "easy" {
		t.Errorf("wrap: got %q, expected %q", got, "easy")
	}
}

func TestMenuSelections(t *testing.T) {
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuResult
	}{
		{"play", []tea.KeyMsg{enter}, MenuResult{Play: true}},
		{"scoreboard", []tea.KeyMsg{down, down, enter}, MenuResult{WantsScoreboard: true}},
		{"quit item", []tea.KeyMsg{up, enter}, MenuResult{Quit: true}},
		{"q key", []tea.KeyMsg{runeKey('q')}, MenuResult{Quit: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(nil, "mobhold", "Mobhold", "", testRuntime())
			got := press(m, tt.keys...).(MenuModel).Result()
			if got.Play != tt.want.Play || got.WantsScoreboard != tt.want.WantsScoreboard || got.Quit != tt.want.Quit {
				t.Errorf("result: got %+v, expected %+v", got, tt.want)
			}
			if got.Difficulty != "normal" {
				t.Errorf("difficulty: got %q, expected %q", got.Difficulty, "normal")
			}
		})
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveScore("mobhold", 12345); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}

	m := NewMenuModel(store, "mobhold", "Mobhold", "", testRuntime())
	if view := m.View(); !strings.Contains(view, "12,345") {
		t.Errorf("view missing best score:\n%s", view)
	}
}

func TestScoreboardTabs(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("mobhold", 900); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}
	if _, err := store.SaveRun(storage.Run{GameID: "mobhold", Score: 900, KilledBy: "Beast", Loadout: []string{"Kunai L2"}}); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	m := NewScoreboardModel(store, "mobhold", "Mobhold", 100, 30)
	if m.tab != tabTopScores {
		t.Fatalf("initial tab: got %v, expected %v", m.tab, tabTopScores)
	}
	if rows := len(m.table.Rows()); rows != 1 {
		t.Errorf("score rows: got %d, expected 1", rows)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyTab}).(ScoreboardModel)
	if m.tab != tabRecentRuns {
		t.Fatalf("tab: got %v, expected %v", m.tab, tabRecentRuns)
	}
	rows := m.table.Rows()
	if len(rows) != 1 || rows[0][4] != "Beast" {
		t.Errorf("run rows: got %v", rows)
	}
	if !strings.Contains(m.View(), "Recent Runs") {
		t.Error("expected tab label in view")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab}).(ScoreboardModel)
	if m.tab != tabTopScores {
		t.Errorf("tab: got %v, expected %v", m.tab, tabTopScores)
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "mobhold", "Mobhold", 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("expected empty message")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[float64]string{0: "0:00", 59.9: "0:59", 61: "1:01", 3600: "60:00"}
	for secs, expect := range tests {
		if got := formatDuration(secs); got != expect {
			t.Errorf("formatDuration(%v): got %q, expected %q", secs, got, expect)
		}
	}
}
