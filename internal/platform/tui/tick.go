// Package tui provides the Bubble Tea integration for Mobhold.
// It handles the terminal UI loop, input mapping, persistence of finished
// runs and the scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
