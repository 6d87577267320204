// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping and score recording.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick after interval.
// Each handled tick schedules exactly one successor, so there is a single
// chain of ticks for the lifetime of the program.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
