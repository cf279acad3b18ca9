// Package tui runs the runner games in a terminal with Bubble Tea, either
// locally or for each connection of the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the game model for one fixed simulation step.
type TickMsg time.Time

// tickInterval is the wall time between simulation steps. Rates that are
// not positive fall back to 60 steps per second.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next step.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(at time.Time) tea.Msg {
		return TickMsg(at)
	})
}
