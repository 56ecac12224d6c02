// Package tui provides the Bubble Tea screens for Iota: the board renderer,
// the replay viewer and the run scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the viewer while autoplay is on.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one interval
// at the given rate (ticks per second).
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
