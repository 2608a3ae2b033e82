// Package tui provides the Bubble Tea backend and the Wish SSH server.
// A tick message drives exactly one game frame, so the frame delay is the
// tick interval.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one game frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after delay.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
