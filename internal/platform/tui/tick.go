// Package tui hosts a registered game in a Bubble Tea program, locally or
// over SSH. It owns the tick loop, key bindings, and color output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. It carries the wall-clock
// time it fired at so the model can measure the real frame delta.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the time between two ticks, or zero for the first one
// so the game falls back to a nominal tick.
func frameDelta(last, now time.Time) time.Duration {
	if last.IsZero() || now.Before(last) {
		return 0
	}
	return now.Sub(last)
}
