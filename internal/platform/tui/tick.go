// Package tui runs Tiny Hero in the terminal with Bubble Tea.
// It handles the tick loop, input mapping, screen rendering and the run
// history browser.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fallbackTickRate is used when the caller passes a non-positive rate.
const fallbackTickRate = 60

// TickMsg advances the game by one step.
type TickMsg time.Time

// tickInterval is the wall time between two steps at tickRate.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = fallbackTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next step. The model re-arms it after every tick, so
// a slow Update delays the following tick instead of queueing several.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
