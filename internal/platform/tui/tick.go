// Package tui provides the Bubble Tea front end for breakout.
// It turns key presses into the held-key table the simulation reads, measures
// wall-clock frame time, rasterizes sprites onto a cell screen and applies the
// post-processing effects.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps dt after a stall, e.g. a suspended terminal.
const maxFrameDelta = 0.1

// TickMsg is sent to trigger a game simulation tick.
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

// frameDelta returns the seconds elapsed between two ticks. The first tick
// (zero prev) uses the nominal frame time.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	if prev.IsZero() {
		if tickRate <= 0 {
			tickRate = 60
		}
		return 1 / float64(tickRate)
	}
	dt := now.Sub(prev).Seconds()
	if dt < 0 {
		return 0
	}
	return min(dt, maxFrameDelta)
}
