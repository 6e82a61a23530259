// Package tui provides the Bubble Tea integration for skyfall.
// It handles the terminal UI loop, input mapping, and rendering around the
// simulation core.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation frame. Gen identifies the schedule epoch;
// messages from a torn-down epoch are dropped without re-arming.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// ComboTickMsg drives the pause gesture decay. It is scheduled only while
// the gesture is armed and carries the same epoch guard as TickMsg.
type ComboTickMsg struct {
	Gen  int
	Time time.Time
}

// comboFrame is the decay animation rate. Coarser than the main tick; the
// gesture progress is wall-clock derived, so the rate only affects
// smoothness.
const comboFrame = 50 * time.Millisecond

// tickCmd returns a Bubble Tea command that sends the next tick message at
// the specified rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// comboTickCmd returns a Bubble Tea command for the next decay frame.
func comboTickCmd(gen int) tea.Cmd {
	return tea.Tick(comboFrame, func(t time.Time) tea.Msg {
		return ComboTickMsg{Gen: gen, Time: t}
	})
}
