// Package tui provides the Bubble Tea integration for Skyfall Command.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger a rendered frame. The simulation itself
// advances by zero or more fixed ticks per frame, driven by the
// accumulator in the model.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at
// the specified rate.
func frameCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
