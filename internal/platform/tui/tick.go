// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping and SSH hosting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one loop iteration.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
// The rate drives screen refreshes; snake movement keeps its own interval.
func tickCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
