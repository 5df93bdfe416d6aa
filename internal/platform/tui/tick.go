// Package tui runs games in the terminal with Bubble Tea, locally or over SSH.
// It maps keys to actions, measures frame times and displays the screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall time of a frame.
type TickMsg time.Time

// frameInterval is the nominal time between frames at rate fps.
func frameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 30
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next frame.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(frameInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
