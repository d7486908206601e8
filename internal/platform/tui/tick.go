// Package tui provides the Bubble Tea front end for the snake game.
// It handles the terminal UI loop, key-hold synthesis and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// pollInterval is how often held keys are checked for release.
const pollInterval = 20 * time.Millisecond

// PollMsg is sent to check held keys and expire the flash.
type PollMsg time.Time

// pollCmd returns a Bubble Tea command that sends a poll message after interval.
func pollCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return PollMsg(t)
	})
}
