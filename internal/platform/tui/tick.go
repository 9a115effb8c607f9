// Package tui provides the Bubble Tea integration for 2048.
// It handles the terminal UI loop, input mapping, menus, the scoreboard
// and the SSH host.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// TickMsg drives animations and input processing.
type TickMsg time.Time

// tickInterval is the time between ticks; rates below 1 use the default.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next tick.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
