// Package tui runs registered games in the terminal with Bubble Tea: the
// tick loop, key mapping, title screen, scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg. Ticks and key presses both arrive
// through Update, so a game never sees them concurrently.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
