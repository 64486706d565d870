// Package tui runs a neondash session in the terminal with Bubble Tea.
// It turns key events into intents, steps the session at the tick rate and
// draws every frame through a character screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neondash/internal/core"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(core.TickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
