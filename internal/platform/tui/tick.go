// Package tui provides the Bubble Tea integration for the puzzle.
// It handles the terminal UI loop, input mapping, notices and navigation.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives the game loop: each one applies queued input and
// advances the notice and navigation timers. Loop names the game model
// that scheduled it; a model ignores ticks from any other loop.
type TickMsg struct {
	Loop uint64
	At   time.Time
}

const defaultTickRate = 30

var lastLoop atomic.Uint64

// newTickLoop returns an id no other game model in this process uses.
func newTickLoop() uint64 {
	return lastLoop.Add(1)
}

// tickCmd schedules the next TickMsg of loop, perSecond times a second.
func tickCmd(loop uint64, perSecond int) tea.Cmd {
	if perSecond <= 0 {
		perSecond = defaultTickRate
	}
	return tea.Tick(time.Second/time.Duration(perSecond), func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, At: t}
	})
}
