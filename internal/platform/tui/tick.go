// Package tui provides the Bubble Tea integration for breakout.
// It handles the terminal UI loop, held-key input, and score saving.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	Time time.Time
	loop uint64 // Tick loop that scheduled it
}

var tickLoops atomic.Uint64

// nextTickLoop returns a new tick loop ID. A model ignores ticks from
// loops it did not start, so a stale tick cannot double its speed.
func nextTickLoop() uint64 {
	return tickLoops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick after the frame interval.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, loop: loop}
	})
}
