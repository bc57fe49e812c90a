package tui

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press.
// Terminals send no key-up events, so holding a key is seen as the
// auto-repeat stream of presses.
const DefaultHoldWindow = 200 * time.Millisecond

// HeldKeys derives held-key state from key presses.
type HeldKeys struct {
	window  time.Duration
	pressed map[core.Action]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window:  window,
		pressed: make(map[core.Action]time.Time),
	}
}

// Press records a press at now. Pressing one direction releases the other.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionLeft:
		delete(h.pressed, core.ActionRight)
	case core.ActionRight:
		delete(h.pressed, core.ActionLeft)
	}
	h.pressed[a] = now
}

// Frame returns the actions held at now and forgets expired presses.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, at := range h.pressed {
		if now.Sub(at) > h.window {
			delete(h.pressed, a)
			continue
		}
		frame.Set(a)
	}
	return frame
}

// Release forgets every press.
func (h *HeldKeys) Release() {
	for a := range h.pressed {
		delete(h.pressed, a)
	}
}
