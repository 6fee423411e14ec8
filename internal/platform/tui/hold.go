package tui

import (
	"time"

	"github.com/vovakirdan/dodge/internal/core"
)

// HoldTracker turns key press events into held-key state.
// Terminals report presses and auto-repeats but never releases, so a
// direction counts as held for a short window after its last event.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a press or repeat of a direction key. Pressing one
// direction releases the opposite one, since a terminal cannot tell us
// whether it is still down.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	h.last[a] = now
	switch a {
	case core.ActionLeft:
		delete(h.last, core.ActionRight)
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
	}
}

// Held reports whether the action was pressed within the hold window.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	if !ok {
		return false
	}
	return now.Sub(t) < h.window
}

// Apply sets every currently held direction on the frame.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if h.Held(a, now) {
			frame.Set(a)
		}
	}
}

// Release forgets all held keys.
func (h *HoldTracker) Release() {
	clear(h.last)
}
