package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/dodge/internal/core"
)

func TestHoldTrackerWindow(t *testing.T) {
	start := time.Unix(1000, 0)
	h := NewHoldTracker(150 * time.Millisecond)

	if h.Held(core.ActionLeft, start) {
		t.Error("nothing pressed yet, Left should not be held")
	}

	h.Press(core.ActionLeft, start)

	tests := []struct {
		name  string
		after time.Duration
		held  bool
	}{
		{"same instant", 0, true},
		{"inside window", 149 * time.Millisecond, true},
		{"window edge", 150 * time.Millisecond, false},
		{"long after", time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.Held(core.ActionLeft, start.Add(tt.after)); got != tt.held {
				t.Errorf("Held after %v = %v, expected %v", tt.after, got, tt.held)
			}
		})
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	start := time.Unix(1000, 0)
	h := NewHoldTracker(150 * time.Millisecond)

	// Key repeat arrives roughly every 30ms while the key is down.
	for i := range 10 {
		h.Press(core.ActionRight, start.Add(time.Duration(i)*30*time.Millisecond))
	}

	if !h.Held(core.ActionRight, start.Add(400*time.Millisecond)) {
		t.Error("repeats should keep Right held")
	}
	if h.Held(core.ActionRight, start.Add(500*time.Millisecond)) {
		t.Error("Right should be released after repeats stop")
	}
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	now := time.Unix(1000, 0)
	h := NewHoldTracker(150 * time.Millisecond)

	h.Press(core.ActionLeft, now)
	h.Press(core.ActionRight, now.Add(10*time.Millisecond))

	at := now.Add(20 * time.Millisecond)
	if h.Held(core.ActionLeft, at) {
		t.Error("pressing Right should release Left")
	}
	if !h.Held(core.ActionRight, at) {
		t.Error("Right should be held")
	}
}

func TestHoldTrackerApplyAndRelease(t *testing.T) {
	now := time.Unix(1000, 0)
	h := NewHoldTracker(150 * time.Millisecond)
	h.Press(core.ActionLeft, now)

	frame := core.NewInputFrame()
	frame.Set(core.ActionPause)
	h.Apply(&frame, now.Add(16*time.Millisecond))

	if !frame.Has(core.ActionLeft) || !frame.Has(core.ActionPause) {
		t.Errorf("frame should carry Left and Pause, got %v", frame.Actions)
	}
	if frame.Has(core.ActionRight) {
		t.Error("Right was never pressed")
	}

	h.Release()
	frame = core.NewInputFrame()
	h.Apply(&frame, now.Add(16*time.Millisecond))
	if frame.Has(core.ActionLeft) {
		t.Error("Release should forget held keys")
	}
}
