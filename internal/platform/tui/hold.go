package tui

import (
	"slices"
	"time"

	"github.com/vovakirdan/space-attackers/internal/core"
)

// holdTracker turns the terminal's stream of key presses into press and
// release pairs. A key counts as held until no repeat of it arrived for the
// hold window.
type holdTracker struct {
	window time.Duration
	last   map[core.Key]time.Time
}

func newHoldTracker(window time.Duration) *holdTracker {
	return &holdTracker{
		window: window,
		last:   make(map[core.Key]time.Time),
	}
}

// Press records a press of k at now. Repeats are reported too so text
// entry sees every character.
func (h *holdTracker) Press(k core.Key, now time.Time, frame *core.InputFrame) {
	frame.Press(k, false)
	h.last[k] = now
}

// Release reports the keys whose hold window has run out, in key order.
func (h *holdTracker) Release(now time.Time, frame *core.InputFrame) {
	var expired []core.Key
	for k, t := range h.last {
		if now.Sub(t) >= h.window {
			expired = append(expired, k)
		}
	}
	slices.Sort(expired)
	for _, k := range expired {
		frame.Press(k, true)
		delete(h.last, k)
	}
}

// Held reports whether k is currently held.
func (h *holdTracker) Held(k core.Key) bool {
	_, ok := h.last[k]
	return ok
}

// SetWindow changes the hold window. Keys already held keep their last
// press time.
func (h *holdTracker) SetWindow(d time.Duration) {
	h.window = d
}

// Len returns the number of held keys.
func (h *holdTracker) Len() int {
	return len(h.last)
}
