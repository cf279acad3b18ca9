package tui

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// DefaultHoldTimeout is how long a key counts as held after its last
// event. It has to outlast the gap between terminal key repeats.
const DefaultHoldTimeout = 150 * time.Millisecond

const (
	// repeatDelay bounds the terminal's initial repeat delay, measured from
	// a synthesized release. An event inside it may be the first repeat of
	// a key that never went up.
	repeatDelay = 600 * time.Millisecond

	// repeatSettle is how long such an event waits for a follow-up. A
	// repeat stream sends one well within it, a fresh tap does not.
	repeatSettle = 80 * time.Millisecond
)

// HoldTracker derives held and released state from key events. Terminals
// send no key-up, only repeats while a key stays down, so a key is
// released once no event for it arrived within the timeout.
//
// A key held past the timeout but short of the terminal's initial repeat
// delay reads as released. When its repeats start, the first one is kept
// pending for repeatSettle: a second event turns it back into a hold, and
// silence makes it a late press.
type HoldTracker struct {
	timeout  time.Duration
	last     map[core.Action]time.Time
	released map[core.Action]time.Time
	pending  map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. A non-positive timeout uses the default.
func NewHoldTracker(timeout time.Duration) *HoldTracker {
	if timeout <= 0 {
		timeout = DefaultHoldTimeout
	}
	return &HoldTracker{
		timeout:  timeout,
		last:     make(map[core.Action]time.Time),
		released: make(map[core.Action]time.Time),
		pending:  make(map[core.Action]time.Time),
	}
}

// Observe records an event for a at now and reports whether it is a new
// press rather than a repeat. A press that may be a delayed repeat is
// reported later by Apply instead.
func (h *HoldTracker) Observe(a core.Action, now time.Time) bool {
	_, down := h.last[a]
	h.last[a] = now
	if down {
		delete(h.pending, a)
		return false
	}

	if up, ok := h.released[a]; ok && now.Sub(up) <= repeatDelay {
		h.pending[a] = now
		return false
	}
	return true
}

// Apply marks every tracked action as held on frame, or as released if
// it timed out by now. Pending events that saw no follow-up become
// presses.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, at := range h.pending {
		if now.Sub(at) > repeatSettle {
			delete(h.pending, a)
			frame.Set(a)
		}
	}

	for a, seen := range h.last {
		if _, waiting := h.pending[a]; waiting {
			frame.SetHeld(a)
			continue
		}
		if now.Sub(seen) > h.timeout {
			delete(h.last, a)
			h.released[a] = now
			frame.SetReleased(a)
			continue
		}
		frame.SetHeld(a)
	}
}

// Down reports whether a is currently held.
func (h *HoldTracker) Down(a core.Action) bool {
	_, ok := h.last[a]
	return ok
}

// Reset forgets all keys.
func (h *HoldTracker) Reset() {
	clear(h.last)
	clear(h.released)
	clear(h.pending)
}
