package tui

import "time"

// DefaultHoldRelease is used when no release delay is configured.
const DefaultHoldRelease = 180 * time.Millisecond

// HoldTracker infers whether the jump key is held. Terminals only report
// key presses, so a key counts as held while auto-repeat keeps arriving
// and as released after a quiet period.
type HoldTracker struct {
	release time.Duration
	last    time.Time
}

// NewHoldTracker creates a tracker that releases after the given quiet period.
func NewHoldTracker(release time.Duration) *HoldTracker {
	if release <= 0 {
		release = DefaultHoldRelease
	}
	return &HoldTracker{release: release}
}

// Key records a key event at now and reports whether it is a fresh press
// rather than a repeat of a key already held.
func (h *HoldTracker) Key(now time.Time) bool {
	fresh := !h.Held(now)
	h.last = now
	return fresh
}

// Held reports whether the key is still considered down at now.
func (h *HoldTracker) Held(now time.Time) bool {
	return !h.last.IsZero() && now.Sub(h.last) <= h.release
}

// Release forgets the key.
func (h *HoldTracker) Release() {
	h.last = time.Time{}
}
