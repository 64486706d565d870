package game

import "time"

// JumpBuffer remembers an airborne jump request for a fixed real-time window.
// The window is measured from the moment the press happened, not from the
// tick that sampled it.
type JumpBuffer struct {
	window    time.Duration
	remaining time.Duration
}

// NewJumpBuffer creates an empty buffer with the given window.
func NewJumpBuffer(window time.Duration) JumpBuffer {
	return JumpBuffer{window: window}
}

// Request buffers a press that happened age ago. An older press never
// shortens a fresher one.
func (b *JumpBuffer) Request(age time.Duration) {
	left := b.window - age
	if left > b.remaining {
		b.remaining = left
	}
}

// Tick counts the buffer down by dt.
func (b *JumpBuffer) Tick(dt time.Duration) {
	if b.remaining <= 0 {
		return
	}
	b.remaining -= dt
	if b.remaining < 0 {
		b.remaining = 0
	}
}

// Pending reports whether a buffered jump is still live.
func (b *JumpBuffer) Pending() bool {
	return b.remaining > 0
}

// Remaining returns the time left before the request expires.
func (b *JumpBuffer) Remaining() time.Duration {
	return b.remaining
}

// Clear drops any buffered request.
func (b *JumpBuffer) Clear() {
	b.remaining = 0
}
