package core

import "time"

// Intent is the player input sampled once at the start of a tick.
// JumpHeld is level-triggered; Presses are discrete jump edges stamped with
// the wall-clock time they were captured, which may fall between ticks.
type Intent struct {
	JumpHeld bool
	Presses  []time.Time
	At       time.Time // Sample time; zero disables press aging
}

// NewIntent creates an intent with the given hold state and no presses.
func NewIntent(held bool) Intent {
	return Intent{JumpHeld: held}
}

// Press appends a jump edge captured at t.
func (in *Intent) Press(t time.Time) {
	in.Presses = append(in.Presses, t)
}

// Pressed reports whether at least one jump edge was captured.
func (in Intent) Pressed() bool {
	return len(in.Presses) > 0
}

// Age returns how long before the sample the press at t happened.
// Unstamped presses and presses stamped after the sample have age zero.
func (in Intent) Age(t time.Time) time.Duration {
	if in.At.IsZero() || t.IsZero() {
		return 0
	}
	age := in.At.Sub(t)
	if age < 0 {
		return 0
	}
	return age
}
