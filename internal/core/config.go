package core

import "time"

// RuntimeConfig contains driver parameters passed to a session at creation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic effects
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the nominal duration of one simulation tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	return TickInterval(c.TickRate)
}

// TickInterval returns the duration of one tick at rate ticks per second,
// rounded up to the next nanosecond so that rate ticks never add up to less
// than a second. Non-positive rates fall back to 60 ticks per second.
func TickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	r := time.Duration(rate)
	return (time.Second + r - 1) / r
}
