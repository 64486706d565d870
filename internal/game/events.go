package game

import (
	"github.com/vovakirdan/neondash/internal/core"
	"github.com/vovakirdan/neondash/internal/level"
)

// Death burst tuning.
const (
	burstJitter     = 0.5
	burstMinSpeed   = 3.0
	burstSpeedRange = 8.0
	burstMinSize    = 4.0
	burstSizeRange  = 8.0
)

// TrailSample is one afterimage of the avatar, emitted every few running
// ticks.
type TrailSample struct {
	X, Y     float64 // avatar center
	Rotation float64
	Mode     level.Mode
	Color    core.Color
}

// Particle is one fragment of a death burst.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  core.Color
}

// Burst is the set of particles emitted when the avatar dies.
type Burst struct {
	Particles []Particle
}

// Emissions are the cosmetic side effects of one tick. Reset tells the
// render boundary to drop every live trail sample and particle.
type Emissions struct {
	Trail *TrailSample
	Burst *Burst
	Reset bool
}

// Empty reports whether the tick emitted nothing.
func (e Emissions) Empty() bool {
	return e.Trail == nil && e.Burst == nil && !e.Reset
}
