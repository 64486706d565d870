// Package fx keeps the cosmetic effects a frame emits alive between
// frames: trail afterimages and death-burst particles. Nothing in here
// feeds back into the simulation.
package fx

import (
	"github.com/vovakirdan/neondash/internal/core"
	"github.com/vovakirdan/neondash/internal/game"
	"github.com/vovakirdan/neondash/internal/level"
)

// Fade and motion per update.
const (
	trailFade    = 0.05
	particleFade = 0.02
	particleGrav = 0.3
	particleDrag = 0.98
)

// Kind tells trail samples and particles apart.
type Kind uint8

const (
	KindTrail Kind = iota
	KindParticle
)

// Effect is one live trail sample or particle.
type Effect struct {
	Kind     Kind
	X, Y     float64
	VX, VY   float64
	Size     float64
	Rotation float64
	Alpha    float64
	Mode     level.Mode
	Color    core.Color

	born uint64
}

// Arena is a bounded pool of effects. Expired effects are removed by
// swapping in the last element, so iteration order is not stable.
type Arena struct {
	live     []Effect
	capacity int
	seq      uint64
}

// NewArena creates an arena holding at most capacity effects.
// A non-positive capacity means unbounded.
func NewArena(capacity int) *Arena {
	a := &Arena{capacity: capacity}
	if capacity > 0 {
		a.live = make([]Effect, 0, capacity)
	}
	return a
}

// Absorb takes in one frame's emissions. A reset drops everything alive
// before the new effects are added.
func (a *Arena) Absorb(e game.Emissions) {
	if e.Reset {
		a.Clear()
	}
	if t := e.Trail; t != nil {
		a.add(Effect{
			Kind:     KindTrail,
			X:        t.X,
			Y:        t.Y,
			Rotation: t.Rotation,
			Alpha:    1,
			Mode:     t.Mode,
			Color:    t.Color,
		})
	}
	if e.Burst != nil {
		for _, p := range e.Burst.Particles {
			a.add(Effect{
				Kind:  KindParticle,
				X:     p.X,
				Y:     p.Y,
				VX:    p.VX,
				VY:    p.VY,
				Size:  p.Size,
				Alpha: 1,
				Color: p.Color,
			})
		}
	}
}

// add appends e, replacing the oldest effect when the arena is full.
func (a *Arena) add(e Effect) {
	a.seq++
	e.born = a.seq

	if a.capacity <= 0 || len(a.live) < a.capacity {
		a.live = append(a.live, e)
		return
	}
	oldest := 0
	for i := range a.live {
		if a.live[i].born < a.live[oldest].born {
			oldest = i
		}
	}
	a.live[oldest] = e
}

// Update advances every effect by one frame and drops the faded ones.
func (a *Arena) Update() {
	for i := 0; i < len(a.live); {
		e := &a.live[i]
		switch e.Kind {
		case KindTrail:
			e.Alpha -= trailFade
		case KindParticle:
			e.X += e.VX
			e.Y += e.VY
			e.VY += particleGrav
			e.Alpha -= particleFade
			e.Size *= particleDrag
		}

		if e.Alpha <= 0 {
			last := len(a.live) - 1
			a.live[i] = a.live[last]
			a.live = a.live[:last]
			continue
		}
		i++
	}
}

// Effects returns the live effects. The slice is owned by the arena and
// valid until the next Absorb or Update.
func (a *Arena) Effects() []Effect {
	return a.live
}

// Len returns the number of live effects.
func (a *Arena) Len() int {
	return len(a.live)
}

// Clear drops every effect.
func (a *Arena) Clear() {
	a.live = a.live[:0]
}
