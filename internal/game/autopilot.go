package game

import (
	"github.com/vovakirdan/neondash/internal/core"
	"github.com/vovakirdan/neondash/internal/level"
)

// Autopilot is a scripted IntentSource for headless runs. It presses to
// start or restart a run, holds jump while a cube is approaching a spike or
// a ship portal, and flies the ship toward a cruise altitude.
type Autopilot struct {
	s         *Session
	lookahead float64 // pixels ahead of the avatar center
	cruiseRow float64 // ship target, in tiles from the top
}

// NewAutopilot creates an autopilot steering s. lookahead is how far ahead
// of its center, in pixels, the cube reacts to spikes.
func NewAutopilot(s *Session, lookahead float64) *Autopilot {
	p := s.Physics()
	return &Autopilot{
		s:         s,
		lookahead: lookahead,
		cruiseRow: float64(p.GroundRow) / 2,
	}
}

// Sample returns the intent for the next tick.
func (ap *Autopilot) Sample() core.Intent {
	in := core.NewIntent(false)
	if ap.s.State() != StateRunning {
		in.Press(in.At)
		return in
	}

	a := ap.s.Avatar()
	p := ap.s.Physics()
	switch ap.s.Mode() {
	case level.ModeShip:
		_, cy := a.Center()
		in.JumpHeld = cy > ap.cruiseRow*p.TileSize
	default:
		in.JumpHeld = ap.spikeAhead(a, p) || ap.portalAhead(a, p)
	}
	return in
}

// portalAhead reports a ship portal close enough that a jump now carries
// the cube through its row.
func (ap *Autopilot) portalAhead(a Avatar, p Physics) bool {
	cx, _ := a.Center()
	for _, portal := range ap.s.Level().Portals {
		if portal.Mode != level.ModeShip {
			continue
		}
		hx := float64(portal.X)*p.TileSize + p.TileSize/2
		if hx >= cx && hx-cx <= ap.lookahead/2 {
			return true
		}
	}
	return false
}

func (ap *Autopilot) spikeAhead(a Avatar, p Physics) bool {
	cx, _ := a.Center()
	from := tileColumn(cx, p.TileSize)
	to := tileColumn(cx+ap.lookahead, p.TileSize)
	for _, s := range ap.s.Level().SpikesBetween(from, to) {
		hx, _ := hazardCenter(s, p.TileSize)
		if hx >= cx && hx-cx <= ap.lookahead {
			return true
		}
	}
	return false
}
