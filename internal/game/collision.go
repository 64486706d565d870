package game

import (
	"github.com/vovakirdan/neondash/internal/core"
	"github.com/vovakirdan/neondash/internal/level"
)

// detector resolves avatar-vs-terrain and avatar-vs-hazard geometry for one
// level.
type detector struct {
	lvl   *level.Level
	phys  Physics
	index *spatialIndex
}

func newDetector(lvl *level.Level, p Physics) *detector {
	return &detector{lvl: lvl, phys: p, index: newSpatialIndex(lvl, p)}
}

// resolveCube lands the cube on the floor or on a platform top. After a
// landing a pending jump (held or buffered) fires immediately.
func (d *detector) resolveCube(a *Avatar, held bool, buf *JumpBuffer) {
	ground := d.phys.GroundY()
	if a.Bottom() >= ground {
		a.land(ground)
		takePendingJump(a, d.phys, held, buf)
	}

	box := a.Box()
	for _, i := range d.index.query(box, tagPlatform) {
		surface := platformBox(d.lvl.Platforms[i], d.phys.TileSize)
		if !box.Intersects(surface) {
			continue
		}
		// Only genuine landings: moving down and above the top before this
		// tick's displacement.
		if a.VY > 0 && a.Bottom()-a.VY <= surface.Y+d.phys.LandingTolerance {
			a.land(surface.Y)
			takePendingJump(a, d.phys, held, buf)
		}
	}
}

func takePendingJump(a *Avatar, p Physics, held bool, buf *JumpBuffer) {
	if held || buf.Pending() {
		a.jump(p)
		buf.Clear()
	}
}

// clampShip keeps the ship between the world top and the floor.
func (d *detector) clampShip(a *Avatar) {
	if ground := d.phys.GroundY(); a.Bottom() > ground {
		a.Y = ground - a.Height
		a.ShipVelocity = 0
	}
	if a.Y < 0 {
		a.Y = 0
		a.ShipVelocity = 0
	}
}

// hazardHit returns the first spike, in level order, whose hit circle
// contains the avatar center.
func (d *detector) hazardHit(a *Avatar, m level.Mode) (level.Tile, bool) {
	r := d.phys.HazardRadius(m)
	cx, cy := a.Center()
	probe := core.NewBox(cx-r, cy-r, 2*r, 2*r)

	for _, i := range d.index.query(probe, tagHazard) {
		s := d.lvl.Spikes[i]
		hx, hy := hazardCenter(s, d.phys.TileSize)
		if core.Dist(cx, cy, hx, hy) < r {
			return s, true
		}
	}
	return level.Tile{}, false
}

// hazardCenter is the middle of the spike tile, halfway up from its base.
func hazardCenter(s level.Tile, tile float64) (float64, float64) {
	return float64(s.X)*tile + tile/2, float64(s.Y)*tile + tile/2
}
