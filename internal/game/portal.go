package game

import (
	"math"

	"github.com/vovakirdan/neondash/internal/level"
)

// tileColumn returns the tile column containing world x.
func tileColumn(x, tile float64) int {
	return int(math.Floor(x / tile))
}

// findPortal returns the first portal, in declared order, that the avatar
// passes this tick and whose mode differs from mode. Columns from fromCol to
// the avatar's current center column are scanned so a fast avatar cannot
// step over a portal column.
func findPortal(portals []level.Portal, a *Avatar, p Physics, mode level.Mode, fromCol int) (level.Portal, bool) {
	cx, _ := a.Center()
	col := tileColumn(cx, p.TileSize)
	if fromCol > col {
		fromCol = col
	}

	for _, portal := range portals {
		if portal.X < fromCol || portal.X > col {
			continue
		}
		top := float64(portal.Y) * p.TileSize
		if a.Bottom() <= top || a.Y >= top+p.TileSize {
			continue
		}
		if portal.Mode == mode {
			continue
		}
		return portal, true
	}
	return level.Portal{}, false
}

// enterPortal resets the avatar for the portal's mode.
func enterPortal(a *Avatar, p Physics, portal level.Portal) {
	switch portal.Mode {
	case level.ModeShip:
		a.ShipVelocity = 0
		a.ShipRotation = 0
		a.Y = float64(portal.Y) * p.TileSize
	default:
		a.Y = math.Min(a.Y, p.StartY())
		a.VY = 0
		a.Rotation = 0
		a.OnGround = true
	}
}
