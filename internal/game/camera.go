package game

import (
	"math"

	"github.com/vovakirdan/neondash/internal/level"
)

// Camera derives the scroll offset and completion percentage from the
// avatar position.
type Camera struct {
	Offset  float64
	Percent int
}

// Track updates the camera for an avatar at world x. Percent never goes
// down within a run.
func (c *Camera) Track(x float64, lvl *level.Level, p Physics) {
	maxOffset := math.Max(0, float64(lvl.Length-p.ViewportCols)*p.TileSize)
	c.Offset = math.Min(math.Max(x-p.CameraLead, 0), maxOffset)

	pct := int(math.Floor(math.Min(100, x/p.VictoryX(lvl)*100)))
	if pct < 0 {
		pct = 0
	}
	if pct > c.Percent {
		c.Percent = pct
	}
}
