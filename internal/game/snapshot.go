package game

import (
	"math"
	"time"
)

// Snapshot contains the complete simulation state for determinism checks
// and replays. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	State      string
	LevelIndex int
	LevelID    string
	Mode       string

	X, Y         float64
	VY           float64
	ShipVelocity float64
	Rotation     float64
	ShipRotation float64
	OnGround     bool
	Dead         bool

	JumpBuffer time.Duration
	CameraX    float64
	Percent    int
	Deaths     int
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:         s.tick,
		State:        s.state.String(),
		LevelIndex:   s.levelIdx,
		LevelID:      s.lvl.ID,
		Mode:         s.mode.String(),
		X:            s.avatar.X,
		Y:            s.avatar.Y,
		VY:           s.avatar.VY,
		ShipVelocity: s.avatar.ShipVelocity,
		Rotation:     s.avatar.Rotation,
		ShipRotation: s.avatar.ShipRotation,
		OnGround:     s.avatar.OnGround,
		Dead:         s.avatar.Dead,
		JumpBuffer:   s.buffer.Remaining(),
		CameraX:      s.camera.Offset,
		Percent:      s.camera.Percent,
		Deaths:       s.deaths,
	}
}

// Hash returns a simple hash of the snapshot for quick comparison.
// Floats are hashed bit-exactly.
func (sn Snapshot) Hash() uint64 {
	var h uint64 = 17
	mix := func(v uint64) { h = h*31 + v }

	mix(sn.Tick)
	mix(hashString(sn.State))
	mix(uint64(sn.LevelIndex)) //#nosec G115 -- hash mixing
	mix(hashString(sn.LevelID))
	mix(hashString(sn.Mode))
	for _, f := range []float64{sn.X, sn.Y, sn.VY, sn.ShipVelocity, sn.Rotation, sn.ShipRotation, sn.CameraX} {
		mix(math.Float64bits(f))
	}
	mix(boolBit(sn.OnGround))
	mix(boolBit(sn.Dead))
	mix(uint64(sn.JumpBuffer)) //#nosec G115 -- hash mixing
	mix(uint64(sn.Percent))    //#nosec G115 -- hash mixing
	mix(uint64(sn.Deaths))     //#nosec G115 -- hash mixing
	return h
}

func hashString(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = h*31 + uint64(s[i])
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
