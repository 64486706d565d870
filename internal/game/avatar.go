package game

import (
	"math"

	"github.com/vovakirdan/neondash/internal/core"
)

const quarterTurn = math.Pi / 2

// Avatar is the player body. VY and Rotation drive cube mode, ShipVelocity
// and ShipRotation drive ship mode. OnGround is only meaningful in cube mode.
type Avatar struct {
	X, Y          float64
	Width, Height float64

	VY           float64
	ShipVelocity float64
	Rotation     float64
	ShipRotation float64

	OnGround bool
	Dead     bool
}

func spawnAvatar(p Physics) Avatar {
	return Avatar{
		X:        p.StartX,
		Y:        p.StartY(),
		Width:    p.Width,
		Height:   p.Height,
		OnGround: true,
	}
}

// Box returns the avatar bounding box.
func (a *Avatar) Box() core.Box {
	return core.NewBox(a.X, a.Y, a.Width, a.Height)
}

// Center returns the center of the bounding box.
func (a *Avatar) Center() (float64, float64) {
	return a.Box().Center()
}

// Bottom returns the y of the bottom edge.
func (a *Avatar) Bottom() float64 {
	return a.Y + a.Height
}

// jump launches a cube jump.
func (a *Avatar) jump(p Physics) {
	a.VY = p.JumpForce
	a.OnGround = false
}

// land rests the avatar on a surface at surfaceY.
func (a *Avatar) land(surfaceY float64) {
	a.Y = surfaceY - a.Height
	a.VY = 0
	a.OnGround = true
	a.Rotation = SnapRotation(a.Rotation)
}

// SnapRotation rounds r to the nearest quarter turn.
func SnapRotation(r float64) float64 {
	return math.Round(r/quarterTurn) * quarterTurn
}
