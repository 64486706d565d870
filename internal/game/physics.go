// Package game implements the neondash simulation core: dual-mode
// locomotion, terrain and hazard collision, portals, camera tracking and the
// run state machine.
//
// The core is deterministic given the same level, physics, seed and intent
// sequence. It never blocks, never logs and never touches the terminal; a
// driver calls Session.Step once per tick and hands the returned Frame to a
// RenderSink.
package game

import (
	"time"

	"github.com/vovakirdan/neondash/internal/config"
	"github.com/vovakirdan/neondash/internal/core"
	"github.com/vovakirdan/neondash/internal/level"
)

// Physics holds the world constants in pixels and pixels per tick.
type Physics struct {
	TileSize  float64
	GroundRow int

	Gravity   float64
	JumpForce float64 // negative is up
	Speed     float64

	ShipUpForce float64
	ShipGravity float64
	ShipMaxRise float64 // negative bound
	ShipMaxFall float64

	StartX float64
	Width  float64
	Height float64

	CubeHazardRadius float64
	ShipHazardRadius float64
	LandingTolerance float64

	CameraLead   float64
	ViewportCols int

	TrailEvery     int
	BurstParticles int

	JumpBuffer time.Duration
	Tick       time.Duration // nominal duration of one Step
}

// NewPhysics derives simulation constants from a loaded configuration.
func NewPhysics(cfg config.DashConfig) Physics {
	return Physics{
		TileSize:         cfg.World.TileSize,
		GroundRow:        cfg.World.GroundRow,
		Gravity:          cfg.Physics.Gravity,
		JumpForce:        cfg.Physics.JumpForce,
		Speed:            cfg.Physics.Speed,
		ShipUpForce:      cfg.Ship.UpForce,
		ShipGravity:      cfg.Ship.Gravity,
		ShipMaxRise:      cfg.Ship.MaxRise,
		ShipMaxFall:      cfg.Ship.MaxFall,
		StartX:           cfg.Player.StartX,
		Width:            cfg.Player.Width,
		Height:           cfg.Player.Height,
		CubeHazardRadius: cfg.World.CubeHazardRadius,
		ShipHazardRadius: cfg.World.ShipHazardRadius,
		LandingTolerance: cfg.World.LandingTolerance,
		CameraLead:       cfg.Camera.Lead,
		ViewportCols:     cfg.Camera.ViewportCols,
		TrailEvery:       cfg.Effects.TrailEvery,
		BurstParticles:   cfg.Effects.BurstParticles,
		JumpBuffer:       cfg.Input.JumpBuffer(),
		Tick:             core.TickInterval(cfg.Physics.TickRate),
	}
}

// DefaultPhysics returns the stock tuning.
func DefaultPhysics() Physics {
	return NewPhysics(config.DefaultDashConfig())
}

// GroundY is the world y of the floor line.
func (p Physics) GroundY() float64 {
	return float64(p.GroundRow) * p.TileSize
}

// RestY is the avatar y when standing on the floor.
func (p Physics) RestY() float64 {
	return p.GroundY() - p.Height
}

// StartY is the spawn height, one tile above the floor. Cube portals also
// clamp the avatar to it.
func (p Physics) StartY() float64 {
	return float64(p.GroundRow-1)*p.TileSize - p.Height
}

// HazardRadius returns the circle radius used for hazard hits in mode m.
func (p Physics) HazardRadius(m level.Mode) float64 {
	if m == level.ModeShip {
		return p.ShipHazardRadius
	}
	return p.CubeHazardRadius
}

// VictoryX is the world x the avatar must pass to win the level.
func (p Physics) VictoryX(lvl *level.Level) float64 {
	return float64(lvl.EndX) * p.TileSize
}
