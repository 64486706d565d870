// Package config provides YAML-based configuration loading for the
// neondash runtime.
package config

import (
	"errors"
	"fmt"
	"time"
)

// DashConfig contains all tunable parameters of the runner.
type DashConfig struct {
	Physics DashPhysics `yaml:"physics"`
	Ship    DashShip    `yaml:"ship"`
	Player  DashPlayer  `yaml:"player"`
	World   DashWorld   `yaml:"world"`
	Camera  DashCamera  `yaml:"camera"`
	Effects DashEffects `yaml:"effects"`
	Input   DashInput   `yaml:"input"`
}

// DashPhysics defines cube-mode physics in pixels per tick.
type DashPhysics struct {
	Gravity   float64 `yaml:"gravity"`
	JumpForce float64 `yaml:"jump_force"` // negative is up
	Speed     float64 `yaml:"speed"`
	TickRate  int     `yaml:"tick_rate"` // nominal ticks per second
}

// DashShip defines ship-mode thrust and velocity bounds.
type DashShip struct {
	UpForce float64 `yaml:"up_force"`
	Gravity float64 `yaml:"gravity"`
	MaxRise float64 `yaml:"max_rise"`
	MaxFall float64 `yaml:"max_fall"`
}

// DashPlayer defines the avatar box and spawn point.
type DashPlayer struct {
	StartX float64 `yaml:"start_x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DashWorld defines the tile grid and hazard geometry.
type DashWorld struct {
	TileSize         float64 `yaml:"tile_size"`
	GroundRow        int     `yaml:"ground_row"`
	CubeHazardRadius float64 `yaml:"cube_hazard_radius"`
	ShipHazardRadius float64 `yaml:"ship_hazard_radius"`
	LandingTolerance float64 `yaml:"landing_tolerance"`
}

// DashCamera defines the scroll window.
type DashCamera struct {
	Lead         float64 `yaml:"lead"`          // pixels kept left of the avatar
	ViewportCols int     `yaml:"viewport_cols"` // tiles visible at once
}

// DashEffects defines cosmetic emission parameters.
type DashEffects struct {
	TrailEvery     int `yaml:"trail_every"`
	BurstParticles int `yaml:"burst_particles"`
	ArenaCapacity  int `yaml:"arena_capacity"`
}

// DashInput defines jump buffering and hold detection.
type DashInput struct {
	JumpBufferMs  int `yaml:"jump_buffer_ms"`
	HoldReleaseMs int `yaml:"hold_release_ms"` // key quiet period treated as release
}

// ErrInvalidConfig is returned when a loaded configuration cannot drive a session.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable world.
func (c DashConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Physics.TickRate > 0, "physics.tick_rate must be positive, got %d", c.Physics.TickRate)
	check(c.Physics.Speed > 0, "physics.speed must be positive, got %v", c.Physics.Speed)
	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpForce < 0, "physics.jump_force must be negative, got %v", c.Physics.JumpForce)
	check(c.Ship.MaxRise < 0, "ship.max_rise must be negative, got %v", c.Ship.MaxRise)
	check(c.Ship.MaxFall > 0, "ship.max_fall must be positive, got %v", c.Ship.MaxFall)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	check(c.World.TileSize > 0, "world.tile_size must be positive, got %v", c.World.TileSize)
	check(c.World.GroundRow > 1, "world.ground_row must be greater than 1, got %d", c.World.GroundRow)
	check(c.World.CubeHazardRadius >= 0 && c.World.ShipHazardRadius >= 0, "hazard radii must not be negative")
	check(c.Camera.ViewportCols > 0, "camera.viewport_cols must be positive, got %d", c.Camera.ViewportCols)
	check(c.Effects.TrailEvery > 0, "effects.trail_every must be positive, got %d", c.Effects.TrailEvery)
	check(c.Effects.BurstParticles >= 0, "effects.burst_particles must not be negative")
	check(c.Input.JumpBufferMs >= 0, "input.jump_buffer_ms must not be negative")

	return errors.Join(errs...)
}

// JumpBuffer returns the jump buffer window as a duration.
func (in DashInput) JumpBuffer() time.Duration {
	return time.Duration(in.JumpBufferMs) * time.Millisecond
}

// HoldRelease returns the key quiet period after which a hold is released.
func (in DashInput) HoldRelease() time.Duration {
	return time.Duration(in.HoldReleaseMs) * time.Millisecond
}
