package config

import (
	_ "embed"
)

//go:embed defaults/dash.yaml
var defaultDashYAML []byte

// DefaultDashConfig returns the default runner configuration.
func DefaultDashConfig() DashConfig {
	return DashConfig{
		Physics: DashPhysics{
			Gravity:   0.8,
			JumpForce: -14,
			Speed:     6,
			TickRate:  60,
		},
		Ship: DashShip{
			UpForce: -0.6,
			Gravity: 0.4,
			MaxRise: -9,
			MaxFall: 10,
		},
		Player: DashPlayer{
			StartX: 100,
			Width:  30,
			Height: 30,
		},
		World: DashWorld{
			TileSize:         45,
			GroundRow:        9,
			CubeHazardRadius: 25,
			ShipHazardRadius: 20,
			LandingTolerance: 5,
		},
		Camera: DashCamera{
			Lead:         150,
			ViewportCols: 20,
		},
		Effects: DashEffects{
			TrailEvery:     3,
			BurstParticles: 30,
			ArenaCapacity:  512,
		},
		Input: DashInput{
			JumpBufferMs:  150,
			HoldReleaseMs: 180,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultDashYAML
}
