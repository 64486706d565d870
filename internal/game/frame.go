package game

import (
	"github.com/vovakirdan/neondash/internal/core"
	"github.com/vovakirdan/neondash/internal/level"
)

// RunState is the top-level session state.
type RunState uint8

const (
	StateMenu RunState = iota
	StateRunning
	StateDead
	StateWon
)

// String returns a human-readable name for the state.
func (s RunState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateRunning:
		return "running"
	case StateDead:
		return "dead"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Pose is the visible avatar state.
type Pose struct {
	X, Y     float64
	W, H     float64
	Rotation float64 // cube spin or ship tilt, depending on Mode
	Mode     level.Mode
	Dead     bool
	OnGround bool
}

// Frame is the read-only result of one tick, handed to the render boundary.
type Frame struct {
	Tick       uint64 // running ticks since the current run started
	State      RunState
	Pose       Pose
	Level      *level.Level
	LevelIndex int
	CameraX    float64
	Percent    int
	Deaths     int
	Emissions  Emissions
}

// RenderSink receives one frame per tick.
type RenderSink interface {
	SubmitFrame(Frame)
}

// RenderSinkFunc adapts a function to RenderSink.
type RenderSinkFunc func(Frame)

// SubmitFrame calls f(fr).
func (f RenderSinkFunc) SubmitFrame(fr Frame) {
	f(fr)
}

// IntentSource yields the player intent sampled at the start of a tick.
type IntentSource interface {
	Sample() core.Intent
}
