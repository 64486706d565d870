package game

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/neondash/internal/core"
	"github.com/vovakirdan/neondash/internal/level"
)

// ErrNoLevels is returned when a session is created without any level.
var ErrNoLevels = errors.New("game: no levels to play")

// Session owns all mutable simulation state for one player. It is not safe
// for concurrent use; independent sessions share nothing.
type Session struct {
	phys    Physics
	catalog *level.Catalog
	pending *level.Catalog // swapped in at the next run start

	levelIdx int
	lvl      *level.Level
	det      *detector

	state  RunState
	mode   level.Mode
	avatar Avatar
	buffer JumpBuffer
	camera Camera
	tick   uint64
	deaths int

	// holdLatch ignores a hold that began with the press which started the
	// run, until the key is released or pressed again.
	holdLatch bool

	rng  *rand.Rand
	emit Emissions
}

// NewSession creates a session in the Menu state with the first level of
// cat selected.
func NewSession(cat *level.Catalog, phys Physics, rt core.RuntimeConfig) (*Session, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, ErrNoLevels
	}
	if rt.TickRate > 0 {
		phys.Tick = rt.TickDuration()
	}

	s := &Session{
		phys:    phys,
		catalog: cat,
		state:   StateMenu,
		buffer:  NewJumpBuffer(phys.JumpBuffer),
		rng:     rand.New(rand.NewSource(rt.Seed)), //#nosec G404 -- cosmetic particles
	}
	s.load(0)
	return s, nil
}

// load selects level idx (wrapping out-of-range indices to 0) and places a
// fresh avatar at its start.
func (s *Session) load(idx int) {
	s.levelIdx = s.catalog.Wrap(idx)
	s.lvl = s.catalog.At(s.levelIdx)
	s.det = newDetector(s.lvl, s.phys)
	s.resetRun()
}

func (s *Session) resetRun() {
	s.avatar = spawnAvatar(s.phys)
	s.mode = level.ModeCube
	s.buffer.Clear()
	s.camera = Camera{}
	s.tick = 0
}

// Select picks the level shown in the menu. It is ignored outside Menu.
func (s *Session) Select(idx int) bool {
	if s.state != StateMenu {
		return false
	}
	s.load(idx)
	return true
}

// SetCatalog replaces the level catalog. In the menu the swap is immediate;
// otherwise it waits for the next run start so a level never changes under
// a running avatar.
func (s *Session) SetCatalog(cat *level.Catalog) {
	if cat == nil || cat.Len() == 0 {
		return
	}
	s.pending = cat
	if s.state == StateMenu {
		s.applyPendingCatalog()
		s.load(s.levelIdx)
	}
}

// applyPendingCatalog swaps in a pending catalog and keeps the current
// level selected when it still exists.
func (s *Session) applyPendingCatalog() {
	if s.pending == nil {
		return
	}
	s.catalog, s.pending = s.pending, nil
	if i, ok := s.catalog.Index(s.lvl.ID); ok {
		s.levelIdx = i
	}
}

// Press applies a fresh jump edge immediately, outside of Step.
func (s *Session) Press() {
	if s.press(0) {
		s.holdLatch = true
	} else {
		s.holdLatch = false
	}
}

// press maps a jump edge to an action. It reports whether the edge started
// a run.
func (s *Session) press(age time.Duration) bool {
	switch s.state {
	case StateMenu, StateDead:
		s.start(false)
		return true
	case StateWon:
		s.start(true)
		return true
	case StateRunning:
		if s.mode == level.ModeCube && s.avatar.OnGround {
			s.avatar.jump(s.phys)
		} else {
			s.buffer.Request(age)
		}
	}
	return false
}

// start begins a run on the current level, or on the next one.
func (s *Session) start(next bool) {
	s.applyPendingCatalog()
	idx := s.levelIdx
	if next {
		idx++
	}
	s.load(idx)
	s.state = StateRunning
	s.emit.Reset = true
}

// Step advances the session by one tick and returns the resulting frame.
func (s *Session) Step(in core.Intent) Frame {
	if !in.JumpHeld {
		s.holdLatch = false
	}
	for _, at := range in.Presses {
		s.holdLatch = s.press(in.Age(at))
	}

	if s.state == StateRunning {
		s.advance(in.JumpHeld && !s.holdLatch)
	}

	f := s.Frame()
	s.emit = Emissions{}
	return f
}

// advance runs one Running tick: locomotion, portals, collision, hazards,
// victory and camera, in that order.
func (s *Session) advance(held bool) {
	s.tick++
	s.buffer.Tick(s.phys.Tick)

	cx, _ := s.avatar.Center()
	fromCol := tileColumn(cx, s.phys.TileSize) + 1

	switch s.mode {
	case level.ModeShip:
		stepShip(&s.avatar, s.phys, held)
	default:
		stepCube(&s.avatar, s.phys)
	}

	if portal, ok := findPortal(s.lvl.Portals, &s.avatar, s.phys, s.mode, fromCol); ok {
		s.mode = portal.Mode
		enterPortal(&s.avatar, s.phys, portal)
	}

	switch s.mode {
	case level.ModeShip:
		s.det.clampShip(&s.avatar)
	default:
		s.det.resolveCube(&s.avatar, held, &s.buffer)
	}

	if _, hit := s.det.hazardHit(&s.avatar, s.mode); hit {
		s.die()
		return
	}

	if s.avatar.X > s.phys.VictoryX(s.lvl) {
		s.state = StateWon
	}

	s.camera.Track(s.avatar.X, s.lvl, s.phys)

	if s.phys.TrailEvery > 0 && s.tick%uint64(s.phys.TrailEvery) == 0 { //#nosec G115 -- TrailEvery > 0
		cx, cy := s.avatar.Center()
		s.emit.Trail = &TrailSample{
			X:        cx,
			Y:        cy,
			Rotation: s.rotation(),
			Mode:     s.mode,
			Color:    core.NeonColor(s.levelIdx),
		}
	}
}

// die ends the run and emits the death burst from the avatar center.
func (s *Session) die() {
	s.avatar.Dead = true
	s.state = StateDead
	s.deaths++

	n := s.phys.BurstParticles
	if n <= 0 {
		return
	}
	cx, cy := s.avatar.Center()
	burst := &Burst{Particles: make([]Particle, n)}
	for i := range burst.Particles {
		angle := 2*math.Pi/float64(n)*float64(i) + s.rng.Float64()*burstJitter
		speed := s.rng.Float64()*burstSpeedRange + burstMinSpeed
		size := s.rng.Float64()*burstSizeRange + burstMinSize
		color := core.NeonColor(s.rng.Intn(len(core.NeonPalette)))
		burst.Particles[i] = Particle{
			X:     cx,
			Y:     cy,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Size:  size,
			Color: color,
		}
	}
	s.emit.Burst = burst
}

func (s *Session) rotation() float64 {
	if s.mode == level.ModeShip {
		return s.avatar.ShipRotation
	}
	return s.avatar.Rotation
}

// Frame returns the current state as a frame, including emissions
// accumulated since the last Step.
func (s *Session) Frame() Frame {
	return Frame{
		Tick:  s.tick,
		State: s.state,
		Pose: Pose{
			X:        s.avatar.X,
			Y:        s.avatar.Y,
			W:        s.avatar.Width,
			H:        s.avatar.Height,
			Rotation: s.rotation(),
			Mode:     s.mode,
			Dead:     s.avatar.Dead,
			OnGround: s.avatar.OnGround,
		},
		Level:      s.lvl,
		LevelIndex: s.levelIdx,
		CameraX:    s.camera.Offset,
		Percent:    s.camera.Percent,
		Deaths:     s.deaths,
		Emissions:  s.emit,
	}
}

// State returns the current run state.
func (s *Session) State() RunState { return s.state }

// Mode returns the active locomotion mode.
func (s *Session) Mode() level.Mode { return s.mode }

// Avatar returns a copy of the avatar.
func (s *Session) Avatar() Avatar { return s.avatar }

// Level returns the active level.
func (s *Session) Level() *level.Level { return s.lvl }

// LevelIndex returns the catalog index of the active level.
func (s *Session) LevelIndex() int { return s.levelIdx }

// Catalog returns the catalog in use.
func (s *Session) Catalog() *level.Catalog { return s.catalog }

// Physics returns the constants the session runs with.
func (s *Session) Physics() Physics { return s.phys }

// Percent returns the completion percentage of the current run.
func (s *Session) Percent() int { return s.camera.Percent }

// Deaths returns how many runs ended in death.
func (s *Session) Deaths() int { return s.deaths }

// Tick returns the running ticks since the current run started.
func (s *Session) Tick() uint64 { return s.tick }
