package game

import (
	"testing"

	"github.com/vovakirdan/neondash/internal/core"
	"github.com/vovakirdan/neondash/internal/level"
)

func portalLevel(t *testing.T, id string, portals ...level.Portal) *level.Level {
	t.Helper()
	return mustLevel(t, level.Spec{ID: id, Length: 100, EndX: 90, Portals: portals})
}

func TestPortalToShip(t *testing.T) {
	s := running(t, portalLevel(t, "p", level.Portal{X: 5, Y: 8, Mode: level.ModeShip}))
	p := s.Physics()
	grounded(s, 205) // center column 4, next tick column 5
	s.avatar.ShipVelocity = 3
	s.avatar.ShipRotation = 0.4

	s.Step(idle())
	a := s.Avatar()
	if s.Mode() != level.ModeShip {
		t.Fatalf("mode = %v, expected ship", s.Mode())
	}
	if a.Y != 8*p.TileSize || a.ShipVelocity != 0 || a.ShipRotation != 0 {
		t.Errorf("ship entry not reset: %+v", a)
	}
}

func TestPortalToCube(t *testing.T) {
	s := running(t, portalLevel(t, "p", level.Portal{X: 5, Y: 2, Mode: level.ModeCube}))
	s.mode = level.ModeShip
	s.avatar.X = 205
	s.avatar.Y = 100
	s.avatar.VY = 5
	s.avatar.Rotation = 1.2
	s.avatar.OnGround = false

	s.Step(idle())
	a := s.Avatar()
	if s.Mode() != level.ModeCube {
		t.Fatalf("mode = %v, expected cube", s.Mode())
	}
	if a.VY != 0 || a.Rotation != 0 || !a.OnGround {
		t.Errorf("cube entry not reset: %+v", a)
	}
	if a.Y > s.Physics().StartY() {
		t.Errorf("cube entry should clamp y to the start height, got %v", a.Y)
	}
}

func TestPortalCubeEntryClampsLowShip(t *testing.T) {
	p := DefaultPhysics()
	a := Avatar{Y: p.RestY(), Width: p.Width, Height: p.Height}
	enterPortal(&a, p, level.Portal{X: 1, Y: 8, Mode: level.ModeCube})
	if a.Y != p.StartY() {
		t.Errorf("y = %v, expected clamp to %v", a.Y, p.StartY())
	}
}

func TestPortalSameModeIsNoop(t *testing.T) {
	with := running(t, portalLevel(t, "p", level.Portal{X: 5, Y: 8, Mode: level.ModeCube}))
	without := running(t, portalLevel(t, "p"))

	for _, s := range []*Session{with, without} {
		grounded(s, 150)
		s.avatar.Rotation = 0.3
	}
	for i := 0; i < 40; i++ {
		with.Step(idle())
		without.Step(idle())
		if a, b := with.Snapshot(), without.Snapshot(); a != b {
			t.Fatalf("tick %d: same-mode portal changed state:\n%+v\n%+v", i, a, b)
		}
	}
}

func TestPortalFirstMatchWins(t *testing.T) {
	portals := []level.Portal{
		{X: 5, Y: 8, Mode: level.ModeShip},
		{X: 5, Y: 7, Mode: level.ModeCube},
	}
	p := DefaultPhysics()
	a := Avatar{X: 211, Y: 350, Width: p.Width, Height: p.Height}

	got, ok := findPortal(portals, &a, p, level.ModeCube, 5)
	if !ok || got != portals[0] {
		t.Errorf("findPortal() = %+v, %v; expected the first declared portal", got, ok)
	}

	// In ship mode the first portal is a no-op, the second applies.
	got, ok = findPortal(portals, &a, p, level.ModeShip, 5)
	if !ok || got != portals[1] {
		t.Errorf("findPortal() in ship = %+v, %v; expected the cube portal", got, ok)
	}
}

func TestPortalRowMustOverlap(t *testing.T) {
	p := DefaultPhysics()
	portals := []level.Portal{{X: 5, Y: 7, Mode: level.ModeShip}}
	resting := Avatar{X: 211, Y: p.RestY(), Width: p.Width, Height: p.Height}

	if _, ok := findPortal(portals, &resting, p, level.ModeCube, 5); ok {
		t.Error("a grounded cube does not reach a portal one row up")
	}
}

func TestFastAvatarCannotSkipPortal(t *testing.T) {
	lvl := portalLevel(t, "fast", level.Portal{X: 3, Y: 8, Mode: level.ModeShip})
	cat, err := level.NewCatalog(lvl)
	if err != nil {
		t.Fatal(err)
	}
	phys := DefaultPhysics()
	phys.Speed = 100 // more than a tile per tick

	s, err := NewSession(cat, phys, core.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	s.Press()
	grounded(s, 100) // center column 2; next tick column 4

	s.Step(idle())
	if s.Mode() != level.ModeShip {
		t.Error("portal in a column stepped over this tick should still apply")
	}
}

func TestPortalBehindIsIgnored(t *testing.T) {
	s := running(t, portalLevel(t, "behind", level.Portal{X: 2, Y: 8, Mode: level.ModeShip}))
	grounded(s, 140) // center column 3

	s.Step(idle())
	if s.Mode() != level.ModeCube {
		t.Error("a portal behind the avatar must not apply")
	}
}
