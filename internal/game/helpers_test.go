package game

import (
	"testing"

	"github.com/vovakirdan/neondash/internal/core"
	"github.com/vovakirdan/neondash/internal/level"
)

// flatLevel is a long empty course.
func flatLevel(t *testing.T, id string) *level.Level {
	t.Helper()
	return mustLevel(t, level.Spec{ID: id, Length: 1000, EndX: 900})
}

func mustLevel(t *testing.T, spec level.Spec) *level.Level {
	t.Helper()
	lvl, err := level.New(spec)
	if err != nil {
		t.Fatalf("level.New(%s) error = %v", spec.ID, err)
	}
	return lvl
}

func newTestSession(t *testing.T, levels ...*level.Level) *Session {
	t.Helper()
	cat, err := level.NewCatalog(levels...)
	if err != nil {
		t.Fatal(err)
	}
	rt := core.DefaultConfig()
	rt.Seed = 42
	s, err := NewSession(cat, DefaultPhysics(), rt)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// running returns a session already past the menu.
func running(t *testing.T, levels ...*level.Level) *Session {
	t.Helper()
	s := newTestSession(t, levels...)
	s.Press()
	if s.State() != StateRunning {
		t.Fatalf("Press() from menu should start a run, state = %v", s.State())
	}
	return s
}

// grounded places the cube at rest on the floor at x.
func grounded(s *Session, x float64) {
	s.avatar = spawnAvatar(s.phys)
	s.avatar.X = x
	s.avatar.Y = s.phys.RestY()
	s.avatar.OnGround = true
}

func idle() core.Intent {
	return core.NewIntent(false)
}

func holding() core.Intent {
	return core.NewIntent(true)
}
