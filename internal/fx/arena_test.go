package fx

import (
	"math"
	"testing"

	"github.com/vovakirdan/neondash/internal/core"
	"github.com/vovakirdan/neondash/internal/game"
	"github.com/vovakirdan/neondash/internal/level"
)

func trail(x float64) game.Emissions {
	return game.Emissions{Trail: &game.TrailSample{X: x, Y: 10, Mode: level.ModeShip, Color: core.ColorLime}}
}

func burst(n int) game.Emissions {
	b := &game.Burst{Particles: make([]game.Particle, n)}
	for i := range b.Particles {
		b.Particles[i] = game.Particle{X: 100, Y: 200, VX: 2, VY: -4, Size: 10, Color: core.ColorPink}
	}
	return game.Emissions{Burst: b}
}

func TestAbsorb(t *testing.T) {
	a := NewArena(0)
	a.Absorb(trail(5))
	a.Absorb(burst(3))
	a.Absorb(game.Emissions{})

	if a.Len() != 4 {
		t.Fatalf("Len() = %d, expected 4", a.Len())
	}
	tr := a.Effects()[0]
	if tr.Kind != KindTrail || tr.X != 5 || tr.Alpha != 1 || tr.Mode != level.ModeShip || tr.Color != core.ColorLime {
		t.Errorf("trail effect = %+v", tr)
	}
	for _, e := range a.Effects()[1:] {
		if e.Kind != KindParticle || e.Alpha != 1 || e.Size != 10 {
			t.Errorf("particle effect = %+v", e)
		}
	}
}

func TestResetClearsBeforeAdding(t *testing.T) {
	a := NewArena(0)
	a.Absorb(burst(30))

	e := trail(1)
	e.Reset = true
	a.Absorb(e)

	if a.Len() != 1 || a.Effects()[0].Kind != KindTrail {
		t.Errorf("after reset, expected only the new trail sample, got %d effects", a.Len())
	}
}

func TestParticleMotion(t *testing.T) {
	a := NewArena(0)
	a.Absorb(burst(1))
	a.Update()
	a.Update()

	p := a.Effects()[0]
	// x: 100+2+2; y: 200-4-3.7; vy: -4+0.6
	checks := []struct {
		name      string
		got, want float64
	}{
		{"x", p.X, 104},
		{"y", p.Y, 192.3},
		{"vy", p.VY, -3.4},
		{"alpha", p.Alpha, 0.96},
		{"size", p.Size, 10 * 0.98 * 0.98},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s = %v, expected %v", c.name, c.got, c.want)
		}
	}
}

func TestFadeOut(t *testing.T) {
	tests := []struct {
		name    string
		emit    game.Emissions
		alive   int // updates that keep it alive
		expired int // updates after which it is gone
	}{
		{"trail", trail(0), 19, 21},
		{"particle", burst(1), 49, 51},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewArena(0)
			a.Absorb(tc.emit)
			for i := 0; i < tc.alive; i++ {
				a.Update()
			}
			if a.Len() != 1 {
				t.Fatalf("expired after %d updates", tc.alive)
			}
			for i := tc.alive; i < tc.expired; i++ {
				a.Update()
			}
			if a.Len() != 0 {
				t.Errorf("still alive after %d updates", tc.expired)
			}
		})
	}
}

func TestSwapRemoveKeepsSurvivors(t *testing.T) {
	a := NewArena(0)
	a.Absorb(burst(2))
	for i := 0; i < 20; i++ {
		a.Update()
	}
	a.Absorb(trail(1))
	a.Absorb(trail(2))
	a.Absorb(trail(3))

	// Particles are at alpha 0.6, trail samples at 1.0.
	for i := 0; i < 10; i++ {
		a.Update()
	}
	if a.Len() != 5 {
		t.Fatalf("Len() = %d, expected 5", a.Len())
	}
	// Trails fade out first.
	for i := 0; i < 11; i++ {
		a.Update()
	}
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, expected the 2 particles", a.Len())
	}
	for _, e := range a.Effects() {
		if e.Kind != KindParticle {
			t.Errorf("unexpected survivor %+v", e)
		}
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	a := NewArena(3)
	for i := 1; i <= 5; i++ {
		a.Absorb(trail(float64(i)))
	}

	if a.Len() != 3 {
		t.Fatalf("Len() = %d, expected capacity 3", a.Len())
	}
	seen := map[float64]bool{}
	for _, e := range a.Effects() {
		seen[e.X] = true
	}
	for _, x := range []float64{3, 4, 5} {
		if !seen[x] {
			t.Errorf("newest sample %v evicted, live = %v", x, seen)
		}
	}
}

func TestClear(t *testing.T) {
	a := NewArena(8)
	a.Clear()
	a.Absorb(burst(4))
	a.Clear()
	if a.Len() != 0 {
		t.Errorf("Len() after Clear = %d", a.Len())
	}
}
