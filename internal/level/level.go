// Package level defines the immutable level model consumed by the runner:
// spikes, platforms, portals and the victory line, all in tile units.
//
// Levels are built once (from YAML or code), validated, and never mutated
// afterwards. Switching levels means swapping the *Level pointer.
package level

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid level")

// Mode is the avatar locomotion mode a portal switches to.
type Mode uint8

const (
	ModeCube Mode = iota
	ModeShip
)

// String returns the schema name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCube:
		return "cube"
	case ModeShip:
		return "ship"
	default:
		return fmt.Sprintf("mode(%d)", m)
	}
}

// ParseMode converts a schema name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cube":
		return ModeCube, nil
	case "ship":
		return ModeShip, nil
	default:
		return 0, fmt.Errorf("%w: unknown portal mode %q", ErrInvalid, s)
	}
}

// Tile is a single grid cell.
type Tile struct {
	X, Y int
}

// Platform is a solid rectangle in tiles. Only its top surface is landable.
type Platform struct {
	X, Y, W, H int
}

// Portal switches the avatar into Mode when it passes through its tile.
type Portal struct {
	X, Y int
	Mode Mode
}

// Level is an immutable level description.
type Level struct {
	ID        string
	Name      string
	Spikes    []Tile // sorted by X then Y, no duplicates
	Platforms []Platform
	Portals   []Portal // evaluated in declared order
	EndX      int      // victory column
	Length    int      // total columns
	Source    string   // file the level was loaded from, empty for code-built levels
}

// Spec is the mutable input to New.
type Spec struct {
	ID        string
	Name      string
	Length    int
	EndX      int
	Spikes    []Tile
	Platforms []Platform
	Portals   []Portal
	Source    string
}

// New normalizes and validates a level. Spikes are deduplicated and sorted,
// the slices are copied so later changes to spec do not leak in.
func New(spec Spec) (*Level, error) {
	lvl := &Level{
		ID:        spec.ID,
		Name:      spec.Name,
		Spikes:    normalizeSpikes(spec.Spikes),
		Platforms: append([]Platform(nil), spec.Platforms...),
		Portals:   append([]Portal(nil), spec.Portals...),
		EndX:      spec.EndX,
		Length:    spec.Length,
		Source:    spec.Source,
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return lvl, nil
}

// MustNew is New for static level tables; it panics on invalid input.
func MustNew(spec Spec) *Level {
	lvl, err := New(spec)
	if err != nil {
		panic(err)
	}
	return lvl
}

func normalizeSpikes(in []Tile) []Tile {
	seen := make(map[Tile]struct{}, len(in))
	out := make([]Tile, 0, len(in))
	for _, t := range in {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

// Validate checks the structural invariants of the level.
func (l *Level) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if l.ID == "" {
		fail("missing id")
	}
	if l.Length <= 0 {
		fail("length must be positive, got %d", l.Length)
	}
	if l.EndX <= 0 || l.EndX >= l.Length {
		fail("end_x must be in (0, length), got %d with length %d", l.EndX, l.Length)
	}
	for _, s := range l.Spikes {
		if s.X < 0 || s.Y < 0 {
			fail("spike at (%d,%d) has negative coordinates", s.X, s.Y)
		}
	}
	for i, p := range l.Platforms {
		if p.X < 0 || p.Y < 0 {
			fail("platform %d at (%d,%d) has negative coordinates", i, p.X, p.Y)
		}
		if p.W <= 0 || p.H <= 0 {
			fail("platform %d has non-positive size %dx%d", i, p.W, p.H)
		}
	}
	for i, p := range l.Portals {
		if p.X < 0 || p.Y < 0 {
			fail("portal %d at (%d,%d) has negative coordinates", i, p.X, p.Y)
		}
		if p.Mode != ModeCube && p.Mode != ModeShip {
			fail("portal %d has unknown mode %d", i, p.Mode)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("level %q: %w", l.ID, errors.Join(errs...))
}

// HasSpike reports whether a spike occupies the tile.
func (l *Level) HasSpike(x, y int) bool {
	i := sort.Search(len(l.Spikes), func(i int) bool {
		s := l.Spikes[i]
		return s.X > x || (s.X == x && s.Y >= y)
	})
	return i < len(l.Spikes) && l.Spikes[i] == Tile{X: x, Y: y}
}

// SpikesBetween returns the spikes whose column lies in [fromX, toX].
// The returned slice aliases the level and must not be modified.
func (l *Level) SpikesBetween(fromX, toX int) []Tile {
	lo := sort.Search(len(l.Spikes), func(i int) bool { return l.Spikes[i].X >= fromX })
	hi := sort.Search(len(l.Spikes), func(i int) bool { return l.Spikes[i].X > toX })
	if lo >= hi {
		return nil
	}
	return l.Spikes[lo:hi]
}
