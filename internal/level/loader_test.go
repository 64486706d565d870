package level

import (
	"errors"
	"strings"
	"testing"
)

func TestParseYAMLSingle(t *testing.T) {
	data := []byte(`
id: one
name: One
length: 30
end_x: 20
spikes: [{x: 4, y: 8}]
spike_patterns: [{start: 10, end: 14, every: 2}]
platforms: [{x: 6, y: 7, w: 2, h: 1}]
portals: [{x: 15, y: 7, mode: ship}, {x: 18, y: 7, mode: cube}]
`)
	levels, err := ParseYAML(data, DefaultSpikeRow)
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if len(levels) != 1 {
		t.Fatalf("expected 1 level, got %d", len(levels))
	}

	lvl := levels[0]
	if lvl.Name != "One" || lvl.Length != 30 || lvl.EndX != 20 {
		t.Errorf("unexpected header: %+v", lvl)
	}
	if len(lvl.Spikes) != 4 {
		t.Errorf("expected 4 spikes, got %v", lvl.Spikes)
	}
	if len(lvl.Platforms) != 1 || lvl.Platforms[0] != (Platform{6, 7, 2, 1}) {
		t.Errorf("platforms = %v", lvl.Platforms)
	}
	if len(lvl.Portals) != 2 || lvl.Portals[0].Mode != ModeShip || lvl.Portals[1].Mode != ModeCube {
		t.Errorf("portals = %v", lvl.Portals)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"bad mode", "id: x\nlength: 10\nend_x: 5\nportals: [{x: 1, y: 1, mode: ufo}]"},
		{"bad step", "id: x\nlength: 10\nend_x: 5\nspike_patterns: [{start: 1, end: 3, every: 0}]"},
		{"mixed", "id: x\nlength: 10\nend_x: 5\nlevels: [{id: y, length: 10, end_x: 5}]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tc.data), DefaultSpikeRow); !errors.Is(err, ErrInvalid) {
				t.Errorf("ParseYAML() error = %v, expected ErrInvalid", err)
			}
		})
	}

	if _, err := ParseYAML([]byte("id: [unterminated"), DefaultSpikeRow); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestMarshalYAMLRoundTrip(t *testing.T) {
	lvl := MustNew(Spec{
		ID:        "rt",
		Name:      "Round Trip",
		Length:    50,
		EndX:      45,
		Spikes:    []Tile{{10, 8}, {11, 8}},
		Platforms: []Platform{{20, 6, 3, 1}},
		Portals:   []Portal{{X: 30, Y: 7, Mode: ModeShip}},
	})

	data, err := MarshalYAML(lvl)
	if err != nil {
		t.Fatalf("MarshalYAML() error = %v", err)
	}
	levels, err := ParseYAML(data, DefaultSpikeRow)
	if err != nil {
		t.Fatalf("ParseYAML() error = %v\n%s", err, data)
	}
	got := levels[0]
	if got.Name != lvl.Name || len(got.Spikes) != 2 || got.Portals[0] != lvl.Portals[0] || got.Platforms[0] != lvl.Platforms[0] {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader("testdata/levels")

	levels, err := loader.LoadAll()
	if err == nil {
		t.Fatal("expected broken.yaml to be reported")
	}
	if !errors.Is(err, ErrInvalid) || !strings.Contains(err.Error(), "broken.yaml") {
		t.Errorf("unexpected load error: %v", err)
	}

	wantIDs := []string{"a-steps", "b-first", "c-second"}
	if len(levels) != len(wantIDs) {
		t.Fatalf("expected %d levels, got %d", len(wantIDs), len(levels))
	}
	for i, id := range wantIDs {
		if levels[i].ID != id {
			t.Errorf("level %d = %q, expected %q", i, levels[i].ID, id)
		}
	}

	steps := levels[0]
	if len(steps.Spikes) != 4 {
		t.Errorf("a-steps spikes = %v, expected 4 after dedup", steps.Spikes)
	}
	if !strings.HasSuffix(steps.Source, "a-steps.yaml") {
		t.Errorf("Source = %q", steps.Source)
	}

	second := levels[2]
	if len(second.Spikes) != 2 {
		t.Errorf("c-second spikes = %v, expected pattern clipped at length", second.Spikes)
	}
	if second.Name != "c-second" {
		t.Errorf("c-second name should default to id, got %q", second.Name)
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := NewLoader("testdata/levels")

	lvl, err := loader.LoadByID("b-first")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "First" {
		t.Errorf("expected Name 'First', got %q", lvl.Name)
	}

	if _, err := loader.LoadByID("broken"); err == nil {
		t.Error("invalid level should not be loadable")
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	if _, err := NewLoader("testdata/nope").LoadAll(); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestBuiltin(t *testing.T) {
	cat, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 built-in levels, got %d", cat.Len())
	}

	tests := []struct {
		name    string
		length  int
		endX    int
		spikes  int
		portals int
	}{
		{"Neon Gateway", 400, 390, 100, 8},
		{"Cosmic Tunnel", 420, 410, 94, 9},
	}
	for i, tc := range tests {
		lvl := cat.At(i)
		if lvl.Name != tc.name {
			t.Errorf("level %d = %q, expected %q", i, lvl.Name, tc.name)
		}
		if lvl.Length != tc.length || lvl.EndX != tc.endX {
			t.Errorf("%s: length/end = %d/%d", tc.name, lvl.Length, lvl.EndX)
		}
		if len(lvl.Spikes) != tc.spikes {
			t.Errorf("%s: %d spikes, expected %d", tc.name, len(lvl.Spikes), tc.spikes)
		}
		if len(lvl.Portals) != tc.portals {
			t.Errorf("%s: %d portals, expected %d", tc.name, len(lvl.Portals), tc.portals)
		}
		for _, s := range lvl.Spikes {
			if s.Y != DefaultSpikeRow || s.X >= lvl.Length {
				t.Errorf("%s: spike %v out of place", tc.name, s)
			}
		}
	}

	if cat.At(0).Portals[0] != (Portal{X: 25, Y: 7, Mode: ModeShip}) {
		t.Errorf("first portal = %+v", cat.At(0).Portals[0])
	}
}
