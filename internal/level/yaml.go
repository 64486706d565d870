package level

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlLevel is the on-disk shape of a single level.
type yamlLevel struct {
	ID            string         `yaml:"id"`
	Name          string         `yaml:"name"`
	Length        int            `yaml:"length"`
	EndX          int            `yaml:"end_x"`
	Spikes        []yamlTile     `yaml:"spikes,omitempty"`
	SpikePatterns []yamlPattern  `yaml:"spike_patterns,omitempty"`
	Platforms     []yamlPlatform `yaml:"platforms,omitempty"`
	Portals       []yamlPortal   `yaml:"portals,omitempty"`
}

// yamlDocument is either a single level or a `levels:` list.
type yamlDocument struct {
	yamlLevel `yaml:",inline"`
	Levels    []yamlLevel `yaml:"levels,omitempty"`
}

type yamlTile struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type yamlPattern struct {
	Start int  `yaml:"start"`
	End   int  `yaml:"end"`
	Every int  `yaml:"every"`
	Y     *int `yaml:"y,omitempty"`
}

type yamlPlatform struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type yamlPortal struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Mode string `yaml:"mode"`
}

// ParseYAML decodes one YAML document into one or more levels.
// Spike patterns are expanded on spikeRow unless they name a row.
func ParseYAML(data []byte, spikeRow int) ([]*Level, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	raw := doc.Levels
	if len(raw) == 0 {
		if doc.ID == "" && doc.Length == 0 {
			return nil, fmt.Errorf("%w: document contains no levels", ErrInvalid)
		}
		raw = []yamlLevel{doc.yamlLevel}
	} else if doc.ID != "" {
		return nil, fmt.Errorf("%w: document mixes a top-level level with a levels list", ErrInvalid)
	}

	out := make([]*Level, 0, len(raw))
	for _, yl := range raw {
		lvl, err := yl.toLevel(spikeRow)
		if err != nil {
			return nil, err
		}
		out = append(out, lvl)
	}
	return out, nil
}

func (yl yamlLevel) toLevel(spikeRow int) (*Level, error) {
	spec := Spec{
		ID:     yl.ID,
		Name:   yl.Name,
		Length: yl.Length,
		EndX:   yl.EndX,
	}

	for _, s := range yl.Spikes {
		spec.Spikes = append(spec.Spikes, Tile(s))
	}
	patterns := make([]Pattern, len(yl.SpikePatterns))
	for i, p := range yl.SpikePatterns {
		patterns[i] = Pattern(p)
	}
	generated, err := ExpandAll(patterns, yl.Length, spikeRow)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", yl.ID, err)
	}
	spec.Spikes = append(spec.Spikes, generated...)

	for _, p := range yl.Platforms {
		spec.Platforms = append(spec.Platforms, Platform(p))
	}
	for _, p := range yl.Portals {
		mode, err := ParseMode(p.Mode)
		if err != nil {
			return nil, fmt.Errorf("level %q: portal at (%d,%d): %w", yl.ID, p.X, p.Y, err)
		}
		spec.Portals = append(spec.Portals, Portal{X: p.X, Y: p.Y, Mode: mode})
	}

	return New(spec)
}

// MarshalYAML encodes a level back into the schema, spikes listed
// individually.
func MarshalYAML(l *Level) ([]byte, error) {
	yl := yamlLevel{
		ID:     l.ID,
		Name:   l.Name,
		Length: l.Length,
		EndX:   l.EndX,
	}
	for _, s := range l.Spikes {
		yl.Spikes = append(yl.Spikes, yamlTile(s))
	}
	for _, p := range l.Platforms {
		yl.Platforms = append(yl.Platforms, yamlPlatform(p))
	}
	for _, p := range l.Portals {
		yl.Portals = append(yl.Portals, yamlPortal{X: p.X, Y: p.Y, Mode: p.Mode.String()})
	}
	return yaml.Marshal(yl)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
