package level

import "errors"

// ErrEmptyCatalog is returned when a catalog would hold no levels.
var ErrEmptyCatalog = errors.New("level catalog is empty")

// Catalog is the ordered, immutable list of playable levels.
type Catalog struct {
	levels []*Level
}

// NewCatalog creates a catalog in the given order.
func NewCatalog(levels ...*Level) (*Catalog, error) {
	if len(levels) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &Catalog{levels: append([]*Level(nil), levels...)}, nil
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// At returns the level at i. Out-of-range indices wrap to the first level.
func (c *Catalog) At(i int) *Level {
	return c.levels[c.Wrap(i)]
}

// Wrap maps an index into the catalog, sending out-of-range values to 0.
func (c *Catalog) Wrap(i int) int {
	if i < 0 || i >= len(c.levels) {
		return 0
	}
	return i
}

// Index returns the position of the level with the given ID.
func (c *Catalog) Index(id string) (int, bool) {
	for i, lvl := range c.levels {
		if lvl.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Levels returns a copy of the ordered level list.
func (c *Catalog) Levels() []*Level {
	return append([]*Level(nil), c.levels...)
}
