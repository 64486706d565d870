package level

import "fmt"

// DefaultSpikeRow is the row spike patterns use when they do not name one:
// the row directly above the default ground row.
const DefaultSpikeRow = 8

// Pattern generates a run of spikes: one every Every columns from Start to
// End inclusive, on row Y.
type Pattern struct {
	Start int
	End   int
	Every int
	Y     *int
}

// Expand returns the tiles of the pattern, dropping columns at or beyond
// length. defaultRow is used when the pattern has no explicit row.
func (p Pattern) Expand(length, defaultRow int) ([]Tile, error) {
	if p.Every <= 0 {
		return nil, fmt.Errorf("%w: spike pattern %d..%d has non-positive step %d", ErrInvalid, p.Start, p.End, p.Every)
	}
	if p.Start < 0 {
		return nil, fmt.Errorf("%w: spike pattern starts at negative column %d", ErrInvalid, p.Start)
	}
	row := defaultRow
	if p.Y != nil {
		row = *p.Y
	}

	var tiles []Tile
	for x := p.Start; x <= p.End; x += p.Every {
		if x < length {
			tiles = append(tiles, Tile{X: x, Y: row})
		}
	}
	return tiles, nil
}

// ExpandAll expands every pattern and concatenates the results.
func ExpandAll(patterns []Pattern, length, defaultRow int) ([]Tile, error) {
	var out []Tile
	for _, p := range patterns {
		tiles, err := p.Expand(length, defaultRow)
		if err != nil {
			return nil, err
		}
		out = append(out, tiles...)
	}
	return out, nil
}
