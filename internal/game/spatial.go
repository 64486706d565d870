package game

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/neondash/internal/core"
	"github.com/vovakirdan/neondash/internal/level"
)

// Resolv tags.
const (
	tagHazard   = "hazard"
	tagPlatform = "platform"
	tagProbe    = "probe"
)

// spatialIndex is the broad phase: a resolv space with one object per spike
// tile and per platform, queried through a single probe object. Narrow-phase
// tests stay in collision.go so results do not depend on cell size.
type spatialIndex struct {
	space     *resolv.Space
	probe     *resolv.Object
	hazards   map[*resolv.Object]int
	platforms map[*resolv.Object]int
	scratch   []int
}

func newSpatialIndex(lvl *level.Level, p Physics) *spatialIndex {
	tile := p.TileSize
	cell := int(math.Max(1, math.Round(tile)))

	rows := p.GroundRow + 2
	for _, s := range lvl.Spikes {
		rows = core.Max(rows, s.Y+2)
	}
	for _, pl := range lvl.Platforms {
		rows = core.Max(rows, pl.Y+pl.H+1)
	}
	cols := lvl.Length + 1
	for _, s := range lvl.Spikes {
		cols = core.Max(cols, s.X+2)
	}
	for _, pl := range lvl.Platforms {
		cols = core.Max(cols, pl.X+pl.W+1)
	}

	ix := &spatialIndex{
		space:     resolv.NewSpace(int(math.Ceil(float64(cols)*tile)), int(math.Ceil(float64(rows)*tile)), cell, cell),
		hazards:   make(map[*resolv.Object]int, len(lvl.Spikes)),
		platforms: make(map[*resolv.Object]int, len(lvl.Platforms)),
	}

	for i, s := range lvl.Spikes {
		obj := resolv.NewObject(float64(s.X)*tile, float64(s.Y)*tile, tile, tile, tagHazard)
		ix.space.Add(obj)
		ix.hazards[obj] = i
	}
	for i, pl := range lvl.Platforms {
		b := platformBox(pl, tile)
		obj := resolv.NewObject(b.X, b.Y, b.W, b.H, tagPlatform)
		ix.space.Add(obj)
		ix.platforms[obj] = i
	}

	ix.probe = resolv.NewObject(0, 0, 1, 1, tagProbe)
	ix.space.Add(ix.probe)
	return ix
}

// query returns the indices of objects tagged tag whose cells touch box,
// in ascending (declared) order. The slice is reused between calls.
func (ix *spatialIndex) query(box core.Box, tag string) []int {
	ix.scratch = ix.scratch[:0]

	// Resolv maps the far edge with a one-pixel inset; pad so every strict
	// overlap is reported.
	ix.probe.X = box.X - 1
	ix.probe.Y = box.Y - 1
	ix.probe.W = box.W + 2
	ix.probe.H = box.H + 2
	ix.probe.Update()

	check := ix.probe.Check(0, 0, tag)
	if check == nil {
		return ix.scratch
	}

	lookup := ix.hazards
	if tag == tagPlatform {
		lookup = ix.platforms
	}
	for _, obj := range check.ObjectsByTags(tag) {
		if i, ok := lookup[obj]; ok {
			ix.scratch = append(ix.scratch, i)
		}
	}

	sort.Ints(ix.scratch)
	out := ix.scratch[:0]
	for i, v := range ix.scratch {
		if i == 0 || v != ix.scratch[i-1] {
			out = append(out, v)
		}
	}
	ix.scratch = out
	return out
}

func platformBox(pl level.Platform, tile float64) core.Box {
	return core.NewBox(float64(pl.X)*tile, float64(pl.Y)*tile, float64(pl.W)*tile, float64(pl.H)*tile)
}
