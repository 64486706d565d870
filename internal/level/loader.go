package level

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// Loader handles loading levels from a directory tree.
type Loader struct {
	Root     string
	SpikeRow int

	fsys fs.FS
}

// NewLoader creates a loader for the directory at root.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, SpikeRow: DefaultSpikeRow, fsys: os.DirFS(root)}
}

// NewFSLoader creates a loader reading from fsys; root is only used in
// error messages and Level.Source.
func NewFSLoader(fsys fs.FS, root string) *Loader {
	return &Loader{Root: root, SpikeRow: DefaultSpikeRow, fsys: fsys}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering. Files that fail to
// parse or validate are skipped; their errors are joined into the returned
// error alongside the levels that did load.
func (l *Loader) LoadAll() ([]*Level, error) {
	var (
		levels  []*Level
		skipped []error
		seen    = make(map[string]string)
	)

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		loaded, err := l.loadPath(p)
		if err != nil {
			skipped = append(skipped, err)
			return nil
		}
		for _, lvl := range loaded {
			if prev, dup := seen[lvl.ID]; dup {
				skipped = append(skipped, fmt.Errorf("%w: duplicate id %q in %s (first in %s)", ErrInvalid, lvl.ID, lvl.Source, prev))
				continue
			}
			seen[lvl.ID] = lvl.Source
			levels = append(levels, lvl)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, errors.Join(skipped...)
}

// LoadFile loads every level in a single file. The path is relative to Root.
func (l *Loader) LoadFile(name string) ([]*Level, error) {
	return l.loadPath(filepath.ToSlash(name))
}

func (l *Loader) loadPath(p string) ([]*Level, error) {
	source := filepath.Join(l.Root, filepath.FromSlash(p))

	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", source, err)
	}

	levels, err := ParseYAML(data, l.SpikeRow)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", source, err)
	}
	for _, lvl := range levels {
		lvl.Source = source
	}
	return levels, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (*Level, error) {
	levels, _ := l.LoadAll()
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return nil, fmt.Errorf("level not found: %s", id)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(FormatExtensions(), ext)
}
