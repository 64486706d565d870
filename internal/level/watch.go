package level

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a directory has to stay quiet before a batch
// of changed level files is reported.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changed level files under a set of directories.
// Bursts of events are coalesced into one sorted batch of paths.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	changes  chan []string
	errors   chan error
	done     chan struct{}
	once     sync.Once
}

// Watch starts watching dirs and their subdirectories.
func Watch(debounce time.Duration, dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return fsw.Add(p)
			}
			return nil
		})
		if err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		fsw:      fsw,
		debounce: debounce,
		changes:  make(chan []string, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Changes delivers batches of changed level file paths. It is closed after
// Close.
func (w *Watcher) Changes() <-chan []string {
	return w.changes
}

// Errors delivers watcher errors. Errors are dropped while one is unread.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.changes)
	defer close(w.errors)

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 || !isLevelFile(ev.Name) {
				continue
			}
			pending[ev.Name] = struct{}{}
			timer.Reset(w.debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			batch := make([]string, 0, len(pending))
			for name := range pending {
				batch = append(batch, name)
			}
			clear(pending)
			slices.Sort(batch)
			select {
			case w.changes <- batch:
			case <-w.done:
				return
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}

		case <-w.done:
			return
		}
	}
}

func isLevelFile(path string) bool {
	return isSupportedExtension(strings.ToLower(filepath.Ext(path)))
}
