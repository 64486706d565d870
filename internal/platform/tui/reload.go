package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neondash/internal/level"
)

// CatalogMsg carries a reloaded level catalog into the model.
type CatalogMsg struct {
	Catalog *level.Catalog
}

// ReloadCatalogs turns change batches from w into freshly loaded catalogs.
// A failed or empty reload is logged and skipped, keeping the previous
// catalog in play. The returned channel closes once w is closed.
func ReloadCatalogs(w *level.Watcher, load func() (*level.Catalog, error), logger *log.Logger) <-chan *level.Catalog {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	out := make(chan *level.Catalog, 1)

	go func() {
		defer close(out)
		for {
			select {
			case batch, ok := <-w.Changes():
				if !ok {
					return
				}
				cat, err := load()
				if err != nil {
					logger.Warn("level reload failed", "files", batch, "error", err)
					if cat == nil {
						continue
					}
				}
				logger.Info("levels reloaded", "files", len(batch), "levels", cat.Len())
				// Only the newest catalog matters.
				select {
				case <-out:
				default:
				}
				out <- cat
			case err, ok := <-w.Errors():
				if !ok {
					return
				}
				logger.Warn("level watcher error", "error", err)
			}
		}
	}()
	return out
}

// waitForCatalog waits for the next reloaded catalog.
func waitForCatalog(ch <-chan *level.Catalog) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cat, ok := <-ch
		if !ok {
			return nil
		}
		return CatalogMsg{Catalog: cat}
	}
}
