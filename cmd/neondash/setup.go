package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neondash/internal/config"
	"github.com/vovakirdan/neondash/internal/core"
	"github.com/vovakirdan/neondash/internal/game"
	"github.com/vovakirdan/neondash/internal/level"
)

// newLogger builds the logger for a command. Logs go to --log-file when set
// and to fallback otherwise. The returned close func releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closeFn := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "neondash",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

// runtimeConfig returns the driver parameters from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// loadConfig loads the dash config named by --config or found on the
// search path.
func loadConfig(logger *log.Logger) (config.DashConfig, error) {
	cfg, err := config.LoadDash(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "custom", flagConfig, "tick_rate", cfg.Physics.TickRate)
	return cfg, nil
}

// loadCatalog loads the built-in levels, or every level under dir.
// Files that fail to load are logged and skipped.
func loadCatalog(dir string, spikeRow int, logger *log.Logger) (*level.Catalog, error) {
	if dir == "" {
		cat, err := level.Builtin()
		if err != nil {
			return nil, err
		}
		logger.Debug("built-in levels loaded", "levels", cat.Len())
		return cat, nil
	}

	loader := level.NewLoader(dir)
	loader.SpikeRow = spikeRow
	levels, err := loader.LoadAll()
	if err != nil {
		if len(levels) == 0 {
			return nil, fmt.Errorf("no levels loaded from %s: %w", dir, err)
		}
		logger.Warn("some level files were skipped", "dir", dir, "error", err)
	}
	cat, cerr := level.NewCatalog(levels...)
	if cerr != nil {
		return nil, errors.Join(cerr, err)
	}
	logger.Info("levels loaded", "dir", dir, "levels", cat.Len())
	return cat, nil
}

// newSession builds a session and selects levelID when given.
func newSession(cat *level.Catalog, cfg config.DashConfig, rt core.RuntimeConfig, levelID string) (*game.Session, error) {
	s, err := game.NewSession(cat, game.NewPhysics(cfg), rt)
	if err != nil {
		return nil, err
	}
	if levelID != "" {
		idx, ok := cat.Index(levelID)
		if !ok {
			return nil, fmt.Errorf("unknown level %q (run 'neondash levels list')", levelID)
		}
		s.Select(idx)
	}
	return s, nil
}
