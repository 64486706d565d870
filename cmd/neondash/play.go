package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neondash/internal/level"
	"github.com/vovakirdan/neondash/internal/platform/tui"
)

var flagWatch bool

var errWatchWithoutDir = errors.New("--watch needs a --levels directory")

var playCmd = &cobra.Command{
	Use:   "play [level-id]",
	Short: "Play a level",
	Long: `Start the game in the terminal. Without a level ID the menu opens on
the first level.

Controls:
  Space/Up     - Jump (cube) / fly up (ship); start or retry a run
  Left/Right   - Pick a level in the menu
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Terminals do not report key release, so holding is inferred from key
auto-repeat.

Examples:
  neondash play
  neondash play 01-neon-gateway
  neondash play --levels ./levels --watch
  neondash play --config ./floaty.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload levels when files under --levels change")
}

func runPlay(_ *cobra.Command, args []string) error {
	if flagWatch && flagLevelsDir == "" {
		return errWatchWithoutDir
	}

	// The alt screen owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	spikeRow := cfg.World.GroundRow - 1
	cat, err := loadCatalog(flagLevelsDir, spikeRow, logger)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rt := runtimeConfig(width, height)

	levelID := ""
	if len(args) > 0 {
		levelID = args[0]
	}
	session, err := newSession(cat, cfg, rt, levelID)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Runtime:       rt,
		HoldRelease:   cfg.Input.HoldRelease(),
		ArenaCapacity: cfg.Effects.ArenaCapacity,
		Logger:        logger,
	}

	if flagWatch {
		w, err := level.Watch(level.DefaultDebounce, flagLevelsDir)
		if err != nil {
			return err
		}
		defer w.Close() //nolint:errcheck // Best-effort close on exit
		logger.Info("watching levels", "dir", flagLevelsDir)

		opts.Reload = tui.ReloadCatalogs(w, func() (*level.Catalog, error) {
			return loadCatalog(flagLevelsDir, spikeRow, logger)
		}, logger)
	}

	return tui.Run(session, opts)
}
