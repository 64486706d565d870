package main

import (
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neondash/internal/game"
)

var (
	flagTicks     int
	flagLookahead float64
	flagAttempts  int
)

var simCmd = &cobra.Command{
	Use:   "sim [level-id]",
	Short: "Run the autopilot headless",
	Long: `Plays levels with a scripted autopilot and no terminal UI, then prints
the outcome of each level. Without a level ID every level in the catalog is
played in order.

The autopilot jumps when a spike is within --lookahead pixels of the
cube's center and flies the ship at mid height. A level stops on victory,
after --attempts deaths or after --ticks ticks.

Examples:
  neondash sim
  neondash sim 02-cosmic-tunnel --attempts 5
  neondash sim --levels ./levels --lookahead 60 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 20000, "Maximum ticks per level (0 = unlimited)")
	simCmd.Flags().Float64Var(&flagLookahead, "lookahead", 80, "Autopilot reaction distance in pixels")
	simCmd.Flags().IntVar(&flagAttempts, "attempts", 1, "Deaths allowed per level")
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(flagLevelsDir, cfg.World.GroundRow-1, logger)
	if err != nil {
		return err
	}

	ids := args
	if len(ids) == 0 {
		for _, lvl := range cat.Levels() {
			ids = append(ids, lvl.ID)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	rt := runtimeConfig(0, 0)
	attempts := max(flagAttempts, 1)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LEVEL\tRESULT\tPERCENT\tTICKS\tDEATHS\tHASH")
	defer tw.Flush() //nolint:errcheck // Best-effort flush on exit

	for _, id := range ids {
		s, err := newSession(cat, cfg, rt, id)
		if err != nil {
			return err
		}

		steps := 0
		count := game.RenderSinkFunc(func(game.Frame) { steps++ })
		done := func(f game.Frame) bool {
			return f.State == game.StateWon || (f.State == game.StateDead && f.Deaths >= attempts)
		}

		f, err := game.Run(ctx, s, game.NewAutopilot(s, flagLookahead), count, done, flagTicks)
		if err != nil {
			return fmt.Errorf("sim %s interrupted: %w", id, err)
		}

		result := f.State.String()
		if f.State == game.StateRunning || f.State == game.StateMenu {
			result = "timeout"
		}
		hash := s.Snapshot().Hash()
		logger.Debug("level simulated", "level", id, "result", result, "percent", f.Percent, "ticks", steps)
		fmt.Fprintf(tw, "%s\t%s\t%d%%\t%d\t%d\t%016x\n", id, result, f.Percent, steps, f.Deaths, hash)
	}
	return nil
}
