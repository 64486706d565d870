package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neondash/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List or validate levels",
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the level catalog",
	Long:  `Shows the built-in levels, or the levels found under --levels.`,
	Args:  cobra.NoArgs,
	RunE:  runLevelsList,
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check level files",
	Long: `Parses and validates each file, printing one line per level.
The command fails when any file is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLevelsValidate,
}

func init() {
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsValidateCmd)
}

func runLevelsList(cmd *cobra.Command, _ []string) error {
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

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tNAME\tLENGTH\tSPIKES\tPLATFORMS\tPORTALS")
	for i, lvl := range cat.Levels() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\t%d\n",
			i+1, lvl.ID, lvl.Name, lvl.Length, len(lvl.Spikes), len(lvl.Platforms), len(lvl.Portals))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "Run 'neondash play <id>' to play a level.")
	return nil
}

// errInvalidFiles reports that validation found bad files.
var errInvalidFiles = errors.New("some level files are invalid")

func runLevelsValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	failed := 0
	for _, name := range args {
		data, err := os.ReadFile(name)
		if err == nil {
			var levels []*level.Level
			levels, err = level.ParseYAML(data, level.DefaultSpikeRow)
			if err == nil {
				for _, lvl := range levels {
					fmt.Fprintf(out, "ok    %s: %s (%d spikes, %d portals)\n", name, lvl.ID, len(lvl.Spikes), len(lvl.Portals))
				}
				continue
			}
		}
		failed++
		fmt.Fprintf(out, "FAIL  %s: %v\n", name, err)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errInvalidFiles, failed, len(args))
	}
	return nil
}
