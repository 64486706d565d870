// neondash is a terminal rhythm platformer: a cube that jumps, a ship that
// flies, and neon courses full of spikes.
//
// Usage:
//
//	neondash play [level-id]        - Play in the terminal
//	neondash levels list            - List the level catalog
//	neondash levels validate <file> - Check level files
//	neondash sim [level-id]         - Run the autopilot headless
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible effects
//	--config <path>     - Custom dash.yaml
//	--levels <dir>      - Load levels from a directory instead of the built-ins
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagConfig    string
	flagLevelsDir string
	flagLogLevel  string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neondash",
	Short: "Neon Dash - a geometry runner for your terminal",
	Long: `Neon Dash is a side-scrolling runner played in the terminal. The cube
jumps over spikes, portals turn it into a ship and back.

Available commands:
  play     - Play a level
  levels   - List or validate levels
  sim      - Run the autopilot without a terminal UI

Examples:
  neondash play
  neondash play 02-cosmic-tunnel
  neondash play --levels ./levels --watch
  neondash levels list
  neondash sim --ticks 5000`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom dash config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level YAML files (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simCmd)
}
