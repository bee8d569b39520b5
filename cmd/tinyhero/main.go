// tinyhero is a terminal arcade game about a 3x3 pixel hero.
//
// Usage:
//
//	tinyhero                 - Launcher menu (play, run history, gimmick list)
//	tinyhero play            - Start a run directly
//	tinyhero runs            - Browse recorded stage attempts
//	tinyhero stage <n>       - Print a generated course for stage n
//	tinyhero unlocks         - Print the gimmick unlock table
//	tinyhero config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible courses
//	--db <path>        - Set database path (default: ~/.tinyhero/runs.db)
//	--config <path>    - Use a custom config YAML
//	--log-file <path>  - Write in-game events to a file at debug level
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
)

// logger reports CLI-level problems on stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "tinyhero",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tinyhero",
	Short: "Tiny Hero - shape a 3x3 pixel hero and survive the course",
	Long: `Tiny Hero is a terminal arcade game. Place a few pixels on a 3x3 grid,
then watch your hero scroll through a course of gimmicks that cut,
rotate, drop and steal pixels. Clear a stage to earn one more pixel.

Available commands:
  play     - Start a run directly
  runs     - Browse recorded stage attempts
  stage    - Print a generated course
  unlocks  - Print the gimmick unlock table
  config   - Print the effective configuration

Run without a command to open the launcher menu.

Examples:
  tinyhero
  tinyhero play --seed 42
  tinyhero stage 5 --seed 42
  tinyhero runs`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLauncher,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tinyhero/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write in-game events to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(stageCmd)
	rootCmd.AddCommand(unlocksCmd)
	rootCmd.AddCommand(configCmd)
}
