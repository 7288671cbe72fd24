// skyfall is a terminal rendition of the classic missile defense
// arcade game.
//
// Usage:
//
//	skyfall                  - Start the title menu
//	skyfall play             - Jump straight into a game
//	skyfall scores           - Show the high score table
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.skyfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyfall",
	Short: "Skyfall Command - missile defense in your terminal",
	Long: `Skyfall Command is a terminal missile defense game. Rockets rain
down in waves; move the crosshair and detonate interceptor blasts to
stop them before they reach the ground.

Available commands:
  play     - Jump straight into a game
  menu     - Interactive title menu (default)
  scores   - View the high score table

Examples:
  skyfall
  skyfall play --difficulty hard
  skyfall play --seed 12345
  skyfall scores`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			level = log.WarnLevel
		}
		log.SetLevel(level)
	},
	Run: runMenu, // Default to the title menu
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyfall/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}
