// skyfall is a terminal dodge game: steer the paddle, avoid the falling
// squares, survive as long as you can.
//
// Usage:
//
//	skyfall play              - Play in the current terminal
//	skyfall serve             - Start SSH server for remote play
//	skyfall scores            - Show the high score table
//	skyfall config            - Print the default game config
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

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyfall",
	Short: "Skyfall - dodge falling squares in your terminal",
	Long: `Skyfall is a terminal arcade game. Squares rain down a playfield;
you steer a paddle along the bottom and survive for as long as you can.
Every tick survived is a point.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View the high score table
  config   - Print the default game config

Examples:
  skyfall play
  skyfall play --seed 42
  skyfall serve --ssh :2222
  skyfall scores --board`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyfall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
