// serpent is a terminal snake game with power-ups, game modes and an SSH server.
//
// Usage:
//
//	serpent modes             - List available game modes
//	serpent play              - Play (interactive mode picker)
//	serpent play --mode maze  - Play a specific mode
//	serpent serve             - Start SSH server for remote play
//	serpent scores [mode]     - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.serpent/runs.db)
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
	Use:   "serpent",
	Short: "Serpent - Snake with power-ups in your terminal",
	Long: `Serpent is a terminal snake game with tiered food, stackable
power-ups and several board layouts to play on.

Available commands:
  modes    - Show all available game modes
  play     - Play a round (interactive picker unless --mode is given)
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  serpent modes
  serpent play
  serpent play --mode maze --difficulty hard
  serpent serve --ssh :2222
  serpent scores classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.serpent/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
