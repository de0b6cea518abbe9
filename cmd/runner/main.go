// runner is an endless side-scrolling runner for the terminal.
//
// Usage:
//
//	runner list              - List the game variants
//	runner play [game]       - Play a variant (default: runner)
//	runner menu              - Pick a variant or the scoreboard interactively
//	runner serve             - Start SSH server for remote play
//	runner scores [game]     - Show the best runs for a variant
//	runner config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.arcade/scores.db)
//	--journal <dir>   - Append finished runs to a compressed journal in dir
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the runner variants
	_ "github.com/vovakirdan/tui-runner/internal/runner"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagJournal string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Endless Runner - jump, collect and survive in your terminal",
	Long: `Endless Runner is a side-scrolling platformer played in the terminal.
Run right, jump over hurdles and holes, collect coins and clocks, and
beat the timer.

Available commands:
  list     - Show the game variants
  play     - Play a variant directly
  menu     - Interactive picker with scoreboard
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print the default YAML configuration

Examples:
  runner play
  runner play runner_auto --difficulty hard
  runner menu
  runner serve --ssh :2222
  runner scores --journal ~/.arcade/journal`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagJournal, "journal", "", "Directory for the compressed run journal (empty = off)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
