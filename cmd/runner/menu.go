package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Opens a menu to pick a runner variant or browse the scoreboard.

Menu controls:
  Up/Down    - Navigate
  Enter      - Select
  Tab        - Scoreboard
  Esc/B      - Back to the menu from a finished or paused game
  Q          - Quit`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	menuCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
}

func runMenu(cmd *cobra.Command, args []string) {
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	deps := openLocalDeps(flagLogFile, flagMute)
	err := tui.RunSession(deps.Deps, runtimeConfig())
	deps.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
		os.Exit(1)
	}
}
