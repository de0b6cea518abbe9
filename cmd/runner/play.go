package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMode       string
	flagMute       bool
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the runner. The game defaults to "runner".

Controls:
  Right/D    - Run forward (hold)
  Left/A     - Walk back (hold)
  Space/Up   - Jump, press again in the air to double jump
  Enter      - Start from the menu, restart after game over
  Left/Right - Pick difficulty on the start screen
  P          - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy    - Slower world, fewer hazards
  medium  - The default
  hard    - Faster world, more holes, birds and snails

Movement modes:
  manual  - The world scrolls while you hold Right
  auto    - The world scrolls on its own and speeds up over time

Examples:
  runner play
  runner play --difficulty hard
  runner play --mode auto --mute
  runner play runner_auto --log-file runner.log
  runner play --config ./my-runner.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Movement mode: manual, auto")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := runner.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'runner list' to see available games.")
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	deps := openLocalDeps(flagLogFile, flagMute)
	runErr := tui.Run(game, deps.Deps, runtimeConfig())
	deps.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyGameFlags checks the game flags and hands them to the runner.
func applyGameFlags() error {
	if flagConfig != "" {
		if _, err := config.LoadRunner(flagConfig); err != nil {
			return err
		}
	}
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (easy, medium, hard)", flagDifficulty)
		}
	}
	switch config.MovementMode(flagMode) {
	case "", config.MovementManual, config.MovementAuto:
	default:
		return fmt.Errorf("unknown mode %q (manual, auto)", flagMode)
	}

	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)
	runner.SetMovementMode(flagMode)
	return nil
}
