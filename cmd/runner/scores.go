package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/journal"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// journalTail is how many journal entries the scores command prints.
const journalTail = 5

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the best runs for a game",
	Long: `Display the top 10 runs, the best score and run statistics for the
specified game (default "runner"). With --journal, the latest entries of
the run journal are listed too.

Examples:
  runner scores
  runner scores runner_auto
  runner scores --journal ~/.arcade/journal`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
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

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'runner play %s' to set the first high score!\n", gameID)
	} else {
		printRuns(runs)
		printStats(store, gameID)
	}

	if flagJournal != "" {
		printJournal(gameID)
	}
}

func printRuns(runs []storage.RunRecord) {
	fmt.Printf("  %-4s  %-7s  %-6s  %-8s  %-6s  %-14s  %s\n", "Rank", "Score", "Coins", "Distance", "Tier", "End", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-8s  %-6s  %-14s  %s\n", "----", "-----", "-----", "--------", "----", "---", "----")

	for i, r := range runs {
		end := r.EndReason
		if r.KilledBy != "" {
			end += " (" + r.KilledBy + ")"
		}
		fmt.Printf("  %-4d  %-7d  %-6d  %-8.0f  %-6s  %-14s  %s\n",
			i+1, r.Score, r.CoinScore, r.Distance, r.Difficulty, end, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
}

func printStats(store *storage.Store, gameID string) {
	fmt.Println()
	if best, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}

	st, err := store.Stats(gameID)
	if err != nil {
		return
	}
	fmt.Printf("Runs: %d  Avg score: %.1f  Avg distance: %.0f  Deaths: %d  Time ups: %d\n",
		st.RunsCount, st.AvgScore, st.AvgDistance, st.Deaths, st.TimeUps)
	if !st.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}

func printJournal(gameID string) {
	recs, err := journal.ReadAll(flagJournal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	var mine []journal.Record
	for _, r := range recs {
		if r.Game == gameID {
			mine = append(mine, r)
		}
	}

	fmt.Println()
	fmt.Printf("Journal: %d runs\n", len(mine))
	for _, r := range mine[max(len(mine)-journalTail, 0):] {
		who := r.Player
		if who == "" {
			who = "-"
		}
		fmt.Printf("  %s  %-10s  %6d  %-8s  %s\n", r.Time.Local().Format("2006-01-02 15:04"), who, r.Score, r.Reason, r.Difficulty)
	}
}
