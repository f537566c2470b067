package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-attackers/internal/highscore"
	"github.com/vovakirdan/space-attackers/internal/registry"
	"github.com/vovakirdan/space-attackers/internal/shooter"
	"github.com/vovakirdan/space-attackers/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top 10 scores recorded for a game, Space Attackers by
default, followed by the highscore table shown in the game.

Examples:
  attackers scores
  attackers scores --db ./scores.db
  attackers scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded history of the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := shooter.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'attackers list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return
	}

	printHistory(store, gameID, game.Title())

	if gameID == shooter.GameID {
		printTable()
	}
}

func printHistory(store *storage.Store, gameID, title string) {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'attackers play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %-4s  %s\n", "Rank", "Name", "Score", "Level", "Acc", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %-4s  %s\n", "----", "----", "-----", "-----", "---", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-10s  %-8d  %-5d  %3d%%  %s\n",
			i+1, e.Name, e.Score, e.Level, e.Accuracy, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Avg: %.0f  Best level: %d  Avg accuracy: %.0f%%\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestLevel, stats.AvgAccuracy)
	}
}

// printTable lists the highscore file the game itself shows.
func printTable() {
	cfg, err := loadConfig("")
	if err != nil || cfg.Highscores.File == "" {
		return
	}
	table, err := highscore.Load(cfg.Highscores.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Printf("Highscore table (%s)\n", table.Path())
	fmt.Println()
	for _, e := range table.Top(10) {
		fmt.Println("  " + highscore.Format(e))
	}
}
