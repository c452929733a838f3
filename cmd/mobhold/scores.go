package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mobhold/internal/games/mobhold"
	"github.com/vovakirdan/mobhold/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

Examples:
  mobhold scores
  mobhold scores --limit 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(mobhold.GameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Mobhold")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mobhold play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10s  %s (%s)\n",
			i+1,
			humanize.Comma(int64(entry.Score)),
			entry.CreatedAt.Format("2006-01-02 15:04"),
			humanize.Time(entry.CreatedAt),
		)
	}

	stats, err := store.GetGameStats(mobhold.GameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %s  Games: %s  Average: %s\n",
			humanize.Comma(int64(stats.HighScore)),
			humanize.Comma(int64(stats.GamesCount)),
			humanize.Comma(int64(stats.AvgScore)),
		)
	}
}
