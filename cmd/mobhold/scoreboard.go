package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mobhold/internal/games/mobhold"
	"github.com/vovakirdan/mobhold/internal/platform/tui"
	"github.com/vovakirdan/mobhold/internal/storage"
)

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Browse high scores and recent runs",
	Long: `Open the interactive scoreboard with Top Scores and Recent Runs tabs.

Controls:
  Tab/Left/Right - Switch tab
  Up/Down        - Scroll
  Esc/Q          - Quit`,
	Args: cobra.NoArgs,
	Run:  runScoreboard,
}

func runScoreboard(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := terminalSize()
	if err := tui.RunScoreboard(store, mobhold.GameID, "Mobhold", width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
