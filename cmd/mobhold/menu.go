package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mobhold/internal/core"
	"github.com/vovakirdan/mobhold/internal/games/mobhold"
	"github.com/vovakirdan/mobhold/internal/platform/tui"
	"github.com/vovakirdan/mobhold/internal/storage"
)

// runMenu loops between the start menu, runs and the scoreboard until
// the player quits.
func runMenu(_ *cobra.Command, _ []string) {
	logger, closer := openLogger(false)
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	difficulty := flagDifficulty
	if difficulty == "" {
		difficulty = "normal"
	}

	for {
		result, err := tui.RunMenu(store, mobhold.GameID, "Mobhold", difficulty, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = result.Config
		difficulty = result.Difficulty

		switch {
		case result.Quit:
			return

		case result.WantsScoreboard:
			if err := tui.RunScoreboard(store, mobhold.GameID, "Mobhold", cfg.ScreenW, cfg.ScreenH); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

		case result.Play:
			mobhold.SetDifficultyPreset(difficulty)
			logger.Info("starting from menu", "difficulty", difficulty)
			if err := playOnce(store, cfg, logger); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				os.Exit(1)
			}
		}
	}
}
