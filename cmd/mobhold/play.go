package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mobhold/internal/core"
	"github.com/vovakirdan/mobhold/internal/games/mobhold"
	"github.com/vovakirdan/mobhold/internal/platform/tui"
	"github.com/vovakirdan/mobhold/internal/registry"
	"github.com/vovakirdan/mobhold/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run immediately, skipping the menu.

Controls:
  WASD/Arrows  - Move
  Mouse        - Click or drag to walk there
  1-3/Enter    - Pick an upgrade
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower spawns, weaker monsters
  normal - Catalog values
  hard   - Faster spawns, tougher monsters
  fixed  - Stays on the first spawn phase for the whole run

Examples:
  mobhold play
  mobhold play --difficulty hard
  mobhold play --seed 42
  mobhold play --config ./my-mobhold.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closer := openLogger(false)
	defer closer.Close()

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := playOnce(store, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playOnce runs one game session until the player quits.
func playOnce(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	game, err := registry.Create(mobhold.GameID)
	if err != nil {
		return err
	}
	return tui.Run(game, store, cfg, logger)
}
