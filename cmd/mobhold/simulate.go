package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mobhold/internal/games/mobhold"
	"github.com/vovakirdan/mobhold/internal/storage"
)

var (
	flagSimDuration time.Duration
	flagSimStep     time.Duration
	flagSimSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the autopilot without a terminal",
	Long: `Drive a seeded run with the autopilot for a fixed simulated time and
print a summary. The autopilot steers away from monsters and always
prefers weapon upgrades. Useful for balancing configs.

Examples:
  mobhold simulate --seed 42
  mobhold simulate --duration 10m --difficulty hard
  mobhold simulate --config ./my-mobhold.yaml --save`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&flagSimDuration, "duration", 5*time.Minute, "Simulated time limit")
	simulateCmd.Flags().DurationVar(&flagSimStep, "step", time.Second/60, "Fixed frame delta")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store the run in the database")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger, closer := openLogger(true)
	defer closer.Close()

	cfg, err := mobhold.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	difficulty := flagDifficulty
	if difficulty == "" {
		difficulty = "normal"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	res, err := mobhold.RunHeadless(ctx, cfg, mobhold.HeadlessOptions{
		Seed:       seed,
		Duration:   flagSimDuration,
		Step:       flagSimStep,
		Difficulty: difficulty,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	wall := time.Since(start)

	outcome := "survived"
	if !res.Survived {
		outcome = "killed by " + res.Run.KilledBy
	}

	fmt.Printf("Seed:       %d\n", seed)
	fmt.Printf("Difficulty: %s\n", difficulty)
	fmt.Printf("Outcome:    %s at %s\n", outcome, clock(res.Run.Duration.Seconds()))
	fmt.Printf("Score:      %s\n", humanize.Comma(int64(res.Run.Score)))
	fmt.Printf("Kills:      %s\n", humanize.Comma(int64(res.Run.Kills)))
	fmt.Printf("Upgrades:   %d\n", res.Run.Upgrades)
	fmt.Printf("Swarms:     %d\n", res.Swarms)
	fmt.Printf("Loadout:    %s\n", strings.Join(res.Run.Loadout, ", "))
	fmt.Printf("Frames:     %s in %s\n", humanize.Comma(int64(res.Frames)), wall.Round(time.Millisecond))
	fmt.Printf("Hash:       %016x\n", res.Hash)

	if !flagSimSave {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveRun(res.Run)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		os.Exit(1)
	}
	logger.Info("run saved", "id", id)
	fmt.Printf("Saved:      %s\n", id)
}
