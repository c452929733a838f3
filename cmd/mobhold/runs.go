package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mobhold/internal/games/mobhold"
	"github.com/vovakirdan/mobhold/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs [id]",
	Short: "Show recent runs",
	Long: `List recent runs, newest first, or show one run in detail.

Examples:
  mobhold runs
  mobhold runs --limit 50
  mobhold runs 3f2b9c1e-...`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&flagRunsLimit, "limit", "n", 20, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		showRun(store, args[0])
		return
	}

	runs, err := store.RecentRuns(mobhold.GameID, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-8s  %-14s  %-8s  %-6s  %-6s  %-8s  %s\n", "ID", "When", "Score", "Kills", "Time", "Mode", "Killed by")
	fmt.Printf("  %-8s  %-14s  %-8s  %-6s  %-6s  %-8s  %s\n", "--", "----", "-----", "-----", "----", "----", "---------")
	for _, r := range runs {
		mode := r.Difficulty
		if r.Headless {
			mode += "*"
		}
		fmt.Printf("  %-8s  %-14s  %-8s  %-6d  %-6s  %-8s  %s\n",
			r.ID[:min(8, len(r.ID))],
			humanize.Time(r.CreatedAt),
			humanize.Comma(int64(r.Score)),
			r.Kills,
			clock(r.Duration.Seconds()),
			mode,
			r.KilledBy,
		)
	}
	fmt.Println()
	fmt.Println("* simulated by the autopilot")
}

func showRun(store *storage.Store, id string) {
	r, err := store.RunByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if r == nil {
		fmt.Fprintf(os.Stderr, "Error: no run with id %q\n", id)
		os.Exit(1)
	}

	fmt.Printf("Run %s\n\n", r.ID)
	fmt.Printf("  Played:     %s (%s)\n", r.CreatedAt.Format("2006-01-02 15:04"), humanize.Time(r.CreatedAt))
	fmt.Printf("  Seed:       %d\n", r.Seed)
	fmt.Printf("  Difficulty: %s\n", r.Difficulty)
	fmt.Printf("  Score:      %s\n", humanize.Comma(int64(r.Score)))
	fmt.Printf("  Kills:      %s\n", humanize.Comma(int64(r.Kills)))
	fmt.Printf("  Survived:   %s\n", clock(r.Duration.Seconds()))
	fmt.Printf("  Upgrades:   %d\n", r.Upgrades)
	fmt.Printf("  Loadout:    %s\n", strings.Join(r.Loadout, ", "))
	if r.KilledBy != "" {
		fmt.Printf("  Killed by:  %s\n", r.KilledBy)
	}
	if r.Headless {
		fmt.Println("  Simulated by the autopilot")
	}
}

// clock renders seconds as m:ss.
func clock(secs float64) string {
	s := int(secs)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
