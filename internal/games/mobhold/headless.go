package mobhold

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/mobhold/internal/config"
	"github.com/vovakirdan/mobhold/internal/games/mobhold/sim"
	"github.com/vovakirdan/mobhold/internal/storage"
)

// HeadlessOptions configures an autopilot run without a terminal.
type HeadlessOptions struct {
	Seed       int64
	Duration   time.Duration // Simulated time limit
	Step       time.Duration // Fixed frame delta, defaults to 1/60 s
	Difficulty string
}

// HeadlessResult summarizes an autopilot run.
type HeadlessResult struct {
	Run      storage.Run
	Survived bool // Reached the time limit
	Frames   int
	Swarms   int
	Hash     uint64 // Final snapshot hash
}

// RunHeadless drives a seeded world with the autopilot until the time
// limit passes or the player dies. Upgrades are picked automatically.
func RunHeadless(ctx context.Context, cfg config.MobholdConfig, opts HeadlessOptions) (HeadlessResult, error) {
	if opts.Duration <= 0 {
		return HeadlessResult{}, fmt.Errorf("mobhold: duration must be positive, got %s", opts.Duration)
	}
	if opts.Step <= 0 {
		opts.Step = time.Second / 60
	}
	if opts.Difficulty == "" {
		opts.Difficulty = string(config.DifficultyNormal)
	}

	w := sim.New(cfg, opts.Seed)
	dt := opts.Step.Seconds()
	limit := float64(opts.Duration.Milliseconds())

	var res HeadlessResult
	upgrades := 0
	killedBy := ""

	logger.Info("headless run started", "seed", opts.Seed, "duration", opts.Duration, "difficulty", opts.Difficulty)

	for w.GameTime() < limit {
		if res.Frames%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return res, fmt.Errorf("mobhold: headless run interrupted: %w", err)
			}
		}

		if w.State() == sim.StateUpgrading {
			offer := w.Options()
			i := pickUpgrade(offer)
			if w.SelectUpgrade(i) {
				upgrades++
				logger.Debug("autopilot upgrade", "kind", offer[i].Kind, "type", offer[i].Type)
			}
		}

		snap := w.Snapshot()
		ev := w.Update(dt, Autopilot(&snap))
		res.Frames++
		if ev.Swarm {
			res.Swarms++
		}
		if ev.GameOver {
			killedBy = ev.KilledBy
			break
		}
	}

	res.Survived = w.State() != sim.StateGameOver
	res.Run = runRecord(w, opts.Seed, opts.Difficulty, upgrades, killedBy)
	res.Run.Headless = true
	final := w.Snapshot()
	res.Hash = final.Hash()

	logger.Info("headless run finished",
		"score", res.Run.Score,
		"kills", res.Run.Kills,
		"time", res.Run.Duration,
		"survived", res.Survived,
	)
	return res, nil
}
