package mobhold

import (
	"math"

	"github.com/vovakirdan/mobhold/internal/games/mobhold/sim"
)

// Autopilot tuning in world units.
const (
	threatRadius = 320.0
	homeRadius   = 600.0
)

// Autopilot steers away from nearby enemies, weighting each by inverse
// square distance. With nothing close it drifts back toward the origin,
// where the terrain is open.
func Autopilot(snap *sim.Snapshot) sim.Input {
	var push sim.Vec2
	for _, e := range snap.Enemies {
		d := snap.Player.Pos.Sub(e.Pos)
		dist := d.Len()
		if dist == 0 || dist > threatRadius {
			continue
		}
		push = push.Add(d.Scale(1 / (dist * dist * dist)))
	}

	if !push.IsZero() {
		return sim.Input{Stick: push.Normalize()}
	}

	home := snap.Player.Pos.Scale(-1)
	if home.Len() > homeRadius {
		return sim.Input{Stick: home.Normalize()}
	}

	// Slow circle so directional weapons sweep the area.
	angle := snap.GameTime / 1000 * 0.5
	return sim.Input{Stick: sim.FromAngle(angle).Scale(0.5)}
}

// pickUpgrade prefers upgrades to owned weapons, then new weapons, then
// scrolls. Ties go to the earliest slot.
func pickUpgrade(opts []sim.UpgradeOption) int {
	best, bestRank := 0, math.MaxInt
	for i, o := range opts {
		rank := int(o.Kind)
		if rank < bestRank {
			best, bestRank = i, rank
		}
	}
	return best
}
