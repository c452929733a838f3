package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/mobhold/internal/config"
	"github.com/vovakirdan/mobhold/internal/games/mobhold/terrain"
)

func newTestWorld(t *testing.T, seed int64) *World {
	t.Helper()
	return New(config.DefaultMobholdConfig(), seed)
}

// circleInput walks the player around in a slow square.
func circleInput(step int) Input {
	var in Input
	switch (step / 90) % 4 {
	case 0:
		in.Keys.Right = true
	case 1:
		in.Keys.Down = true
	case 2:
		in.Keys.Left = true
	default:
		in.Keys.Up = true
	}
	return in
}

func runWorld(w *World, steps int) {
	for i := range steps {
		switch w.State() {
		case StateGameOver:
			return
		case StateUpgrading:
			w.SelectUpgrade(0)
		}
		w.Update(1.0/60, circleInput(i))
	}
}

func TestWorldDeterminism(t *testing.T) {
	w1 := newTestWorld(t, 12345)
	w2 := newTestWorld(t, 12345)

	runWorld(w1, 60*90)
	runWorld(w2, 60*90)

	snap1, snap2 := w1.Snapshot(), w2.Snapshot()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if len(snap1.Enemies) != len(snap2.Enemies) {
		t.Errorf("Determinism failed: enemy counts differ. Run1=%d, Run2=%d", len(snap1.Enemies), len(snap2.Enemies))
	}
}

func TestWorldRestart(t *testing.T) {
	w := newTestWorld(t, 7)
	runWorld(w, 60*50)
	w.addWeapon("Bomb")
	w.addScroll("IceScroll")
	w.score = 500

	w.Restart()

	if w.Score() != 0 {
		t.Errorf("Score after restart: got %d, expected 0", w.Score())
	}
	if len(w.enemies) != 0 {
		t.Errorf("Enemies after restart: got %d, expected 0", len(w.enemies))
	}
	if len(w.scrolls) != 0 {
		t.Errorf("Scrolls after restart: got %d, expected 0", len(w.scrolls))
	}
	if len(w.weapons) != 1 {
		t.Fatalf("Weapons after restart: got %d, expected 1", len(w.weapons))
	}
	if w.weapons[0].Type != "Kunai" || w.weapons[0].Level != 0 {
		t.Errorf("Starting weapon: got %s level %d, expected Kunai level 0", w.weapons[0].Type, w.weapons[0].Level)
	}
	if w.State() != StatePlaying {
		t.Errorf("State after restart: got %s, expected playing", w.State())
	}
	if w.GameTime() != 0 || w.UpgradeIndex() != 0 {
		t.Errorf("Clocks after restart: got time %v index %d, expected zeros", w.GameTime(), w.UpgradeIndex())
	}
}

func TestNewWithTerrain(t *testing.T) {
	cfg := config.DefaultMobholdConfig()
	prev := New(cfg, 1).Terrain()
	prev.TileAt(40, 40)

	other := config.DefaultMobholdConfig()
	other.World.TileSize *= 2

	tests := []struct {
		name   string
		cfg    config.MobholdConfig
		gen    *terrain.Generator
		reused bool
	}{
		{"nil generator", cfg, nil, false},
		{"same geometry", cfg, prev, true},
		{"different tile size", other, prev, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWithTerrain(tt.cfg, 2, tt.gen)
			if w.Terrain() == nil {
				t.Fatal("Terrain: got nil")
			}
			if got := w.Terrain() == prev; got != tt.reused {
				t.Errorf("Reused: got %v, expected %v", got, tt.reused)
			}
			if w.Terrain().TileSize() != tt.cfg.World.TileSize {
				t.Errorf("TileSize: got %v, expected %v", w.Terrain().TileSize(), tt.cfg.World.TileSize)
			}
		})
	}
}

func TestUpdateClampsDelta(t *testing.T) {
	w := newTestWorld(t, 1)
	w.Update(5, Input{})

	if math.Abs(w.GameTime()-100) > 1e-9 {
		t.Errorf("GameTime after a 5s frame: got %v, expected 100", w.GameTime())
	}

	w.Update(-1, Input{})
	if math.Abs(w.GameTime()-100) > 1e-9 {
		t.Errorf("GameTime after a negative frame: got %v, expected 100", w.GameTime())
	}
}

func TestPauseAndResume(t *testing.T) {
	w := newTestWorld(t, 1)
	w.Update(0.05, Input{})
	before := w.GameTime()

	if !w.Pause() {
		t.Fatal("Pause on a playing run should succeed")
	}
	if w.Pause() {
		t.Error("Pause on a paused run should fail")
	}
	w.Update(0.05, Input{})
	if w.GameTime() != before {
		t.Errorf("GameTime while paused: got %v, expected %v", w.GameTime(), before)
	}

	if !w.Resume() {
		t.Fatal("Resume on a paused run should succeed")
	}
	if w.ReadyTimer() != 1 {
		t.Errorf("ReadyTimer after resume: got %v, expected 1", w.ReadyTimer())
	}
	w.Update(0.05, Input{})
	if w.GameTime() != before {
		t.Errorf("GameTime during ready countdown: got %v, expected %v", w.GameTime(), before)
	}
	for range 20 {
		w.Update(0.05, Input{})
	}
	if w.GameTime() <= before {
		t.Errorf("GameTime after countdown: got %v, expected more than %v", w.GameTime(), before)
	}
}

func TestContactEndsRun(t *testing.T) {
	tests := []struct {
		name       string
		invincible float64
		expected   GameState
	}{
		{"vulnerable", 0, StateGameOver},
		{"invincible", 1, StatePlaying},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 1)
			w.invincible = tt.invincible
			w.newEnemy("Eye", Vec2{5, 0})

			ev := w.Update(1.0/60, Input{})

			if w.State() != tt.expected {
				t.Errorf("State: got %s, expected %s", w.State(), tt.expected)
			}
			if ev.GameOver != (tt.expected == StateGameOver) {
				t.Errorf("GameOver event: got %v", ev.GameOver)
			}
			if ev.GameOver && ev.KilledBy != "Eye" {
				t.Errorf("KilledBy: got %q, expected %q", ev.KilledBy, "Eye")
			}
		})
	}
}

func TestGameOverFreezesWorld(t *testing.T) {
	w := newTestWorld(t, 1)
	w.newEnemy("Eye", Vec2{5, 0})
	w.Update(1.0/60, Input{})
	time := w.GameTime()

	w.Update(1.0/60, Input{})
	if w.GameTime() != time {
		t.Errorf("GameTime after game over: got %v, expected %v", w.GameTime(), time)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	w := newTestWorld(t, 1)
	e := w.newEnemy("Beast", Vec2{100, 0})
	e.Burn = &Burn{Damage: 3, Remaining: 1000}

	snap := w.Snapshot()
	snap.Enemies[0].Health = 1
	snap.Enemies[0].Burn.Damage = 99
	snap.Weapons[0].Level = 5

	if e.Health != 40 {
		t.Errorf("Enemy health: got %d, expected 40", e.Health)
	}
	if e.Burn.Damage != 3 {
		t.Errorf("Burn damage: got %d, expected 3", e.Burn.Damage)
	}
	if w.weapons[0].Level != 0 {
		t.Errorf("Weapon level: got %d, expected 0", w.weapons[0].Level)
	}
}
