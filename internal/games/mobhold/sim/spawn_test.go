package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/mobhold/internal/config"
)

func TestCurrentPhase(t *testing.T) {
	tests := []struct {
		name     string
		gameTime float64
		freeze   bool
		expected float64
	}{
		{"start", 0, false, 2500},
		{"just before second", 59999, false, 2500},
		{"second", 60000, false, 1800},
		{"late", 600000, false, 1800},
		{"frozen", 600000, true, 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 1)
			w.cfg.Difficulty.FreezePhases = tt.freeze
			w.gameTime = tt.gameTime
			if got := w.currentPhase().SpawnInterval; got != tt.expected {
				t.Errorf("SpawnInterval: got %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestSpawnIntervalFloor(t *testing.T) {
	cfg := config.DefaultMobholdConfig()
	cfg.Phases[0].SpawnInterval = 100
	w := New(cfg, 1)

	w.updateSpawnRate(0.01)

	if w.SpawnInterval() != cfg.Spawn.MinInterval {
		t.Errorf("SpawnInterval: got %v, expected %v", w.SpawnInterval(), cfg.Spawn.MinInterval)
	}
}

func TestWeightedSpawnIgnoresZeroWeight(t *testing.T) {
	w := newTestWorld(t, 99)
	phase := config.SpawnPhase{SpawnInterval: 1000, Enemies: config.Weights{
		{Type: "SpiderYellow", Weight: 10},
		{Type: "YellowBat", Weight: 0},
	}}

	for range 100 {
		w.spawnEnemy(phase)
	}

	if len(w.enemies) == 0 {
		t.Fatal("Expected at least one spawn")
	}
	for _, e := range w.enemies {
		if e.Type != "SpiderYellow" {
			t.Errorf("Spawned type: got %s, expected SpiderYellow", e.Type)
		}
	}
}

func TestSpawnOutsideView(t *testing.T) {
	w := newTestWorld(t, 3)
	w.camera = Vec2{500, -200}
	phase := w.currentPhase()

	for range 50 {
		w.spawnEnemy(phase)
	}

	for _, e := range w.enemies {
		rel := e.Pos.Sub(w.camera)
		if math.Abs(rel.X) <= w.viewport.X/2 && math.Abs(rel.Y) <= w.viewport.Y/2 {
			t.Errorf("Enemy spawned inside the view at %+v", e.Pos)
		}
		if w.terrain.IsBlocked(e.Pos.X, e.Pos.Y) {
			t.Errorf("Enemy spawned on blocking terrain at %+v", e.Pos)
		}
	}
}

// tileCenter returns the world position at the middle of a tile.
func tileCenter(w *World, x, y int) Vec2 {
	ts := w.terrain.TileSize()
	return Vec2{(float64(x) + 0.5) * ts, (float64(y) + 0.5) * ts}
}

func TestSpawnGivesUpOnBlockedEdges(t *testing.T) {
	tests := []struct {
		name        string
		blocked     bool
		maxAttempts int
		expected    int
	}{
		{"open ground", false, 10, 20},
		{"all edges blocked", true, 10, 0},
		{"no attempts", false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultMobholdConfig()
			cfg.Spawn.EdgeMargin = 0
			cfg.Spawn.MaxAttempts = tt.maxAttempts
			w := New(cfg, 11)
			// A tiny viewport collapses every edge onto the camera tile.
			w.SetViewport(1e-3, 1e-3)
			bx, by := findWall(t, w)
			if tt.blocked {
				w.camera = tileCenter(w, bx, by)
			} else {
				w.camera = tileCenter(w, bx-1, by)
			}

			for range 20 {
				w.spawnEnemy(w.currentPhase())
			}

			if w.events.Spawned != tt.expected {
				t.Errorf("Spawned: got %d, expected %d", w.events.Spawned, tt.expected)
			}
			if len(w.enemies) != tt.expected {
				t.Errorf("Enemies: got %d, expected %d", len(w.enemies), tt.expected)
			}
		})
	}
}

func TestSwarmSkipsBlockedSlots(t *testing.T) {
	cfg := config.DefaultMobholdConfig()
	cfg.Swarm.ExtraMax = 0
	cfg.Swarm.AngleJitter = 0
	w := New(cfg, 3)
	ts := w.terrain.TileSize()
	cfg.Swarm.RadiusMin, cfg.Swarm.RadiusMax = ts, ts
	w.cfg.Swarm = cfg.Swarm

	bx, by := findWall(t, w)
	w.player.Pos = tileCenter(w, bx-1, by) // Slot 0 lands on the wall

	count := cfg.Swarm.MinCount
	slots := make(map[Vec2]bool)
	open := 0
	for i := range count {
		pos := w.player.Pos.Add(FromAngle(2 * math.Pi * float64(i) / float64(count)).Scale(ts))
		if !w.terrain.IsBlocked(pos.X, pos.Y) {
			slots[pos] = true
			open++
		}
	}
	if open == count {
		t.Fatal("expected at least one blocked slot")
	}

	w.spawnSwarm(w.cfg.Phases[1])

	if !w.events.Swarm {
		t.Error("Swarm event not recorded")
	}
	if w.events.SwarmSpawned != open {
		t.Errorf("SwarmSpawned: got %d, expected %d", w.events.SwarmSpawned, open)
	}
	for _, e := range w.enemies {
		if !slots[e.Pos] {
			t.Errorf("Enemy at %+v is not on an open ring slot", e.Pos)
		}
	}
}

func TestSwarmFullyBlocked(t *testing.T) {
	w := newTestWorld(t, 5)
	w.cfg.Swarm.RadiusMin, w.cfg.Swarm.RadiusMax = 0, 0
	bx, by := findWall(t, w)
	w.player.Pos = tileCenter(w, bx, by)

	w.spawnSwarm(w.cfg.Phases[1])

	if !w.events.Swarm {
		t.Error("Swarm event should fire even when every slot is blocked")
	}
	if w.events.SwarmSpawned != 0 || len(w.enemies) != 0 {
		t.Errorf("SwarmSpawned: got %d (%d enemies), expected 0", w.events.SwarmSpawned, len(w.enemies))
	}
}

func TestSpawnIDsAreUnique(t *testing.T) {
	w := newTestWorld(t, 5)
	phase := w.currentPhase()
	for range 30 {
		w.spawnEnemy(phase)
	}

	seen := make(map[EnemyID]bool)
	for _, e := range w.enemies {
		if e.ID == 0 {
			t.Error("Enemy ID should never be zero")
		}
		if seen[e.ID] {
			t.Errorf("Duplicate enemy ID %d", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestDifficultyScalesSpawns(t *testing.T) {
	cfg := config.DefaultMobholdConfig()
	config.ApplyMobholdPreset(&cfg, config.DifficultyHard)
	w := New(cfg, 1)

	e := w.newEnemy("Beast", Vec2{100, 0})

	if e.Health != 52 || e.MaxHealth != 52 {
		t.Errorf("Health: got %d/%d, expected 52/52", e.Health, e.MaxHealth)
	}
	if math.Abs(e.Speed-0.9*1.15) > 1e-9 {
		t.Errorf("Speed: got %v, expected %v", e.Speed, 0.9*1.15)
	}
}

func TestSwarmSize(t *testing.T) {
	tests := []struct {
		name     string
		gameTime float64
		maxCount int
	}{
		{"first minute", 0, 9},
		{"twenty minutes", 20 * 60000, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(1); seed <= 20; seed++ {
				w := newTestWorld(t, seed)
				w.gameTime = tt.gameTime
				phase := w.cfg.Phases[1]

				w.spawnSwarm(phase)

				if !w.events.Swarm {
					t.Fatal("Swarm event not recorded")
				}
				n := len(w.enemies)
				if n > tt.maxCount {
					t.Errorf("seed %d: swarm size got %d, expected at most %d", seed, n, tt.maxCount)
				}
				if n != w.events.SwarmSpawned {
					t.Errorf("seed %d: SwarmSpawned got %d, expected %d", seed, w.events.SwarmSpawned, n)
				}
				top := make(map[string]bool)
				for _, wt := range phase.Enemies.Top(w.cfg.Swarm.TopTypes) {
					top[wt.Type] = true
				}
				for _, e := range w.enemies {
					if !top[e.Type] {
						t.Errorf("seed %d: swarm type %s is not among the heaviest", seed, e.Type)
					}
					if e.Type == "Beast" {
						t.Errorf("seed %d: swarm used Beast, which is outside the top 3", seed)
					}
					d := e.Pos.Dist(w.player.Pos)
					if d < w.cfg.Swarm.RadiusMin-1e-6 || d >= w.cfg.Swarm.RadiusMax {
						t.Errorf("seed %d: ring radius got %v", seed, d)
					}
				}
			}
		})
	}
}

func TestSwarmTiming(t *testing.T) {
	w := newTestWorld(t, 1)
	w.gameTime = 44980

	w.updateSpawnRate(0.01)
	if w.firstSwarmDone {
		t.Fatal("First swarm fired early")
	}

	w.updateSpawnRate(0.01)
	if !w.firstSwarmDone || !w.events.Swarm {
		t.Fatal("First swarm should fire at 45s")
	}
	if w.swarmTimer != 0 {
		t.Errorf("swarmTimer after first swarm: got %v, expected 0", w.swarmTimer)
	}

	w.events = StepEvents{}
	w.updateSpawnRate(34.9)
	if w.events.Swarm {
		t.Error("Second swarm fired early")
	}
	w.updateSpawnRate(0.2)
	if !w.events.Swarm {
		t.Error("Second swarm should fire after the interval")
	}
}
