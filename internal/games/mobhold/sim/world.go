// Package sim is the Mobhold simulation core. A World owns every piece of
// run state and advances it with a synchronous Update call; it has no
// goroutines, timers or I/O, so the shell (or a test) drives it one frame
// at a time.
package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/mobhold/internal/config"
	"github.com/vovakirdan/mobhold/internal/games/mobhold/terrain"
)

// World is the simulation context.
type World struct {
	cfg         config.MobholdConfig
	weaponDefs  map[string]config.WeaponDef
	scrollDefs  map[string]config.ScrollDef
	monsterDefs map[string]config.MonsterDef

	terrain *terrain.Generator
	rng     *rand.Rand

	state      GameState
	readyTimer float64 // Seconds

	gameTime     float64 // Milliseconds
	score        int
	kills        int
	upgradeIndex int
	options      []UpgradeOption

	player   Player
	camera   Vec2
	viewport Vec2

	enemies     []*Enemy
	nextEnemyID EnemyID
	projectiles []Projectile
	orbiters    []*Orbiter
	effects     []*Effect
	weapons     []*PlayerWeapon
	scrolls     []*PlayerScroll

	spawnTimer     float64 // Milliseconds
	spawnInterval  float64 // Milliseconds
	swarmTimer     float64 // Milliseconds
	firstSwarmDone bool

	speedBoost float64 // Seconds
	invincible float64 // Seconds

	events StepEvents
}

// New creates a world from a validated configuration. The seed drives
// every random draw except terrain, which is a pure coordinate hash.
func New(cfg config.MobholdConfig, seed int64) *World {
	return NewWithTerrain(cfg, seed, nil)
}

// NewWithTerrain is New reusing an existing terrain generator, so a new
// run keeps the previous run's map. The generator is replaced when it is
// nil or was built for a different tile size or safe zone.
func NewWithTerrain(cfg config.MobholdConfig, seed int64, gen *terrain.Generator) *World {
	if gen == nil || gen.TileSize() != cfg.World.TileSize || gen.SafeZone() != cfg.World.SafeZone {
		gen = terrain.New(cfg.World.TileSize, cfg.World.SafeZone)
	}
	w := &World{
		cfg:         cfg,
		weaponDefs:  make(map[string]config.WeaponDef, len(cfg.Weapons)),
		scrollDefs:  make(map[string]config.ScrollDef, len(cfg.Scrolls)),
		monsterDefs: make(map[string]config.MonsterDef, len(cfg.Monsters)),
		terrain:     gen,
		rng:         rand.New(rand.NewSource(seed)),
		viewport:    Vec2{cfg.World.ViewportW, cfg.World.ViewportH},
	}
	for _, d := range cfg.Weapons {
		w.weaponDefs[d.Type] = d
	}
	for _, d := range cfg.Scrolls {
		w.scrollDefs[d.Type] = d
	}
	for _, d := range cfg.Monsters {
		w.monsterDefs[d.Type] = d
	}
	w.Restart()
	return w
}

// Restart resets the run. The terrain cache is kept, so the map looks the
// same from one run to the next.
func (w *World) Restart() {
	w.state = StatePlaying
	w.readyTimer = 0
	w.gameTime = 0
	w.score = 0
	w.kills = 0
	w.upgradeIndex = 0
	w.options = nil

	w.player = Player{FacingRight: true}
	w.camera = Vec2{}

	w.enemies = nil
	w.nextEnemyID = 0
	w.projectiles = nil
	w.orbiters = nil
	w.effects = nil
	w.weapons = nil
	w.scrolls = nil

	w.spawnTimer = 0
	w.spawnInterval = w.cfg.Spawn.DefaultInterval
	if len(w.cfg.Phases) > 0 {
		w.spawnInterval = w.cfg.Phases[0].SpawnInterval * w.cfg.Difficulty.SpawnFactor()
	}
	w.swarmTimer = 0
	w.firstSwarmDone = false
	w.speedBoost = 0
	w.invincible = 0
	w.events = StepEvents{}

	w.addWeapon(w.cfg.Player.StartingWeapon)
}

// Update advances the simulation by dt seconds. dt is clamped to the
// configured maximum. Nothing advances unless the run is playing and the
// ready countdown has finished.
func (w *World) Update(dt float64, in Input) StepEvents {
	w.events = StepEvents{}

	dt = math.Max(0, math.Min(dt, w.cfg.World.MaxFrameDelta))
	if w.readyTimer > 0 {
		w.readyTimer = math.Max(0, w.readyTimer-dt)
	}
	if w.state != StatePlaying || w.readyTimer > 0 {
		return w.events
	}

	w.updateSpawnRate(dt)
	w.updateSpawnTimer(dt)
	w.updateWeapons(dt)
	w.movePlayer(dt, in)
	w.updateTimers(dt)
	if w.moveEnemies(dt) {
		return w.events
	}
	w.updateProjectiles(dt)
	w.updateOrbiters(dt)
	w.ageEffects(dt)
	w.updateScrolls()
	w.updateStatus(dt)

	return w.events
}

func (w *World) updateTimers(dt float64) {
	if w.speedBoost > 0 {
		w.speedBoost = math.Max(0, w.speedBoost-dt)
	}
	if w.invincible > 0 {
		w.invincible = math.Max(0, w.invincible-dt)
	}
}

// Pause stops simulation advancement. Only a playing run can pause.
func (w *World) Pause() bool {
	if w.state != StatePlaying {
		return false
	}
	w.state = StatePaused
	return true
}

// Resume continues a paused run after the ready countdown.
func (w *World) Resume() bool {
	if w.state != StatePaused {
		return false
	}
	w.state = StatePlaying
	w.readyTimer = w.cfg.Player.ReadyDelay
	return true
}

// SetViewport updates the visible world size used for spawning and
// culling. Non-positive sizes are ignored.
func (w *World) SetViewport(width, height float64) {
	if width > 0 && height > 0 {
		w.viewport = Vec2{width, height}
	}
}

func (w *World) State() GameState { return w.state }
func (w *World) ReadyTimer() float64 { return w.readyTimer }
func (w *World) Score() int { return w.score }
func (w *World) Kills() int { return w.kills }
func (w *World) GameTime() float64 { return w.gameTime }
func (w *World) UpgradeIndex() int { return w.upgradeIndex }
func (w *World) Player() Player { return w.player }
func (w *World) Camera() Vec2 { return w.camera }
func (w *World) Viewport() Vec2 { return w.viewport }
func (w *World) Invincible() float64 { return w.invincible }
func (w *World) SpeedBoost() float64 { return w.speedBoost }
func (w *World) SpawnInterval() float64 { return w.spawnInterval }
func (w *World) Terrain() *terrain.Generator { return w.terrain }
func (w *World) Config() *config.MobholdConfig { return &w.cfg }

// Options returns a copy of the pending upgrade offer.
func (w *World) Options() []UpgradeOption {
	out := make([]UpgradeOption, len(w.options))
	copy(out, w.options)
	return out
}

func (w *World) weaponDef(typ string) config.WeaponDef {
	d, ok := w.weaponDefs[typ]
	if !ok {
		panic(fmt.Sprintf("sim: unknown weapon %q", typ))
	}
	return d
}

func (w *World) scrollDef(typ string) config.ScrollDef {
	d, ok := w.scrollDefs[typ]
	if !ok {
		panic(fmt.Sprintf("sim: unknown scroll %q", typ))
	}
	return d
}

func (w *World) monsterDef(typ string) config.MonsterDef {
	d, ok := w.monsterDefs[typ]
	if !ok {
		panic(fmt.Sprintf("sim: unknown monster %q", typ))
	}
	return d
}

// uniform draws from [lo, hi).
func (w *World) uniform(lo, hi float64) float64 {
	return lo + w.rng.Float64()*(hi-lo)
}
