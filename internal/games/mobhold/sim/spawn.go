package sim

import (
	"math"

	"github.com/vovakirdan/mobhold/internal/config"
)

// currentPhase returns the last phase whose start time has passed. A
// fixed-difficulty run stays on the first phase.
func (w *World) currentPhase() config.SpawnPhase {
	phases := w.cfg.Phases
	if len(phases) == 0 {
		return config.SpawnPhase{SpawnInterval: w.cfg.Spawn.DefaultInterval}
	}
	if w.cfg.Difficulty.FreezePhases {
		return phases[0]
	}
	current := phases[0]
	seconds := w.gameTime / 1000
	for _, p := range phases {
		if p.StartTime <= seconds {
			current = p
		}
	}
	return current
}

// updateSpawnRate advances the clocks, refreshes the trickle interval
// from the current phase and fires swarms when due.
func (w *World) updateSpawnRate(dt float64) {
	w.gameTime += dt * 1000
	w.swarmTimer += dt * 1000

	phase := w.currentPhase()
	w.spawnInterval = math.Max(w.cfg.Spawn.MinInterval, phase.SpawnInterval*w.cfg.Difficulty.SpawnFactor())

	switch {
	case !w.firstSwarmDone && w.gameTime >= w.cfg.Swarm.FirstDelay:
		w.firstSwarmDone = true
		w.swarmTimer = 0
		w.spawnSwarm(phase)
	case w.firstSwarmDone && w.swarmTimer >= w.cfg.Swarm.Interval:
		w.swarmTimer = 0
		w.spawnSwarm(phase)
	}
}

func (w *World) updateSpawnTimer(dt float64) {
	w.spawnTimer += dt * 1000
	if w.spawnTimer >= w.spawnInterval {
		w.spawnTimer = 0
		w.spawnEnemy(w.currentPhase())
	}
}

// spawnEnemy places one enemy just outside a random viewport edge. It
// gives up silently after the configured number of blocked attempts.
func (w *World) spawnEnemy(phase config.SpawnPhase) {
	typ := phase.Enemies.Pick(w.rng.Float64())
	if typ == "" {
		return
	}

	vw, vh := w.viewport.X, w.viewport.Y
	margin := w.cfg.Spawn.EdgeMargin
	for range w.cfg.Spawn.MaxAttempts {
		var pos Vec2
		switch w.rng.Intn(4) {
		case 0: // Top
			pos = Vec2{w.camera.X + (w.rng.Float64()-0.5)*vw, w.camera.Y - vh/2 - margin}
		case 1: // Right
			pos = Vec2{w.camera.X + vw/2 + margin, w.camera.Y + (w.rng.Float64()-0.5)*vh}
		case 2: // Bottom
			pos = Vec2{w.camera.X + (w.rng.Float64()-0.5)*vw, w.camera.Y + vh/2 + margin}
		default: // Left
			pos = Vec2{w.camera.X - vw/2 - margin, w.camera.Y + (w.rng.Float64()-0.5)*vh}
		}
		if w.terrain.IsBlocked(pos.X, pos.Y) {
			continue
		}
		w.newEnemy(typ, pos)
		w.events.Spawned++
		return
	}
}

// spawnSwarm rings the player with enemies drawn from the phase's
// heaviest types. Blocked slots are skipped, not retried.
func (w *World) spawnSwarm(phase config.SpawnPhase) {
	sc := w.cfg.Swarm
	weights := phase.Enemies.Top(sc.TopTypes)
	w.events.Swarm = true
	if len(weights) == 0 {
		return
	}

	count := sc.MinCount + int(w.gameTime/60000)
	if sc.ExtraMax > 0 {
		count += w.rng.Intn(sc.ExtraMax)
	}
	count = min(count, sc.MaxCount)

	for i := range count {
		angle := 2*math.Pi*float64(i)/float64(count) + (w.rng.Float64()-0.5)*sc.AngleJitter
		radius := w.uniform(sc.RadiusMin, sc.RadiusMax)
		pos := w.player.Pos.Add(FromAngle(angle).Scale(radius))
		if w.terrain.IsBlocked(pos.X, pos.Y) {
			continue
		}
		typ := weights.Pick(w.rng.Float64())
		w.newEnemy(typ, pos)
		w.events.SwarmSpawned++
	}
}

// newEnemy adds a monster with difficulty-scaled health and speed.
// IDs start at 1 so zero can mean "no enemy".
func (w *World) newEnemy(typ string, pos Vec2) *Enemy {
	def := w.monsterDef(typ)
	w.nextEnemyID++
	health := w.cfg.Difficulty.ScaleHealth(def.Health)
	e := &Enemy{
		ID:          w.nextEnemyID,
		Type:        typ,
		Pos:         pos,
		Health:      health,
		MaxHealth:   health,
		Speed:       def.Speed * w.cfg.Difficulty.SpeedFactor(),
		FacingRight: w.player.Pos.X > pos.X,
	}
	w.enemies = append(w.enemies, e)
	return e
}
