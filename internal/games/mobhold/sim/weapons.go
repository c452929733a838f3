package sim

import (
	"math"

	"github.com/vovakirdan/mobhold/internal/config"
)

// weapon returns the owned weapon of a type, or nil.
func (w *World) weapon(typ string) *PlayerWeapon {
	for _, pw := range w.weapons {
		if pw.Type == typ {
			return pw
		}
	}
	return nil
}

// addWeapon grants a level 0 weapon unless one of that type is owned.
func (w *World) addWeapon(typ string) {
	if w.weapon(typ) != nil {
		return
	}
	def := w.weaponDef(typ)
	w.weapons = append(w.weapons, &PlayerWeapon{Type: typ})
	if def.Kind == config.KindOrbit {
		w.rebuildOrbiters(typ)
	}
}

// upgradeWeapon raises a weapon one level, up to its table size.
func (w *World) upgradeWeapon(typ string) {
	pw := w.weapon(typ)
	if pw == nil {
		return
	}
	def := w.weaponDef(typ)
	if pw.Level >= def.MaxLevel() {
		return
	}
	pw.Level++
	if def.Kind == config.KindOrbit {
		w.rebuildOrbiters(typ)
	}
}

// rebuildOrbiters replaces a weapon's orbiters with a fresh, evenly
// spaced set sized by its current level.
func (w *World) rebuildOrbiters(typ string) {
	kept := w.orbiters[:0]
	for _, o := range w.orbiters {
		if o.Weapon != typ {
			kept = append(kept, o)
		}
	}
	w.orbiters = kept

	pw := w.weapon(typ)
	if pw == nil {
		return
	}
	stats := w.weaponDef(typ).Level(pw.Level)
	count := stats.ProjectileCount()
	step := 2 * math.Pi / float64(count)
	for i := range count {
		angle := float64(i) * step
		w.orbiters = append(w.orbiters, &Orbiter{
			Weapon: typ,
			Angle:  angle,
			Radius: w.cfg.Orbit.Radius,
			Speed:  w.cfg.Orbit.Speed,
			Damage: stats.Damage,
			Pos:    w.player.Pos.Add(FromAngle(angle).Scale(w.cfg.Orbit.Radius)),
			Hits:   make(map[EnemyID]float64),
		})
	}
}

// updateWeapons accumulates cooldowns and fires ready weapons.
func (w *World) updateWeapons(dt float64) {
	for _, pw := range w.weapons {
		def := w.weaponDef(pw.Type)
		if def.Kind == config.KindOrbit {
			continue
		}
		pw.Cooldown += dt * 1000
		stats := def.Level(pw.Level)
		if pw.Cooldown >= stats.CooldownSeconds()*1000 {
			pw.Cooldown = 0
			w.fire(def, stats)
		}
	}
}

func (w *World) fire(def config.WeaponDef, stats config.WeaponLevel) {
	origin := w.player.Pos
	switch def.Kind {
	case config.KindDirectional:
		w.projectiles = append(w.projectiles, &Shot{
			Pos: origin, Angle: w.player.Aim, Damage: stats.Damage, Weapon: def.Type, Kind: def.Kind,
		})

	case config.KindRadial:
		count := stats.ProjectileCount()
		step := 2 * math.Pi / float64(count)
		for i := range count {
			w.projectiles = append(w.projectiles, &Shot{
				Pos: origin, Angle: float64(i) * step, Damage: stats.Damage, Weapon: def.Type, Kind: def.Kind,
			})
		}

	case config.KindHoming:
		angle := 0.0
		if !w.player.FacingRight {
			angle = math.Pi
		}
		if target := w.nearestEnemy(); target != nil {
			angle = target.Pos.Sub(origin).Angle()
		}
		w.projectiles = append(w.projectiles, &Shot{
			Pos: origin, Angle: angle, Damage: stats.Damage, Weapon: def.Type, Kind: def.Kind,
		})

	case config.KindLobbed:
		w.projectiles = append(w.projectiles, &Bomb{
			Pos: origin, Angle: w.rng.Float64() * 2 * math.Pi, Damage: stats.Damage, Weapon: def.Type,
		})

	case config.KindOrbit:
		// Orbiters are persistent and never fired.
	}
}

// nearestEnemy returns the live enemy closest to the player, or nil.
func (w *World) nearestEnemy() *Enemy {
	var best *Enemy
	bestDist := math.Inf(1)
	for _, e := range w.enemies {
		if e.dead {
			continue
		}
		if d := e.Pos.DistSq(w.player.Pos); d < bestDist {
			bestDist = d
			best = e
		}
	}
	return best
}
