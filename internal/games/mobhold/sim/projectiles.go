package sim

import (
	"math"

	"github.com/vovakirdan/mobhold/internal/config"
)

// hit damages an enemy and leaves blood. When health reaches zero the
// enemy is marked dead, its max health is scored and the upgrade
// threshold is checked. Dead enemies are dropped by reap.
func (w *World) hit(e *Enemy, damage int, source string) {
	if e.dead {
		return
	}
	e.Health -= damage
	w.spawnEffect(EffectBlood, e.Pos)
	if e.Health > 0 {
		return
	}

	e.dead = true
	w.score += e.MaxHealth
	w.kills++
	w.events.Kills = append(w.events.Kills, Kill{
		ID:     e.ID,
		Type:   e.Type,
		Score:  e.MaxHealth,
		Source: source,
	})
	w.CheckForUpgrade()
}

// reap removes dead enemies, keeping spawn order.
func (w *World) reap() {
	alive := w.enemies[:0]
	for _, e := range w.enemies {
		if !e.dead {
			alive = append(alive, e)
		}
	}
	for i := len(alive); i < len(w.enemies); i++ {
		w.enemies[i] = nil
	}
	w.enemies = alive
}

// enemyByID finds a live enemy.
func (w *World) enemyByID(id EnemyID) *Enemy {
	for _, e := range w.enemies {
		if e.ID == id && !e.dead {
			return e
		}
	}
	return nil
}

func (w *World) updateProjectiles(dt float64) {
	kept := w.projectiles[:0]
	for _, p := range w.projectiles {
		var alive bool
		switch p := p.(type) {
		case *Shot:
			alive = w.advanceShot(p, dt)
		case *Bomb:
			alive = w.advanceBomb(p, dt)
		}
		if alive {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(w.projectiles); i++ {
		w.projectiles[i] = nil
	}
	w.projectiles = kept
	w.reap()
}

// advanceShot moves a shot and resolves its first hit. It returns false
// once the shot is spent.
func (w *World) advanceShot(s *Shot, dt float64) bool {
	speed := w.cfg.Projectiles.Speed
	s.Pos = s.Pos.Add(FromAngle(s.Angle).Scale(speed * dt))
	if s.Kind == config.KindRadial {
		s.Spin += w.cfg.Projectiles.SpinSpeed * dt
	}

	rel := s.Pos.Sub(w.camera)
	if math.Abs(rel.X) > w.viewport.X || math.Abs(rel.Y) > w.viewport.Y {
		return false
	}

	r := w.cfg.Projectiles.HitRadius
	for _, e := range w.enemies {
		if e.dead {
			continue
		}
		if e.Pos.DistSq(s.Pos) < r*r {
			w.hit(e, s.Damage, s.Weapon)
			return false
		}
	}
	return true
}

// advanceBomb moves a bomb up to its travel cap and detonates it once
// the fuse runs out, whether or not it has stopped.
func (w *World) advanceBomb(b *Bomb, dt float64) bool {
	b.Fuse += dt * 1000
	if b.Traveled < w.cfg.Bomb.TravelDistance {
		step := FromAngle(b.Angle).Scale(w.cfg.Projectiles.Speed * dt)
		b.Pos = b.Pos.Add(step)
		b.Traveled += step.Len()
	}

	if b.Fuse < w.cfg.Bomb.FuseTime || b.Exploded {
		return true
	}
	b.Exploded = true
	w.spawnEffect(EffectExplosion, b.Pos)

	r := w.cfg.Bomb.ExplodeRadius
	for _, e := range w.enemies {
		if e.dead {
			continue
		}
		if e.Pos.DistSq(b.Pos) < r*r {
			w.hit(e, b.Damage, b.Weapon)
		}
	}
	return false
}

// updateOrbiters spins orbiters around the player and applies contact
// damage, limited per enemy by each orbiter's hit cooldown.
func (w *World) updateOrbiters(dt float64) {
	r := w.cfg.Projectiles.HitRadius
	for _, o := range w.orbiters {
		o.Angle += o.Speed * dt
		o.Pos = w.player.Pos.Add(FromAngle(o.Angle).Scale(o.Radius))

		for id, left := range o.Hits {
			left -= dt * 1000
			if left <= 0 {
				delete(o.Hits, id)
			} else {
				o.Hits[id] = left
			}
		}

		for _, e := range w.enemies {
			if e.dead {
				continue
			}
			if _, cooling := o.Hits[e.ID]; cooling {
				continue
			}
			if e.Pos.DistSq(o.Pos) < r*r {
				o.Hits[e.ID] = w.cfg.Orbit.HitCooldown
				w.hit(e, o.Damage, o.Weapon)
			}
		}
	}
	w.reap()
}
