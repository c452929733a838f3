package sim

import "math"

// slide moves pos by delta against terrain. A blocked move falls back to
// the X component alone, then the Y component alone.
func (w *World) slide(pos, delta Vec2) (Vec2, bool) {
	blocked := w.terrain.IsBlocked
	if next := pos.Add(delta); !blocked(next.X, next.Y) {
		return next, true
	}
	if !blocked(pos.X+delta.X, pos.Y) {
		return Vec2{pos.X + delta.X, pos.Y}, true
	}
	if !blocked(pos.X, pos.Y+delta.Y) {
		return Vec2{pos.X, pos.Y + delta.Y}, true
	}
	return pos, false
}

// escape tries the perpendicular of delta, one axis at a time.
func (w *World) escape(pos, delta Vec2) Vec2 {
	perp := Vec2{delta.Y, -delta.X}
	if !w.terrain.IsBlocked(pos.X+perp.X, pos.Y) {
		return Vec2{pos.X + perp.X, pos.Y}
	}
	if !w.terrain.IsBlocked(pos.X, pos.Y+perp.Y) {
		return Vec2{pos.X, pos.Y + perp.Y}
	}
	return pos
}

// playerHeading resolves the movement source by priority and returns the
// direction (length <= 1) the player should move this frame.
func (w *World) playerHeading(in Input) (Vec2, bool) {
	p := &w.player

	if in.Pointer.Active {
		p.Target = in.Pointer.Pos
		p.HasTarget = true
	}

	switch {
	case !in.Stick.IsZero():
		return in.Stick.ClampLen(1), true
	case in.Keys.Any():
		p.HasTarget = false
		v := in.Keys.Vector()
		return v, !v.IsZero()
	case !in.Joystick.IsZero():
		return in.Joystick.ClampLen(1), true
	case p.HasTarget:
		d := p.Target.Sub(p.Pos)
		if d.Len() < w.cfg.Player.ArrivalRadius {
			if !in.Pointer.Held {
				p.HasTarget = false
			}
			return Vec2{}, false
		}
		return d.Normalize(), true
	}
	return Vec2{}, false
}

func (w *World) movePlayer(dt float64, in Input) {
	p := &w.player
	dir, moving := w.playerHeading(in)
	p.Moving = moving

	if in.HasAim {
		p.Aim = in.Aim
	} else if moving {
		p.Aim = dir.Angle()
	}

	if moving {
		if dir.X != 0 {
			p.FacingRight = dir.X > 0
		}
		switch {
		case math.Abs(dir.X) > math.Abs(dir.Y):
			p.Direction = DirSide
		case dir.Y > 0:
			p.Direction = DirFront
		default:
			p.Direction = DirBack
		}

		speed := w.cfg.Player.Speed
		if w.speedBoost > 0 {
			speed *= w.cfg.Player.BoostMultiplier
		}
		p.Pos, _ = w.slide(p.Pos, dir.Scale(speed*dt))
		p.Anim.advance(dt, w.cfg.Player.FrameTime, 6)
	} else {
		p.Anim = Anim{}
	}

	w.followCamera()
}

// followCamera drags the camera once the player leaves the dead zone.
func (w *World) followCamera() {
	dz := w.cfg.World.CameraDeadZone
	d := w.player.Pos.Sub(w.camera)
	if d.X > dz {
		w.camera.X += d.X - dz
	} else if d.X < -dz {
		w.camera.X += d.X + dz
	}
	if d.Y > dz {
		w.camera.Y += d.Y - dz
	} else if d.Y < -dz {
		w.camera.Y += d.Y + dz
	}
}

// moveEnemies walks every enemy toward the player. It returns true when
// an enemy touched the player and the run ended.
func (w *World) moveEnemies(dt float64) bool {
	base := w.cfg.Enemies.BaseSpeed
	for _, e := range w.enemies {
		d := w.player.Pos.Sub(e.Pos)
		dist := d.Len()

		if dist < w.cfg.Player.ContactRadius && w.invincible <= 0 {
			w.state = StateGameOver
			w.events.GameOver = true
			w.events.KilledBy = e.Type
			return true
		}

		if dist > 0 && e.Freeze == nil {
			step := d.Scale(base * e.Speed * dt / dist)
			if next, ok := w.slide(e.Pos, step); ok {
				e.Pos = next
			} else {
				e.Pos = w.escape(e.Pos, step)
			}
			e.FacingRight = d.X > 0
		}

		e.Anim.advance(dt, w.cfg.Enemies.FrameTime, 4)
	}
	return false
}
