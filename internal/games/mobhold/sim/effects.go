package sim

func (w *World) spawnEffect(kind EffectKind, pos Vec2) {
	fx := &Effect{Kind: kind, Pos: pos}
	switch kind {
	case EffectExplosion:
		fx.TotalFrames = w.cfg.Effects.ExplosionFrames
		fx.FrameDuration = w.cfg.Effects.ExplosionFrameTime
	case EffectBlood:
		fx.TotalFrames = w.cfg.Effects.BloodFrames
		fx.FrameDuration = w.cfg.Effects.BloodFrameTime
	}
	w.effects = append(w.effects, fx)
}

// ageEffects advances effect frames and drops finished effects. Scroll
// effects track their target while it is alive.
func (w *World) ageEffects(dt float64) {
	kept := w.effects[:0]
	for _, fx := range w.effects {
		fx.FrameTimer += dt * 1000
		if fx.FrameTimer >= fx.FrameDuration {
			fx.FrameTimer = 0
			fx.Frame++
		}
		if fx.Frame >= fx.TotalFrames {
			continue
		}
		if fx.Target != 0 {
			if e := w.enemyByID(fx.Target); e != nil {
				fx.Pos = e.Pos
			}
		}
		kept = append(kept, fx)
	}
	for i := len(kept); i < len(w.effects); i++ {
		w.effects[i] = nil
	}
	w.effects = kept
}
