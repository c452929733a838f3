package sim

import "github.com/vovakirdan/mobhold/internal/config"

func (w *World) scroll(typ string) *PlayerScroll {
	for _, ps := range w.scrolls {
		if ps.Type == typ {
			return ps
		}
	}
	return nil
}

// addScroll grants a scroll and schedules its first trigger.
func (w *World) addScroll(typ string) {
	if w.scroll(typ) != nil {
		return
	}
	def := w.scrollDef(typ)
	w.scrolls = append(w.scrolls, &PlayerScroll{
		Type:        typ,
		NextTrigger: w.gameTime + w.uniform(def.MinInterval, def.MaxInterval),
	})
}

// updateScrolls fires every scroll whose trigger time has passed and
// reschedules it, whether or not it found a target.
func (w *World) updateScrolls() {
	for _, ps := range w.scrolls {
		if w.gameTime < ps.NextTrigger {
			continue
		}
		def := w.scrollDef(ps.Type)
		w.triggerScroll(ps, def)
		ps.NextTrigger = w.gameTime + w.uniform(def.MinInterval, def.MaxInterval)
	}
	w.reap()
}

func (w *World) triggerScroll(ps *PlayerScroll, def config.ScrollDef) {
	target := w.nearestEnemy()
	if target == nil {
		return
	}
	ps.HighlightUntil = w.gameTime + w.cfg.Effects.ScrollHighlight

	w.effects = append(w.effects, &Effect{
		Kind:          EffectScroll,
		Pos:           target.Pos,
		TotalFrames:   def.EffectFrames,
		FrameDuration: w.cfg.Effects.ScrollFrameTime,
		Scroll:        def.Kind,
		Target:        target.ID,
	})

	switch def.Kind {
	case config.ScrollThunder:
		w.hit(target, def.Damage, def.Type)
	case config.ScrollFire:
		target.Burn = &Burn{
			Damage:       def.BurnDamage,
			Remaining:    def.BurnDuration,
			TickInterval: def.TickInterval,
			NextTick:     w.gameTime + def.TickInterval,
		}
	case config.ScrollIce:
		target.Freeze = &Freeze{Until: w.gameTime + def.FreezeDuration}
	}
}
