package sim

// updateStatus ticks burns and expires freezes.
func (w *World) updateStatus(dt float64) {
	for _, e := range w.enemies {
		if e.dead {
			continue
		}

		if b := e.Burn; b != nil {
			b.Remaining -= dt * 1000
			if w.gameTime >= b.NextTick {
				b.NextTick = w.gameTime + b.TickInterval
				w.hit(e, b.Damage, "burn")
				if e.dead {
					continue
				}
			}
			if b.Remaining <= 0 {
				e.Burn = nil
			}
		}

		if e.Freeze != nil && w.gameTime >= e.Freeze.Until {
			e.Freeze = nil
		}
	}
	w.reap()
}
