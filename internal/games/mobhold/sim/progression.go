package sim

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/mobhold/internal/config"
)

// CheckForUpgrade advances the threshold index by at most one and opens
// the upgrade menu. When nothing is left to offer the run keeps playing,
// but the threshold still counts as passed.
func (w *World) CheckForUpgrade() bool {
	if w.state == StateUpgrading {
		return false
	}
	th := w.cfg.Upgrades.Thresholds
	if w.upgradeIndex >= len(th) || w.score < th[w.upgradeIndex] {
		return false
	}
	w.upgradeIndex++

	w.options = w.generateOptions()
	if len(w.options) == 0 {
		return false
	}
	w.state = StateUpgrading
	w.events.UpgradeOffered = true
	return true
}

func (w *World) generateOptions() []UpgradeOption {
	var pool []UpgradeOption
	for _, def := range w.cfg.Weapons {
		if pw := w.weapon(def.Type); pw != nil {
			if pw.Level < def.MaxLevel() {
				pool = append(pool, UpgradeOption{
					Kind:        OptionUpgrade,
					Type:        def.Type,
					Level:       pw.Level + 1,
					Description: describeLevel(def, pw.Level, pw.Level+1),
				})
			}
			continue
		}
		pool = append(pool, UpgradeOption{
			Kind:        OptionNewWeapon,
			Type:        def.Type,
			Description: describeLevel(def, -1, 0),
		})
	}
	for _, def := range w.cfg.Scrolls {
		if w.scroll(def.Type) != nil {
			continue
		}
		pool = append(pool, UpgradeOption{
			Kind:        OptionNewScroll,
			Type:        def.Type,
			Description: describeScroll(def),
		})
	}

	w.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if n := w.cfg.Upgrades.OptionCount; len(pool) > n {
		pool = pool[:n]
	}
	return pool
}

// describeLevel renders the stat change from one level to the next.
// A from of -1 describes a new weapon.
func describeLevel(def config.WeaponDef, from, to int) string {
	next := def.Level(to)
	if from < 0 {
		parts := []string{fmt.Sprintf("%s, %d dmg", def.Kind, next.Damage)}
		if def.Kind != config.KindOrbit {
			parts = append(parts, fmt.Sprintf("every %.2gs", next.CooldownSeconds()))
		}
		if n := next.ProjectileCount(); n > 1 {
			parts = append(parts, fmt.Sprintf("x%d", n))
		}
		return strings.Join(parts, ", ")
	}

	cur := def.Level(from)
	var parts []string
	if cur.Damage != next.Damage {
		parts = append(parts, fmt.Sprintf("dmg %d→%d", cur.Damage, next.Damage))
	}
	if def.Kind != config.KindOrbit && cur.CooldownSeconds() != next.CooldownSeconds() {
		parts = append(parts, fmt.Sprintf("cd %.2gs→%.2gs", cur.CooldownSeconds(), next.CooldownSeconds()))
	}
	if cur.ProjectileCount() != next.ProjectileCount() {
		parts = append(parts, fmt.Sprintf("count %d→%d", cur.ProjectileCount(), next.ProjectileCount()))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("level %d", to+1)
	}
	return strings.Join(parts, ", ")
}

func describeScroll(def config.ScrollDef) string {
	every := fmt.Sprintf("every %.0f-%.0fs", def.MinInterval/1000, def.MaxInterval/1000)
	switch def.Kind {
	case config.ScrollThunder:
		return fmt.Sprintf("strikes nearest for %d, %s", def.Damage, every)
	case config.ScrollFire:
		return fmt.Sprintf("burns nearest %d per %.1fs for %.0fs, %s",
			def.BurnDamage, def.TickInterval/1000, def.BurnDuration/1000, every)
	case config.ScrollIce:
		return fmt.Sprintf("freezes nearest for %.1fs, %s", def.FreezeDuration/1000, every)
	}
	return every
}

// ApplyUpgrade grants an option, starts the post-upgrade grace period and
// returns to play after the ready countdown. It does not chain into a
// further threshold; a backlog is picked up on later kills. It reports
// false and changes nothing unless the upgrade menu is open.
func (w *World) ApplyUpgrade(opt UpgradeOption) bool {
	if w.state != StateUpgrading {
		return false
	}
	switch opt.Kind {
	case OptionUpgrade:
		w.upgradeWeapon(opt.Type)
	case OptionNewWeapon:
		w.addWeapon(opt.Type)
	case OptionNewScroll:
		w.addScroll(opt.Type)
	}

	w.speedBoost = w.cfg.Player.BoostDuration
	w.invincible = w.cfg.Player.InvincibleDuration
	w.options = nil
	w.state = StatePlaying
	w.readyTimer = w.cfg.Player.ReadyDelay
	return true
}

// SelectUpgrade applies the i-th pending option. It reports false when
// no menu is open or i is out of range.
func (w *World) SelectUpgrade(i int) bool {
	if w.state != StateUpgrading || i < 0 || i >= len(w.options) {
		return false
	}
	return w.ApplyUpgrade(w.options[i])
}
