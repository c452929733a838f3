package config

import "fmt"

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: [%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validate checks a configuration for defects the simulation would
// otherwise trip over at runtime:
//   - catalog types are unique and kinds are known
//   - every referenced weapon and monster exists
//   - level tables, phases and thresholds are non-empty and ordered
//   - tuning values that scale motion, timing or counts are in range
func Validate(cfg *MobholdConfig) error {
	if cfg.World.TileSize <= 0 {
		return invalid("WORLD", "tile_size must be positive, got %v", cfg.World.TileSize)
	}
	if cfg.World.MaxFrameDelta <= 0 {
		return invalid("WORLD", "max_frame_delta must be positive, got %v", cfg.World.MaxFrameDelta)
	}
	if err := validateTuning(cfg); err != nil {
		return err
	}
	if err := validateWeapons(cfg); err != nil {
		return err
	}
	if err := validateScrolls(cfg); err != nil {
		return err
	}
	if err := validateMonsters(cfg); err != nil {
		return err
	}
	if err := validatePhases(cfg); err != nil {
		return err
	}
	return validateUpgrades(cfg)
}

// positive pairs a config key with its value for range checks.
type positive struct {
	key   string
	value float64
}

func checkPositive(code string, fields ...positive) error {
	for _, f := range fields {
		if f.value <= 0 {
			return invalid(code, "%s must be positive, got %v", f.key, f.value)
		}
	}
	return nil
}

func validateTuning(cfg *MobholdConfig) error {
	p, pr, b, o := cfg.Player, cfg.Projectiles, cfg.Bomb, cfg.Orbit
	if err := checkPositive("PLAYER",
		positive{"player.speed", p.Speed},
		positive{"player.contact_radius", p.ContactRadius},
		positive{"player.arrival_radius", p.ArrivalRadius},
	); err != nil {
		return err
	}
	if cfg.Enemies.BaseSpeed < 0 {
		return invalid("ENEMIES", "enemies.base_speed must not be negative, got %v", cfg.Enemies.BaseSpeed)
	}
	if err := checkPositive("PROJECTILES",
		positive{"projectiles.speed", pr.Speed},
		positive{"projectiles.hit_radius", pr.HitRadius},
		positive{"bomb.fuse_time", b.FuseTime},
		positive{"bomb.explode_radius", b.ExplodeRadius},
		positive{"orbit.radius", o.Radius},
		positive{"orbit.hit_cooldown", o.HitCooldown},
	); err != nil {
		return err
	}
	if b.TravelDistance < 0 {
		return invalid("PROJECTILES", "bomb.travel_distance must not be negative, got %v", b.TravelDistance)
	}

	sp := cfg.Spawn
	if err := checkPositive("SPAWN",
		positive{"spawn.min_interval", sp.MinInterval},
		positive{"spawn.default_interval", sp.DefaultInterval},
		positive{"spawn.max_attempts", float64(sp.MaxAttempts)},
	); err != nil {
		return err
	}
	if sp.EdgeMargin < 0 {
		return invalid("SPAWN", "spawn.edge_margin must not be negative, got %v", sp.EdgeMargin)
	}

	sw := cfg.Swarm
	if err := checkPositive("SWARM",
		positive{"swarm.interval", sw.Interval},
		positive{"swarm.min_count", float64(sw.MinCount)},
		positive{"swarm.radius_min", sw.RadiusMin},
		positive{"swarm.top_types", float64(sw.TopTypes)},
	); err != nil {
		return err
	}
	switch {
	case sw.FirstDelay < 0:
		return invalid("SWARM", "swarm.first_delay must not be negative, got %v", sw.FirstDelay)
	case sw.MaxCount < sw.MinCount:
		return invalid("SWARM", "swarm.max_count %d is below min_count %d", sw.MaxCount, sw.MinCount)
	case sw.RadiusMax < sw.RadiusMin:
		return invalid("SWARM", "swarm.radius_max %v is below radius_min %v", sw.RadiusMax, sw.RadiusMin)
	case sw.ExtraMax < 0:
		return invalid("SWARM", "swarm.extra_max must not be negative, got %d", sw.ExtraMax)
	}

	e := cfg.Effects
	return checkPositive("EFFECTS",
		positive{"effects.explosion_frames", float64(e.ExplosionFrames)},
		positive{"effects.explosion_frame_time", e.ExplosionFrameTime},
		positive{"effects.blood_frames", float64(e.BloodFrames)},
		positive{"effects.blood_frame_time", e.BloodFrameTime},
		positive{"effects.scroll_frame_time", e.ScrollFrameTime},
	)
}

func validateWeapons(cfg *MobholdConfig) error {
	if len(cfg.Weapons) == 0 {
		return invalid("WEAPONS", "at least one weapon is required")
	}
	seen := make(map[string]bool)
	for _, w := range cfg.Weapons {
		if w.Type == "" {
			return invalid("WEAPONS", "weapon with empty type")
		}
		if seen[w.Type] {
			return invalid("WEAPONS", "duplicate weapon %q", w.Type)
		}
		seen[w.Type] = true
		if !w.Kind.Valid() {
			return invalid("WEAPONS", "weapon %q has unknown kind %q", w.Type, w.Kind)
		}
		if len(w.Levels) == 0 {
			return invalid("WEAPONS", "weapon %q has no levels", w.Type)
		}
		for i, l := range w.Levels {
			if l.Cooldown != nil && *l.Cooldown <= 0 {
				return invalid("WEAPONS", "weapon %q level %d: cooldown must be positive", w.Type, i)
			}
			if l.Projectiles != nil && *l.Projectiles < 1 {
				return invalid("WEAPONS", "weapon %q level %d: projectiles must be at least 1", w.Type, i)
			}
		}
	}
	if _, ok := cfg.Weapon(cfg.Player.StartingWeapon); !ok {
		return invalid("WEAPONS", "starting weapon %q is not in the catalog", cfg.Player.StartingWeapon)
	}
	return nil
}

func validateScrolls(cfg *MobholdConfig) error {
	seen := make(map[string]bool)
	for _, s := range cfg.Scrolls {
		if seen[s.Type] {
			return invalid("SCROLLS", "duplicate scroll %q", s.Type)
		}
		seen[s.Type] = true
		if _, clash := cfg.Weapon(s.Type); clash {
			return invalid("SCROLLS", "scroll %q shares its type with a weapon", s.Type)
		}
		if !s.Kind.Valid() {
			return invalid("SCROLLS", "scroll %q has unknown kind %q", s.Type, s.Kind)
		}
		if s.MinInterval <= 0 || s.MaxInterval < s.MinInterval {
			return invalid("SCROLLS", "scroll %q: need 0 < min_interval <= max_interval", s.Type)
		}
		if s.EffectFrames <= 0 {
			return invalid("SCROLLS", "scroll %q: effect_frames must be positive", s.Type)
		}
		if s.Kind == ScrollFire && s.TickInterval <= 0 {
			return invalid("SCROLLS", "scroll %q: tick_interval must be positive", s.Type)
		}
	}
	return nil
}

func validateMonsters(cfg *MobholdConfig) error {
	if len(cfg.Monsters) == 0 {
		return invalid("MONSTERS", "at least one monster is required")
	}
	seen := make(map[string]bool)
	for _, m := range cfg.Monsters {
		if seen[m.Type] {
			return invalid("MONSTERS", "duplicate monster %q", m.Type)
		}
		seen[m.Type] = true
		if m.Health <= 0 {
			return invalid("MONSTERS", "monster %q: health must be positive", m.Type)
		}
		if m.Speed < 0 {
			return invalid("MONSTERS", "monster %q: speed must not be negative", m.Type)
		}
	}
	return nil
}

func validatePhases(cfg *MobholdConfig) error {
	if len(cfg.Phases) == 0 {
		return invalid("PHASES", "at least one spawn phase is required")
	}
	for i, p := range cfg.Phases {
		if i > 0 && p.StartTime < cfg.Phases[i-1].StartTime {
			return invalid("PHASES", "phase %d starts before phase %d", i, i-1)
		}
		if p.SpawnInterval <= 0 {
			return invalid("PHASES", "phase %d: spawn_interval must be positive", i)
		}
		if len(p.Enemies) == 0 || p.Enemies.Total() <= 0 {
			return invalid("PHASES", "phase %d: needs at least one positive enemy weight", i)
		}
		for _, e := range p.Enemies {
			if e.Weight < 0 {
				return invalid("PHASES", "phase %d: negative weight for %q", i, e.Type)
			}
			if _, ok := cfg.Monster(e.Type); !ok {
				return invalid("PHASES", "phase %d references unknown monster %q", i, e.Type)
			}
		}
	}
	return nil
}

func validateUpgrades(cfg *MobholdConfig) error {
	for i, t := range cfg.Upgrades.Thresholds {
		if t <= 0 {
			return invalid("UPGRADES", "threshold %d must be positive", i)
		}
		if i > 0 && t <= cfg.Upgrades.Thresholds[i-1] {
			return invalid("UPGRADES", "thresholds must be strictly increasing at index %d", i)
		}
	}
	if cfg.Upgrades.OptionCount < 1 {
		return invalid("UPGRADES", "option_count must be at least 1")
	}
	return nil
}
