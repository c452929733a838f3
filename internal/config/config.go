// Package config provides YAML-based game configuration loading and
// difficulty presets for Mobhold.
package config

// MobholdConfig contains all configuration for a Mobhold run: tuning
// constants plus the weapon, scroll, monster and spawn-phase catalogs.
type MobholdConfig struct {
	World       WorldConfig      `yaml:"world"`
	Player      PlayerConfig     `yaml:"player"`
	Enemies     EnemyConfig      `yaml:"enemies"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Bomb        BombConfig       `yaml:"bomb"`
	Orbit       OrbitConfig      `yaml:"orbit"`
	Spawn       SpawnConfig      `yaml:"spawn"`
	Swarm       SwarmConfig      `yaml:"swarm"`
	Effects     EffectsConfig    `yaml:"effects"`
	Upgrades    UpgradeConfig    `yaml:"upgrades"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`

	Weapons  []WeaponDef  `yaml:"weapons"`
	Scrolls  []ScrollDef  `yaml:"scrolls"`
	Monsters []MonsterDef `yaml:"monsters"`
	Phases   []SpawnPhase `yaml:"phases"`
}

// WorldConfig defines terrain, camera and timestep parameters.
type WorldConfig struct {
	TileSize       float64 `yaml:"tile_size"`        // World units per tile
	SafeZone       int     `yaml:"safe_zone"`        // Tiles around origin that never block
	CameraDeadZone float64 `yaml:"camera_dead_zone"` // Player drift allowed before the camera follows
	MaxFrameDelta  float64 `yaml:"max_frame_delta"`  // Seconds
	ViewportW      float64 `yaml:"viewport_w"`       // World units, overridden by the shell
	ViewportH      float64 `yaml:"viewport_h"`
}

// PlayerConfig defines player movement and post-upgrade grace parameters.
type PlayerConfig struct {
	Speed              float64 `yaml:"speed"`               // World units per second
	BoostMultiplier    float64 `yaml:"boost_multiplier"`    // Speed multiplier while boosted
	BoostDuration      float64 `yaml:"boost_duration"`      // Seconds
	InvincibleDuration float64 `yaml:"invincible_duration"` // Seconds
	ReadyDelay         float64 `yaml:"ready_delay"`         // Seconds of "get ready" after upgrades and resume
	ContactRadius      float64 `yaml:"contact_radius"`
	ArrivalRadius      float64 `yaml:"arrival_radius"`
	FrameTime          float64 `yaml:"frame_time"` // Seconds per animation frame
	StartingWeapon     string  `yaml:"starting_weapon"`
}

// EnemyConfig defines shared enemy parameters.
type EnemyConfig struct {
	BaseSpeed float64 `yaml:"base_speed"`
	FrameTime float64 `yaml:"frame_time"`
}

// ProjectileConfig defines shot parameters.
type ProjectileConfig struct {
	Speed     float64 `yaml:"speed"`
	HitRadius float64 `yaml:"hit_radius"`
	SpinSpeed float64 `yaml:"spin_speed"` // Radians per second for radial shots
}

// BombConfig defines lobbed explosive parameters.
type BombConfig struct {
	TravelDistance float64 `yaml:"travel_distance"`
	FuseTime       float64 `yaml:"fuse_time"` // Milliseconds
	ExplodeRadius  float64 `yaml:"explode_radius"`
}

// OrbitConfig defines orbiter parameters.
type OrbitConfig struct {
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`        // Radians per second
	HitCooldown float64 `yaml:"hit_cooldown"` // Milliseconds per orbiter/enemy pair
}

// SpawnConfig defines trickle spawning parameters.
type SpawnConfig struct {
	MinInterval     float64 `yaml:"min_interval"`     // Milliseconds
	DefaultInterval float64 `yaml:"default_interval"` // Milliseconds
	EdgeMargin      float64 `yaml:"edge_margin"`
	MaxAttempts     int     `yaml:"max_attempts"`
}

// SwarmConfig defines ring swarm parameters.
type SwarmConfig struct {
	FirstDelay  float64 `yaml:"first_delay"` // Milliseconds
	Interval    float64 `yaml:"interval"`    // Milliseconds
	MinCount    int     `yaml:"min_count"`
	MaxCount    int     `yaml:"max_count"`
	ExtraMax    int     `yaml:"extra_max"` // Random extra in [0, extra_max)
	RadiusMin   float64 `yaml:"radius_min"`
	RadiusMax   float64 `yaml:"radius_max"`
	AngleJitter float64 `yaml:"angle_jitter"`
	TopTypes    int     `yaml:"top_types"`
}

// EffectsConfig defines visual event lifetimes.
type EffectsConfig struct {
	ExplosionFrames    int     `yaml:"explosion_frames"`
	ExplosionFrameTime float64 `yaml:"explosion_frame_time"` // Milliseconds
	BloodFrames        int     `yaml:"blood_frames"`
	BloodFrameTime     float64 `yaml:"blood_frame_time"`
	ScrollFrameTime    float64 `yaml:"scroll_frame_time"`
	ScrollHighlight    float64 `yaml:"scroll_highlight"`
}

// UpgradeConfig defines score thresholds and the offer size.
type UpgradeConfig struct {
	Thresholds  []int `yaml:"thresholds"`
	OptionCount int   `yaml:"option_count"`
}

// DifficultyConfig scales the catalogs for a difficulty preset.
type DifficultyConfig struct {
	SpawnScale   float64 `yaml:"spawn_scale"`   // Multiplies phase spawn intervals
	HealthScale  float64 `yaml:"health_scale"`  // Multiplies monster health
	SpeedScale   float64 `yaml:"speed_scale"`   // Multiplies monster speed factors
	FreezePhases bool    `yaml:"freeze_phases"` // Stay on the first phase for the whole run
}

// WeaponKind selects a weapon's firing rule.
type WeaponKind string

const (
	KindDirectional WeaponKind = "directional"
	KindRadial      WeaponKind = "radial"
	KindHoming      WeaponKind = "homing"
	KindLobbed      WeaponKind = "lobbed"
	KindOrbit       WeaponKind = "orbit"
)

// Valid reports whether k is a known weapon kind.
func (k WeaponKind) Valid() bool {
	switch k {
	case KindDirectional, KindRadial, KindHoming, KindLobbed, KindOrbit:
		return true
	}
	return false
}

// WeaponDef is a weapon catalog entry.
type WeaponDef struct {
	Type   string        `yaml:"type"`
	Kind   WeaponKind    `yaml:"kind"`
	Glyph  string        `yaml:"glyph"`
	Color  string        `yaml:"color"`
	Levels []WeaponLevel `yaml:"levels"`
}

// MaxLevel returns the highest 0-based level index.
func (w WeaponDef) MaxLevel() int {
	return len(w.Levels) - 1
}

// Level returns the stats for a level, clamped to the table.
func (w WeaponDef) Level(level int) WeaponLevel {
	if level < 0 {
		level = 0
	}
	if level > w.MaxLevel() {
		level = w.MaxLevel()
	}
	return w.Levels[level]
}

// WeaponLevel is one row of a weapon's level table.
// Cooldown and Projectiles are optional.
type WeaponLevel struct {
	Damage      int      `yaml:"damage"`
	Cooldown    *float64 `yaml:"cooldown,omitempty"` // Seconds
	Projectiles *int     `yaml:"projectiles,omitempty"`
}

// CooldownSeconds returns the level cooldown, defaulting to one second.
func (l WeaponLevel) CooldownSeconds() float64 {
	if l.Cooldown == nil {
		return 1
	}
	return *l.Cooldown
}

// ProjectileCount returns the level projectile count, defaulting to one.
func (l WeaponLevel) ProjectileCount() int {
	if l.Projectiles == nil {
		return 1
	}
	return *l.Projectiles
}

// ScrollKind selects a scroll's proc.
type ScrollKind string

const (
	ScrollThunder ScrollKind = "thunder"
	ScrollFire    ScrollKind = "fire"
	ScrollIce     ScrollKind = "ice"
)

// Valid reports whether k is a known scroll kind.
func (k ScrollKind) Valid() bool {
	switch k {
	case ScrollThunder, ScrollFire, ScrollIce:
		return true
	}
	return false
}

// ScrollDef is a scroll catalog entry. Times are in milliseconds.
type ScrollDef struct {
	Type           string     `yaml:"type"`
	Kind           ScrollKind `yaml:"kind"`
	MinInterval    float64    `yaml:"min_interval"`
	MaxInterval    float64    `yaml:"max_interval"`
	Damage         int        `yaml:"damage,omitempty"`
	BurnDamage     int        `yaml:"burn_damage,omitempty"`
	BurnDuration   float64    `yaml:"burn_duration,omitempty"`
	TickInterval   float64    `yaml:"tick_interval,omitempty"`
	FreezeDuration float64    `yaml:"freeze_duration,omitempty"`
	EffectFrames   int        `yaml:"effect_frames"`
	Glyph          string     `yaml:"glyph"`
	Color          string     `yaml:"color"`
}

// MonsterDef is a monster catalog entry.
type MonsterDef struct {
	Type   string  `yaml:"type"`
	Health int     `yaml:"health"`
	Speed  float64 `yaml:"speed"` // Factor applied to enemies.base_speed
	Glyph  string  `yaml:"glyph"`
	Color  string  `yaml:"color"`
}

// SpawnPhase is a time window with its own spawn rate and enemy mix.
type SpawnPhase struct {
	StartTime     float64 `yaml:"start_time"`     // Seconds
	SpawnInterval float64 `yaml:"spawn_interval"` // Milliseconds
	Enemies       Weights `yaml:"enemies"`
}

// Weapon looks up a weapon definition by type.
func (c *MobholdConfig) Weapon(typ string) (WeaponDef, bool) {
	for _, w := range c.Weapons {
		if w.Type == typ {
			return w, true
		}
	}
	return WeaponDef{}, false
}

// Scroll looks up a scroll definition by type.
func (c *MobholdConfig) Scroll(typ string) (ScrollDef, bool) {
	for _, s := range c.Scrolls {
		if s.Type == typ {
			return s, true
		}
	}
	return ScrollDef{}, false
}

// Monster looks up a monster definition by type.
func (c *MobholdConfig) Monster(typ string) (MonsterDef, bool) {
	for _, m := range c.Monsters {
		if m.Type == typ {
			return m, true
		}
	}
	return MonsterDef{}, false
}
