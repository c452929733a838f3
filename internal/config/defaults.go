package config

import (
	_ "embed"
)

//go:embed defaults/mobhold.yaml
var defaultMobholdYAML []byte

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }

// DefaultMobholdConfig returns the hardcoded Mobhold configuration.
// Used when the embedded YAML cannot be parsed, and by tests that need
// a stable catalog.
func DefaultMobholdConfig() MobholdConfig {
	return MobholdConfig{
		World: WorldConfig{
			TileSize:       48,
			SafeZone:       3,
			CameraDeadZone: 50,
			MaxFrameDelta:  0.1,
			ViewportW:      960,
			ViewportH:      576,
		},
		Player: PlayerConfig{
			Speed:              150,
			BoostMultiplier:    1.25,
			BoostDuration:      1.5,
			InvincibleDuration: 1.5,
			ReadyDelay:         1.0,
			ContactRadius:      48 * 0.4,
			ArrivalRadius:      5,
			FrameTime:          0.15,
			StartingWeapon:     "Kunai",
		},
		Enemies: EnemyConfig{
			BaseSpeed: 60,
			FrameTime: 0.15,
		},
		Projectiles: ProjectileConfig{
			Speed:     300,
			HitRadius: 48 * 0.5,
			SpinSpeed: 12,
		},
		Bomb: BombConfig{
			TravelDistance: 100,
			FuseTime:       1000,
			ExplodeRadius:  48 * 2,
		},
		Orbit: OrbitConfig{
			Radius:      160,
			Speed:       2,
			HitCooldown: 500,
		},
		Spawn: SpawnConfig{
			MinInterval:     500,
			DefaultInterval: 2500,
			EdgeMargin:      48 * 2,
			MaxAttempts:     10,
		},
		Swarm: SwarmConfig{
			FirstDelay:  45000,
			Interval:    35000,
			MinCount:    5,
			MaxCount:    12,
			ExtraMax:    5,
			RadiusMin:   400,
			RadiusMax:   550,
			AngleJitter: 0.5,
			TopTypes:    3,
		},
		Effects: EffectsConfig{
			ExplosionFrames:    16,
			ExplosionFrameTime: 50,
			BloodFrames:        16,
			BloodFrameTime:     40,
			ScrollFrameTime:    80,
			ScrollHighlight:    400,
		},
		Upgrades: UpgradeConfig{
			Thresholds: []int{
				16, 50, 100, 180, 300, 480, 720, 1000, 1400,
				1900, 2500, 3300, 4300, 5500, 7000, 9000, 12000, 15000,
			},
			OptionCount: 3,
		},
		Difficulty: DifficultyConfig{
			SpawnScale:  1.0,
			HealthScale: 1.0,
			SpeedScale:  1.0,
		},
		Weapons: []WeaponDef{
			{Type: "Kunai", Kind: KindHoming, Glyph: "↑", Color: "bright_white", Levels: []WeaponLevel{
				{Damage: 10, Cooldown: f64(1.0)},
				{Damage: 14, Cooldown: f64(0.9)},
				{Damage: 18, Cooldown: f64(0.8)},
			}},
			{Type: "Arrow", Kind: KindDirectional, Glyph: "→", Color: "yellow", Levels: []WeaponLevel{
				{Damage: 15, Cooldown: f64(0.8)},
				{Damage: 20, Cooldown: f64(0.7)},
				{Damage: 26, Cooldown: f64(0.6)},
			}},
			{Type: "Shuriken", Kind: KindRadial, Glyph: "✦", Color: "bright_cyan", Levels: []WeaponLevel{
				{Damage: 8, Cooldown: f64(2.0), Projectiles: intp(4)},
				{Damage: 10, Cooldown: f64(1.8), Projectiles: intp(5)},
				{Damage: 12, Cooldown: f64(1.6), Projectiles: intp(6)},
			}},
			{Type: "Bomb", Kind: KindLobbed, Glyph: "●", Color: "orange", Levels: []WeaponLevel{
				{Damage: 30, Cooldown: f64(3.0)},
				{Damage: 40, Cooldown: f64(2.7)},
				{Damage: 50, Cooldown: f64(2.4)},
			}},
			{Type: "Circlet", Kind: KindOrbit, Glyph: "o", Color: "bright_magenta", Levels: []WeaponLevel{
				{Damage: 6, Projectiles: intp(1)},
				{Damage: 8, Projectiles: intp(2)},
				{Damage: 10, Projectiles: intp(3)},
			}},
		},
		Scrolls: []ScrollDef{
			{Type: "ThunderScroll", Kind: ScrollThunder, MinInterval: 4000, MaxInterval: 8000,
				Damage: 25, EffectFrames: 8, Glyph: "ϟ", Color: "bright_yellow"},
			{Type: "FireScroll", Kind: ScrollFire, MinInterval: 5000, MaxInterval: 10000,
				BurnDamage: 3, BurnDuration: 3000, TickInterval: 500, EffectFrames: 10, Glyph: "≈", Color: "bright_red"},
			{Type: "IceScroll", Kind: ScrollIce, MinInterval: 6000, MaxInterval: 12000,
				FreezeDuration: 2000, EffectFrames: 10, Glyph: "*", Color: "bright_blue"},
		},
		Monsters: []MonsterDef{
			{Type: "SpiderYellow", Health: 10, Speed: 1.2, Glyph: "s", Color: "yellow"},
			{Type: "YellowBat", Health: 6, Speed: 1.6, Glyph: "v", Color: "bright_yellow"},
			{Type: "Eye", Health: 15, Speed: 1.0, Glyph: "e", Color: "white"},
			{Type: "Beast", Health: 40, Speed: 0.9, Glyph: "b", Color: "red"},
		},
		Phases: []SpawnPhase{
			{StartTime: 0, SpawnInterval: 2500, Enemies: Weights{
				{Type: "SpiderYellow", Weight: 10},
				{Type: "YellowBat", Weight: 4},
			}},
			{StartTime: 60, SpawnInterval: 1800, Enemies: Weights{
				{Type: "SpiderYellow", Weight: 6},
				{Type: "YellowBat", Weight: 5},
				{Type: "Eye", Weight: 5},
				{Type: "Beast", Weight: 2},
			}},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMobholdYAML
}
