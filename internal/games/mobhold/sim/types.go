package sim

import "github.com/vovakirdan/mobhold/internal/config"

// GameState is the discrete run state exposed to the shell.
type GameState int

const (
	StatePlaying GameState = iota
	StateUpgrading
	StatePaused
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateUpgrading:
		return "upgrading"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Direction is the player's 3-way sprite direction.
type Direction int

const (
	DirFront Direction = iota
	DirSide
	DirBack
)

// Anim tracks a looping sprite animation.
type Anim struct {
	Frame     int
	FrameTime float64 // Seconds since last frame change
}

func (a *Anim) advance(dt, frameTime float64, frames int) {
	a.FrameTime += dt
	if a.FrameTime > frameTime {
		a.FrameTime = 0
		a.Frame = (a.Frame + 1) % frames
	}
}

// Player is the controlled character.
type Player struct {
	Pos         Vec2
	Target      Vec2
	HasTarget   bool
	Moving      bool
	FacingRight bool
	Direction   Direction
	Aim         float64 // Radians, used by directional weapons
	Anim        Anim
}

// EnemyID is a stable identifier assigned at spawn.
type EnemyID uint64

// Burn deals periodic damage. Times are milliseconds.
type Burn struct {
	Damage       int
	Remaining    float64
	TickInterval float64
	NextTick     float64 // Absolute game time
}

// Freeze suppresses movement until an absolute game time.
type Freeze struct {
	Until float64
}

// Enemy is a live monster.
type Enemy struct {
	ID          EnemyID
	Type        string
	Pos         Vec2
	Health      int
	MaxHealth   int
	Speed       float64 // Factor on the base enemy speed
	FacingRight bool
	Anim        Anim
	Burn        *Burn
	Freeze      *Freeze

	dead bool
}

// Projectile is a fired shot. Implemented by *Shot and *Bomb.
type Projectile interface {
	Position() Vec2
	WeaponType() string
}

// Shot flies in a straight line until it hits or leaves the view.
// Used by directional, radial and homing weapons.
type Shot struct {
	Pos    Vec2
	Angle  float64
	Damage int
	Weapon string
	Kind   config.WeaponKind
	Spin   float64 // Radial shots spin while flying
}

func (s *Shot) Position() Vec2     { return s.Pos }
func (s *Shot) WeaponType() string { return s.Weapon }

// Bomb travels a fixed distance and detonates when its fuse expires.
type Bomb struct {
	Pos      Vec2
	Angle    float64
	Damage   int
	Weapon   string
	Traveled float64
	Fuse     float64 // Milliseconds elapsed
	Exploded bool
}

func (b *Bomb) Position() Vec2     { return b.Pos }
func (b *Bomb) WeaponType() string { return b.Weapon }

// Orbiter circles the player and hits enemies it passes through.
type Orbiter struct {
	Weapon string
	Pos    Vec2
	Angle  float64
	Radius float64
	Speed  float64
	Damage int
	Hits   map[EnemyID]float64 // Remaining cooldown in milliseconds
}

// PlayerWeapon is an owned weapon.
type PlayerWeapon struct {
	Type     string
	Level    int
	Cooldown float64 // Accumulated milliseconds
}

// PlayerScroll is an owned passive proc.
type PlayerScroll struct {
	Type           string
	NextTrigger    float64 // Absolute game time
	HighlightUntil float64
}

// EffectKind identifies a transient visual event.
type EffectKind int

const (
	EffectExplosion EffectKind = iota
	EffectBlood
	EffectScroll
)

// Effect is decoration with a fixed frame budget.
type Effect struct {
	Kind          EffectKind
	Pos           Vec2
	Frame         int
	FrameTimer    float64
	TotalFrames   int
	FrameDuration float64
	Scroll        config.ScrollKind // EffectScroll only
	Target        EnemyID           // Followed enemy, zero for none
}

// OptionKind distinguishes upgrade offers.
type OptionKind int

const (
	OptionUpgrade OptionKind = iota
	OptionNewWeapon
	OptionNewScroll
)

func (k OptionKind) String() string {
	switch k {
	case OptionUpgrade:
		return "upgrade"
	case OptionNewWeapon:
		return "new weapon"
	case OptionNewScroll:
		return "new scroll"
	default:
		return "unknown"
	}
}

// UpgradeOption is a single entry in the upgrade menu.
type UpgradeOption struct {
	Kind        OptionKind
	Type        string
	Level       int    // Level after applying; 0 for new weapons and scrolls
	Description string // Human-readable stat change
}
