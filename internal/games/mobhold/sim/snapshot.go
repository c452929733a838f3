package sim

import (
	"fmt"
	"hash/fnv"

	"github.com/vovakirdan/mobhold/internal/config"
)

// Snapshot is a read-only copy of the world for rendering and tests.
// Mutating it never affects the simulation.
type Snapshot struct {
	State        GameState
	ReadyTimer   float64
	GameTime     float64
	Score        int
	Kills        int
	UpgradeIndex int
	SpeedBoost   float64
	Invincible   float64

	Player   Player
	Camera   Vec2
	Viewport Vec2

	Enemies     []Enemy
	Projectiles []ProjectileView
	Orbiters    []OrbiterView
	Effects     []Effect
	Weapons     []PlayerWeapon
	Scrolls     []PlayerScroll
	Options     []UpgradeOption
}

// ProjectileView flattens both projectile variants.
type ProjectileView struct {
	Pos    Vec2
	Angle  float64
	Weapon string
	Kind   config.WeaponKind
	Spin   float64
	Bomb   bool
}

// OrbiterView is an orbiter without its hit bookkeeping.
type OrbiterView struct {
	Weapon string
	Pos    Vec2
	Angle  float64
}

// Snapshot copies the current state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		State:        w.state,
		ReadyTimer:   w.readyTimer,
		GameTime:     w.gameTime,
		Score:        w.score,
		Kills:        w.kills,
		UpgradeIndex: w.upgradeIndex,
		SpeedBoost:   w.speedBoost,
		Invincible:   w.invincible,
		Player:       w.player,
		Camera:       w.camera,
		Viewport:     w.viewport,
		Enemies:      w.Enemies(),
		Projectiles:  w.Projectiles(),
		Orbiters:     w.Orbiters(),
		Effects:      w.Effects(),
		Weapons:      w.Weapons(),
		Scrolls:      w.Scrolls(),
		Options:      w.Options(),
	}
	return snap
}

// Enemies returns copies of the live enemies, status effects included.
func (w *World) Enemies() []Enemy {
	out := make([]Enemy, 0, len(w.enemies))
	for _, e := range w.enemies {
		c := *e
		if e.Burn != nil {
			b := *e.Burn
			c.Burn = &b
		}
		if e.Freeze != nil {
			f := *e.Freeze
			c.Freeze = &f
		}
		out = append(out, c)
	}
	return out
}

func (w *World) Projectiles() []ProjectileView {
	out := make([]ProjectileView, 0, len(w.projectiles))
	for _, p := range w.projectiles {
		switch p := p.(type) {
		case *Shot:
			out = append(out, ProjectileView{Pos: p.Pos, Angle: p.Angle, Weapon: p.Weapon, Kind: p.Kind, Spin: p.Spin})
		case *Bomb:
			out = append(out, ProjectileView{Pos: p.Pos, Angle: p.Angle, Weapon: p.Weapon, Kind: config.KindLobbed, Bomb: true})
		}
	}
	return out
}

func (w *World) Orbiters() []OrbiterView {
	out := make([]OrbiterView, 0, len(w.orbiters))
	for _, o := range w.orbiters {
		out = append(out, OrbiterView{Weapon: o.Weapon, Pos: o.Pos, Angle: o.Angle})
	}
	return out
}

func (w *World) Effects() []Effect {
	out := make([]Effect, 0, len(w.effects))
	for _, fx := range w.effects {
		out = append(out, *fx)
	}
	return out
}

func (w *World) Weapons() []PlayerWeapon {
	out := make([]PlayerWeapon, 0, len(w.weapons))
	for _, pw := range w.weapons {
		out = append(out, *pw)
	}
	return out
}

func (w *World) Scrolls() []PlayerScroll {
	out := make([]PlayerScroll, 0, len(w.scrolls))
	for _, ps := range w.scrolls {
		out = append(out, *ps)
	}
	return out
}

// Hash returns a digest of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "S:%d:%g:%g:%d:%d:%d;", snap.State, snap.ReadyTimer, snap.GameTime, snap.Score, snap.Kills, snap.UpgradeIndex)
	fmt.Fprintf(h, "P:%g:%g:%v:%d:%g;", snap.Player.Pos.X, snap.Player.Pos.Y, snap.Player.FacingRight, snap.Player.Direction, snap.Player.Aim)
	fmt.Fprintf(h, "C:%g:%g;", snap.Camera.X, snap.Camera.Y)

	fmt.Fprintf(h, "E:")
	for _, e := range snap.Enemies {
		fmt.Fprintf(h, "%d:%s:%g:%g:%d:%v:%v,", e.ID, e.Type, e.Pos.X, e.Pos.Y, e.Health, e.Burn != nil, e.Freeze != nil)
	}
	fmt.Fprintf(h, ";J:")
	for _, p := range snap.Projectiles {
		fmt.Fprintf(h, "%s:%g:%g:%g,", p.Weapon, p.Pos.X, p.Pos.Y, p.Angle)
	}
	fmt.Fprintf(h, ";O:")
	for _, o := range snap.Orbiters {
		fmt.Fprintf(h, "%s:%g,", o.Weapon, o.Angle)
	}
	fmt.Fprintf(h, ";W:")
	for _, pw := range snap.Weapons {
		fmt.Fprintf(h, "%s:%d:%g,", pw.Type, pw.Level, pw.Cooldown)
	}
	fmt.Fprintf(h, ";R:")
	for _, ps := range snap.Scrolls {
		fmt.Fprintf(h, "%s:%g,", ps.Type, ps.NextTrigger)
	}
	fmt.Fprintf(h, ";U:")
	for _, o := range snap.Options {
		fmt.Fprintf(h, "%d:%s,", o.Kind, o.Type)
	}
	fmt.Fprintf(h, ";F:%d", len(snap.Effects))

	return h.Sum64()
}
