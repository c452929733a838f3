package sim

import (
	"math"
	"testing"
)

func TestDamageAccounting(t *testing.T) {
	w := newTestWorld(t, 1)
	e := w.newEnemy("Beast", Vec2{100, 0})

	hits := []struct {
		damage        int
		expectHealth  int
		expectPresent bool
		expectScore   int
	}{
		{15, 25, true, 0},
		{15, 10, true, 0},
		{15, -5, false, 40},
	}

	for i, h := range hits {
		w.hit(e, h.damage, "test")
		w.reap()

		if e.Health != h.expectHealth {
			t.Errorf("hit %d: health got %d, expected %d", i, e.Health, h.expectHealth)
		}
		if present := len(w.enemies) == 1; present != h.expectPresent {
			t.Errorf("hit %d: present got %v, expected %v", i, present, h.expectPresent)
		}
		if w.Score() != h.expectScore {
			t.Errorf("hit %d: score got %d, expected %d", i, w.Score(), h.expectScore)
		}
	}

	if w.Kills() != 1 {
		t.Errorf("Kills: got %d, expected 1", w.Kills())
	}
	if len(w.events.Kills) != 1 || w.events.Kills[0].Score != 40 {
		t.Errorf("Kill events: got %+v, expected one kill worth 40", w.events.Kills)
	}

	blood := 0
	for _, fx := range w.effects {
		if fx.Kind == EffectBlood {
			blood++
		}
	}
	if blood != 3 {
		t.Errorf("Blood effects: got %d, expected 3", blood)
	}
}

func TestDeadEnemyTakesNoFurtherDamage(t *testing.T) {
	w := newTestWorld(t, 1)
	e := w.newEnemy("YellowBat", Vec2{100, 0})

	w.hit(e, 100, "test")
	w.hit(e, 100, "test")

	if w.Score() != 6 {
		t.Errorf("Score: got %d, expected 6", w.Score())
	}
}

func TestRadialBurstAngles(t *testing.T) {
	w := newTestWorld(t, 1)
	def := w.weaponDef("Shuriken")
	w.fire(def, def.Level(0))

	expected := []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}
	if len(w.projectiles) != len(expected) {
		t.Fatalf("Projectiles: got %d, expected %d", len(w.projectiles), len(expected))
	}
	for i, p := range w.projectiles {
		s, ok := p.(*Shot)
		if !ok {
			t.Fatalf("projectile %d: got %T, expected *Shot", i, p)
		}
		if math.Abs(s.Angle-expected[i]) > 1e-9 {
			t.Errorf("projectile %d: angle got %v, expected %v", i, s.Angle, expected[i])
		}
	}
}

func TestHomingTargetsNearest(t *testing.T) {
	tests := []struct {
		name        string
		facingRight bool
		enemies     []Vec2
		expected    float64
	}{
		{"no enemies facing right", true, nil, 0},
		{"no enemies facing left", false, nil, math.Pi},
		{"nearest below", true, []Vec2{{300, 0}, {0, 100}}, math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 1)
			w.player.FacingRight = tt.facingRight
			for _, pos := range tt.enemies {
				w.newEnemy("Eye", pos)
			}

			def := w.weaponDef("Kunai")
			w.fire(def, def.Level(0))

			s := w.projectiles[0].(*Shot)
			if math.Abs(s.Angle-tt.expected) > 1e-9 {
				t.Errorf("Angle: got %v, expected %v", s.Angle, tt.expected)
			}
		})
	}
}

func TestWeaponCooldown(t *testing.T) {
	w := newTestWorld(t, 1)

	for range 9 {
		w.updateWeapons(0.1)
	}
	if len(w.projectiles) != 0 {
		t.Fatalf("Projectiles before cooldown: got %d, expected 0", len(w.projectiles))
	}
	w.updateWeapons(0.1)
	w.updateWeapons(0.1)
	if len(w.projectiles) != 1 {
		t.Errorf("Projectiles after cooldown: got %d, expected 1", len(w.projectiles))
	}
}

func TestShotHitsFirstEnemyOnce(t *testing.T) {
	w := newTestWorld(t, 1)
	a := w.newEnemy("Beast", Vec2{10, 0})
	b := w.newEnemy("Beast", Vec2{12, 0})
	w.projectiles = []Projectile{&Shot{Angle: 0, Damage: 10, Weapon: "Arrow"}}

	w.updateProjectiles(0.01)

	if len(w.projectiles) != 0 {
		t.Errorf("Projectiles: got %d, expected 0", len(w.projectiles))
	}
	if a.Health != 30 || b.Health != 40 {
		t.Errorf("Health: got %d and %d, expected 30 and 40", a.Health, b.Health)
	}
}

func TestShotLeavesView(t *testing.T) {
	w := newTestWorld(t, 1)
	w.projectiles = []Projectile{&Shot{Pos: Vec2{955, 0}, Angle: 0, Damage: 10, Weapon: "Arrow"}}

	w.updateProjectiles(0.1)

	if len(w.projectiles) != 0 {
		t.Errorf("Projectiles: got %d, expected 0", len(w.projectiles))
	}
}

func TestBombDetonation(t *testing.T) {
	w := newTestWorld(t, 1)
	near := w.newEnemy("Beast", Vec2{80, 10})
	far := w.newEnemy("Beast", Vec2{300, 300})
	w.projectiles = []Projectile{&Bomb{Angle: 0, Damage: 30, Weapon: "Bomb"}}

	for range 9 {
		w.updateProjectiles(0.1)
	}
	if len(w.projectiles) != 1 {
		t.Fatalf("Bomb before fuse: got %d projectiles, expected 1", len(w.projectiles))
	}
	bomb := w.projectiles[0].(*Bomb)
	if bomb.Traveled < w.cfg.Bomb.TravelDistance || bomb.Traveled > w.cfg.Bomb.TravelDistance+30 {
		t.Errorf("Traveled: got %v, expected the travel cap plus at most one step", bomb.Traveled)
	}
	if near.Health != 40 {
		t.Errorf("Damage before fuse: got health %d, expected 40", near.Health)
	}

	w.updateProjectiles(0.1)

	if len(w.projectiles) != 0 {
		t.Errorf("Bomb after fuse: got %d projectiles, expected 0", len(w.projectiles))
	}
	if near.Health != 10 {
		t.Errorf("Near enemy: got health %d, expected 10", near.Health)
	}
	if far.Health != 40 {
		t.Errorf("Far enemy: got health %d, expected 40", far.Health)
	}

	explosions := 0
	for _, fx := range w.effects {
		if fx.Kind == EffectExplosion {
			explosions++
		}
	}
	if explosions != 1 {
		t.Errorf("Explosions: got %d, expected 1", explosions)
	}
}

func TestOrbiterHitCooldown(t *testing.T) {
	w := newTestWorld(t, 1)
	w.addWeapon("Circlet")
	if len(w.orbiters) != 1 {
		t.Fatalf("Orbiters: got %d, expected 1", len(w.orbiters))
	}
	o := w.orbiters[0]
	o.Speed = 0
	e := w.newEnemy("Beast", Vec2{160, 0})

	steps := []struct {
		dt     float64
		health int
	}{
		{0.2, 34}, // Hit, 500ms cooldown starts
		{0.2, 34}, // 300ms left
		{0.2, 34}, // 100ms left
		{0.2, 28}, // Expired, hit again
	}
	for i, s := range steps {
		w.updateOrbiters(s.dt)
		if e.Health != s.health {
			t.Errorf("step %d: health got %d, expected %d", i, e.Health, s.health)
		}
	}
}

func TestOrbitersRebuiltOnLevelUp(t *testing.T) {
	w := newTestWorld(t, 1)
	w.addWeapon("Circlet")

	for level := 1; level <= 2; level++ {
		w.upgradeWeapon("Circlet")
		if len(w.orbiters) != level+1 {
			t.Errorf("level %d: orbiters got %d, expected %d", level, len(w.orbiters), level+1)
		}
	}

	step := 2 * math.Pi / 3
	for i, o := range w.orbiters {
		if math.Abs(o.Angle-float64(i)*step) > 1e-9 {
			t.Errorf("orbiter %d: angle got %v, expected %v", i, o.Angle, float64(i)*step)
		}
	}

	w.upgradeWeapon("Circlet")
	if w.weapon("Circlet").Level != 2 {
		t.Errorf("Level past max: got %d, expected 2", w.weapon("Circlet").Level)
	}
}

func TestBurnTicks(t *testing.T) {
	w := newTestWorld(t, 1)
	e := w.newEnemy("Beast", Vec2{300, 0})
	e.Burn = &Burn{Damage: 3, Remaining: 3000, TickInterval: 500, NextTick: 500}

	for range 30 {
		w.gameTime += 100
		w.updateStatus(0.1)
	}

	if e.Health != 22 {
		t.Errorf("Health after burn: got %d, expected 22", e.Health)
	}
	if e.Burn != nil {
		t.Errorf("Burn after duration: got %+v, expected nil", e.Burn)
	}
}

func TestBurnKillScores(t *testing.T) {
	w := newTestWorld(t, 1)
	e := w.newEnemy("YellowBat", Vec2{300, 0})
	e.Burn = &Burn{Damage: 6, Remaining: 3000, TickInterval: 500, NextTick: 0}

	w.updateStatus(0.1)

	if len(w.enemies) != 0 {
		t.Errorf("Enemies: got %d, expected 0", len(w.enemies))
	}
	if w.Score() != 6 {
		t.Errorf("Score: got %d, expected 6", w.Score())
	}
}

func TestFreezeSuppressesMovement(t *testing.T) {
	w := newTestWorld(t, 1)
	e := w.newEnemy("Eye", Vec2{100, 0})
	e.Freeze = &Freeze{Until: 1000}

	w.moveEnemies(0.1)
	if e.Pos != (Vec2{100, 0}) {
		t.Errorf("Frozen enemy moved to %+v", e.Pos)
	}

	w.gameTime = 1000
	w.updateStatus(0.1)
	if e.Freeze != nil {
		t.Fatal("Freeze should expire at its end time")
	}

	w.moveEnemies(0.1)
	if e.Pos.X >= 100 {
		t.Errorf("Thawed enemy X: got %v, expected less than 100", e.Pos.X)
	}
}
