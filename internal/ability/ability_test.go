package ability

import (
	"testing"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/event"
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"
)

type pelletShot struct {
	x, y, angle float64
	tracking    bool
}

type fakeHost struct {
	rng        *utils.PRNGService
	tuning     config.Tuning
	px, py     float64
	shockwaves []bool
	walls      int
	pellets    []pelletShot
	bursts     []int
	healed     int
	killed     []types.EntityID
	events     []event.Event
}

func newFakeHost() *fakeHost {
	return &fakeHost{rng: utils.NewPRNGService(42), tuning: config.DefaultTuning(), px: 100}
}

func (h *fakeHost) Rand() *utils.PRNGService { return h.rng }
func (h *fakeHost) Tuning() config.Tuning { return h.tuning }
func (h *fakeHost) PlayerPosition() (float64, float64) { return h.px, h.py }
func (h *fakeHost) SpawnShockwave(x, y float64, mini bool) {
	h.shockwaves = append(h.shockwaves, mini)
}
func (h *fakeHost) SpawnWall(x, y, angle float64) { h.walls++ }
func (h *fakeHost) SpawnEnemyPellet(x, y, angle float64, tracking bool) {
	h.pellets = append(h.pellets, pelletShot{x, y, angle, tracking})
}
func (h *fakeHost) SpawnDeathBurst(x, y float64, count int) { h.bursts = append(h.bursts, count) }
func (h *fakeHost) HealEnemies(except types.EntityID, x, y, radius, amount float64) int {
	h.healed++
	return 1
}
func (h *fakeHost) Kill(id types.EntityID) { h.killed = append(h.killed, id) }
func (h *fakeHost) Emit(e event.Event) { h.events = append(h.events, e) }

func newSelf(kind defs.EnemyKind, hp float64) Self {
	return Self{
		ID:    7,
		Pos:   &component.Position{},
		Enemy: &component.Enemy{Kind: kind, HP: hp, MaxHP: hp, Ability: New(kind)},
	}
}

func TestNewReturnsVariantPerKind(t *testing.T) {
	for _, kind := range defs.AllKinds {
		a := New(kind)
		if a.Kind() != kind {
			t.Errorf("New(%s).Kind() = %s", kind, a.Kind())
		}
	}
	if _, ok := New(defs.KindRed).(Ticker); ok {
		t.Errorf("red should have no tick behaviour")
	}
	if _, ok := New(defs.KindRedOrbiter).(Interceptor); !ok {
		t.Errorf("red_orbiter should intercept")
	}
	if _, ok := New(defs.KindPurple).(Absorber); !ok {
		t.Errorf("purple should absorb")
	}
	if _, ok := New(defs.KindGreen).(DeathHandler); !ok {
		t.Errorf("green should have a death effect")
	}
}

func TestBlueShockwaveFiresOnceAtHalfHealth(t *testing.T) {
	h := newFakeHost()
	self := newSelf(defs.KindBlue, 60)
	trigger := self.Enemy.Ability.(*ShockwaveTrigger)

	self.Enemy.TakeDamage(30)
	trigger.OnDamaged(h, self)
	if !trigger.HasShockwaved {
		t.Fatalf("expected HasShockwaved after dropping to 30/60")
	}
	if len(h.shockwaves) != 1 || h.shockwaves[0] {
		t.Fatalf("expected one full shockwave, got %v", h.shockwaves)
	}

	self.Enemy.TakeDamage(20)
	trigger.OnDamaged(h, self)
	if len(h.shockwaves) != 1 {
		t.Errorf("second hit created another shockwave: %v", h.shockwaves)
	}
}

func TestBlueShockwaveNotFiredAboveHalf(t *testing.T) {
	h := newFakeHost()
	self := newSelf(defs.KindBlue, 60)
	self.Enemy.TakeDamage(29)
	self.Enemy.Ability.(DamageListener).OnDamaged(h, self)
	if len(h.shockwaves) != 0 {
		t.Errorf("shockwave fired at hp %.0f", self.Enemy.HP)
	}
}

func TestOrbitersInterceptBeforeCore(t *testing.T) {
	h := newFakeHost()
	self := newSelf(defs.KindRedOrbiter, 30)
	orbs := self.Enemy.Ability.(*Orbiters)

	ox, oy := orbs.WorldPosition(0, self.Pos.X, self.Pos.Y)
	p := &component.Projectile{Radius: config.BulletRadius, Damage: 10}
	if !orbs.Intercept(h, self, p, ox, oy) {
		t.Fatalf("projectile on orbiter was not intercepted")
	}
	if orbs.Orbiters[0].HP != config.OrbiterHP-10 {
		t.Errorf("orbiter hp = %v, want %v", orbs.Orbiters[0].HP, config.OrbiterHP-10)
	}
	if self.Enemy.HP != 30 {
		t.Errorf("core lost hp while orbiter intercepted: %v", self.Enemy.HP)
	}

	orbs.Intercept(h, self, p, ox, oy)
	if len(orbs.Orbiters) != config.OrbiterCount-1 {
		t.Errorf("destroyed orbiter not removed, have %d", len(orbs.Orbiters))
	}
}

func TestOrbitersMissFarProjectile(t *testing.T) {
	h := newFakeHost()
	self := newSelf(defs.KindRedOrbiter, 30)
	p := &component.Projectile{Radius: config.BulletRadius, Damage: 10}
	if self.Enemy.Ability.(Interceptor).Intercept(h, self, p, 300, 300) {
		t.Errorf("far projectile intercepted")
	}
}

func TestPurpleNeverExceedsMaxPellets(t *testing.T) {
	h := newFakeHost()
	self := newSelf(defs.KindPurple, 30)
	eater := self.Enemy.Ability.(*PelletEater)

	for i := 0; i < 10; i++ {
		eater.Absorb(h, self, &component.Projectile{Damage: 10})
		if eater.PelletsEaten > config.PurpleMaxPellets {
			t.Fatalf("pelletsEaten = %d", eater.PelletsEaten)
		}
	}
	if eater.PelletsEaten != config.PurpleMaxPellets {
		t.Errorf("pelletsEaten = %d, want %d", eater.PelletsEaten, config.PurpleMaxPellets)
	}
	if self.Enemy.HP != 30 {
		t.Errorf("absorbing should deal no damage, hp = %v", self.Enemy.HP)
	}
}

func TestPurpleIgnoresSpecialProjectiles(t *testing.T) {
	h := newFakeHost()
	self := newSelf(defs.KindPurple, 30)
	eater := self.Enemy.Ability.(*PelletEater)
	for _, p := range []*component.Projectile{
		{IsSuper: true},
		{IsExplosivePellet: true},
		{IsReflected: true},
		{IsEnemyPellet: true},
	} {
		if eater.Absorb(h, self, p) {
			t.Errorf("absorbed %+v", *p)
		}
	}
}

func TestPurpleSpitResetsAndSelfDamages(t *testing.T) {
	h := newFakeHost()
	self := newSelf(defs.KindPurple, 30)
	eater := self.Enemy.Ability.(*PelletEater)
	for i := 0; i < config.PurpleMaxPellets; i++ {
		eater.Eat()
	}

	if !eater.Spit(h, self) {
		t.Fatalf("spit refused with a full stomach")
	}
	if eater.PelletsEaten != 0 {
		t.Errorf("pelletsEaten = %d after spit", eater.PelletsEaten)
	}
	if self.Enemy.HP != 30-config.PurpleSpitDamage {
		t.Errorf("hp = %v, want %v", self.Enemy.HP, 30-config.PurpleSpitDamage)
	}
	if eater.TotalPelletsConsumed != config.PurpleMaxPellets {
		t.Errorf("total consumed reset to %d", eater.TotalPelletsConsumed)
	}
	n := len(h.pellets)
	if n != 1 && n != config.PurpleMaxPellets {
		t.Errorf("spit fired %d pellets", n)
	}
	if n == 1 && !h.pellets[0].tracking {
		t.Errorf("single spit pellet should track")
	}
}

func TestPurpleSpitModesFollowTuning(t *testing.T) {
	for _, tc := range []struct {
		chance   float64
		want     int
		tracking bool
	}{
		{chance: 1, want: 1, tracking: true},
		{chance: 0, want: config.PurpleMaxPellets, tracking: false},
	} {
		h := newFakeHost()
		h.tuning.SpitTrackingChance = tc.chance
		self := newSelf(defs.KindPurple, 30)
		eater := self.Enemy.Ability.(*PelletEater)
		for i := 0; i < config.PurpleMaxPellets; i++ {
			eater.Eat()
		}
		eater.Spit(h, self)
		if len(h.pellets) != tc.want {
			t.Errorf("chance %v: %d pellets, want %d", tc.chance, len(h.pellets), tc.want)
			continue
		}
		if h.pellets[0].tracking != tc.tracking {
			t.Errorf("chance %v: tracking = %v", tc.chance, h.pellets[0].tracking)
		}
	}
}

func TestPurpleTickKillsWhenSpitIsFatal(t *testing.T) {
	h := newFakeHost()
	self := newSelf(defs.KindPurple, 30)
	self.Enemy.HP = 10
	eater := self.Enemy.Ability.(*PelletEater)
	for i := 0; i < config.PurpleMaxPellets; i++ {
		eater.Eat()
	}
	eater.Tick(h, self)
	if self.Enemy.HP != 0 {
		t.Errorf("hp = %v, want 0", self.Enemy.HP)
	}
	if len(h.killed) != 1 || h.killed[0] != self.ID {
		t.Errorf("killed = %v", h.killed)
	}
}

func TestPurpleDeathBurstsEverythingSwallowed(t *testing.T) {
	h := newFakeHost()
	self := newSelf(defs.KindPurple, 30)
	eater := self.Enemy.Ability.(*PelletEater)
	eater.TotalPelletsConsumed = 12
	eater.OnDeath(h, self)
	if len(h.bursts) != 1 || h.bursts[0] != 12 {
		t.Errorf("bursts = %v", h.bursts)
	}
}

func TestHealerPulsesOnInterval(t *testing.T) {
	h := newFakeHost()
	self := newSelf(defs.KindGreen, 15)
	healer := self.Enemy.Ability.(*Healer)
	for i := 0; i < healer.HealInterval-1; i++ {
		healer.Tick(h, self)
	}
	if h.healed != 0 {
		t.Fatalf("healed early")
	}
	healer.Tick(h, self)
	if h.healed != 1 {
		t.Errorf("healed %d times, want 1", h.healed)
	}
	if healer.HealTimer != 0 {
		t.Errorf("timer not reset: %d", healer.HealTimer)
	}
}

func TestHealerDeathLeavesMiniShockwave(t *testing.T) {
	h := newFakeHost()
	self := newSelf(defs.KindGreen, 15)
	self.Enemy.Ability.(DeathHandler).OnDeath(h, self)
	if len(h.shockwaves) != 1 || !h.shockwaves[0] {
		t.Errorf("shockwaves = %v, want one mini", h.shockwaves)
	}
}

func TestWallSpawnerInterval(t *testing.T) {
	h := newFakeHost()
	self := newSelf(defs.KindWhite, 20)
	spawner := self.Enemy.Ability.(*WallSpawner)
	for i := 0; i < 2*spawner.WallInterval; i++ {
		spawner.Tick(h, self)
	}
	if h.walls != 2 {
		t.Errorf("walls = %d, want 2", h.walls)
	}
}
