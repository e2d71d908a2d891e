package system

import (
	"math"
	"testing"

	"go-wave-shooter/internal/ability"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/event"
)

func TestOrbiterShieldsCore(t *testing.T) {
	w := newWorld()
	eid := w.arena.SpawnEnemy(defs.KindRedOrbiter, 300, 0)
	orbs := w.ecs.Enemies[eid].Ability.(*ability.Orbiters)
	orbs.Orbiters[0].Distance = 20
	ox, oy := orbs.WorldPosition(0, 300, 0)

	// The bullet overlaps both the orbiter and the core.
	bid := w.bullet(ox-5, oy, 0, 0)
	NewCollisionSystem(w.ecs, w.arena).Update()

	e := w.ecs.Enemies[eid]
	if e.HP != e.MaxHP {
		t.Errorf("core hp = %v while orbiter intercepted", e.HP)
	}
	if !w.ecs.Projectiles[bid].MarkedForDeletion {
		t.Errorf("intercepted bullet not consumed")
	}
	if orbs.Orbiters[0].HP != config.OrbiterHP-10 {
		t.Errorf("orbiter hp = %v", orbs.Orbiters[0].HP)
	}
}

func TestCoreHitOnceOrbitersAreGone(t *testing.T) {
	w := newWorld()
	eid := w.arena.SpawnEnemy(defs.KindRedOrbiter, 300, 0)
	w.ecs.Enemies[eid].Ability.(*ability.Orbiters).Orbiters = nil
	w.bullet(300, 0, 0, 0)
	NewCollisionSystem(w.ecs, w.arena).Update()

	if e := w.ecs.Enemies[eid]; e.HP != e.MaxHP-10 {
		t.Errorf("core hp = %v, want %v", e.HP, e.MaxHP-10)
	}
}

func TestBulletAndPelletDestroyEachOther(t *testing.T) {
	w := newWorld()
	pid := w.pellet(200, 200)
	bid := w.bullet(203, 200, 0, 0)
	// An enemy under the pair must not be hit by the consumed bullet.
	eid := w.arena.SpawnEnemy(defs.KindRed, 203, 200)

	NewCollisionSystem(w.ecs, w.arena).Update()

	if !w.ecs.Projectiles[pid].MarkedForDeletion || !w.ecs.Projectiles[bid].MarkedForDeletion {
		t.Errorf("pair not destroyed")
	}
	if e := w.ecs.Enemies[eid]; e.HP != e.MaxHP {
		t.Errorf("consumed bullet still damaged an enemy: hp %v", e.HP)
	}
}

func TestReflectedBulletHurtsPlayer(t *testing.T) {
	w := newWorld()
	bid := w.bullet(5, 0, 0, 0)
	w.ecs.Projectiles[bid].IsReflected = true

	NewCollisionSystem(w.ecs, w.arena).Update()

	if hp := w.ecs.Player.HP; hp != config.PlayerMaxHP-config.ReflectedBulletDamage {
		t.Errorf("player hp = %v", hp)
	}
	if !w.ecs.Projectiles[bid].MarkedForDeletion {
		t.Errorf("reflected bullet not consumed")
	}
}

func TestPlayerBulletDoesNotHurtPlayer(t *testing.T) {
	w := newWorld()
	w.bullet(0, 0, 0, 0)
	NewCollisionSystem(w.ecs, w.arena).Update()
	if w.ecs.Player.HP != config.PlayerMaxHP {
		t.Errorf("own bullet hurt the player")
	}
}

func TestContactDamageEveryFrame(t *testing.T) {
	w := newWorld()
	w.arena.SpawnEnemy(defs.KindRed, 10, 0)
	cs := NewCollisionSystem(w.ecs, w.arena)
	for i := 0; i < 4; i++ {
		cs.Update()
	}
	if hp := w.ecs.Player.HP; hp != config.PlayerMaxHP-4*config.ContactDamage {
		t.Errorf("player hp = %v", hp)
	}
	if w.rec.count(event.CameraShake) != 4 {
		t.Errorf("shakes = %d", w.rec.count(event.CameraShake))
	}
}

func TestEnemyPelletHurtsPlayer(t *testing.T) {
	w := newWorld()
	pid := w.pellet(3, 3)
	NewCollisionSystem(w.ecs, w.arena).Update()
	if hp := w.ecs.Player.HP; hp != config.PlayerMaxHP-config.PelletDamage {
		t.Errorf("player hp = %v", hp)
	}
	if !w.ecs.Projectiles[pid].MarkedForDeletion {
		t.Errorf("pellet not consumed")
	}
}

func TestPurpleAbsorbsInsteadOfDamage(t *testing.T) {
	w := newWorld()
	eid := w.arena.SpawnEnemy(defs.KindPurple, 300, 0)
	bid := w.bullet(300, 0, 0, 0)
	NewCollisionSystem(w.ecs, w.arena).Update()

	e := w.ecs.Enemies[eid]
	if e.HP != e.MaxHP {
		t.Errorf("purple took damage: %v", e.HP)
	}
	if got := e.Ability.(*ability.PelletEater).PelletsEaten; got != 1 {
		t.Errorf("pelletsEaten = %d", got)
	}
	if !w.ecs.Projectiles[bid].MarkedForDeletion {
		t.Errorf("eaten bullet not consumed")
	}
}

func TestSuperBulletBurstsOnHit(t *testing.T) {
	w := newWorld()
	w.arena.SpawnEnemy(defs.KindBlue, 300, 0)
	w.arena.SpawnBullet(300, 0, 0, BulletOptions{Damage: 10, Speed: 8, Super: true})
	before := len(w.ecs.Projectiles)

	NewCollisionSystem(w.ecs, w.arena).Update()

	explosive := 0
	for _, p := range w.ecs.Projectiles {
		if p.IsExplosivePellet {
			explosive++
		}
	}
	if explosive != config.ExplosivePelletCount {
		t.Errorf("explosive pellets = %d, want %d", explosive, config.ExplosivePelletCount)
	}
	if len(w.ecs.Projectiles) != before+config.ExplosivePelletCount {
		t.Errorf("projectiles = %d", len(w.ecs.Projectiles))
	}
}

func TestKillRunsDeathProtocolOnce(t *testing.T) {
	w := newWorld()
	eid := w.arena.SpawnEnemy(defs.KindRed, 300, 0)
	w.ecs.Enemies[eid].HP = 5
	w.bullet(300, 0, 0, 0)
	w.bullet(300, 0, 0, 0)

	NewCollisionSystem(w.ecs, w.arena).Update()

	e := w.ecs.Enemies[eid]
	if !e.MarkedForDeletion || e.HP != 0 {
		t.Fatalf("enemy not killed: %+v", *e)
	}
	if w.ecs.Wave.Score != e.ScoreValue {
		t.Errorf("score = %d, want %d", w.ecs.Wave.Score, e.ScoreValue)
	}
	if w.ecs.Player.Charge != 1 {
		t.Errorf("charge = %d, want 1", w.ecs.Player.Charge)
	}
	if n := w.rec.count(event.EnemyDestroyed); n != 1 {
		t.Errorf("EnemyDestroyed dispatched %d times", n)
	}
}

func TestGreenDeathLeavesMiniShockwave(t *testing.T) {
	w := newWorld()
	eid := w.arena.SpawnEnemy(defs.KindGreen, 300, 0)
	w.ecs.Enemies[eid].HP = 1
	w.bullet(300, 0, 0, 0)
	NewCollisionSystem(w.ecs, w.arena).Update()

	if len(w.ecs.Shockwaves) != 1 {
		t.Fatalf("shockwaves = %d", len(w.ecs.Shockwaves))
	}
	for _, s := range w.ecs.Shockwaves {
		if !s.Mini {
			t.Errorf("green death made a full shockwave")
		}
	}
}

func TestPurpleDeathBurst(t *testing.T) {
	w := newWorld()
	eid := w.arena.SpawnEnemy(defs.KindPurple, 300, 0)
	e := w.ecs.Enemies[eid]
	e.Ability.(*ability.PelletEater).TotalPelletsConsumed = 7
	e.HP = 1
	w.arena.SpawnBullet(300, 0, 0, BulletOptions{Damage: 10, Speed: 8, Explosive: true})

	NewCollisionSystem(w.ecs, w.arena).Update()

	burst := 0
	for _, p := range w.ecs.Projectiles {
		if !p.MarkedForDeletion && p.Damage == config.PlayerDamage*config.DeathBurstDamageFactor {
			burst++
		}
	}
	if burst != 7 {
		t.Errorf("death burst = %d bullets, want 7", burst)
	}
}

func TestBlueShockwaveScenario(t *testing.T) {
	w := newWorld()
	eid := w.arena.SpawnEnemy(defs.KindBlue, 300, 0)
	e := w.ecs.Enemies[eid]
	if e.MaxHP != 60 {
		t.Fatalf("blue max hp = %v", e.MaxHP)
	}

	w.arena.ApplyDamage(eid, 30)
	if !e.Ability.(*ability.ShockwaveTrigger).HasShockwaved || len(w.ecs.Shockwaves) != 1 {
		t.Fatalf("no shockwave at 30/60")
	}
	w.arena.ApplyDamage(eid, 20)
	if e.HP != 10 || len(w.ecs.Shockwaves) != 1 {
		t.Errorf("hp %v, shockwaves %d", e.HP, len(w.ecs.Shockwaves))
	}
}

func TestWallReflectsBullet(t *testing.T) {
	w := newWorld()
	// Horizontal wall along y = 100.
	w.arena.SpawnWall(300, 100, 0)
	bid := w.bullet(300, 98, 0, 5)

	NewCollisionSystem(w.ecs, w.arena).Update()

	vel := w.ecs.Velocities[bid]
	if math.Abs(vel.X) > 1e-9 || math.Abs(vel.Y+5) > 1e-9 {
		t.Errorf("velocity = %+v, want (0, -5)", *vel)
	}
	if pos := w.ecs.Positions[bid]; math.Abs(pos.Y-(98-config.WallNudge)) > 1e-9 {
		t.Errorf("bullet not nudged off the wall: y = %v", pos.Y)
	}
	if w.ecs.Projectiles[bid].MarkedForDeletion {
		t.Errorf("wall consumed the bullet")
	}
}

func TestWallIgnoresEnemyPellets(t *testing.T) {
	w := newWorld()
	w.arena.SpawnWall(300, 100, 0)
	pid := w.pellet(300, 98)
	before := *w.ecs.Velocities[pid]
	NewCollisionSystem(w.ecs, w.arena).Update()
	if *w.ecs.Velocities[pid] != before {
		t.Errorf("wall bounced an enemy pellet")
	}
}

func TestResolverSkipsMarkedEnemies(t *testing.T) {
	w := newWorld()
	eid := w.arena.SpawnEnemy(defs.KindRed, 300, 0)
	w.ecs.Enemies[eid].MarkedForDeletion = true
	bid := w.bullet(300, 0, 0, 0)
	NewCollisionSystem(w.ecs, w.arena).Update()
	if w.ecs.Projectiles[bid].MarkedForDeletion {
		t.Errorf("bullet consumed by a dead enemy")
	}
}
