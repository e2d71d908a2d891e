package system

import (
	"math"
	"testing"

	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/types"
)

func TestProjectileMovesByVelocity(t *testing.T) {
	w := newWorld()
	id := w.bullet(10, 20, 3, -4)
	NewProjectileSystem(w.ecs, w.arena).Update()

	pos := w.ecs.Positions[id]
	if pos.X != 13 || pos.Y != 16 {
		t.Errorf("position = (%v, %v), want (13, 16)", pos.X, pos.Y)
	}
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		x    float64
		want bool
	}{
		{1000, true},
		{650, false},
		{700, false},
		{-701, true},
	}
	for _, tt := range tests {
		if got := outOfBounds(tt.x, 0, 500, 500, 200); got != tt.want {
			t.Errorf("outOfBounds(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestProjectileLeavingArenaIsMarked(t *testing.T) {
	w := newWorld()
	far := w.bullet(config.HalfWidth+config.BulletBoundsMargin+50, 0, 0, 0)
	near := w.bullet(config.HalfWidth+config.BulletBoundsMargin-50, 0, 0, 0)
	NewProjectileSystem(w.ecs, w.arena).Update()

	if !w.ecs.Projectiles[far].MarkedForDeletion {
		t.Errorf("projectile beyond margin not marked")
	}
	if w.ecs.Projectiles[near].MarkedForDeletion {
		t.Errorf("projectile inside margin marked")
	}
}

func TestReflectIsIdempotent(t *testing.T) {
	w := newWorld()
	id := w.bullet(30, 40, 1, 0)
	w.arena.Reflect(id, 0, 0)

	v1 := *w.ecs.Velocities[id]
	c1 := w.ecs.Renderables[id].Color
	w.arena.Reflect(id, 100, 100)

	if *w.ecs.Velocities[id] != v1 {
		t.Errorf("second reflect changed velocity: %+v -> %+v", v1, *w.ecs.Velocities[id])
	}
	if w.ecs.Renderables[id].Color != c1 {
		t.Errorf("second reflect changed color")
	}
	if math.Abs(v1.Speed()-config.ReflectedBulletSpeed) > 1e-9 {
		t.Errorf("speed = %v, want %v", v1.Speed(), config.ReflectedBulletSpeed)
	}
	if math.Abs(v1.X-0.6*config.ReflectedBulletSpeed) > 1e-9 || math.Abs(v1.Y-0.8*config.ReflectedBulletSpeed) > 1e-9 {
		t.Errorf("velocity %+v not pointing away from origin", v1)
	}
	if !w.ecs.Projectiles[id].IsReflected || w.ecs.Renderables[id].Color != config.ReflectedColor {
		t.Errorf("projectile not turned hostile")
	}
}

func TestHomingTurnsByStrength(t *testing.T) {
	w := newWorld()
	target := w.arena.SpawnEnemy(defs.KindRed, 0, 100)
	id := w.arena.SpawnBullet(0, 0, 0, BulletOptions{Damage: 10, Speed: 8, Homing: true})
	proj := w.ecs.Projectiles[id]
	if proj.TargetID != target {
		t.Fatalf("target = %d, want %d", proj.TargetID, target)
	}

	NewProjectileSystem(w.ecs, w.arena).Update()

	vel := w.ecs.Velocities[id]
	want := math.Pi / 2 * config.HomingStrength
	if math.Abs(vel.Heading()-want) > 1e-9 {
		t.Errorf("heading = %v, want %v", vel.Heading(), want)
	}
	pos := w.ecs.Positions[id]
	if math.Abs(pos.X-vel.X) > 1e-9 || math.Abs(pos.Y-vel.Y) > 1e-9 {
		t.Errorf("position %+v does not follow post-turn velocity %+v", *pos, *vel)
	}
}

func TestHomingDropsDeadTarget(t *testing.T) {
	w := newWorld()
	target := w.arena.SpawnEnemy(defs.KindRed, 0, 100)
	id := w.arena.SpawnBullet(0, 0, 0, BulletOptions{Damage: 10, Speed: 8, Homing: true})
	w.ecs.Enemies[target].MarkedForDeletion = true

	NewProjectileSystem(w.ecs, w.arena).Update()

	if got := w.ecs.Projectiles[id].TargetID; got != types.NoEntity {
		t.Errorf("target = %d after death, want none", got)
	}
	if h := w.ecs.Velocities[id].Heading(); h != 0 {
		t.Errorf("bullet turned toward dead target: %v", h)
	}
}

func TestHomingReacquiresWithinRange(t *testing.T) {
	w := newWorld()
	id := w.arena.SpawnBullet(0, 0, 0, BulletOptions{Damage: 10, Speed: 8, Homing: true})
	far := w.arena.SpawnEnemy(defs.KindRed, 0, config.HomingAcquireRange+100)
	ps := NewProjectileSystem(w.ecs, w.arena)
	ps.Update()
	if w.ecs.Projectiles[id].TargetID != types.NoEntity {
		t.Fatalf("acquired enemy %d beyond range", far)
	}

	near := w.arena.SpawnEnemy(defs.KindRed, 50, 50)
	ps.Update()
	if got := w.ecs.Projectiles[id].TargetID; got != near {
		t.Errorf("target = %d, want %d", got, near)
	}
}

func TestReflectedBulletNeverHomes(t *testing.T) {
	w := newWorld()
	w.arena.SpawnEnemy(defs.KindRed, 0, 100)
	id := w.arena.SpawnBullet(10, 0, 0, BulletOptions{Damage: 10, Speed: 8, Homing: true})
	w.arena.Reflect(id, 0, 0)
	before := *w.ecs.Velocities[id]

	NewProjectileSystem(w.ecs, w.arena).Update()

	if *w.ecs.Velocities[id] != before {
		t.Errorf("reflected bullet changed course")
	}
	if w.ecs.Projectiles[id].TargetID != types.NoEntity {
		t.Errorf("reflected bullet holds a target")
	}
}

func TestBrokenProjectileIsDropped(t *testing.T) {
	w := newWorld()
	broken := w.bullet(0, 0, 1, 0)
	delete(w.ecs.Velocities, broken)
	ok := w.bullet(0, 0, 1, 0)

	NewProjectileSystem(w.ecs, w.arena).Update()

	if !w.ecs.Projectiles[broken].MarkedForDeletion {
		t.Errorf("broken projectile kept")
	}
	if w.ecs.Positions[ok].X != 1 {
		t.Errorf("healthy projectile did not move")
	}
}

func TestTrackingPelletSteersAtPlayer(t *testing.T) {
	w := newWorld()
	w.playerPos().Y = 100
	id := w.pellet(0, 0)
	w.ecs.Projectiles[id].IsTracking = true

	NewProjectileSystem(w.ecs, w.arena).Update()

	h := w.ecs.Velocities[id].Heading()
	want := math.Pi / 2 * config.TrackingPelletTurn
	if math.Abs(h-want) > 1e-9 {
		t.Errorf("heading = %v, want %v", h, want)
	}
}
