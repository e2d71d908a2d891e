package system

import (
	"math"
	"testing"

	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/event"
)

func TestMultishotFansSymmetrically(t *testing.T) {
	w := newWorld()
	w.ecs.Player.Multishot = 3
	w.ecs.Player.Aim = 0.5

	ids := NewPlayerSystem(w.ecs, w.arena).Shoot()
	if len(ids) != 3 {
		t.Fatalf("fired %d bullets, want 3", len(ids))
	}
	for i, id := range ids {
		p := w.ecs.Projectiles[id]
		v := w.ecs.Velocities[id]
		want := 0.5 + float64(i-1)*config.MultishotSpread
		if math.Abs(v.Heading()-want) > 1e-9 {
			t.Errorf("bullet %d heading %v, want %v", i, v.Heading(), want)
		}
		if p.Damage != config.PlayerDamage || p.Speed != config.PlayerBulletSpeed {
			t.Errorf("bullet %d: damage %v speed %v", i, p.Damage, p.Speed)
		}
	}
	if len(w.ecs.Projectiles) != 3 {
		t.Errorf("projectile table has %d entries", len(w.ecs.Projectiles))
	}
	if w.rec.count(event.SoundRequested) != 1 {
		t.Errorf("expected one shoot cue")
	}
}

func TestSuperShotSpendsCharge(t *testing.T) {
	w := newWorld()
	w.ecs.Player.AddCharge(config.SuperChargeThreshold + 5)
	if w.ecs.Player.Charge != config.SuperChargeThreshold {
		t.Fatalf("charge not clamped: %d", w.ecs.Player.Charge)
	}

	ps := NewPlayerSystem(w.ecs, w.arena)
	id := ps.Shoot()[0]
	p := w.ecs.Projectiles[id]
	if !p.IsSuper || p.Damage != config.PlayerDamage*config.SuperDamageFactor || p.Radius != config.SuperBulletRadius {
		t.Errorf("not a super bullet: %+v", *p)
	}
	if p.HomingStrength != config.SuperHomingStrength {
		t.Errorf("super homing strength = %v", p.HomingStrength)
	}
	if w.ecs.Player.Charge != 0 {
		t.Errorf("charge = %d after super shot", w.ecs.Player.Charge)
	}

	next := w.ecs.Projectiles[ps.Shoot()[0]]
	if next.IsSuper {
		t.Errorf("second shot is super without charge")
	}
}

func TestPlayerMovementIsClamped(t *testing.T) {
	w := newWorld()
	ps := NewPlayerSystem(w.ecs, w.arena)
	for i := 0; i < 500; i++ {
		ps.Update(PlayerInput{Up: true, Right: true})
	}
	pos := w.playerPos()
	if pos.X != config.HalfWidth-config.PlayerEdgePadding || pos.Y != config.HalfHeight-config.PlayerEdgePadding {
		t.Errorf("player at (%v, %v)", pos.X, pos.Y)
	}
}

func TestFireRespectsCooldown(t *testing.T) {
	w := newWorld()
	ps := NewPlayerSystem(w.ecs, w.arena)
	frames := int(config.PlayerFireRate) * 3
	for i := 0; i < frames; i++ {
		ps.Update(PlayerInput{Fire: true, AimX: 100})
	}
	if got := len(w.ecs.Projectiles); got != 3 {
		t.Errorf("fired %d times in %d frames, want 3", got, frames)
	}
	for _, v := range w.ecs.Velocities {
		if math.Abs(v.Heading()) > 1e-9 {
			t.Errorf("bullet not aimed at pointer: %v", v.Heading())
		}
	}
}
