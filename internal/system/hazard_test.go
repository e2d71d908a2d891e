package system

import (
	"testing"

	"go-wave-shooter/internal/config"
)

func TestShockwaveGrowsUntilItExpires(t *testing.T) {
	w := newWorld()
	w.arena.SpawnShockwave(0, 0, false)
	hs := NewHazardSystem(w.ecs, w.arena)

	id := w.ecs.ShockwaveIDs()[0]
	wave := w.ecs.Shockwaves[id]
	last := wave.Radius
	frames := 0
	for !wave.MarkedForDeletion {
		hs.Update()
		frames++
		if wave.Radius < last {
			t.Fatalf("radius shrank from %v to %v", last, wave.Radius)
		}
		last = wave.Radius
		if frames > 1000 {
			t.Fatalf("shockwave never expired")
		}
	}
	if wave.Radius < wave.MaxRadius {
		t.Errorf("expired at radius %v < %v", wave.Radius, wave.MaxRadius)
	}
	if frames != 70 {
		t.Errorf("full shockwave lasted %d frames, want 70", frames)
	}
}

func TestShockwaveReflectsPlayerBullets(t *testing.T) {
	w := newWorld()
	w.playerPos().X = 1000
	w.arena.SpawnShockwave(0, 0, true)
	inside := w.bullet(5, 0, -1, 0)
	outside := w.bullet(100, 0, -1, 0)
	pellet := w.pellet(3, 0)

	NewHazardSystem(w.ecs, w.arena).Update()

	if !w.ecs.Projectiles[inside].IsReflected {
		t.Errorf("bullet inside the ring not reflected")
	}
	if w.ecs.Projectiles[outside].IsReflected {
		t.Errorf("bullet outside the ring reflected")
	}
	if w.ecs.Projectiles[pellet].IsReflected {
		t.Errorf("enemy pellet reflected")
	}
}

func TestFullShockwavePushesPlayer(t *testing.T) {
	w := newWorld()
	w.playerPos().X = 3
	w.arena.SpawnShockwave(0, 0, false)
	NewHazardSystem(w.ecs, w.arena).Update()
	if x := w.playerPos().X; x != 3+config.ShockwavePush {
		t.Errorf("player x = %v, want %v", x, 3+config.ShockwavePush)
	}
}

func TestMiniShockwaveDoesNotPush(t *testing.T) {
	w := newWorld()
	w.playerPos().X = 3
	w.arena.SpawnShockwave(0, 0, true)
	NewHazardSystem(w.ecs, w.arena).Update()
	if x := w.playerPos().X; x != 3 {
		t.Errorf("mini shockwave moved the player to %v", x)
	}
}

func TestWallExpiresAfterLifetime(t *testing.T) {
	w := newWorld()
	w.arena.SpawnWall(0, 0, 0)
	hs := NewHazardSystem(w.ecs, w.arena)
	wall := w.ecs.Walls[w.ecs.WallIDs()[0]]

	for i := 0; i < config.WallLifetime-1; i++ {
		hs.Update()
	}
	if wall.MarkedForDeletion {
		t.Fatalf("wall expired early")
	}
	if op := wall.Opacity(); op != 1.0/config.WallFadeFrames {
		t.Errorf("opacity on last frame = %v", op)
	}
	hs.Update()
	if !wall.MarkedForDeletion {
		t.Errorf("wall outlived its lifetime")
	}
}
