// internal/system/projectile.go
package system

import (
	"log"
	"math"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/entity"
	"go-wave-shooter/internal/event"
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"
)

// ProjectileSystem moves bullets and enemy pellets, steers homing ones and
// expires everything that leaves the arena.
type ProjectileSystem struct {
	ecs   *entity.ECS
	arena *Arena
}

func NewProjectileSystem(ecs *entity.ECS, arena *Arena) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, arena: arena}
}

func (s *ProjectileSystem) Update() {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		if proj.MarkedForDeletion {
			continue
		}
		s.updateProjectile(id, proj)
	}
}

// updateProjectile isolates one projectile: a panic drops it and the
// frame goes on.
func (s *ProjectileSystem) updateProjectile(id types.EntityID, proj *component.Projectile) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ProjectileSystem: projectile %d dropped: %v", id, r)
			proj.MarkedForDeletion = true
		}
	}()

	pos := s.ecs.Positions[id]
	vel := s.ecs.Velocities[id]
	if pos == nil || vel == nil {
		log.Printf("ProjectileSystem: projectile %d has no position or velocity, removing", id)
		proj.MarkedForDeletion = true
		return
	}

	if proj.IsEnemyPellet {
		if proj.IsTracking {
			px, py := s.arena.PlayerPosition()
			turn(vel, math.Atan2(py-pos.Y, px-pos.X), proj.HomingStrength, vel.Speed())
		}
	} else {
		if proj.IsSuper && !proj.IsReflected {
			s.arena.burst(event.Burst{X: pos.X, Y: pos.Y, Color: config.SuperBulletColor, Count: 1, Spread: 5, Style: event.BurstTrail})
		}
		s.steer(proj, pos, vel)
	}

	pos.X += vel.X
	pos.Y += vel.Y
	if r := s.ecs.Renderables[id]; r != nil {
		r.Rotation = vel.Heading()
	}

	if outOfBounds(pos.X, pos.Y, config.HalfWidth, config.HalfHeight, proj.BoundsMargin) {
		proj.MarkedForDeletion = true
	}
}

// steer drops a dead target, re-acquires one when the bullet still homes,
// and turns toward it by HomingStrength of the shortest arc.
func (s *ProjectileSystem) steer(proj *component.Projectile, pos *component.Position, vel *component.Velocity) {
	if proj.IsReflected || !proj.Homing {
		proj.TargetID = types.NoEntity
		return
	}
	if s.ecs.LiveEnemy(proj.TargetID) == nil {
		proj.TargetID = s.arena.NearestEnemy(pos.X, pos.Y, config.HomingAcquireRange)
	}
	if proj.TargetID == types.NoEntity {
		return
	}
	target := s.ecs.Positions[proj.TargetID]
	if target == nil {
		proj.TargetID = types.NoEntity
		return
	}
	turn(vel, math.Atan2(target.Y-pos.Y, target.X-pos.X), proj.HomingStrength, proj.Speed)
}

func turn(vel *component.Velocity, targetAngle, strength, speed float64) {
	heading := utils.LerpAngle(vel.Heading(), targetAngle, strength)
	*vel = component.FromPolar(heading, speed)
}

func outOfBounds(x, y, halfW, halfH, margin float64) bool {
	return math.Abs(x) > halfW+margin || math.Abs(y) > halfH+margin
}

// Reflect turns a projectile hostile and sends it straight away from
// (originX, originY) at ReflectedBulletSpeed. Reflecting twice is a no-op.
func (a *Arena) Reflect(id types.EntityID, originX, originY float64) {
	proj := a.ecs.Projectiles[id]
	pos := a.ecs.Positions[id]
	vel := a.ecs.Velocities[id]
	if proj == nil || pos == nil || vel == nil || proj.IsReflected {
		return
	}
	proj.IsReflected = true
	proj.TargetID = types.NoEntity
	proj.Speed = config.ReflectedBulletSpeed

	dx, dy := pos.X-originX, pos.Y-originY
	angle := math.Atan2(dy, dx)
	if dx == 0 && dy == 0 {
		angle = vel.Heading() + math.Pi
	}
	*vel = component.FromPolar(angle, config.ReflectedBulletSpeed)

	if r := a.ecs.Renderables[id]; r != nil {
		r.Color = config.ReflectedColor
		r.Rotation = angle
	}
}
