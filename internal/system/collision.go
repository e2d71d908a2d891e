// internal/system/collision.go
package system

import (
	"image/color"
	"math"

	"go-wave-shooter/internal/ability"
	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/entity"
	"go-wave-shooter/internal/event"
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"
)

var (
	hitSparkColor  = color.RGBA{255, 255, 0, 255}
	pelletPopColor = color.RGBA{170, 68, 255, 255}
	superBoomColor = color.RGBA{255, 255, 255, 255}
)

// CollisionSystem resolves every interaction of one frame after all
// entities moved. The passes run in a fixed order and each one skips
// entities an earlier pass already consumed.
type CollisionSystem struct {
	ecs   *entity.ECS
	arena *Arena
}

func NewCollisionSystem(ecs *entity.ECS, arena *Arena) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, arena: arena}
}

func (s *CollisionSystem) Update() {
	s.bulletsVsWalls()
	s.bulletsVsPellets()
	s.reflectedVsPlayer()
	s.bulletsVsEnemies()
	s.enemiesVsPlayer()
	s.pelletsVsPlayer()
}

// live returns the projectile and its position when it can still act.
func (s *CollisionSystem) live(id types.EntityID) (*component.Projectile, *component.Position) {
	proj := s.ecs.Projectiles[id]
	pos := s.ecs.Positions[id]
	if proj == nil || pos == nil || proj.MarkedForDeletion {
		return nil, nil
	}
	return proj, pos
}

// bulletsVsWalls mirrors player bullets about the wall tangent and nudges
// them off the wall along the normal facing their new heading.
func (s *CollisionSystem) bulletsVsWalls() {
	wallIDs := s.ecs.WallIDs()
	for _, id := range s.ecs.ProjectileIDs() {
		proj, pos := s.live(id)
		if proj == nil || proj.IsEnemyPellet {
			continue
		}
		vel := s.ecs.Velocities[id]
		for _, wid := range wallIDs {
			wall := s.ecs.Walls[wid]
			if wall.MarkedForDeletion {
				continue
			}
			cx, cy := utils.ClosestOnSegment(pos.X, pos.Y, wall.X1, wall.Y1, wall.X2, wall.Y2)
			if utils.Distance(pos.X, pos.Y, cx, cy) >= proj.Radius+wall.Thickness/2 {
				continue
			}
			bounceOffWall(pos, vel, wall)
			s.arena.burst(event.Burst{X: cx, Y: cy, Color: hitSparkColor, Count: 4, Spread: 3, Style: event.BurstHit})
			s.arena.sound(event.CueHit)
			break
		}
	}
}

func bounceOffWall(pos *component.Position, vel *component.Velocity, wall *component.Wall) {
	wallAngle := math.Atan2(wall.Y2-wall.Y1, wall.X2-wall.X1)
	reflected := 2*wallAngle - vel.Heading()
	*vel = component.FromPolar(reflected, vel.Speed())

	nx := math.Cos(wallAngle + math.Pi/2)
	ny := math.Sin(wallAngle + math.Pi/2)
	if vel.X*nx+vel.Y*ny < 0 {
		nx, ny = -nx, -ny
	}
	pos.X += nx * config.WallNudge
	pos.Y += ny * config.WallNudge
}

// bulletsVsPellets lets any player bullet shoot down an enemy pellet. Both
// are destroyed.
func (s *CollisionSystem) bulletsVsPellets() {
	ids := s.ecs.ProjectileIDs()
	for _, id := range ids {
		bullet, bpos := s.live(id)
		if bullet == nil || bullet.IsEnemyPellet {
			continue
		}
		for _, pid := range ids {
			pellet, ppos := s.live(pid)
			if pellet == nil || !pellet.IsEnemyPellet {
				continue
			}
			if !utils.CirclesOverlap(bpos.X, bpos.Y, bullet.Radius, ppos.X, ppos.Y, pellet.Radius) {
				continue
			}
			bullet.MarkedForDeletion = true
			pellet.MarkedForDeletion = true
			s.arena.burst(event.Burst{X: ppos.X, Y: ppos.Y, Color: pelletPopColor, Count: 4, Spread: 3})
			s.arena.sound(event.CueHit)
			break
		}
	}
}

func (s *CollisionSystem) reflectedVsPlayer() {
	player := s.ecs.Player
	ppos := s.ecs.PlayerPosition()
	if player == nil || ppos == nil {
		return
	}
	for _, id := range s.ecs.ProjectileIDs() {
		proj, pos := s.live(id)
		if proj == nil || !proj.IsReflected || proj.IsEnemyPellet {
			continue
		}
		if !utils.CirclesOverlap(pos.X, pos.Y, proj.Radius, ppos.X, ppos.Y, player.Radius) {
			continue
		}
		proj.MarkedForDeletion = true
		s.hurtPlayer(config.ReflectedBulletDamage)
		s.arena.burst(event.Burst{X: ppos.X, Y: ppos.Y, Color: hitSparkColor, Count: 4, Spread: 3, Style: event.BurstHit})
		s.arena.sound(event.CueHit)
	}
}

// bulletsVsEnemies hits at most one enemy per bullet. Orbiters intercept
// before the core is tested, and an absorber swallows the bullet instead
// of taking damage.
func (s *CollisionSystem) bulletsVsEnemies() {
	enemyIDs := s.ecs.EnemyIDs()
	for _, id := range s.ecs.ProjectileIDs() {
		proj, pos := s.live(id)
		if proj == nil || !proj.PlayerOwned() {
			continue
		}
		for _, eid := range enemyIDs {
			self, ok := s.arena.Self(eid)
			if !ok {
				continue
			}
			if in, ok := self.Enemy.Ability.(ability.Interceptor); ok && in.Intercept(s.arena, self, proj, pos.X, pos.Y) {
				proj.MarkedForDeletion = true
				break
			}
			if !utils.CirclesOverlap(pos.X, pos.Y, proj.Radius, self.Pos.X, self.Pos.Y, self.Enemy.Radius) {
				continue
			}
			if ab, ok := self.Enemy.Ability.(ability.Absorber); ok && ab.Absorb(s.arena, self, proj) {
				proj.MarkedForDeletion = true
				break
			}
			s.hitEnemy(eid, proj, pos)
			break
		}
	}
}

func (s *CollisionSystem) hitEnemy(eid types.EntityID, proj *component.Projectile, pos *component.Position) {
	proj.MarkedForDeletion = true
	s.arena.sound(event.CueHit)
	s.arena.burst(event.Burst{X: pos.X, Y: pos.Y, Color: hitSparkColor, Count: 4, Spread: 3, Style: event.BurstHit})
	switch {
	case proj.IsSuper:
		s.arena.SpawnExplosiveBurst(pos.X, pos.Y)
		s.arena.burst(event.Burst{X: pos.X, Y: pos.Y, Color: superBoomColor, Count: 20, Spread: 5})
		s.arena.sound(event.CueExplosion)
	case proj.IsExplosivePellet:
		s.arena.burst(event.Burst{X: pos.X, Y: pos.Y, Color: superBoomColor, Count: 5, Spread: 3})
	}
	s.arena.ApplyDamage(eid, proj.Damage)
}

// enemiesVsPlayer drains a little hp for every frame of contact.
func (s *CollisionSystem) enemiesVsPlayer() {
	player := s.ecs.Player
	ppos := s.ecs.PlayerPosition()
	if player == nil || ppos == nil {
		return
	}
	for _, id := range s.ecs.EnemyIDs() {
		self, ok := s.arena.Self(id)
		if !ok {
			continue
		}
		if utils.CirclesOverlap(self.Pos.X, self.Pos.Y, self.Enemy.Radius, ppos.X, ppos.Y, player.Radius) {
			s.hurtPlayer(config.ContactDamage)
			s.arena.shake(config.ContactShake)
		}
	}
}

func (s *CollisionSystem) pelletsVsPlayer() {
	player := s.ecs.Player
	ppos := s.ecs.PlayerPosition()
	if player == nil || ppos == nil {
		return
	}
	for _, id := range s.ecs.ProjectileIDs() {
		proj, pos := s.live(id)
		if proj == nil || !proj.IsEnemyPellet {
			continue
		}
		if !utils.CirclesOverlap(pos.X, pos.Y, proj.Radius, ppos.X, ppos.Y, player.Radius) {
			continue
		}
		proj.MarkedForDeletion = true
		s.hurtPlayer(proj.Damage)
		s.arena.burst(event.Burst{X: pos.X, Y: pos.Y, Color: pelletPopColor, Count: 5, Spread: 3})
		s.arena.sound(event.CueHit)
		s.arena.shake(config.PelletShake)
	}
}

func (s *CollisionSystem) hurtPlayer(amount float64) {
	p := s.ecs.Player
	p.HP -= amount
	if p.HP < 0 {
		p.HP = 0
	}
}
