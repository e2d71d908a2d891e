// internal/system/hazard.go
package system

import (
	"log"
	"math"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/entity"
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"
)

// HazardSystem ages shockwaves and walls. Shockwaves act on projectiles
// and the player here; wall contact is resolved by the CollisionSystem.
type HazardSystem struct {
	ecs   *entity.ECS
	arena *Arena
}

func NewHazardSystem(ecs *entity.ECS, arena *Arena) *HazardSystem {
	return &HazardSystem{ecs: ecs, arena: arena}
}

func (s *HazardSystem) Update() {
	for _, id := range s.ecs.ShockwaveIDs() {
		wave := s.ecs.Shockwaves[id]
		if wave.MarkedForDeletion {
			continue
		}
		s.updateShockwave(id, wave)
	}
	for _, id := range s.ecs.WallIDs() {
		wall := s.ecs.Walls[id]
		if wall.MarkedForDeletion {
			continue
		}
		wall.Life--
		if wall.Life <= 0 {
			wall.MarkedForDeletion = true
		}
	}
}

// updateShockwave grows the ring, then expires it once it reaches
// MaxRadius before it can act again.
func (s *HazardSystem) updateShockwave(id types.EntityID, wave *component.Shockwave) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("HazardSystem: shockwave %d dropped: %v", id, r)
			wave.MarkedForDeletion = true
		}
	}()

	wave.Radius += wave.ExpansionSpeed
	wave.Age++
	if wave.Progress() >= 1 {
		wave.MarkedForDeletion = true
		return
	}

	for _, pid := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[pid]
		if proj.MarkedForDeletion || proj.IsReflected || proj.IsEnemyPellet {
			continue
		}
		pos := s.ecs.Positions[pid]
		if pos != nil && utils.Distance(pos.X, pos.Y, wave.X, wave.Y) < wave.Radius {
			s.arena.Reflect(pid, wave.X, wave.Y)
		}
	}

	if wave.Mini {
		return
	}
	if pos := s.ecs.PlayerPosition(); pos != nil {
		dx, dy := pos.X-wave.X, pos.Y-wave.Y
		if math.Hypot(dx, dy) < wave.Radius {
			angle := math.Atan2(dy, dx)
			pos.X += math.Cos(angle) * config.ShockwavePush
			pos.Y += math.Sin(angle) * config.ShockwavePush
		}
	}
}
