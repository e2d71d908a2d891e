// internal/system/movement.go
package system

import (
	"log"
	"math"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/entity"
	"go-wave-shooter/internal/types"
)

// MovementSystem walks every enemy straight at the player and spins its
// body.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update() {
	target := s.ecs.PlayerPosition()
	if target == nil {
		return
	}
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.LiveEnemy(id)
		if enemy == nil {
			continue
		}
		s.move(id, enemy, target)
	}
}

func (s *MovementSystem) move(id types.EntityID, enemy *component.Enemy, target *component.Position) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("MovementSystem: enemy %d (%s) dropped: %v", id, enemy.Kind, r)
			enemy.MarkedForDeletion = true
		}
	}()

	pos := s.ecs.Positions[id]
	dx := target.X - pos.X
	dy := target.Y - pos.Y
	dist := math.Sqrt(dx*dx + dy*dy)

	moveDistance := enemy.Speed
	if dist > 0 {
		if dist < moveDistance {
			moveDistance = dist
		}
		pos.X += (dx / dist) * moveDistance
		pos.Y += (dy / dist) * moveDistance
	}

	enemy.Rotation += enemy.RotationSpeed
	if r := s.ecs.Renderables[id]; r != nil {
		r.Rotation = enemy.Rotation
	}
}
