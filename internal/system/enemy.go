// internal/system/enemy.go
package system

import (
	"log"

	"go-wave-shooter/internal/ability"
	"go-wave-shooter/internal/entity"
	"go-wave-shooter/internal/types"
)

// EnemySystem runs each live enemy's per-frame ability.
type EnemySystem struct {
	ecs   *entity.ECS
	arena *Arena
}

func NewEnemySystem(ecs *entity.ECS, arena *Arena) *EnemySystem {
	return &EnemySystem{ecs: ecs, arena: arena}
}

func (s *EnemySystem) Update() {
	for _, id := range s.ecs.EnemyIDs() {
		self, ok := s.arena.Self(id)
		if !ok {
			continue
		}
		if t, ok := self.Enemy.Ability.(ability.Ticker); ok {
			s.tick(id, t, self)
		}
	}
}

func (s *EnemySystem) tick(id types.EntityID, t ability.Ticker, self ability.Self) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("EnemySystem: enemy %d (%s) dropped: %v", id, self.Enemy.Kind, r)
			self.Enemy.MarkedForDeletion = true
		}
	}()
	t.Tick(s.arena, self)
}
