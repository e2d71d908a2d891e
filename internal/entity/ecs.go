// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/types"
)

// ECS owns every entity table of one session. Handles are EntityIDs; an
// entity is live while it is present in its table and not marked.
type ECS struct {
	Frame       uint64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Renderables map[types.EntityID]*component.Renderable
	Projectiles map[types.EntityID]*component.Projectile
	Enemies     map[types.EntityID]*component.Enemy
	Shockwaves  map[types.EntityID]*component.Shockwave
	Walls       map[types.EntityID]*component.Wall
	Flashes     map[types.EntityID]*component.Flash
	Particles   []*component.Particle

	PlayerID types.EntityID
	Player   *component.Player
	Wave     *component.Wave
	Phase    component.Phase

	// CameraX/Y is the cosmetic screen-shake offset.
	CameraX, CameraY float64
}

// NewECS creates empty tables. The player is added by the caller.
func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Shockwaves:  make(map[types.EntityID]*component.Shockwave),
		Walls:       make(map[types.EntityID]*component.Wall),
		Flashes:     make(map[types.EntityID]*component.Flash),
		Wave: &component.Wave{
			Number:     1,
			IntroShown: make(map[defs.EnemyKind]bool),
		},
		Phase: component.PhasePlaying,
	}
}

// NewEntity issues a fresh handle. Handles grow monotonically, so sorting
// by id gives creation order.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// LiveEnemy resolves a weak enemy handle. It returns nil for removed or
// marked enemies.
func (ecs *ECS) LiveEnemy(id types.EntityID) *component.Enemy {
	if id == types.NoEntity {
		return nil
	}
	e, ok := ecs.Enemies[id]
	if !ok || e.MarkedForDeletion {
		return nil
	}
	return e
}

// PlayerPosition returns the player's position.
func (ecs *ECS) PlayerPosition() *component.Position {
	return ecs.Positions[ecs.PlayerID]
}

// ProjectileIDs returns projectile ids in creation order.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return sortedKeys(ecs.Projectiles)
}

// EnemyIDs returns enemy ids in creation order.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return sortedKeys(ecs.Enemies)
}

// ShockwaveIDs returns shockwave ids in creation order.
func (ecs *ECS) ShockwaveIDs() []types.EntityID {
	return sortedKeys(ecs.Shockwaves)
}

// WallIDs returns wall ids in creation order.
func (ecs *ECS) WallIDs() []types.EntityID {
	return sortedKeys(ecs.Walls)
}

// LiveEnemyCount counts enemies that are not marked.
func (ecs *ECS) LiveEnemyCount() int {
	n := 0
	for _, e := range ecs.Enemies {
		if !e.MarkedForDeletion {
			n++
		}
	}
	return n
}

// RemoveEntity deletes id from every table.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Renderables, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Enemies, id)
	delete(ecs.Shockwaves, id)
	delete(ecs.Walls, id)
	delete(ecs.Flashes, id)
}

// Prune physically removes every marked projectile, enemy and hazard.
func (ecs *ECS) Prune() {
	for id, p := range ecs.Projectiles {
		if p.MarkedForDeletion {
			ecs.RemoveEntity(id)
		}
	}
	for id, e := range ecs.Enemies {
		if e.MarkedForDeletion {
			ecs.RemoveEntity(id)
		}
	}
	for id, s := range ecs.Shockwaves {
		if s.MarkedForDeletion {
			ecs.RemoveEntity(id)
		}
	}
	for id, w := range ecs.Walls {
		if w.MarkedForDeletion {
			ecs.RemoveEntity(id)
		}
	}
}

func sortedKeys[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
