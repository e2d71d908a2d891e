package system

import (
	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/entity"
	"go-wave-shooter/internal/event"
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type world struct {
	ecs    *entity.ECS
	events *event.Dispatcher
	arena  *Arena
	rec    *recorder
}

func newWorld() *world {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := &recorder{}
	for _, t := range []event.EventType{
		event.SoundRequested, event.ParticleBurst, event.CameraShake, event.EnemyFlashed,
		event.EnemyDestroyed, event.WaveStarted, event.WaveEnded, event.PlayerDied,
	} {
		d.Subscribe(t, rec)
	}
	arena := NewArena(ecs, d, utils.NewPRNGService(7), config.DefaultTuning())
	arena.SpawnPlayer()
	return &world{ecs: ecs, events: d, arena: arena, rec: rec}
}

func (w *world) playerPos() *component.Position {
	return w.ecs.PlayerPosition()
}

// bullet spawns a plain player bullet with a fixed velocity.
func (w *world) bullet(x, y, vx, vy float64) types.EntityID {
	id := w.arena.SpawnBullet(x, y, 0, BulletOptions{Damage: 10, Speed: 1})
	*w.ecs.Velocities[id] = component.Velocity{X: vx, Y: vy}
	return id
}

func (w *world) pellet(x, y float64) types.EntityID {
	before := w.ecs.NextID
	w.arena.SpawnEnemyPellet(x, y, 0, false)
	return before
}
