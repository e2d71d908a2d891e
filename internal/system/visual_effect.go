// internal/system/visual_effect.go
package system

import (
	"math"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/entity"
	"go-wave-shooter/internal/event"
	"go-wave-shooter/internal/utils"
)

// VisualEffectSystem turns cosmetic requests into particles, flashes and
// camera shake, and ages them frame by frame. Nothing here feeds back into
// the simulation.
type VisualEffectSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

// NewVisualEffectSystem subscribes to the cosmetic events. It uses its own
// generator so effects never shift the simulation's random sequence.
func NewVisualEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, seed int64) *VisualEffectSystem {
	s := &VisualEffectSystem{ecs: ecs, rng: utils.NewPRNGService(seed)}
	eventDispatcher.Subscribe(event.ParticleBurst, s)
	eventDispatcher.Subscribe(event.CameraShake, s)
	eventDispatcher.Subscribe(event.EnemyFlashed, s)
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.ParticleBurst:
		if b, ok := e.Data.(event.Burst); ok {
			s.Burst(b)
		}
	case event.CameraShake:
		if m, ok := e.Data.(float64); ok {
			s.ecs.CameraX = (s.rng.Float64() - 0.5) * m
			s.ecs.CameraY = (s.rng.Float64() - 0.5) * m
		}
	case event.EnemyFlashed:
		if f, ok := e.Data.(event.Flash); ok {
			s.ecs.Flashes[f.ID] = &component.Flash{Color: f.Color, Frames: f.Frames, Duration: f.Frames}
		}
	}
}

// Burst spawns the particles for one request.
func (s *VisualEffectSystem) Burst(b event.Burst) {
	switch b.Style {
	case event.BurstHeal:
		s.add(&component.Particle{
			X:      b.X + (s.rng.Float64()-0.5)*2*b.Spread,
			Y:      b.Y + (s.rng.Float64()-0.5)*2*b.Spread,
			VY:     2,
			Size:   3,
			Color:  b.Color,
			MaxAge: 20,
		})
	case event.BurstHealWave:
		s.add(&component.Particle{X: b.X, Y: b.Y, Color: b.Color, MaxAge: 60, Ring: true, RingMax: b.Spread})
	case event.BurstTrail:
		s.add(&component.Particle{
			X:      b.X + (s.rng.Float64()-0.5)*b.Spread,
			Y:      b.Y + (s.rng.Float64()-0.5)*b.Spread,
			Size:   6,
			Color:  b.Color,
			MaxAge: 10,
			Square: true,
		})
	default:
		for i := 0; i < b.Count; i++ {
			angle := s.rng.Angle()
			speed := s.rng.Float64()*b.Spread + 1
			s.add(&component.Particle{
				X:      b.X,
				Y:      b.Y,
				VX:     math.Cos(angle) * speed,
				VY:     math.Sin(angle) * speed,
				Size:   2,
				Color:  b.Color,
				MaxAge: int(s.rng.Range(20, config.ParticleLifeFrames+10)),
			})
		}
	}
}

func (s *VisualEffectSystem) add(p *component.Particle) {
	s.ecs.Particles = append(s.ecs.Particles, p)
}

// Update ages particles and flashes and settles the camera.
func (s *VisualEffectSystem) Update() {
	alive := s.ecs.Particles[:0]
	for _, p := range s.ecs.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.Age++
		if p.Age < p.MaxAge {
			alive = append(alive, p)
		}
	}
	for i := len(alive); i < len(s.ecs.Particles); i++ {
		s.ecs.Particles[i] = nil
	}
	s.ecs.Particles = alive

	for id, flash := range s.ecs.Flashes {
		flash.Frames--
		if flash.Frames <= 0 || s.ecs.Enemies[id] == nil {
			delete(s.ecs.Flashes, id)
		}
	}

	s.ecs.CameraX *= config.CameraShakeDecay
	s.ecs.CameraY *= config.CameraShakeDecay
}
