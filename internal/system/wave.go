// internal/system/wave.go
package system

import (
	"math"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/entity"
	"go-wave-shooter/internal/event"
)

// WaveSystem is the spawn half of the wave director: it feeds enemies in
// from the edges and reports when a wave has been cleared.
type WaveSystem struct {
	ecs   *entity.ECS
	arena *Arena
}

func NewWaveSystem(ecs *entity.ECS, arena *Arena) *WaveSystem {
	return &WaveSystem{ecs: ecs, arena: arena}
}

// EnemiesForWave is the size of wave n.
func EnemiesForWave(n int) int {
	return config.BaseEnemiesPerWave + config.EnemiesIncrementPerWave*n
}

// SpawnInterval is the number of frames between spawns in wave n.
func SpawnInterval(n int) int {
	interval := config.InitialSpawnInterval - n
	if interval < config.MinSpawnInterval {
		return config.MinSpawnInterval
	}
	return interval
}

// BeginWave arms the spawn queue for wave n and enters the playing phase.
func (s *WaveSystem) BeginWave(n int) {
	wave := s.ecs.Wave
	wave.Number = n
	wave.EnemiesToSpawn = EnemiesForWave(n)
	wave.SpawnTimer = 0
	s.ecs.Phase = component.PhasePlaying
	s.arena.Emit(event.Event{Type: event.WaveStarted, Data: n})
}

func (s *WaveSystem) Update() {
	if s.ecs.Phase != component.PhasePlaying {
		return
	}
	wave := s.ecs.Wave
	if wave.EnemiesToSpawn > 0 {
		wave.SpawnTimer--
		if wave.SpawnTimer <= 0 {
			s.spawnEnemy(wave)
			wave.EnemiesToSpawn--
			wave.SpawnTimer = SpawnInterval(wave.Number)
		}
	} else if s.ecs.LiveEnemyCount() == 0 {
		s.arena.Emit(event.Event{Type: event.WaveEnded, Data: wave.Number})
	}
}

// spawnEnemy drops one enemy just outside a random screen edge. Healers
// often bring company.
func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	rng := s.arena.Rand()
	x, y := edgePoint(rng.Intn(4), rng.Float64(), config.HalfWidth, config.HalfHeight, config.SpawnEdgeMargin)

	kind := defs.PickEnemyKind(wave.Number, rng.Float64())
	s.arena.SpawnEnemy(kind, x, y)

	tuning := s.arena.Tuning()
	if kind != defs.KindGreen || !rng.Chance(tuning.GreenGroupChance) {
		return
	}
	extra := 1
	if !rng.Chance(tuning.GreenGroupPairChance) {
		extra = 2
	}
	for i := 0; i < extra; i++ {
		angle := rng.Angle()
		dist := config.GreenGroupMinOffset + rng.Float64()*config.GreenGroupOffsetRange
		s.arena.SpawnEnemy(defs.KindGreen, x+math.Cos(angle)*dist, y+math.Sin(angle)*dist)
	}
}

// edgePoint picks a point margin units beyond edge (0 top, 1 right,
// 2 bottom, 3 left); t in [0,1) runs along the edge.
func edgePoint(edge int, t, halfW, halfH, margin float64) (float64, float64) {
	switch edge {
	case 0:
		return (t - 0.5) * 2 * halfW, halfH + margin
	case 1:
		return halfW + margin, (t - 0.5) * 2 * halfH
	case 2:
		return (t - 0.5) * 2 * halfW, -halfH - margin
	default:
		return -halfW - margin, (t - 0.5) * 2 * halfH
	}
}
