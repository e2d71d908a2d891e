package ability

import (
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/event"
)

// WallSpawner is the white sub-state.
type WallSpawner struct {
	WallTimer    int
	WallInterval int
}

// NewWallSpawner returns a spawner with the default interval.
func NewWallSpawner() *WallSpawner {
	return &WallSpawner{WallInterval: config.WhiteWallInterval}
}

// Kind implements component.Ability.
func (w *WallSpawner) Kind() defs.EnemyKind { return defs.KindWhite }

// Tick drops a randomly oriented wall every WallInterval frames.
func (w *WallSpawner) Tick(h Host, self Self) {
	if self.Enemy.HP <= 0 {
		return
	}
	w.WallTimer++
	if w.WallTimer < w.WallInterval {
		return
	}
	w.WallTimer = 0
	h.SpawnWall(self.Pos.X, self.Pos.Y, h.Rand().Angle())
	emitSound(h, event.CueHit)
}
