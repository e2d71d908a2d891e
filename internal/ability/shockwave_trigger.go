package ability

import (
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
)

// ShockwaveTrigger releases one full shockwave the first time the blue
// core drops to half health.
type ShockwaveTrigger struct {
	HasShockwaved bool
}

// Kind implements component.Ability.
func (s *ShockwaveTrigger) Kind() defs.EnemyKind { return defs.KindBlue }

// OnDamaged fires the shockwave. A killing blow does not trigger it.
func (s *ShockwaveTrigger) OnDamaged(h Host, self Self) {
	e := self.Enemy
	if s.HasShockwaved || e.HP <= 0 {
		return
	}
	if e.HP <= e.MaxHP*config.ShockwaveThreshold {
		s.HasShockwaved = true
		h.SpawnShockwave(self.Pos.X, self.Pos.Y, false)
	}
}
