package ability

import (
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/event"
)

// Healer is the green sub-state.
type Healer struct {
	HealTimer    int
	HealInterval int
	HealRadius   float64
	HealAmount   float64
}

// NewHealer returns a healer with the default pulse.
func NewHealer() *Healer {
	return &Healer{
		HealInterval: config.GreenHealInterval,
		HealRadius:   config.GreenHealRadius,
		HealAmount:   config.GreenHealAmount,
	}
}

// Kind implements component.Ability.
func (g *Healer) Kind() defs.EnemyKind { return defs.KindGreen }

// Tick heals the neighbourhood every HealInterval frames.
func (g *Healer) Tick(h Host, self Self) {
	if self.Enemy.HP <= 0 {
		return
	}
	g.HealTimer++
	if g.HealTimer < g.HealInterval {
		return
	}
	g.HealTimer = 0
	if h.HealEnemies(self.ID, self.Pos.X, self.Pos.Y, g.HealRadius, g.HealAmount) > 0 {
		emitBurst(h, event.Burst{X: self.Pos.X, Y: self.Pos.Y, Color: config.HealColor, Count: 1, Spread: g.HealRadius, Style: event.BurstHealWave})
	}
}

// OnDeath leaves a mini shockwave behind.
func (g *Healer) OnDeath(h Host, self Self) {
	h.SpawnShockwave(self.Pos.X, self.Pos.Y, true)
}
