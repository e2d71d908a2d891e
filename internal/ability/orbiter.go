package ability

import (
	"image/color"
	"math"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/event"
	"go-wave-shooter/internal/utils"
)

var orbiterSparkColor = color.RGBA{255, 68, 68, 255}

// Orbiter is one shield satellite.
type Orbiter struct {
	Angle    float64
	Distance float64
	HP       float64
}

// Orbiters shield the red_orbiter core. Satellites intercept projectiles
// before the core sees them.
type Orbiters struct {
	Orbiters []Orbiter
	Spin     float64
}

// NewOrbiters places the satellites on opposite sides of the core.
func NewOrbiters() *Orbiters {
	o := &Orbiters{}
	for i := 0; i < config.OrbiterCount; i++ {
		o.Orbiters = append(o.Orbiters, Orbiter{
			Angle:    float64(i) * 2 * math.Pi / config.OrbiterCount,
			Distance: config.OrbiterDistance,
			HP:       config.OrbiterHP,
		})
	}
	return o
}

// Kind implements component.Ability.
func (o *Orbiters) Kind() defs.EnemyKind { return defs.KindRedOrbiter }

// WorldPosition returns where orbiter i is for a core at (cx, cy).
func (o *Orbiters) WorldPosition(i int, cx, cy float64) (float64, float64) {
	orb := o.Orbiters[i]
	a := orb.Angle + o.Spin
	return cx + math.Cos(a)*orb.Distance, cy + math.Sin(a)*orb.Distance
}

// Tick rotates the ring and drops destroyed satellites.
func (o *Orbiters) Tick(h Host, self Self) {
	o.Spin += config.OrbiterSpin
	o.prune()
}

func (o *Orbiters) prune() {
	alive := o.Orbiters[:0]
	for _, orb := range o.Orbiters {
		if orb.HP > 0 {
			alive = append(alive, orb)
		}
	}
	o.Orbiters = alive
}

// Intercept damages the first satellite the projectile touches.
func (o *Orbiters) Intercept(h Host, self Self, p *component.Projectile, px, py float64) bool {
	for i := range o.Orbiters {
		if o.Orbiters[i].HP <= 0 {
			continue
		}
		ox, oy := o.WorldPosition(i, self.Pos.X, self.Pos.Y)
		if !utils.CirclesOverlap(px, py, p.Radius, ox, oy, config.OrbiterRadius) {
			continue
		}
		o.Orbiters[i].HP -= p.Damage
		emitSound(h, event.CueHit)
		emitBurst(h, event.Burst{X: ox, Y: oy, Color: orbiterSparkColor, Count: 3, Spread: 2})
		o.prune()
		return true
	}
	return false
}
