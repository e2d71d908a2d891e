package ability

import (
	"image/color"
	"math"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/event"
)

var (
	purpleColor    = color.RGBA{170, 68, 255, 255}
	eatFlashColor  = color.RGBA{255, 255, 255, 255}
	deathBurstGold = color.RGBA{255, 255, 0, 255}
)

// PelletEater is the purple sub-state: it swallows player bullets until
// full, then has to spit an attack.
type PelletEater struct {
	PelletsEaten         int
	MaxPellets           int
	TotalPelletsConsumed int
}

// NewPelletEater returns an empty stomach.
func NewPelletEater() *PelletEater {
	return &PelletEater{MaxPellets: config.PurpleMaxPellets}
}

// Kind implements component.Ability.
func (p *PelletEater) Kind() defs.EnemyKind { return defs.KindPurple }

// Full reports whether the next tick must spit.
func (p *PelletEater) Full() bool {
	return p.PelletsEaten >= p.MaxPellets
}

// Eat counts one swallowed projectile and reports whether the stomach is
// now full. It is a no-op when already full.
func (p *PelletEater) Eat() bool {
	if p.Full() {
		return true
	}
	p.PelletsEaten++
	p.TotalPelletsConsumed++
	return p.Full()
}

// Absorb swallows plain player bullets. Super bullets, explosive pellets,
// reflected bullets and enemy pellets are never eaten.
func (p *PelletEater) Absorb(h Host, self Self, proj *component.Projectile) bool {
	if proj.IsSuper || proj.IsExplosivePellet || proj.IsReflected || proj.IsEnemyPellet {
		return false
	}
	if p.Full() {
		return false
	}
	p.Eat()
	h.Emit(event.Event{Type: event.EnemyFlashed, Data: event.Flash{ID: self.ID, Color: eatFlashColor, Frames: config.EatFlashFrames}})
	emitBurst(h, event.Burst{X: self.Pos.X, Y: self.Pos.Y, Color: purpleColor, Count: 3, Spread: 2})
	return true
}

// Tick spits as soon as the stomach is full.
func (p *PelletEater) Tick(h Host, self Self) {
	if !p.Full() || self.Enemy.HP <= 0 {
		return
	}
	if !p.Spit(h, self) {
		return
	}
	emitSound(h, event.CueExplosion)
	emitBurst(h, event.Burst{X: self.Pos.X, Y: self.Pos.Y, Color: purpleColor, Count: 10, Spread: 4})
	if self.Enemy.HP <= 0 {
		h.Kill(self.ID)
	}
}

// Spit empties the stomach at the cost of PurpleSpitDamage hp. With the
// tuned probability it fires one tracking pellet at the player, otherwise
// one pellet per swallowed bullet in random directions.
func (p *PelletEater) Spit(h Host, self Self) bool {
	if !p.Full() {
		return false
	}
	count := p.PelletsEaten
	p.PelletsEaten = 0
	self.Enemy.TakeDamage(config.PurpleSpitDamage)

	rng := h.Rand()
	x, y := self.Pos.X, self.Pos.Y
	if rng.Float64() < spitTrackingChance(h) {
		px, py := h.PlayerPosition()
		h.SpawnEnemyPellet(x, y, math.Atan2(py-y, px-x), true)
		return true
	}
	for i := 0; i < count; i++ {
		h.SpawnEnemyPellet(x, y, rng.Angle(), false)
	}
	return true
}

// OnDeath releases every bullet ever swallowed as an even ring.
func (p *PelletEater) OnDeath(h Host, self Self) {
	if p.TotalPelletsConsumed <= 0 {
		return
	}
	h.SpawnDeathBurst(self.Pos.X, self.Pos.Y, p.TotalPelletsConsumed)
	emitBurst(h, event.Burst{X: self.Pos.X, Y: self.Pos.Y, Color: deathBurstGold, Count: 20, Spread: 5})
}

// TuningHost is implemented by hosts that carry run-time tuning.
type TuningHost interface {
	Tuning() config.Tuning
}

func spitTrackingChance(h Host) float64 {
	if th, ok := h.(TuningHost); ok {
		return th.Tuning().SpitTrackingChance
	}
	return config.DefaultTuning().SpitTrackingChance
}
