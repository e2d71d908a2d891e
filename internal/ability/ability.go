// Package ability holds the kind-specific enemy sub-states and the
// capabilities the enemy systems dispatch to.
package ability

import (
	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/event"
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"
)

// Host is the arena an ability acts on.
type Host interface {
	Rand() *utils.PRNGService
	PlayerPosition() (x, y float64)
	SpawnShockwave(x, y float64, mini bool)
	SpawnWall(x, y, angle float64)
	SpawnEnemyPellet(x, y, angle float64, tracking bool)
	SpawnDeathBurst(x, y float64, count int)
	// HealEnemies heals live enemies other than except within radius and
	// returns how many were healed.
	HealEnemies(except types.EntityID, x, y, radius, amount float64) int
	// Kill runs the common death protocol on an enemy whose hp reached zero.
	Kill(id types.EntityID)
	Emit(e event.Event)
}

// Self bundles an enemy with its handle and position.
type Self struct {
	ID    types.EntityID
	Pos   *component.Position
	Enemy *component.Enemy
}

// Ticker runs once per frame for a live enemy.
type Ticker interface {
	Tick(h Host, self Self)
}

// Interceptor gets the first look at a projectile that overlaps any of its
// sub-hitboxes. Returning true consumes the projectile.
type Interceptor interface {
	Intercept(h Host, self Self, p *component.Projectile, px, py float64) bool
}

// Absorber may swallow a projectile touching the core instead of taking
// damage. Returning true consumes the projectile.
type Absorber interface {
	Absorb(h Host, self Self, p *component.Projectile) bool
}

// DamageListener is told after the core lost hp.
type DamageListener interface {
	OnDamaged(h Host, self Self)
}

// DeathHandler runs the kind-specific death effect.
type DeathHandler interface {
	OnDeath(h Host, self Self)
}

// Plain is the sub-state of kinds without a special ability.
type Plain struct {
	kind defs.EnemyKind
}

// Kind implements component.Ability.
func (p Plain) Kind() defs.EnemyKind { return p.kind }

// New returns the initial sub-state for kind.
func New(kind defs.EnemyKind) component.Ability {
	switch kind {
	case defs.KindRedOrbiter:
		return NewOrbiters()
	case defs.KindBlue:
		return &ShockwaveTrigger{}
	case defs.KindPurple:
		return NewPelletEater()
	case defs.KindGreen:
		return NewHealer()
	case defs.KindWhite:
		return NewWallSpawner()
	}
	return Plain{kind: kind}
}

func emitSound(h Host, cue event.Cue) {
	h.Emit(event.Event{Type: event.SoundRequested, Data: cue})
}

func emitBurst(h Host, b event.Burst) {
	h.Emit(event.Event{Type: event.ParticleBurst, Data: b})
}
