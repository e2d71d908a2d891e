// internal/component/enemy.go
package component

import "go-wave-shooter/internal/defs"

// Ability is the kind-specific sub-state of an enemy. Behaviour is reached
// through the optional capability interfaces in the ability package.
type Ability interface {
	Kind() defs.EnemyKind
}

// Enemy is a hostile actor.
type Enemy struct {
	Kind          defs.EnemyKind
	HP            float64
	MaxHP         float64
	Speed         float64
	Radius        float64
	ScoreValue    int
	RotationSpeed float64
	Rotation      float64
	Ability       Ability

	MarkedForDeletion bool
}

// TakeDamage lowers HP, never below zero.
func (e *Enemy) TakeDamage(amount float64) {
	e.HP -= amount
	if e.HP < 0 {
		e.HP = 0
	}
}

// Heal raises HP, never above MaxHP.
func (e *Enemy) Heal(amount float64) {
	e.HP += amount
	if e.HP > e.MaxHP {
		e.HP = e.MaxHP
	}
}

// HPFraction returns HP as a fraction of MaxHP.
func (e *Enemy) HPFraction() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	return e.HP / e.MaxHP
}
