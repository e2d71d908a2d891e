// internal/component/projectile.go
package component

import "go-wave-shooter/internal/types"

// Projectile is a player bullet or an enemy pellet. Position and velocity
// live in the ECS tables under the same id.
type Projectile struct {
	Radius         float64
	Damage         float64
	Speed          float64
	Homing         bool
	HomingStrength float64
	// TargetID is a weak handle; it must be checked against the enemy
	// table before use.
	TargetID     types.EntityID
	BoundsMargin float64

	IsSuper           bool
	IsReflected       bool
	IsEnemyPellet     bool
	IsExplosivePellet bool
	IsTracking        bool

	MarkedForDeletion bool
}

// PlayerOwned reports whether the projectile still belongs to the player.
func (p *Projectile) PlayerOwned() bool {
	return !p.IsEnemyPellet && !p.IsReflected
}
