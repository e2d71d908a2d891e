// internal/defs/types.go
package defs

// EnemyKind identifies one enemy variant.
type EnemyKind string

const (
	KindRed        EnemyKind = "red"
	KindRedOrbiter EnemyKind = "red_orbiter"
	KindBlue       EnemyKind = "blue"
	KindYellow     EnemyKind = "yellow"
	KindPurple     EnemyKind = "purple"
	KindGreen      EnemyKind = "green"
	KindWhite      EnemyKind = "white"
)

// AllKinds lists every enemy kind in debug-spawner order.
var AllKinds = []EnemyKind{
	KindRed,
	KindRedOrbiter,
	KindBlue,
	KindYellow,
	KindPurple,
	KindGreen,
	KindWhite,
}

// Shape is the outline an enemy is drawn with.
type Shape string

const (
	ShapeSquare   Shape = "square"
	ShapeTriangle Shape = "triangle"
	ShapeHexagon  Shape = "hexagon"
	ShapeOctagon  Shape = "octagon"
	ShapeRing     Shape = "ring"
)
