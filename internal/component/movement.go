// internal/component/movement.go
package component

import "math"

// Position is a world-space location; the world is centred on the origin.
type Position struct {
	X, Y float64
}

// Velocity is a per-frame displacement.
type Velocity struct {
	X, Y float64
}

// Heading returns the direction of travel in radians.
func (v Velocity) Heading() float64 {
	return math.Atan2(v.Y, v.X)
}

// Speed returns the magnitude of the velocity.
func (v Velocity) Speed() float64 {
	return math.Hypot(v.X, v.Y)
}

// FromPolar builds a velocity from a heading and speed.
func FromPolar(angle, speed float64) Velocity {
	return Velocity{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
}
