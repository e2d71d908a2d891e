// internal/component/visual.go
package component

import "image/color"

// Flash tints an entity for a number of frames.
type Flash struct {
	Color    color.RGBA
	Frames   int
	Duration int
}

// Particle is a cosmetic fragment. It never feeds back into the simulation.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Color   color.RGBA
	Age     int
	MaxAge  int
	Square  bool
	Ring    bool
	RingMax float64
}

// Alpha returns the remaining opacity in [0, 1].
func (p *Particle) Alpha() float64 {
	if p.MaxAge <= 0 {
		return 0
	}
	a := 1 - float64(p.Age)/float64(p.MaxAge)
	if a < 0 {
		return 0
	}
	return a
}
