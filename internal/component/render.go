// component/render.go
package component

import (
	"image/color"

	"go-wave-shooter/internal/defs"
)

// Renderable is the visual identity the draw routine reads.
type Renderable struct {
	Color    color.RGBA
	Radius   float32
	Shape    defs.Shape
	Sides    int
	Outline  color.RGBA
	Scale    float32
	Rotation float64
}
