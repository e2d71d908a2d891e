// pkg/render/shape_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ShapeRenderer draws filled and stroked regular polygons through a reused
// vertex buffer.
type ShapeRenderer struct {
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
}

func NewShapeRenderer() *ShapeRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &ShapeRenderer{
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 24),
		fillIs:   make([]uint16, 0, 24),
		strokeVs: make([]ebiten.Vertex, 0, 48),
		strokeIs: make([]uint16, 0, 48),
	}
}

func polygonPath(x, y, radius float64, sides int, rotation float64) *vector.Path {
	path := &vector.Path{}
	for i := 0; i < sides; i++ {
		angle := rotation + 2*math.Pi*float64(i)/float64(sides)
		px := x + radius*math.Cos(angle)
		py := y + radius*math.Sin(angle)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
	return path
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}

// FillPolygon draws a filled regular polygon centred on (x, y) in screen
// space. Fewer than three sides draws a circle.
func (r *ShapeRenderer) FillPolygon(target *ebiten.Image, x, y, radius float64, sides int, rotation float64, c color.RGBA) {
	if sides < 3 {
		vector.DrawFilledCircle(target, float32(x), float32(y), float32(radius), c, true)
		return
	}
	path := polygonPath(x, y, radius, sides, rotation)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paint(r.fillVs, c)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// StrokePolygon outlines a regular polygon.
func (r *ShapeRenderer) StrokePolygon(target *ebiten.Image, x, y, radius float64, sides int, rotation, width float64, c color.RGBA) {
	if sides < 3 {
		vector.StrokeCircle(target, float32(x), float32(y), float32(radius), float32(width), c, true)
		return
	}
	path := polygonPath(x, y, radius, sides, rotation)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: float32(width),
	})
	paint(r.strokeVs, c)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
