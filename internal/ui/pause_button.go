// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-shooter/internal/config"
	"go-wave-shooter/pkg/render"
)

// PauseButton is the round pause/play toggle in the top-right corner.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
	shapes        *render.ShapeRenderer
}

func NewPauseButton(x, y, size float32) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: config.WallColor,
		PlayColor:  config.PlayerColor,
		shapes:     render.NewShapeRenderer(),
	}
}

// IsClicked reports whether the screen point is inside the button.
func (b *PauseButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

func (b *PauseButton) Toggle() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}

// Draw renders a play triangle while paused and two bars otherwise. The
// icon pops briefly after each click.
func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	s := b.Size * 0.5 * float32(scale)

	vector.StrokeCircle(screen, b.X, b.Y, b.Size, 2, color.White, true)
	if b.IsPaused {
		b.shapes.FillPolygon(screen, float64(b.X), float64(b.Y), float64(s), 3, 0, toRGBA(b.PlayColor))
		return
	}
	w, h, gap := s*0.6, s*2, s*0.4
	vector.DrawFilledRect(screen, b.X-w-gap/2, b.Y-h/2, w, h, b.PauseColor, true)
	vector.DrawFilledRect(screen, b.X+gap/2, b.Y-h/2, w, h, b.PauseColor, true)
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
