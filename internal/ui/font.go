// internal/ui/font.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-wave-shooter/internal/config"
)

// DefaultFace is the bitmap face every widget falls back to.
var DefaultFace font.Face = basicfont.Face7x13

// drawCentered draws s horizontally centred on cx with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-bounds.Dx()/2, y, clr)
}

// drawOutlined draws s centred on cx with a thickness-pixel outline.
func drawOutlined(screen *ebiten.Image, s string, face font.Face, cx, y, thickness int, fill, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawCentered(screen, s, face, cx+dx, y+dy, outline)
		}
	}
	drawCentered(screen, s, face, cx, y, fill)
}

// wrap splits s into lines of at most width pixels.
func wrap(s string, face font.Face, width int) []string {
	var lines []string
	line := ""
	word := ""
	flush := func() {
		if word == "" {
			return
		}
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && text.BoundString(face, candidate).Dx() > width {
			lines = append(lines, line)
			line = word
		} else {
			line = candidate
		}
		word = ""
	}
	for _, r := range s {
		if r == ' ' {
			flush()
			continue
		}
		word += string(r)
	}
	flush()
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// DrawTitle draws s centred on cx with an outline.
func DrawTitle(screen *ebiten.Image, s string, cx, y int) {
	drawOutlined(screen, s, DefaultFace, cx, y, 1, config.PlayerColor, config.BackgroundColor)
}

// DrawText draws s left-aligned at x with its baseline at y.
func DrawText(screen *ebiten.Image, s string, x, y int) {
	text.Draw(screen, s, DefaultFace, x, y, config.TextLightColor)
}
