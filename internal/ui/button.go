// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-wave-shooter/internal/config"
)

var bodyTextColor = color.RGBA{170, 170, 190, 255}

// Button is a clickable rectangle with a title and optional body text.
type Button struct {
	Rect       image.Rectangle
	Text       string
	Body       string
	Hotkey     string
	BgColor    color.Color
	HoverColor color.Color
	face       font.Face
}

func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		BgColor:    config.CardColor,
		HoverColor: config.CardHoverColor,
		face:       face,
	}
}

// Contains reports whether the screen point x, y is on the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw renders the button, highlighted when the cursor is over it.
func (b *Button) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	bg := b.BgColor
	if b.Contains(cursorX, cursorY) {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, config.WallColor, false)

	cx := b.Rect.Min.X + b.Rect.Dx()/2
	if b.Body == "" {
		bounds := text.BoundString(b.face, b.Text)
		ty := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
		drawCentered(screen, b.Text, b.face, cx, ty, config.TextLightColor)
		return
	}

	lineHeight := b.face.Metrics().Height.Ceil() + 4
	ty := b.Rect.Min.Y + 2*lineHeight
	drawCentered(screen, b.Text, b.face, cx, ty, config.TextLightColor)
	ty += lineHeight
	for _, line := range wrap(b.Body, b.face, b.Rect.Dx()-20) {
		ty += lineHeight
		drawCentered(screen, line, b.face, cx, ty, bodyTextColor)
	}
	if b.Hotkey != "" {
		drawCentered(screen, "["+b.Hotkey+"]", b.face, cx, b.Rect.Max.Y-lineHeight, config.WarningColor)
	}
}
