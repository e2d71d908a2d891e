// internal/ui/info_panel.go
package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
)

const (
	panelWidth     = 560
	panelHeight    = 300
	animationSpeed = 20.0
	lineHeight     = 18
)

var (
	panelBorderColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	abilityColor     = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

// InfoPanel is the card introducing a new enemy kind. It slides down from
// above the screen when shown.
type InfoPanel struct {
	IsVisible      bool
	Kind           defs.EnemyKind
	Intro          defs.Intro
	ContinueButton *Button
	face           font.Face
	currentY       float64
	targetY        float64
}

func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{
		face:     face,
		currentY: -panelHeight,
		targetY:  -panelHeight,
	}
}

// Show fills the card for kind and starts the slide-in.
func (p *InfoPanel) Show(kind defs.EnemyKind, intro defs.Intro) {
	if p.IsVisible && p.Kind == kind {
		return
	}
	p.Kind = kind
	p.Intro = intro
	p.IsVisible = true
	p.currentY = -panelHeight
	p.targetY = (config.ScreenHeight - panelHeight) / 2
}

func (p *InfoPanel) Hide() {
	p.IsVisible = false
	p.Kind = ""
	p.currentY = -panelHeight
	p.targetY = -panelHeight
}

// Update advances the slide animation.
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	if math.Abs(diff) < animationSpeed {
		p.currentY = p.targetY
	} else if diff > 0 {
		p.currentY += animationSpeed
	} else {
		p.currentY -= animationSpeed
	}
}

// Settled reports whether the slide-in has finished.
func (p *InfoPanel) Settled() bool {
	return p.IsVisible && p.currentY == p.targetY
}

func (p *InfoPanel) rect() image.Rectangle {
	x := (config.ScreenWidth - panelWidth) / 2
	y := int(p.currentY)
	return image.Rect(x, y, x+panelWidth, y+panelHeight)
}

// ContinueAt reports whether x, y is on the continue button.
func (p *InfoPanel) ContinueAt(x, y int) bool {
	return p.ContinueButton != nil && p.Settled() && p.ContinueButton.Contains(x, y)
}

func (p *InfoPanel) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	if !p.IsVisible {
		return
	}
	r := p.rect()
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.PanelColor, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, panelBorderColor, true)

	cx := r.Min.X + r.Dx()/2
	y := r.Min.Y + 30
	drawCentered(screen, "NEW ENEMY", p.face, cx, y, config.WarningColor)
	y += lineHeight + 6

	nameColor := color.Color(config.TextLightColor)
	if def, ok := defs.EnemyLibrary[p.Kind]; ok {
		nameColor = def.Visuals.RGBA()
	}
	drawOutlined(screen, p.Intro.Name, p.face, cx, y, 1, nameColor, color.Black)
	y += lineHeight * 2

	left := r.Min.X + 20
	width := r.Dx() - 40
	for _, section := range []struct {
		body string
		clr  color.Color
	}{
		{p.Intro.Desc, config.TextLightColor},
		{p.Intro.Ability, abilityColor},
		{p.Intro.Warning, config.WarningColor},
	} {
		for _, line := range wrap(section.body, p.face, width) {
			text.Draw(screen, line, p.face, left, y, section.clr)
			y += lineHeight
		}
		y += lineHeight / 2
	}

	btnRect := image.Rect(cx-80, r.Max.Y-50, cx+80, r.Max.Y-15)
	if p.ContinueButton == nil {
		p.ContinueButton = NewButton(btnRect, "CONTINUE [SPACE]", p.face)
	}
	p.ContinueButton.Rect = btnRect
	p.ContinueButton.Draw(screen, cursorX, cursorY)
}
