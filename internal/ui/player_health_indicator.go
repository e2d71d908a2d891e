// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-wave-shooter/internal/config"
)

const (
	barWidth   = 200
	barHeight  = 12
	barSpacing = 22
)

// PlayerHealthIndicator draws the hp bar, the super-shot charge bar and
// the score in the top-left corner.
type PlayerHealthIndicator struct {
	X, Y float32
	face font.Face
}

func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, face: face}
}

// fillWidth converts a percentage into a bar width, clamped to the bar.
func fillWidth(percent float64, width float32) float32 {
	if percent <= 0 {
		return 0
	}
	if percent >= 100 {
		return width
	}
	return float32(percent/100) * width
}

func (i *PlayerHealthIndicator) drawBar(screen *ebiten.Image, y float32, percent float64, fill color.Color, label string) {
	vector.DrawFilledRect(screen, i.X, y, barWidth, barHeight, config.HPBarBackColor, false)
	vector.DrawFilledRect(screen, i.X, y, fillWidth(percent, barWidth), barHeight, fill, false)
	vector.StrokeRect(screen, i.X, y, barWidth, barHeight, 1, color.White, false)
	text.Draw(screen, label, i.face, int(i.X)+barWidth+8, int(y)+barHeight-1, config.TextLightColor)
}

// Draw renders the bars. A full charge bar blinks with the frame counter.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, hpPercent, chargePercent float64, charged bool, score int, frame uint64) {
	i.drawBar(screen, i.Y, hpPercent, config.HPBarColor, fmt.Sprintf("HP %.0f%%", hpPercent))

	chargeColor := color.Color(config.ChargeBarColor)
	label := fmt.Sprintf("CHARGE %.0f%%", chargePercent)
	if charged {
		label = "SUPER READY"
		if frame/15%2 == 0 {
			chargeColor = config.SuperBulletColor
		}
	}
	i.drawBar(screen, i.Y+barSpacing, chargePercent, chargeColor, label)

	text.Draw(screen, fmt.Sprintf("SCORE %d", score), i.face, int(i.X), int(i.Y)+2*barSpacing+barHeight, config.TextLightColor)
}
