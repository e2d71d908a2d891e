package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-wave-shooter/internal/config"
)

// WaveIndicator shows the current wave number in roman numerals.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
	face             font.Face
}

func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.TextLightColor,
		OutlineColor:     color.Black,
		OutlineThickness: 1,
		face:             face,
	}
}

// toRoman converts a positive integer to roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Label is the text drawn for wave n.
func (i *WaveIndicator) Label(n int) string {
	if n <= 0 {
		return ""
	}
	return "WAVE " + toRoman(n)
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	label := i.Label(waveNumber)
	if label == "" {
		return
	}
	// Every fifth wave is drawn as a warning.
	textColor := i.Color
	if waveNumber%5 == 0 {
		textColor = config.WarningColor
	}
	drawOutlined(screen, label, i.face, i.X, i.Y, i.OutlineThickness, textColor, i.OutlineColor)
}
