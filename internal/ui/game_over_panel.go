package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-wave-shooter/internal/config"
)

// GameOverPanel shows the final result and a restart button.
type GameOverPanel struct {
	RestartButton *Button
	face          font.Face
}

func NewGameOverPanel(face font.Face) *GameOverPanel {
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	return &GameOverPanel{
		RestartButton: NewButton(image.Rect(cx-90, cy+40, cx+90, cy+80), "RESTART [R]", face),
		face:          face,
	}
}

// Lines returns the result text.
func (p *GameOverPanel) Lines(finalWave, score int) []string {
	return []string{
		"GAME OVER",
		fmt.Sprintf("Waves survived: %d", finalWave),
		fmt.Sprintf("Score: %d", score),
	}
}

func (p *GameOverPanel) Draw(screen *ebiten.Image, finalWave, score, cursorX, cursorY int) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PanelColor, false)
	cx, y := config.ScreenWidth/2, config.ScreenHeight/2-60
	for i, line := range p.Lines(finalWave, score) {
		clr := config.TextLightColor
		if i == 0 {
			clr = config.ReflectedColor
		}
		drawCentered(screen, line, p.face, cx, y, clr)
		y += 24
	}
	p.RestartButton.Draw(screen, cursorX, cursorY)
}
