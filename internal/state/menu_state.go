// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-wave-shooter/internal/app"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/ui"
	"go-wave-shooter/pkg/render"
)

var controls = []string{
	"WASD / ARROWS  move",
	"MOUSE          aim",
	"CLICK / SPACE  fire",
	"P / ESC        pause",
}

// MenuState is the title screen. Any start input hands the prepared
// session to a GameState.
type MenuState struct {
	sm     *StateMachine
	game   *app.Game
	debug  bool
	shapes *render.ShapeRenderer
	frame  int
}

func NewMenuState(sm *StateMachine, game *app.Game, debug bool) *MenuState {
	return &MenuState{sm: sm, game: game, debug: debug, shapes: render.NewShapeRenderer()}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() {
	m.frame++
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm, m.game, m.debug))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx, cy := float64(config.ScreenWidth)/2, float64(config.ScreenHeight)/2
	m.shapes.StrokePolygon(screen, cx, cy-120, 40, 3, float64(m.frame)*0.02, 2, config.PlayerColor)

	ui.DrawTitle(screen, "SURVIVE THE WAVES", int(cx), int(cy)-40)
	y := int(cy)
	for _, line := range controls {
		ui.DrawText(screen, line, int(cx)-70, y)
		y += 18
	}
	if m.frame/30%2 == 0 {
		ui.DrawTitle(screen, "PRESS SPACE TO START", int(cx), y+30)
	}
}

func (m *MenuState) Exit() {}
