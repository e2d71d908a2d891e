// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/ui"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the session and draws it dimmed underneath.
type PauseState struct {
	stateMachine *StateMachine
	previous     *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{stateMachine: sm, previous: prev}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() {
	cx, cy := ebiten.CursorPosition()
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		(inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && s.previous.pauseButton.IsClicked(cx, cy)) {
		s.previous.pauseButton.Toggle()
		s.stateMachine.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PanelColor, false)
	ui.DrawTitle(screen, "PAUSED", config.ScreenWidth/2, config.ScreenHeight/2)
	s.previous.pauseButton.Draw(screen)
}

func (s *PauseState) Exit() {}
