// internal/state/game_state.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-wave-shooter/internal/app"
	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/system"
	"go-wave-shooter/internal/ui"
	"go-wave-shooter/internal/utils"
	"go-wave-shooter/pkg/render"
)

var (
	debugKeys   = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7}
	upgradeKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}
)

// GameState plays one session: it turns input into simulation steps and
// menu choices and draws the arena with the HUD on top.
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	renderer      *render.ArenaRenderer
	waveIndicator *ui.WaveIndicator
	health        *ui.PlayerHealthIndicator
	upgradeMenu   *ui.UpgradeMenu
	infoPanel     *ui.InfoPanel
	gameOver      *ui.GameOverPanel
	pauseButton   *ui.PauseButton
	debug         bool
	menuWave      int
}

func NewGameState(sm *StateMachine, game *app.Game, debug bool) *GameState {
	face := ui.DefaultFace
	return &GameState{
		sm:            sm,
		game:          game,
		renderer:      render.NewArenaRenderer(),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, 30, face),
		health:        ui.NewPlayerHealthIndicator(20, 20, face),
		upgradeMenu:   ui.NewUpgradeMenu(face),
		infoPanel:     ui.NewInfoPanel(face),
		gameOver:      ui.NewGameOverPanel(face),
		pauseButton:   ui.NewPauseButton(config.ScreenWidth-40, 40, 18),
		debug:         debug,
	}
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update() {
	g.infoPanel.Update()
	cx, cy := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		(clicked && g.pauseButton.IsClicked(cx, cy)) {
		g.pauseButton.Toggle()
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	var input system.PlayerInput
	switch g.game.ECS.Phase {
	case component.PhasePlaying:
		input = g.readInput(cx, cy)
		if g.debug {
			g.handleDebugSpawn()
		}
	case component.PhaseUpgrade:
		g.handleUpgradeMenu(cx, cy, clicked)
	case component.PhaseIntro:
		g.handleIntro(cx, cy, clicked)
	case component.PhaseGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || (clicked && g.gameOver.RestartButton.Contains(cx, cy)) {
			g.game.Restart()
			g.infoPanel.Hide()
			g.menuWave = 0
		}
	}
	g.game.Step(input)
}

// readInput samples the held controls. The pointer is converted to world
// coordinates.
func (g *GameState) readInput(cx, cy int) system.PlayerInput {
	ax, ay := utils.ScreenToWorld(float64(cx), float64(cy))
	return system.PlayerInput{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		AimX:  ax,
		AimY:  ay,
		Fire:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

func (g *GameState) handleDebugSpawn() {
	for i, key := range debugKeys {
		if i >= len(defs.AllKinds) || !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if _, err := g.game.DebugSpawn(defs.AllKinds[i]); err != nil {
			log.Printf("Debug spawn failed: %v", err)
		}
	}
}

func (g *GameState) handleUpgradeMenu(cx, cy int, clicked bool) {
	snap := g.game.Snapshot()
	if g.menuWave != snap.Wave || len(g.upgradeMenu.Cards) != len(snap.Offered) {
		offered := g.game.OfferedUpgrades()
		cards := make([]ui.UpgradeCard, len(offered))
		for i, u := range offered {
			cards[i] = ui.UpgradeCard{Name: snap.Offered[i], Description: u.Description}
		}
		g.upgradeMenu.SetCards(cards)
		g.menuWave = snap.Wave
	}

	choice := -1
	if clicked {
		choice = g.upgradeMenu.CardAt(cx, cy)
	}
	for i, key := range upgradeKeys {
		if i < len(g.upgradeMenu.Cards) && inpututil.IsKeyJustPressed(key) {
			choice = i
		}
	}
	if choice < 0 {
		return
	}
	if err := g.game.ChooseUpgrade(choice); err != nil {
		log.Printf("Upgrade choice rejected: %v", err)
	}
}

func (g *GameState) handleIntro(cx, cy int, clicked bool) {
	snap := g.game.Snapshot()
	g.infoPanel.Show(snap.IntroKind, snap.Intro)
	if !g.infoPanel.Settled() {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		(clicked && g.infoPanel.ContinueAt(cx, cy)) {
		if err := g.game.Continue(); err != nil {
			log.Printf("Continue rejected: %v", err)
			return
		}
		g.infoPanel.Hide()
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.ECS)

	snap := g.game.Snapshot()
	cx, cy := ebiten.CursorPosition()
	g.health.Draw(screen, snap.HPPercent, snap.ChargePercent, snap.Charged, snap.Score, g.game.ECS.Frame)
	g.waveIndicator.Draw(screen, snap.Wave)
	g.pauseButton.Draw(screen)

	switch snap.Phase {
	case component.PhaseUpgrade:
		g.upgradeMenu.Draw(screen, cx, cy)
	case component.PhaseIntro:
		g.infoPanel.Draw(screen, cx, cy)
	case component.PhaseGameOver:
		g.gameOver.Draw(screen, snap.FinalWave, snap.Score, cx, cy)
	}

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  enemies %d  projectiles %d  [1-7] spawn",
			ebiten.ActualTPS(), snap.Enemies, len(g.game.ECS.Projectiles)), 10, config.ScreenHeight-20)
	}
}

func (g *GameState) Exit() {}
