// cmd/game/main.go
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"go-wave-shooter/internal/app"
	"go-wave-shooter/internal/audio"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/event"
	"go-wave-shooter/internal/state"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "simulation seed (0 picks one from the clock)")
	defsPath := flag.String("defs", "", "enemy definition JSON overriding the built-in set")
	mute := flag.Bool("mute", false, "start with sound off")
	volume := flag.Float64("volume", 1, "sound volume in [0, 1]")
	debug := flag.Bool("debug", false, "enable the debug spawner (keys 1-7) and overlay")
	skipMenu := flag.Bool("play", false, "skip the title screen")
	flag.Parse()

	if *defsPath != "" {
		if err := defs.LoadEnemyDefinitions(*defsPath); err != nil {
			log.Fatal(err)
		}
	}

	tuning := config.DefaultTuning()
	tuning.Seed = *seed
	game := app.NewGame(tuning)

	player, err := audio.NewPlayer(*volume, *mute)
	if err != nil {
		log.Printf("Audio disabled: %v", err)
	} else {
		game.Subscribe(event.SoundRequested, player)
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, game, *debug))
	} else {
		sm.SetState(state.NewMenuState(sm, game, *debug))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Survive the Waves")
	ebiten.SetTPS(config.TargetFPS)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}
