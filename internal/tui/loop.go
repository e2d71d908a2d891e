package tui

import (
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-wave-shooter/internal/app"
	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/types"
)

// Run drives game on screen until the player quits. Events are read on
// their own goroutine; the simulation runs only on this one.
func Run(screen tcell.Screen, game *app.Game, debug bool) error {
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	renderer := NewRenderer(screen)
	ctrl := NewController()
	limiter := app.NewFrameLimiter(config.TargetFPS, time.Now())
	ticker := time.NewTicker(limiter.Interval() / 4)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	paused := false
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				renderer.Resize()
			case *tcell.EventMouse:
				ctrl.HandleMouse(ev)
			case *tcell.EventKey:
				cmd := ctrl.HandleKey(ev, time.Now())
				if cmd.Kind == CmdQuit {
					return nil
				}
				if cmd.Kind == CmdPause {
					paused = !paused
					ctrl.Release()
					continue
				}
				apply(game, cmd, debug)
			}

		case now := <-ticker.C:
			if !limiter.Ready(now) {
				continue
			}
			if !paused {
				fx, fy := fallbackAim(game)
				game.Step(ctrl.Input(now, renderer.Viewport(), fx, fy))
			}
			renderer.Draw(game.ECS, game.Snapshot())
			if paused {
				renderer.centred(renderer.Viewport().Rows/2, "PAUSED  [p] resume", styleOf(config.WarningColor))
				screen.Show()
			}
		}
	}
}

// apply routes a decoded command to the session for the current phase.
func apply(game *app.Game, cmd Command, debug bool) {
	var err error
	switch cmd.Kind {
	case CmdChoose:
		if game.ECS.Phase == component.PhaseUpgrade {
			err = game.ChooseUpgrade(cmd.Index)
		}
	case CmdContinue:
		if game.ECS.Phase == component.PhaseIntro {
			err = game.Continue()
		}
	case CmdRestart:
		if game.ECS.Phase == component.PhaseGameOver {
			game.Restart()
		}
	case CmdDebugSpawn:
		if debug {
			_, err = game.DebugSpawn(defs.AllKinds[cmd.Index])
		}
	}
	if err != nil {
		log.Printf("Command %d ignored: %v", cmd.Kind, err)
	}
}

func fallbackAim(game *app.Game) (float64, float64) {
	px, py := game.Arena.PlayerPosition()
	id := game.Arena.NearestEnemy(px, py, math.Inf(1))
	if id == types.NoEntity {
		return aimFallback(px, py, 0, 0, false)
	}
	pos := game.ECS.Positions[id]
	return aimFallback(px, py, pos.X, pos.Y, true)
}
