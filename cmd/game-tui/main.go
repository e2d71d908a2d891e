// cmd/game-tui/main.go
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"go-wave-shooter/internal/app"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/tui"
)

func main() {
	seed := flag.Int64("seed", 0, "simulation seed (0 picks one from the clock)")
	defsPath := flag.String("defs", "", "enemy definition JSON overriding the built-in set")
	debug := flag.Bool("debug", false, "enable the debug spawner (alt+1-7)")
	logPath := flag.String("log", "", "write the log to this file instead of discarding it")
	flag.Parse()

	// The terminal belongs to the game while it runs.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.New(os.Stderr, "", log.LstdFlags).Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if *defsPath != "" {
		if err := defs.LoadEnemyDefinitions(*defsPath); err != nil {
			log.New(os.Stderr, "", log.LstdFlags).Fatal(err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.New(os.Stderr, "", log.LstdFlags).Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.New(os.Stderr, "", log.LstdFlags).Fatal(err)
	}

	tuning := config.DefaultTuning()
	tuning.Seed = *seed
	game := app.NewGame(tuning)

	runErr := tui.Run(screen, game, *debug)
	screen.Fini()
	if runErr != nil {
		log.New(os.Stderr, "", log.LstdFlags).Fatal(runErr)
	}
}
