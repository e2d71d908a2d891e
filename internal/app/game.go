// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"math"
	"time"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/entity"
	"go-wave-shooter/internal/event"
	"go-wave-shooter/internal/system"
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/upgrade"
	"go-wave-shooter/internal/utils"
)

// Game holds one session: the ECS, the event dispatcher and every
// simulation system, run in a fixed order once per frame.
type Game struct {
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Arena              *system.Arena
	WaveSystem         *system.WaveSystem
	PlayerSystem       *system.PlayerSystem
	ProjectileSystem   *system.ProjectileSystem
	MovementSystem     *system.MovementSystem
	EnemySystem        *system.EnemySystem
	HazardSystem       *system.HazardSystem
	CollisionSystem    *system.CollisionSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem

	tuning      config.Tuning
	seed        int64
	sessions    int
	subscribers []subscription
}

type subscription struct {
	eventType event.EventType
	listener  event.Listener
}

// Snapshot is what a front-end needs to draw the HUD and menus.
type Snapshot struct {
	Wave          int
	Phase         component.Phase
	HPPercent     float64
	ChargePercent float64
	Charged       bool
	Score         int
	FinalWave     int
	Enemies       int
	Offered       []string
	IntroKind     defs.EnemyKind
	Intro         defs.Intro
}

// NewGame starts a session at wave 1. A zero tuning.Seed picks one from
// the clock.
func NewGame(tuning config.Tuning) *Game {
	seed := tuning.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{tuning: tuning, seed: seed}
	g.reset()
	return g
}

// Subscribe registers an outside listener, such as the audio player, that
// survives Restart.
func (g *Game) Subscribe(eventType event.EventType, listener event.Listener) {
	g.subscribers = append(g.subscribers, subscription{eventType, listener})
	g.EventDispatcher.Subscribe(eventType, listener)
}

func (g *Game) reset() {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	// Every session after the first gets a fresh sequence from the same seed.
	seed := g.seed + int64(g.sessions)
	g.sessions++

	arena := system.NewArena(ecs, eventDispatcher, utils.NewPRNGService(seed), g.tuning)
	g.ECS = ecs
	g.EventDispatcher = eventDispatcher
	g.Arena = arena
	g.WaveSystem = system.NewWaveSystem(ecs, arena)
	g.PlayerSystem = system.NewPlayerSystem(ecs, arena)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, arena)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.EnemySystem = system.NewEnemySystem(ecs, arena)
	g.HazardSystem = system.NewHazardSystem(ecs, arena)
	g.CollisionSystem = system.NewCollisionSystem(ecs, arena)
	g.StateSystem = system.NewStateSystem(ecs, arena, g.WaveSystem, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, eventDispatcher, seed^0x5eed)

	for _, s := range g.subscribers {
		eventDispatcher.Subscribe(s.eventType, s.listener)
	}

	arena.SpawnPlayer()
	g.WaveSystem.BeginWave(1)
}

// Step advances the session by one frame. Outside the playing phase only
// cosmetic effects age. A panic anywhere in the frame is logged and the
// rest of the frame is skipped.
func (g *Game) Step(input system.PlayerInput) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Game: frame %d skipped: %v", g.ECS.Frame, r)
		}
	}()

	g.ECS.Frame++
	g.VisualEffectSystem.Update()
	if g.ECS.Phase != component.PhasePlaying {
		return
	}

	g.WaveSystem.Update()
	g.PlayerSystem.Update(input)
	g.ProjectileSystem.Update()
	g.MovementSystem.Update()
	g.EnemySystem.Update()
	g.HazardSystem.Update()
	g.CollisionSystem.Update()
	g.ECS.Prune()
	g.StateSystem.Update()
}

// ChooseUpgrade applies the i-th offered upgrade.
func (g *Game) ChooseUpgrade(i int) error {
	return g.StateSystem.ChooseUpgrade(i)
}

// Continue dismisses the enemy intro card.
func (g *Game) Continue() error {
	return g.StateSystem.Continue()
}

// Restart throws the session away and starts again at wave 1.
func (g *Game) Restart() {
	log.Printf("Restarting after wave %d", g.ECS.Wave.FinalWave)
	g.reset()
}

// DebugSpawn drops an enemy of kind DebugSpawnDistance away from the player
// in a random direction.
func (g *Game) DebugSpawn(kind defs.EnemyKind) (types.EntityID, error) {
	if _, ok := defs.EnemyLibrary[kind]; !ok {
		return types.NoEntity, fmt.Errorf("unknown enemy kind %q", kind)
	}
	if g.ECS.Phase != component.PhasePlaying {
		return types.NoEntity, fmt.Errorf("cannot spawn in phase %s", g.ECS.Phase)
	}
	px, py := g.Arena.PlayerPosition()
	angle := g.Arena.Rand().Angle()
	x := px + math.Cos(angle)*config.DebugSpawnDistance
	y := py + math.Sin(angle)*config.DebugSpawnDistance
	return g.Arena.SpawnEnemy(kind, x, y), nil
}

// Snapshot reads the session state for the HUD.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Wave:      g.ECS.Wave.Number,
		Phase:     g.ECS.Phase,
		Score:     g.ECS.Wave.Score,
		FinalWave: g.ECS.Wave.FinalWave,
		Enemies:   g.ECS.LiveEnemyCount(),
	}
	if p := g.ECS.Player; p != nil {
		s.HPPercent = p.HPPercent()
		s.ChargePercent = p.ChargePercent()
		s.Charged = p.Charged()
		for _, u := range g.StateSystem.Offered() {
			s.Offered = append(s.Offered, u.DisplayName(p))
		}
	}
	if s.Phase == component.PhaseIntro {
		s.IntroKind = g.ECS.Wave.IntroKind
		s.Intro = g.StateSystem.Intro()
	}
	return s
}

// OfferedUpgrades returns the upgrades on the open menu.
func (g *Game) OfferedUpgrades() []upgrade.Upgrade {
	return g.StateSystem.Offered()
}
