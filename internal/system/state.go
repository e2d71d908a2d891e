// internal/system/state.go
package system

import (
	"fmt"
	"log"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/entity"
	"go-wave-shooter/internal/event"
	"go-wave-shooter/internal/upgrade"
)

// StateSystem owns the director's phase machine:
// playing -> upgrade -> [intro ->] playing -> ... -> gameover.
type StateSystem struct {
	ecs             *entity.ECS
	arena           *Arena
	waves           *WaveSystem
	eventDispatcher *event.Dispatcher
	offered         []upgrade.Upgrade
	intro           defs.Intro
}

func NewStateSystem(ecs *entity.ECS, arena *Arena, waves *WaveSystem, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		arena:           arena,
		waves:           waves,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.WaveEnded, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type == event.WaveEnded {
		s.SwitchToUpgradeState()
	}
}

// Update ends the session once the player is out of hp.
func (s *StateSystem) Update() {
	if s.ecs.Phase == component.PhaseGameOver || s.ecs.Player == nil {
		return
	}
	if s.ecs.Player.HP <= 0 {
		s.SwitchToGameOverState()
	}
}

func (s *StateSystem) SwitchToUpgradeState() {
	if s.ecs.Phase != component.PhasePlaying {
		return
	}
	s.ecs.Phase = component.PhaseUpgrade
	s.offered = upgrade.GetRandomUpgrades(s.arena.Tuning().UpgradeChoices, s.ecs.Player, s.arena.Rand())
	log.Printf("Wave %d cleared, offering %d upgrades", s.ecs.Wave.Number, len(s.offered))
}

// ChooseUpgrade applies offered upgrade i and moves on to the next wave,
// through its intro card if the wave brings a new enemy kind.
func (s *StateSystem) ChooseUpgrade(i int) error {
	if s.ecs.Phase != component.PhaseUpgrade {
		return fmt.Errorf("no upgrade pending in phase %s", s.ecs.Phase)
	}
	if i < 0 || i >= len(s.offered) {
		return fmt.Errorf("upgrade choice %d out of range [0,%d)", i, len(s.offered))
	}
	if err := upgrade.Apply(s.offered[i], s.ecs.Player); err != nil {
		return fmt.Errorf("apply upgrade: %w", err)
	}
	s.offered = nil

	next := s.ecs.Wave.Number + 1
	if kind, intro, ok := defs.IntroForWave(next, s.ecs.Wave.IntroShown); ok {
		s.ecs.Wave.Number = next
		s.ecs.Wave.IntroKind = kind
		s.ecs.Wave.IntroShown[kind] = true
		s.intro = intro
		s.ecs.Phase = component.PhaseIntro
		return nil
	}
	s.waves.BeginWave(next)
	return nil
}

// Continue dismisses the intro card and starts its wave.
func (s *StateSystem) Continue() error {
	if s.ecs.Phase != component.PhaseIntro {
		return fmt.Errorf("no intro showing in phase %s", s.ecs.Phase)
	}
	s.intro = defs.Intro{}
	s.ecs.Wave.IntroKind = ""
	s.waves.BeginWave(s.ecs.Wave.Number)
	return nil
}

func (s *StateSystem) SwitchToGameOverState() {
	s.ecs.Phase = component.PhaseGameOver
	s.ecs.Wave.FinalWave = s.ecs.Wave.Number - 1
	s.offered = nil
	log.Printf("Game over: waves survived %d, score %d", s.ecs.Wave.FinalWave, s.ecs.Wave.Score)
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDied, Data: s.ecs.Wave.FinalWave})
}

// Offered returns the upgrades on the menu.
func (s *StateSystem) Offered() []upgrade.Upgrade {
	return s.offered
}

// Intro returns the card being shown.
func (s *StateSystem) Intro() defs.Intro {
	return s.intro
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.Phase
}
