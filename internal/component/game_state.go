package component

import "go-wave-shooter/internal/defs"

// Phase is the wave director state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseIntro
	PhaseUpgrade
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseIntro:
		return "intro"
	case PhaseUpgrade:
		return "upgrade"
	case PhaseGameOver:
		return "gameover"
	}
	return "unknown"
}

// Wave is the director's bookkeeping for the current wave.
type Wave struct {
	Number         int
	EnemiesToSpawn int
	SpawnTimer     int
	Score          int
	FinalWave      int

	IntroKind  defs.EnemyKind
	IntroShown map[defs.EnemyKind]bool
}
