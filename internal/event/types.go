// internal/event/types.go
package event

import (
	"image/color"

	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/types"
)

const (
	SoundRequested EventType = "SoundRequested" // Data: Cue
	ParticleBurst  EventType = "ParticleBurst"  // Data: Burst
	CameraShake    EventType = "CameraShake"    // Data: float64 magnitude
	EnemyFlashed   EventType = "EnemyFlashed"   // Data: Flash
	EnemyDestroyed EventType = "EnemyDestroyed" // Data: Destroyed
	WaveStarted    EventType = "WaveStarted"    // Data: int wave number
	WaveEnded      EventType = "WaveEnded"      // Data: int wave number
	PlayerDied     EventType = "PlayerDied"     // Data: int waves survived
)

// Cue is one of the audio collaborator's sounds.
type Cue string

const (
	CueShoot     Cue = "shoot"
	CueHit       Cue = "hit"
	CueExplosion Cue = "explosion"
)

// BurstStyle selects the particle shape of a burst.
type BurstStyle int

const (
	BurstExplosion BurstStyle = iota
	BurstHit
	BurstHeal
	BurstHealWave
	BurstTrail
)

// Burst asks the particle layer for a cosmetic burst.
type Burst struct {
	X, Y   float64
	Color  color.RGBA
	Count  int
	Spread float64
	Style  BurstStyle
}

// Flash asks the effect layer to tint an entity for some frames.
type Flash struct {
	ID     types.EntityID
	Color  color.RGBA
	Frames int
}

// Destroyed reports an enemy death.
type Destroyed struct {
	ID    types.EntityID
	Kind  defs.EnemyKind
	Score int
	X, Y  float64
}
