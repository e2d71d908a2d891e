package audio

import (
	"fmt"
	"log"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"go-wave-shooter/internal/audio/synth"
	"go-wave-shooter/internal/event"
)

const (
	SampleRate = 44100
	maxVoices  = 16
)

// Player plays the simulation's sound cues through ebiten's audio context.
// Every cue is synthesized once at start-up.
type Player struct {
	ctx    *audio.Context
	bank   map[event.Cue][]byte
	voices []*audio.Player
	Muted  bool
}

// NewPlayer renders the cue bank at volume. ebiten allows one audio
// context per process, so there is at most one Player.
func NewPlayer(volume float64, muted bool) (*Player, error) {
	bank, err := synth.Bank(beep.SampleRate(SampleRate), volume)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize sound cues: %w", err)
	}
	return &Player{
		ctx:   audio.NewContext(SampleRate),
		bank:  bank,
		Muted: muted,
	}, nil
}

// OnEvent plays SoundRequested cues.
func (p *Player) OnEvent(e event.Event) {
	if p.Muted || e.Type != event.SoundRequested {
		return
	}
	cue, ok := e.Data.(event.Cue)
	if !ok {
		return
	}
	p.Play(cue)
}

// Play starts cue on a free voice. When every voice is busy the cue is
// dropped.
func (p *Player) Play(cue event.Cue) {
	pcm, ok := p.bank[cue]
	if !ok {
		log.Printf("Audio: no buffer for cue %q", cue)
		return
	}
	live := p.voices[:0]
	for _, v := range p.voices {
		if v.IsPlaying() {
			live = append(live, v)
		} else {
			v.Close()
		}
	}
	p.voices = live
	if len(p.voices) >= maxVoices {
		return
	}
	v := p.ctx.NewPlayerFromBytes(pcm)
	v.Play()
	p.voices = append(p.voices, v)
}
