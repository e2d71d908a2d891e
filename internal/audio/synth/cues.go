package synth

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"

	"go-wave-shooter/internal/event"
)

// CueSpec describes one synthesized sound cue.
type CueSpec struct {
	Wave             WaveType
	FreqFrom, FreqTo float64
	GainFrom, GainTo float64
	Duration         time.Duration
}

// Cues are the three sounds the simulation asks for.
var Cues = map[event.Cue]CueSpec{
	event.CueShoot:     {Wave: WaveTriangle, FreqFrom: 400, FreqTo: 100, GainFrom: 0.1, GainTo: 0.01, Duration: 100 * time.Millisecond},
	event.CueHit:       {Wave: WaveSquare, FreqFrom: 150, FreqTo: 50, GainFrom: 0.1, GainTo: 0.01, Duration: 100 * time.Millisecond},
	event.CueExplosion: {Wave: WaveSaw, FreqFrom: 100, FreqTo: 10, GainFrom: 0.2, GainTo: 0.01, Duration: 300 * time.Millisecond},
}

// Synthesize builds the streamer for cue at rate, scaled by volume.
func Synthesize(cue event.Cue, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	spec, ok := Cues[cue]
	if !ok {
		return nil, fmt.Errorf("unknown sound cue %q", cue)
	}
	s := NewSweep(spec.Wave, spec.FreqFrom, spec.FreqTo, spec.GainFrom, spec.GainTo, spec.Duration, rate)
	if cue == event.CueExplosion {
		// A low sine thump under the saw gives the explosion some body.
		thump := NewSweep(WaveSine, 60, 30, spec.GainFrom, spec.GainTo, spec.Duration, rate)
		s = beep.Mix(s, newVolume(thump, 0.5))
	}
	return newVolume(s, volume), nil
}

// Render drains s into 16-bit little-endian stereo PCM.
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				if v > 1 {
					v = 1
				} else if v < -1 {
					v = -1
				}
				x := int16(v * 32767)
				out = append(out, byte(x), byte(x>>8))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

// Bank renders every cue once.
func Bank(rate beep.SampleRate, volume float64) (map[event.Cue][]byte, error) {
	bank := make(map[event.Cue][]byte, len(Cues))
	for cue := range Cues {
		s, err := Synthesize(cue, rate, volume)
		if err != nil {
			return nil, err
		}
		bank[cue] = Render(s)
	}
	return bank, nil
}
