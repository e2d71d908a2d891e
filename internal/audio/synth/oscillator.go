package synth

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveTriangle WaveType = iota
	WaveSquare
	WaveSaw
	WaveSine
)

// sweep is an oscillator whose frequency and gain both glide exponentially
// from their start to their end value over its duration.
type sweep struct {
	wave             WaveType
	freqFrom, freqTo float64
	gainFrom, gainTo float64
	phase            float64
	position         int
	total            int
	rate             beep.SampleRate
}

// NewSweep returns a streamer of exactly rate.N(d) samples.
func NewSweep(wave WaveType, freqFrom, freqTo, gainFrom, gainTo float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		wave:     wave,
		freqFrom: freqFrom,
		freqTo:   freqTo,
		gainFrom: gainFrom,
		gainTo:   gainTo,
		total:    rate.N(d),
		rate:     rate,
	}
}

// expRamp interpolates exponentially; both ends must be positive.
func expRamp(from, to, t float64) float64 {
	if from <= 0 || to <= 0 {
		return from + (to-from)*t
	}
	return from * math.Pow(to/from, t)
}

func shape(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	default:
		return 1 - 4*math.Abs(phase-0.5)
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.position >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.position >= s.total {
			return i, true
		}
		t := float64(s.position) / float64(s.total)
		val := shape(s.wave, s.phase) * expRamp(s.gainFrom, s.gainTo, t)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += expRamp(s.freqFrom, s.freqTo, t) / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// newVolume scales s by a linear factor; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
