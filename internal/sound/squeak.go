// Package sound plays the squeak that goes with every squeeze.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// BaseFrequency is the squeak pitch at energy 0.
const BaseFrequency = 520.0

// SqueakFrequency raises the base pitch by a semitone per energy level.
func SqueakFrequency(energy int) float64 {
	return BaseFrequency * semitones(energy)
}

func semitones(n int) float64 {
	return math.Pow(2, float64(n)/12)
}

// squeak is a sine that glides up by half an octave while decaying.
type squeak struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewSqueak creates a synthesized squeak starting at freq.
func NewSqueak(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &squeak{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (s *squeak) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		t := float64(s.position) / float64(s.duration)

		// short attack, then exponential decay
		env := math.Min(t*20, 1) * math.Exp(-4*t)
		val := 0.6 * env * math.Sin(2*math.Pi*s.phase)

		samples[i][0] = val
		samples[i][1] = val

		freq := s.freq * (1 + 0.5*t)
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *squeak) Err() error { return nil }
