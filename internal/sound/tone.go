// Package sound plays short synthesized cues for game events.
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Wave selects the oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// fade scales its source linearly down to silence over length samples, so
// cues end without clicks.
type fade struct {
	streamer beep.Streamer
	position int
	length   int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 0.0
		if f.position < f.length {
			vol = 1 - float64(f.position)/float64(f.length)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

func oscillator(freq float64, wave Wave, rate beep.SampleRate) (beep.Streamer, error) {
	if wave == WaveSquare {
		return generators.SquareTone(rate, freq)
	}
	return generators.SineTone(rate, freq)
}

// volume applies a linear gain; zero or less is silence.
func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// NewTone creates a faded note of the given frequency and duration. A
// frequency the rate cannot represent yields silence of the same length.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate, gain float64) beep.Streamer {
	n := rate.N(d)
	osc, err := oscillator(freq, wave, rate)
	if err != nil {
		return beep.Silence(n)
	}
	return volume(&fade{streamer: beep.Take(n, osc), length: n}, gain)
}

// melody plays notes back to back.
func melody(rate beep.SampleRate, wave Wave, d time.Duration, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, NewTone(f, d, wave, rate, 0.3))
	}
	return beep.Seq(notes...)
}
