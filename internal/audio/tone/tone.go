// Package tone synthesizes the game's sound effects and music loops as beep
// streamers. Nothing here touches the audio device.
package tone

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const SampleRate = beep.SampleRate(44100)

type Wave int

const (
	Sine Wave = iota
	Square
	Saw
	Triangle
	Noise
)

// oscillator sweeps linearly from freq to endFreq over its duration.
type oscillator struct {
	wave     Wave
	freq     float64
	endFreq  float64
	phase    float64
	position int
	duration int
	seed     uint32
}

// NewOscillator returns a finite streamer of the given wave. endFreq equal to
// freq gives a steady tone.
func NewOscillator(wave Wave, freq, endFreq float64, d time.Duration) beep.Streamer {
	return &oscillator{
		wave:     wave,
		freq:     freq,
		endFreq:  endFreq,
		duration: SampleRate.N(d),
		seed:     0x9e3779b9,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		var v float64
		switch o.wave {
		case Sine:
			v = math.Sin(2 * math.Pi * o.phase)
		case Square:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case Saw:
			v = 2 * (o.phase - 0.5)
		case Triangle:
			v = 4*math.Abs(o.phase-0.5) - 1
		case Noise:
			o.seed = o.seed*1664525 + 1013904223
			v = float64(o.seed)/float64(math.MaxUint32)*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t := float64(o.position) / float64(o.duration)
		f := o.freq + (o.endFreq-o.freq)*t
		o.phase += f / float64(SampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a streamer exponentially to silence over its length.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func NewDecay(s beep.Streamer, d time.Duration) beep.Streamer {
	return &decay{streamer: s, total: SampleRate.N(d)}
}

func (e *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		// -60 dB at the end of the note
		vol := math.Pow(0.001, float64(e.position)/float64(e.total))
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *decay) Err() error { return e.streamer.Err() }

// Gain scales a streamer linearly; 0 silences it.
func Gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(wave Wave, from, to float64, d time.Duration, vol float64) beep.Streamer {
	return Gain(NewDecay(NewOscillator(wave, from, to, d), d), vol)
}
