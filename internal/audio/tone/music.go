package tone

import (
	"time"

	"github.com/gopxl/beep"
)

// Bar is one pass of a music loop: a bass line under an arpeggio.
type Bar struct {
	Step  time.Duration
	Bass  []float64 // Hz, 0 rests
	Lead  []float64
	Wave  Wave
	Level float64
}

// Tracks holds the looped bar for each music state.
var Tracks = map[string]Bar{
	"menu": {
		Step:  250 * ms,
		Bass:  []float64{110, 0, 110, 0, 98, 0, 98, 0},
		Lead:  []float64{440, 523, 659, 523, 392, 494, 587, 494},
		Wave:  Triangle,
		Level: 0.08,
	},
	"game": {
		Step:  150 * ms,
		Bass:  []float64{82, 82, 0, 82, 98, 98, 0, 110},
		Lead:  []float64{330, 0, 392, 0, 440, 0, 392, 330},
		Wave:  Square,
		Level: 0.06,
	},
	"boss": {
		Step:  120 * ms,
		Bass:  []float64{73, 73, 73, 0, 69, 69, 69, 0},
		Lead:  []float64{294, 311, 294, 0, 277, 294, 277, 0},
		Wave:  Saw,
		Level: 0.07,
	},
}

func (b Bar) voice(freqs []float64, wave Wave, level float64) beep.Streamer {
	steps := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		if f == 0 {
			steps = append(steps, beep.Silence(SampleRate.N(b.Step)))
			continue
		}
		steps = append(steps, note(wave, f, f, b.Step, level))
	}
	return beep.Seq(steps...)
}

// Streamer renders one pass of the bar.
func (b Bar) Streamer() beep.Streamer {
	return beep.Mix(
		b.voice(b.Bass, Sine, b.Level*1.5),
		b.voice(b.Lead, b.Wave, b.Level),
	)
}

// Length is the duration of one pass in samples.
func (b Bar) Length() int {
	n := len(b.Bass)
	if len(b.Lead) > n {
		n = len(b.Lead)
	}
	return n * SampleRate.N(b.Step)
}

// Music returns an endless loop for state, or false when it is unknown.
func Music(state string) (beep.Streamer, bool) {
	b, ok := Tracks[state]
	if !ok {
		return nil, false
	}
	return beep.Iterate(func() beep.Streamer { return b.Streamer() }), true
}
