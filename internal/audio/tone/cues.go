package tone

import (
	"time"

	"github.com/gopxl/beep"
)

// Recipe builds a fresh streamer for one playback.
type Recipe func() beep.Streamer

const ms = time.Millisecond

// Cues maps cue names to their recipes.
var Cues = map[string]Recipe{
	"shoot": func() beep.Streamer {
		return note(Square, 880, 440, 60*ms, 0.08)
	},
	"enemyShoot": func() beep.Streamer {
		return note(Saw, 300, 200, 90*ms, 0.06)
	},
	"explosion": func() beep.Streamer {
		return beep.Mix(
			note(Noise, 0, 0, 250*ms, 0.25),
			note(Sine, 120, 40, 250*ms, 0.2),
		)
	},
	"bigExplosion": func() beep.Streamer {
		return beep.Mix(
			note(Noise, 0, 0, 900*ms, 0.35),
			note(Sine, 90, 25, 900*ms, 0.35),
		)
	},
	"powerup": func() beep.Streamer {
		return beep.Seq(
			note(Triangle, 523, 523, 80*ms, 0.2),
			note(Triangle, 659, 659, 80*ms, 0.2),
			note(Triangle, 784, 1046, 140*ms, 0.2),
		)
	},
	"bomb": func() beep.Streamer {
		return beep.Mix(
			note(Noise, 0, 0, 1200*ms, 0.4),
			note(Saw, 200, 30, 1200*ms, 0.25),
		)
	},
	"damage": func() beep.Streamer {
		return note(Square, 220, 80, 300*ms, 0.2)
	},
	"bossWarning": func() beep.Streamer {
		siren := func() beep.Streamer { return note(Saw, 330, 660, 350*ms, 0.18) }
		return beep.Seq(siren(), siren(), siren())
	},
}

// Cue returns a streamer for name, or false when the cue is unknown.
func Cue(name string) (beep.Streamer, bool) {
	r, ok := Cues[name]
	if !ok {
		return nil, false
	}
	return r(), true
}
