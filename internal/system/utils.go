// internal/system/utils.go
package system

import (
	"math"

	"go-radial-arena/internal/event"
)

// playCue emits a fire-and-forget sound cue.
func playCue(d *event.Dispatcher, cue event.Cue) {
	if d == nil {
		return
	}
	d.Dispatch(event.Event{Type: event.SoundCue, Data: cue})
}

// circlesOverlap is the plain circle-circle test used by every collision check.
func circlesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	dx, dy := x2-x1, y2-y1
	rr := r1 + r2
	return dx*dx+dy*dy < rr*rr
}

// segmentDistance returns the distance from (px, py) to the segment a-b.
func segmentDistance(px, py, ax, ay, bx, by float64) float64 {
	abx, aby := bx-ax, by-ay
	l2 := abx*abx + aby*aby
	if l2 == 0 {
		return math.Hypot(px-ax, py-ay)
	}
	t := ((px-ax)*abx + (py-ay)*aby) / l2
	t = math.Max(0, math.Min(1, t))
	cx, cy := ax+abx*t, ay+aby*t
	return math.Hypot(px-cx, py-cy)
}

// steer rotates heading toward target by at most maxTurn radians.
func steer(heading, target, maxTurn float64) float64 {
	d := math.Remainder(target-heading, 2*math.Pi)
	if d > maxTurn {
		d = maxTurn
	} else if d < -maxTurn {
		d = -maxTurn
	}
	return heading + d
}
