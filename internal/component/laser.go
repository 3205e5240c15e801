// internal/component/laser.go
package component

// LaserState is the beam hazard lifecycle.
type LaserState int

const (
	LaserTelegraph LaserState = iota
	LaserFiring
	LaserDone
)

// Laser is a beam from a source point toward and past the arena center.
// Angle points from the center to the source; the beam travels the opposite way.
type Laser struct {
	SourceX, SourceY  float64
	Angle             float64
	Length            float64
	Width             float64
	State             LaserState
	Timer             float64
	TelegraphDuration float64
	FireDuration      float64
}
