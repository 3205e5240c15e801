// internal/component/obstacle.go
package component

import "go-radial-arena/internal/utils"

// Obstacle is a drifting asteroid; HP is ceil(size*2).
type Obstacle struct {
	Angle     float64
	Radius    float64
	OrbitDir  float64
	Size      float64
	HP        float64
	Spin      float64
	SpinSpeed float64
	Flashing  bool
}

func (o *Obstacle) Position() (x, y float64) {
	return utils.PolarToCartesian(o.Radius, o.Angle)
}
