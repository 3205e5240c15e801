// internal/component/powerup.go
package component

import (
	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/utils"
)

// PowerUp is a field pickup drifting toward the core.
type PowerUp struct {
	Type     defs.PowerUpType
	Angle    float64
	Radius   float64
	OrbitDir float64
	Spin     float64
}

func (p *PowerUp) Position() (x, y float64) {
	return utils.PolarToCartesian(p.Radius, p.Angle)
}
