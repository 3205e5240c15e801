// internal/component/visual.go
package component

import "image/color"

// Particle is a cosmetic spark or debris shard.
type Particle struct {
	X, Y        float64
	VX, VY      float64
	Life        float64
	MaxLife     float64
	Size        float64
	Color       color.RGBA
	Debris      bool
	Rotation    float64
	RotationVel float64
}

// Opacity fades linearly with remaining life.
func (p *Particle) Opacity() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return p.Life / p.MaxLife
}

// Camera holds screen shake state.
type Camera struct {
	Shake float64 // current intensity, decays to 0
}

// Banner is a centred message shown for a while (wave cleared, boss warning).
type Banner struct {
	Text    string
	Visible bool
}
