// internal/ui/bomb_indicator.go
package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-radial-arena/internal/config"
	"go-radial-arena/pkg/render"
)

// BombIndicator shows one pip per bomb charge and a cooldown ring that pulses
// briefly when the bomb becomes ready again.
type BombIndicator struct {
	X, Y      float32
	Radius    float32
	wasReady  bool
	readyTime float64
}

func NewBombIndicator(x, y, radius float32) *BombIndicator {
	return &BombIndicator{X: x, Y: y, Radius: radius, wasReady: true}
}

// Update advances the ready pulse.
func (i *BombIndicator) Update(deltaTime float64, cooldown float64) {
	ready := cooldown >= 1
	if ready && !i.wasReady {
		i.readyTime = 0
	}
	i.wasReady = ready
	i.readyTime += deltaTime
}

func (i *BombIndicator) Draw(screen *ebiten.Image, charges, maxCharges int, cooldown float64) {
	scale := 1.0 + 0.3*math.Exp(-i.readyTime*8)
	r := i.Radius * float32(scale)

	c := config.ComboColor
	if charges == 0 || cooldown < 1 {
		c = render.DarkenColor(c)
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, r, c, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, config.TextLightColor, true)

	if cooldown < 1 {
		var path vector.Path
		start := float32(-math.Pi / 2)
		path.Arc(i.X, i.Y, r+4, start, start+float32(2*math.Pi*cooldown), vector.Clockwise)
		strokePath(screen, &path, 3, config.TextLightColor)
	}

	for j := 0; j < maxCharges; j++ {
		px := i.X - float32(maxCharges-1)*7 + float32(j)*14
		py := i.Y + r + 12
		if j < charges {
			vector.DrawFilledCircle(screen, px, py, 4, config.ComboColor, true)
		} else {
			vector.StrokeCircle(screen, px, py, 4, 1, config.TextDimColor, true)
		}
	}
}
