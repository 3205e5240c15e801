// internal/ui/lives_indicator.go
package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-radial-arena/internal/config"
	"go-radial-arena/pkg/render"
)

const (
	LivesCols          = 5
	LivesCircleRadius  = 8.0
	LivesCircleSpacing = 4.0
)

// LivesIndicator draws one circle per life slot.
type LivesIndicator struct {
	X, Y float32
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// Draw fills the first lives slots and leaves the rest hollow.
func (i *LivesIndicator) Draw(screen *ebiten.Image, face font.Face, lives, maxLives int) {
	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)
	for j := 0; j < maxLives; j++ {
		row := j / LivesCols
		col := j % LivesCols
		cx := i.X + float32(col)*step + LivesCircleRadius
		cy := i.Y + float32(row)*step + LivesCircleRadius

		if j < lives {
			vector.DrawFilledCircle(screen, cx, cy, LivesCircleRadius, config.PlayerColor, true)
		} else {
			vector.DrawFilledCircle(screen, cx, cy, LivesCircleRadius, render.DarkenColor(config.BackgroundColor), true)
		}
		vector.StrokeCircle(screen, cx, cy, LivesCircleRadius, 1, config.TextLightColor, true)
	}

	label := strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
	cols := min(maxLives, LivesCols)
	DrawCentered(screen, label, face, int(i.X+float32(cols)*step/2), int(i.Y)-22, config.TextLightColor)
}
