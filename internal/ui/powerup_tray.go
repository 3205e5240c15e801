package ui

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-radial-arena/internal/config"
	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/system"
)

// PowerUpTray lists the active buffs with their remaining time.
type PowerUpTray struct {
	X, Y float32
}

func NewPowerUpTray(x, y float32) *PowerUpTray {
	return &PowerUpTray{X: x, Y: y}
}

func (t *PowerUpTray) Draw(screen *ebiten.Image, face font.Face, active []system.ActivePowerUp) {
	const slot = 34
	for j, p := range active {
		x := t.X + float32(j)*slot
		c := config.TextLightColor
		if def, ok := defs.PowerUpLibrary[p.Type]; ok {
			c = def.Color
		}
		vector.StrokeRect(screen, x, t.Y, slot-4, slot-4, 2, c, true)
		DrawCentered(screen, p.Icon, face, int(x+(slot-4)/2), int(t.Y)+4, c)

		label := "∞"
		if !math.IsInf(p.Remaining, 1) {
			label = fmt.Sprintf("%.0f", math.Ceil(p.Remaining))
		}
		DrawCentered(screen, label, face, int(x+(slot-4)/2), int(t.Y)+slot, config.TextDimColor)
	}
}
