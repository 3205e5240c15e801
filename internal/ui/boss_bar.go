package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-radial-arena/internal/config"
	"go-radial-arena/pkg/render"
)

// BossBar is the health bar across the top of the screen, tinted by phase.
type BossBar struct {
	X, Y, Width, Height float32
}

func NewBossBar(x, y, width, height float32) *BossBar {
	return &BossBar{X: x, Y: y, Width: width, Height: height}
}

func (b *BossBar) Draw(screen *ebiten.Image, face font.Face, hpFraction float64, phase int) {
	c := config.BossBarColor
	if phase >= 1 && phase <= len(config.BossPhaseColors) {
		c = config.BossPhaseColors[phase-1]
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, render.DarkenColor(render.DarkenColor(c)), true)
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width*float32(clamp01(hpFraction)), b.Height, c, true)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 2, config.TextLightColor, true)

	// phase boundaries at 66% and 33%
	for _, f := range []float32{0.66, 0.33} {
		x := b.X + b.Width*f
		vector.StrokeLine(screen, x, b.Y, x, b.Y+b.Height, 1, config.TextLightColor, true)
	}
	DrawCentered(screen, fmt.Sprintf("STAGE BOSS  PHASE %d", phase), face, int(b.X+b.Width/2), int(b.Y+b.Height)+4, config.TextLightColor)
}
