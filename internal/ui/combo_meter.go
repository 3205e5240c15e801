package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-radial-arena/internal/config"
)

const (
	comboBarWidth  = 140
	comboBarHeight = 8
	borderWidth    = 1
)

var comboBarFill = color.RGBA{255, 200, 0, 200}

// ComboMeter shows the current streak, its multiplier and the time left
// before the streak decays.
type ComboMeter struct {
	X, Y float32
}

func NewComboMeter(x, y float32) *ComboMeter {
	return &ComboMeter{X: x, Y: y}
}

func (m *ComboMeter) Draw(screen *ebiten.Image, face font.Face, combo int, multiplier, progress float64) {
	if combo <= 0 {
		return
	}
	label := fmt.Sprintf("x%d  COMBO %.1fx", combo, multiplier)
	DrawCentered(screen, label, face, int(m.X+comboBarWidth/2), int(m.Y), config.ComboColor)

	y := m.Y + 22
	vector.StrokeRect(screen, m.X, y, comboBarWidth, comboBarHeight, borderWidth, config.TextLightColor, true)
	fill := float32(float64(comboBarWidth-borderWidth*2) * clamp01(progress))
	if fill > 0 {
		vector.DrawFilledRect(screen, m.X+borderWidth, y+borderWidth, fill, comboBarHeight-borderWidth*2, comboBarFill, true)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
