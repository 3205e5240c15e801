package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-radial-arena/internal/config"
)

// WaveIndicator shows the wave number in roman numerals with the kill quota
// or the inter-wave countdown underneath.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	BossColor        color.RGBA
	OutlineColor     color.Color
	OutlineThickness int
}

func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.GridColor,
		BossColor:        config.BossBarColor,
		OutlineColor:     color.White,
		OutlineThickness: 1,
	}
}

// toRoman converts a positive integer to roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, titleFace, face font.Face, wave, kills, required int, bossWave, inTransition bool, transition float64) {
	if wave <= 0 {
		return
	}
	textColor := i.Color
	textColor.A = 255
	if bossWave {
		textColor = i.BossColor
	}
	drawOutlined(screen, toRoman(wave), titleFace, i.X, i.Y, i.OutlineThickness, textColor, i.OutlineColor)

	const barW, barH = 120, 6
	x := float32(i.X - barW/2)
	y := float32(i.Y + 40)
	switch {
	case inTransition:
		vector.StrokeRect(screen, x, y, barW, barH, 1, color.White, true)
		vector.DrawFilledRect(screen, x+1, y+1, float32(barW-2)*float32(transition), barH-2, textColor, true)
	case bossWave:
		DrawCentered(screen, "BOSS", face, i.X, int(y), textColor)
	default:
		DrawCentered(screen, fmt.Sprintf("%d / %d", kills, required), face, i.X, int(y), config.TextLightColor)
	}
}
