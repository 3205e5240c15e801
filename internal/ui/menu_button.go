// internal/ui/menu_button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-radial-arena/internal/config"
)

// MenuButton is a plain labelled rectangle used by the menu.
type MenuButton struct {
	Rect     image.Rectangle
	Text     string
	Selected bool
	bgColor  color.RGBA
	fgColor  color.RGBA
	face     font.Face
}

func NewMenuButton(rect image.Rectangle, label string, face font.Face) *MenuButton {
	return &MenuButton{
		Rect:    rect,
		Text:    label,
		bgColor: color.RGBA{R: 25, G: 35, B: 45, A: 255},
		fgColor: config.TextLightColor,
		face:    face,
	}
}

func (b *MenuButton) Draw(screen *ebiten.Image) {
	border := config.TextDimColor
	if b.Selected {
		border = config.GridColor
		border.A = 255
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, b.bgColor, true)
	vector.StrokeRect(screen, x, y, w, h, 2, border, true)

	bounds := b.face.Metrics().Height.Ceil()
	DrawCentered(screen, b.Text, b.face, b.Rect.Min.X+b.Rect.Dx()/2, b.Rect.Min.Y+(b.Rect.Dy()-bounds)/2, b.fgColor)
}

func (b *MenuButton) IsClicked(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}
