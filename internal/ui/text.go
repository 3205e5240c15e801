// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCentered draws s with its horizontal center at x and its top at y.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, x-b.Dx()/2, y-b.Min.Y, clr)
}

// drawOutlined draws centered text with a square outline of the given thickness.
func drawOutlined(screen *ebiten.Image, s string, face font.Face, x, y, thickness int, clr, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawCentered(screen, s, face, x+dx, y+dy, outline)
		}
	}
	DrawCentered(screen, s, face, x, y, clr)
}

// drawRow draws left aligned at left and right aligned at right on one baseline.
func drawRow(screen *ebiten.Image, face font.Face, left, right, y int, l, r string, clr color.Color) {
	lb := text.BoundString(face, l)
	text.Draw(screen, l, face, left, y-lb.Min.Y, clr)
	rb := text.BoundString(face, r)
	text.Draw(screen, r, face, right-rb.Dx(), y-lb.Min.Y, clr)
}
