package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-radial-arena/internal/config"
)

// DrawBanner shows the wave and boss announcements in the middle of the screen.
func DrawBanner(screen *ebiten.Image, face font.Face, msg string) {
	if msg == "" {
		return
	}
	drawOutlined(screen, msg, face, config.ScreenWidth/2, config.ScreenHeight/3, 2, config.TextLightColor, config.BackgroundColor)
}
