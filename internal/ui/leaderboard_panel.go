package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-radial-arena/internal/config"
	"go-radial-arena/internal/leaderboard"
)

const leaderboardLineHeight = 24

// LeaderboardPanel lists the top scores of a mode and the player's rank.
type LeaderboardPanel struct {
	X, Y, Width int
	titleFace   font.Face
	bodyFace    font.Face
}

func NewLeaderboardPanel(x, y, width int, titleFace, bodyFace font.Face) *LeaderboardPanel {
	return &LeaderboardPanel{X: x, Y: y, Width: width, titleFace: titleFace, bodyFace: bodyFace}
}

// Draw renders v; highlight marks the row holding the player's own run.
func (p *LeaderboardPanel) Draw(screen *ebiten.Image, v leaderboard.View, highlight string) {
	if !v.Available {
		DrawCentered(screen, "Leaderboard offline", p.bodyFace, p.X+p.Width/2, p.Y, config.TextDimColor)
		return
	}

	rows := max(len(v.Top), 1)
	h := 60 + rows*leaderboardLineHeight + 30
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(h), color.RGBA{R: 25, G: 35, B: 45, A: 220}, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(h), 2, color.RGBA{R: 70, G: 130, B: 180, A: 255}, true)

	title := "TOP SCORES"
	if v.Mode != "" {
		title = fmt.Sprintf("TOP SCORES - %s", v.Mode)
	}
	DrawCentered(screen, title, p.titleFace, p.X+p.Width/2, p.Y+12, config.TextLightColor)

	y := p.Y + 56
	switch {
	case len(v.Top) == 0 && v.Pending:
		DrawCentered(screen, "Loading...", p.bodyFace, p.X+p.Width/2, y, config.TextDimColor)
	case len(v.Top) == 0:
		DrawCentered(screen, "No scores yet", p.bodyFace, p.X+p.Width/2, y, config.TextDimColor)
	}
	for i, e := range v.Top {
		c := config.TextLightColor
		if highlight != "" && e.RunID == highlight {
			c = config.ComboColor
		}
		drawRow(screen, p.bodyFace, p.X+16, p.X+p.Width-16, y, fmt.Sprintf("%2d. %s", i+1, e.PlayerName), fmt.Sprintf("%d", e.Score), c)
		y += leaderboardLineHeight
	}

	footer := ""
	switch {
	case v.Rank > 0:
		footer = fmt.Sprintf("Your rank: #%d", v.Rank)
	case v.LastError != "":
		footer = "Could not reach the leaderboard"
	case v.Pending:
		footer = "Submitting..."
	}
	if footer != "" {
		DrawCentered(screen, footer, p.bodyFace, p.X+p.Width/2, y+6, config.ComboColor)
	}
}
