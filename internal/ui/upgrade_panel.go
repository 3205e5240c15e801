// internal/ui/upgrade_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-radial-arena/internal/config"
	"go-radial-arena/internal/defs"
)

const (
	panelHeight    = 220
	panelMargin    = 40
	animationSpeed = 24.0
	cardGap        = 20
)

// UpgradePanel slides up from the bottom while upgrade cards are on offer.
// Cards can be picked with the number keys or a click.
type UpgradePanel struct {
	IsVisible bool
	titleFace font.Face
	bodyFace  font.Face
	currentY  float64
	targetY   float64
	cards     []image.Rectangle
}

func NewUpgradePanel(titleFace, bodyFace font.Face) *UpgradePanel {
	return &UpgradePanel{
		titleFace: titleFace,
		bodyFace:  bodyFace,
		currentY:  config.ScreenHeight,
		targetY:   config.ScreenHeight,
	}
}

// Update shows the panel while offered is non-empty and animates it.
func (p *UpgradePanel) Update(offered int) {
	if offered > 0 {
		p.IsVisible = true
		p.targetY = config.ScreenHeight - panelHeight - panelMargin
	} else {
		p.targetY = config.ScreenHeight
	}

	if diff := p.targetY - p.currentY; diff != 0 {
		switch {
		case diff > -animationSpeed && diff < animationSpeed:
			p.currentY = p.targetY
		case diff > 0:
			p.currentY += animationSpeed
		default:
			p.currentY -= animationSpeed
		}
	}
	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
	}
}

// CardAt returns the 1-based card under the cursor, or 0.
func (p *UpgradePanel) CardAt(x, y int) int {
	pt := image.Pt(x, y)
	for i, r := range p.cards {
		if pt.In(r) {
			return i + 1
		}
	}
	return 0
}

func (p *UpgradePanel) Draw(screen *ebiten.Image, offered []defs.UpgradeDefinition, levels map[defs.UpgradeID]int) {
	if !p.IsVisible || len(offered) == 0 {
		p.cards = p.cards[:0]
		return
	}

	top := int(p.currentY)
	DrawCentered(screen, "WAVE CLEAR - CHOOSE AN UPGRADE", p.titleFace, config.ScreenWidth/2, top, config.TextLightColor)

	n := len(offered)
	cardW := (config.ScreenWidth - 2*panelMargin - (n-1)*cardGap) / n
	cardH := panelHeight - 40
	p.cards = p.cards[:0]
	for i, u := range offered {
		x := panelMargin + i*(cardW+cardGap)
		r := image.Rect(x, top+40, x+cardW, top+40+cardH)
		p.cards = append(p.cards, r)
		p.drawCard(screen, r, i+1, u, levels[u.ID])
	}
}

func (p *UpgradePanel) drawCard(screen *ebiten.Image, r image.Rectangle, key int, u defs.UpgradeDefinition, level int) {
	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bgColor, true)
	cardBorder := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, cardBorder, true)

	cx := r.Min.X + r.Dx()/2
	DrawCentered(screen, fmt.Sprintf("[%d]", key), p.bodyFace, cx, r.Min.Y+12, config.TextDimColor)
	DrawCentered(screen, u.Name, p.titleFace, cx, r.Min.Y+44, config.ComboColor)
	DrawCentered(screen, u.Description, p.bodyFace, cx, r.Min.Y+90, config.TextLightColor)
	if level > 0 {
		DrawCentered(screen, fmt.Sprintf("Level %d", level), p.bodyFace, cx, r.Max.Y-30, config.TextDimColor)
	}
}
