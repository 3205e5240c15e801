package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-radial-arena/internal/app"
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/defs"
)

// Faces are the font faces the overlay uses.
type Faces struct {
	Title  font.Face
	Body   font.Face
	Banner font.Face
}

// HUD composes the in-game overlay widgets.
type HUD struct {
	faces   Faces
	wave    *WaveIndicator
	lives   *LivesIndicator
	combo   *ComboMeter
	boss    *BossBar
	bomb    *BombIndicator
	powerUp *PowerUpTray
	Pause   *PauseButton
	Upgrade *UpgradePanel
}

func NewHUD(faces Faces) *HUD {
	return &HUD{
		faces:   faces,
		wave:    NewWaveIndicator(config.ScreenWidth/2, 70),
		lives:   NewLivesIndicator(24, 48),
		combo:   NewComboMeter(config.ScreenWidth-190, 110),
		boss:    NewBossBar(config.ScreenWidth/2-250, 16, 500, 14),
		bomb:    NewBombIndicator(48, config.ScreenHeight-70, 18),
		powerUp: NewPowerUpTray(24, 120),
		Pause:   NewPauseButton(config.ScreenWidth-36, 36, 12, config.TextLightColor, config.PlayerColor),
		Upgrade: NewUpgradePanel(faces.Title, faces.Body),
	}
}

func (h *HUD) Update(deltaTime float64, s app.HUDSnapshot) {
	h.bomb.Update(deltaTime, s.BombCooldown)
	h.Upgrade.Update(len(s.PendingUpgrades))
}

func (h *HUD) Draw(screen *ebiten.Image, s app.HUDSnapshot, levels map[defs.UpgradeID]int) {
	text.Draw(screen, fmt.Sprintf("SCORE %d", s.Score), h.faces.Title, config.ScreenWidth-220, 60, config.TextLightColor)
	h.lives.Draw(screen, h.faces.Body, s.Lives, s.MaxLives)
	h.powerUp.Draw(screen, h.faces.Body, s.PowerUps)
	h.combo.Draw(screen, h.faces.Body, s.Combo, s.ComboMultiplier, s.ComboProgress)
	h.bomb.Draw(screen, s.BombCharges, s.BombMaxCharges, s.BombCooldown)
	text.Draw(screen, s.Weapon, h.faces.Body, 90, config.ScreenHeight-64, config.TextDimColor)

	if s.BossActive {
		h.boss.Draw(screen, h.faces.Body, s.BossHP, s.BossPhase)
	} else {
		h.wave.Draw(screen, h.faces.Title, h.faces.Body, s.Wave, s.Kills, s.RequiredKills, s.BossWave, s.InTransition, s.Transition)
	}
	if s.Timed {
		mins := int(s.TimeRemaining) / 60
		secs := int(s.TimeRemaining) % 60
		c := config.TextLightColor
		if s.TimeRemaining < 30 {
			c = config.BossBarColor
		}
		DrawCentered(screen, fmt.Sprintf("%d:%02d", mins, secs), h.faces.Title, config.ScreenWidth/2, config.ScreenHeight-60, c)
	}

	DrawBanner(screen, h.faces.Banner, s.Banner)
	h.Pause.Draw(screen)
	h.Upgrade.Draw(screen, s.PendingUpgrades, levels)
}
