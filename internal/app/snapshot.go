// internal/app/snapshot.go
package app

import (
	"image/color"
	"math"

	"go-radial-arena/internal/component"
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/system"
)

// HUDSnapshot is everything the overlay draws, copied out of the session.
type HUDSnapshot struct {
	Mode     config.GameMode
	Score    int
	Lives    int
	MaxLives int

	Wave          int
	Kills         int
	RequiredKills int
	InTransition  bool
	Transition    float64 // 0..1 progress of the inter-wave pause
	BossWave      bool

	Combo           int
	MaxCombo        int
	ComboMultiplier float64
	ComboProgress   float64

	PowerUps []system.ActivePowerUp

	BossActive bool
	BossHP     float64 // fraction
	BossPhase  int

	BombCharges    int
	BombMaxCharges int
	BombCooldown   float64 // 0..1, 1 when ready

	TimeRemaining float64 // TIME_ATTACK only
	Timed         bool
	Weapon        string
	Banner        string

	PendingUpgrades []defs.UpgradeDefinition
	Dying           bool
	GameOver        bool
}

// HUD copies the overlay state of the current tick.
func (g *Game) HUD() HUDSnapshot {
	s := g.ECS.Session
	h := HUDSnapshot{
		Mode:            s.Mode,
		Score:           s.Score,
		Lives:           s.Lives,
		MaxLives:        s.MaxLives,
		Wave:            g.Wave.CurrentWave(),
		Kills:           g.Wave.Kills(),
		RequiredKills:   g.Wave.RequiredKills(),
		InTransition:    g.Wave.InTransition(),
		Transition:      g.Wave.TransitionProgress(),
		BossWave:        g.Wave.IsBossWaveActive(),
		Combo:           g.Combo.Combo(),
		MaxCombo:        g.Combo.MaxCombo(),
		ComboMultiplier: g.Combo.Multiplier(),
		ComboProgress:   g.Combo.Progress(),
		PowerUps:        g.PowerUps.Active(),
		BombCharges:     g.Ability.Charges(),
		BombMaxCharges:  g.Ability.MaxCharges(),
		BombCooldown:    g.Ability.CooldownProgress(),
		TimeRemaining:   s.TimeRemaining,
		Timed:           g.Rules.Countdown > 0,
		Weapon:          g.PlayerSystem.Weapon().Name,
		PendingUpgrades: g.pendingUpgrades,
		Dying:           g.dying,
		GameOver:        g.gameOver,
	}
	if g.ECS.Banner.Visible {
		h.Banner = g.ECS.Banner.Text
	}
	if g.ECS.Boss != nil {
		h.BossActive = true
		h.BossHP = g.BossSystem.HPFraction()
		h.BossPhase = g.BossSystem.Phase()
	}
	return h
}

// SpriteKind selects how the renderer draws a sprite.
type SpriteKind string

const (
	SpritePlayer      SpriteKind = "player"
	SpritePlayerShot  SpriteKind = "player_bullet"
	SpriteEnemyShot   SpriteKind = "enemy_bullet"
	SpriteEnemy       SpriteKind = "enemy"
	SpriteBoss        SpriteKind = "boss"
	SpriteObstacle    SpriteKind = "obstacle"
	SpritePickup      SpriteKind = "pickup"
	SpriteParticle    SpriteKind = "particle"
	SpriteDebris      SpriteKind = "debris"
	SpriteShieldField SpriteKind = "shield_field" // player shield power-up
)

// Sprite is one drawable in world units.
type Sprite struct {
	Kind     SpriteKind
	Variant  string // enemy type or power-up type
	X, Y     float64
	Rotation float64
	Scale    float64
	Opacity  float64
	Color    color.RGBA

	Shielded    bool
	ShieldAngle float64
}

// LaserBeam is a telegraphed or firing beam segment.
type LaserBeam struct {
	AX, AY, BX, BY float64
	Width          float64
	Firing         bool
}

// RenderFrame is the complete draw list of a tick.
type RenderFrame struct {
	Sprites   []Sprite
	Lasers    []LaserBeam
	Shake     float64
	MinRadius float64
	MaxRadius float64
}

// Frame builds the draw list in deterministic order: particles at the back,
// then pickups, obstacles, enemies, boss, bullets and the player on top.
func (g *Game) Frame() RenderFrame {
	ecs := g.ECS
	f := RenderFrame{
		Sprites:   make([]Sprite, 0, len(ecs.Particles)+len(ecs.Enemies)+len(ecs.Bullets)+8),
		Shake:     ecs.Camera.Shake,
		MinRadius: ecs.Player.MinRadius,
		MaxRadius: ecs.Player.MaxRadius,
	}

	for _, id := range ecs.ParticleIDs() {
		p := ecs.Particles[id]
		kind := SpriteParticle
		if p.Debris {
			kind = SpriteDebris
		}
		f.Sprites = append(f.Sprites, Sprite{
			Kind: kind, X: p.X, Y: p.Y, Rotation: p.Rotation,
			Scale: p.Size, Opacity: p.Opacity(), Color: p.Color,
		})
	}

	for _, id := range ecs.PowerUpIDs() {
		p := ecs.PowerUps[id]
		x, y := p.Position()
		f.Sprites = append(f.Sprites, Sprite{
			Kind: SpritePickup, Variant: string(p.Type), X: x, Y: y, Rotation: p.Spin,
			Scale: 1, Opacity: 1, Color: defs.PowerUpLibrary[p.Type].Color,
		})
	}

	for _, id := range ecs.ObstacleIDs() {
		o := ecs.Obstacles[id]
		x, y := o.Position()
		c := config.ObstacleColor
		if o.Flashing {
			c = config.FlashColor
		}
		f.Sprites = append(f.Sprites, Sprite{
			Kind: SpriteObstacle, X: x, Y: y, Rotation: o.Spin,
			Scale: o.Size, Opacity: 1, Color: c,
		})
	}

	for _, id := range ecs.EnemyIDs() {
		f.Sprites = append(f.Sprites, enemySprite(ecs.Enemies[id]))
	}

	if b := ecs.Boss; b != nil {
		x, y := b.Position()
		c := b.Tint
		if b.FlashTimer > 0 {
			c = config.FlashColor
		}
		f.Sprites = append(f.Sprites, Sprite{
			Kind: SpriteBoss, X: x, Y: y, Rotation: b.Spin,
			Scale: config.StageBossHitRadius, Opacity: 1, Color: c,
		})
	}

	for _, id := range ecs.LaserIDs() {
		l := ecs.Lasers[id]
		if l.State == component.LaserDone {
			continue
		}
		ax, ay, bx, by := system.Segment(l)
		f.Lasers = append(f.Lasers, LaserBeam{
			AX: ax, AY: ay, BX: bx, BY: by,
			Width:  l.Width,
			Firing: l.State == component.LaserFiring,
		})
	}

	for _, id := range ecs.BulletIDs() {
		b := ecs.Bullets[id]
		x, y := b.Position()
		kind := SpritePlayerShot
		if b.Owner == component.OwnerEnemy {
			kind = SpriteEnemyShot
		}
		f.Sprites = append(f.Sprites, Sprite{
			Kind: kind, X: x, Y: y, Rotation: b.Heading(),
			Scale: b.Size, Opacity: 1, Color: b.Color,
		})
	}

	f.Sprites = append(f.Sprites, g.playerSprites()...)
	return f
}

func enemySprite(e *component.Enemy) Sprite {
	x, y := e.Position()
	c := e.Color
	if e.FlashTimer > 0 {
		c = config.FlashColor
	}
	s := Sprite{
		Kind: SpriteEnemy, Variant: string(e.Type), X: x, Y: y,
		Rotation: e.Angle + math.Pi, Scale: e.Scale, Opacity: 1, Color: c,
	}
	if e.Shield != nil {
		s.Shielded = true
		s.ShieldAngle = e.Shield.ShieldAngle
	}
	return s
}

// playerSprites hides the ship once dying and blinks it while invulnerable.
func (g *Game) playerSprites() []Sprite {
	if g.dying || g.gameOver {
		return nil
	}
	p := g.ECS.Player
	x, y := p.Position()
	opacity := 1.0
	if p.Invulnerable && math.Mod(p.InvulnTimer, 0.2) < 0.1 {
		opacity = 0.3
	}
	out := []Sprite{{
		Kind: SpritePlayer, X: x, Y: y, Rotation: p.Angle + math.Pi,
		Scale: config.PlayerHitRadius, Opacity: opacity, Color: config.PlayerColor,
	}}
	if g.PowerUps.Has(defs.PowerUpShield) {
		out = append(out, Sprite{
			Kind: SpriteShieldField, X: x, Y: y, Scale: config.PlayerHitRadius * 2,
			Opacity: 0.5, Color: config.ShieldArcColor,
		})
	}
	return out
}
