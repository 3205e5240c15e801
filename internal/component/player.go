// internal/component/player.go
package component

import (
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/utils"
)

// Player is the ship orbiting the arena core. Polar state is canonical.
type Player struct {
	Angle     float64
	Radius    float64
	MinRadius float64
	MaxRadius float64
	WeaponID  string

	// Upgrade multipliers start at 1 and only grow.
	FireRateMult   float64
	MoveSpeedMult  float64
	BulletSizeMult float64
	DamageMult     float64

	Invulnerable bool
	InvulnTimer  float64 // seconds elapsed since invulnerability began
	FireCooldown float64
}

// NewPlayer returns a player in its starting position with base stats.
func NewPlayer() *Player {
	return &Player{
		Radius:         config.PlayerStartRadius,
		MinRadius:      config.PlayerMinRadius,
		MaxRadius:      config.PlayerMaxRadius,
		WeaponID:       defs.WeaponStandard,
		FireRateMult:   1,
		MoveSpeedMult:  1,
		BulletSizeMult: 1,
		DamageMult:     1,
	}
}

// Position derives the cartesian position from the polar state.
func (p *Player) Position() (x, y float64) {
	return utils.PolarToCartesian(p.Radius, p.Angle)
}
