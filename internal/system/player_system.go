// internal/system/player_system.go
package system

import (
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/entity"
	"go-radial-arena/internal/event"
	"go-radial-arena/internal/input"
	"go-radial-arena/internal/utils"
)

// PlayerSystem moves the ship and fires its weapon from input.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	bullets         *BulletSystem
	powerUps        *PowerUpManager
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, bullets *BulletSystem, powerUps *PowerUpManager) *PlayerSystem {
	return &PlayerSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		bullets:         bullets,
		powerUps:        powerUps,
	}
}

func (s *PlayerSystem) Update(deltaTime float64, in input.State) {
	p := s.ecs.Player

	if in.RotateLeft {
		p.Angle += config.PlayerRotationSpeed * deltaTime
	}
	if in.RotateRight {
		p.Angle -= config.PlayerRotationSpeed * deltaTime
	}
	p.Angle = utils.NormalizeAngle(p.Angle)

	speed := config.PlayerRadialSpeed * p.MoveSpeedMult
	if s.powerUps.Has(defs.PowerUpSpeedBoost) {
		speed *= config.SpeedBoostMultiplier
	}
	if in.MoveOut {
		p.Radius += speed * deltaTime
	}
	if in.MoveIn {
		p.Radius -= speed * deltaTime
	}
	p.Radius = utils.Clamp(p.Radius, p.MinRadius, p.MaxRadius)

	if p.Invulnerable {
		p.InvulnTimer += deltaTime
		if p.InvulnTimer >= config.PlayerInvulnDuration {
			p.Invulnerable = false
			p.InvulnTimer = 0
		}
	}

	if in.WeaponSelect >= 1 && in.WeaponSelect <= len(defs.WeaponOrder) {
		p.WeaponID = defs.WeaponOrder[in.WeaponSelect-1]
	}

	if p.FireCooldown > 0 {
		p.FireCooldown -= deltaTime
	}
	if in.Fire && p.FireCooldown <= 0 {
		s.fire()
		p.FireCooldown = s.FireInterval()
	}
}

// Weapon returns the current weapon definition, falling back to STANDARD.
func (s *PlayerSystem) Weapon() defs.WeaponDefinition {
	if w, ok := defs.WeaponLibrary[s.ecs.Player.WeaponID]; ok {
		return w
	}
	return defs.WeaponLibrary[defs.WeaponStandard]
}

// FireInterval is the effective delay between shots.
func (s *PlayerSystem) FireInterval() float64 {
	interval := s.Weapon().FireInterval / s.ecs.Player.FireRateMult
	if s.powerUps.Has(defs.PowerUpRapidFire) {
		interval *= config.RapidFireMultiplier
	}
	return interval
}

func (s *PlayerSystem) fire() {
	p := s.ecs.Player
	w := s.Weapon()
	angles := []float64{p.Angle}
	if s.powerUps.Has(defs.PowerUpSpreadShot) {
		angles = []float64{p.Angle - config.SpreadShotAngle, p.Angle, p.Angle + config.SpreadShotAngle}
	}
	for _, a := range angles {
		s.bullets.Fire(a, p.Radius, w, p.BulletSizeMult, p.DamageMult)
	}
	playCue(s.eventDispatcher, event.CueShoot)
}
