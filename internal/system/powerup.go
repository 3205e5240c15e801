// internal/system/powerup.go
package system

import (
	"math"

	"go-radial-arena/internal/component"
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/entity"
	"go-radial-arena/internal/types"
	"go-radial-arena/internal/utils"
)

// PowerUpSystem owns the pickups floating in the arena.
type PowerUpSystem struct {
	ecs       *entity.ECS
	prng      *utils.PRNGService
	available []defs.PowerUpType
}

func NewPowerUpSystem(ecs *entity.ECS, prng *utils.PRNGService, available []defs.PowerUpType) *PowerUpSystem {
	return &PowerUpSystem{ecs: ecs, prng: prng, available: available}
}

// TrySpawn rolls the drop chance and spawns a uniformly chosen pickup.
func (s *PowerUpSystem) TrySpawn(x, y float64) (types.EntityID, bool) {
	if len(s.available) == 0 || !s.prng.Chance(config.PowerUpSpawnChance) {
		return 0, false
	}
	return s.Spawn(x, y, s.available[s.prng.Intn(len(s.available))]), true
}

func (s *PowerUpSystem) Spawn(x, y float64, t defs.PowerUpType) types.EntityID {
	r, a := utils.CartesianToPolar(x, y)
	id := s.ecs.NewEntity()
	s.ecs.PowerUps[id] = &component.PowerUp{
		Type:     t,
		Angle:    a,
		Radius:   r,
		OrbitDir: s.prng.Sign(),
	}
	return id
}

func (s *PowerUpSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.PowerUpIDs() {
		p := s.ecs.PowerUps[id]
		p.Radius -= config.PowerUpApproachSpeed * deltaTime
		p.Angle = utils.NormalizeAngle(p.Angle + config.PowerUpOrbitSpeed*p.OrbitDir*deltaTime)
		p.Spin += 2 * deltaTime
		if p.Radius < config.CoreRadius {
			delete(s.ecs.PowerUps, id)
		}
	}
}

// Collect removes pickups within reach of the player and returns their types.
func (s *PowerUpSystem) Collect(px, py float64) []defs.PowerUpType {
	var got []defs.PowerUpType
	for _, id := range s.ecs.PowerUpIDs() {
		p := s.ecs.PowerUps[id]
		x, y := p.Position()
		if utils.Distance(x, y, px, py) < config.PowerUpPickupRadius {
			got = append(got, p.Type)
			delete(s.ecs.PowerUps, id)
		}
	}
	return got
}

// Attract pulls every pickup toward the player without overshooting.
func (s *PowerUpSystem) Attract(px, py, deltaTime float64) {
	step := config.MagnetAttractionSpeed * deltaTime
	for _, id := range s.ecs.PowerUpIDs() {
		p := s.ecs.PowerUps[id]
		x, y := p.Position()
		d := utils.Distance(x, y, px, py)
		if d == 0 {
			continue
		}
		move := math.Min(step, d)
		x += (px - x) / d * move
		y += (py - y) / d * move
		p.Radius, p.Angle = utils.CartesianToPolar(x, y)
	}
}

func (s *PowerUpSystem) SetAvailable(list []defs.PowerUpType) {
	s.available = list
}

func (s *PowerUpSystem) Clear() {
	clear(s.ecs.PowerUps)
}
