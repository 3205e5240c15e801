// internal/system/particle.go
package system

import (
	"image/color"
	"math"

	"go-radial-arena/internal/component"
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/entity"
	"go-radial-arena/internal/utils"
)

// ParticleSystem simulates cosmetic sparks and debris. Nothing here affects gameplay.
type ParticleSystem struct {
	ecs  *entity.ECS
	prng *utils.PRNGService
}

func NewParticleSystem(ecs *entity.ECS, prng *utils.PRNGService) *ParticleSystem {
	return &ParticleSystem{ecs: ecs, prng: prng}
}

// Explode bursts count sparks outward from (x, y).
func (s *ParticleSystem) Explode(x, y float64, count int, c color.RGBA) {
	for i := 0; i < count; i++ {
		a := s.prng.Range(0, 2*math.Pi)
		v := s.prng.Range(config.ParticleMinSpeed, config.ParticleMaxSpeed)
		life := s.prng.Range(0.5, 1.0)
		s.ecs.Particles[s.ecs.NewEntity()] = &component.Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(a) * v,
			VY:      math.Sin(a) * v,
			Life:    life,
			MaxLife: life,
			Size:    s.prng.Range(0.2, 0.5),
			Color:   c,
		}
	}
}

// Debris scatters slow tumbling shards of an obstacle.
func (s *ParticleSystem) Debris(x, y, size float64, count int) {
	for i := 0; i < count; i++ {
		a := s.prng.Range(0, 2*math.Pi)
		v := s.prng.Range(2, 5)
		s.ecs.Particles[s.ecs.NewEntity()] = &component.Particle{
			X:           x,
			Y:           y,
			VX:          math.Cos(a) * v,
			VY:          math.Sin(a) * v,
			Life:        1,
			MaxLife:     1,
			Size:        size * 0.3,
			Color:       config.DebrisColor,
			Debris:      true,
			RotationVel: s.prng.Range(-2.5, 2.5),
		}
	}
}

func (s *ParticleSystem) Update(deltaTime float64) {
	drag := math.Pow(config.ParticleDrag, deltaTime*60)
	for id, p := range s.ecs.Particles {
		p.Life -= deltaTime
		if p.Life <= 0 {
			delete(s.ecs.Particles, id)
			continue
		}
		p.X += p.VX * deltaTime
		p.Y += p.VY * deltaTime
		if !p.Debris {
			p.VX *= drag
			p.VY *= drag
		}
		p.Rotation += p.RotationVel * deltaTime
	}
}

func (s *ParticleSystem) Clear() {
	clear(s.ecs.Particles)
}
