// internal/system/obstacle.go
package system

import (
	"math"

	"go-radial-arena/internal/component"
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/entity"
	"go-radial-arena/internal/event"
	"go-radial-arena/internal/types"
	"go-radial-arena/internal/utils"
)

// ObstacleSystem drifts asteroid fields toward the core.
type ObstacleSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	prng            *utils.PRNGService
	particles       *ParticleSystem
	scheduler       *Scheduler
}

func NewObstacleSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, prng *utils.PRNGService, particles *ParticleSystem, scheduler *Scheduler) *ObstacleSystem {
	return &ObstacleSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		prng:            prng,
		particles:       particles,
		scheduler:       scheduler,
	}
}

// SpawnWave adds count asteroids at the spawn radius.
func (s *ObstacleSystem) SpawnWave(count int) {
	for i := 0; i < count; i++ {
		s.Spawn(s.prng.Range(0, 2*math.Pi), s.prng.Range(1, 3))
	}
}

func (s *ObstacleSystem) Spawn(angle, size float64) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Obstacles[id] = &component.Obstacle{
		Angle:     utils.NormalizeAngle(angle),
		Radius:    config.SpawnRadius,
		OrbitDir:  s.prng.Sign(),
		Size:      size,
		HP:        math.Ceil(size * 2),
		SpinSpeed: s.prng.Range(-0.25, 0.25),
	}
	return id
}

func (s *ObstacleSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ObstacleIDs() {
		o := s.ecs.Obstacles[id]
		o.Radius -= config.ObstacleApproachSpeed * deltaTime
		o.Angle = utils.NormalizeAngle(o.Angle + config.ObstacleOrbitSpeed*o.OrbitDir*deltaTime)
		o.Spin += o.SpinSpeed * deltaTime
		if o.Radius < config.CoreRadius {
			delete(s.ecs.Obstacles, id)
		}
	}
}

// Hit damages an obstacle and reports whether it was destroyed.
// A surviving obstacle flashes white until a scheduled reset.
func (s *ObstacleSystem) Hit(id types.EntityID, damage float64) bool {
	o, ok := s.ecs.Obstacles[id]
	if !ok {
		return false
	}
	o.HP -= damage
	if o.HP <= 0 {
		s.Destroy(id)
		return true
	}

	o.Flashing = true
	if s.scheduler != nil {
		s.scheduler.After(config.HitFlashDuration, func() {
			if o, ok := s.ecs.Obstacles[id]; ok {
				o.Flashing = false
			}
		})
	}
	return false
}

// Destroy removes an obstacle, leaving debris behind.
func (s *ObstacleSystem) Destroy(id types.EntityID) {
	o, ok := s.ecs.Obstacles[id]
	if !ok {
		return
	}
	x, y := o.Position()
	if s.particles != nil {
		s.particles.Debris(x, y, o.Size, s.prng.IntRange(config.ObstacleDebrisMin, config.ObstacleDebrisMax))
	}
	delete(s.ecs.Obstacles, id)
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.ObstacleDestroyed, Data: id})
	}
}

func (s *ObstacleSystem) Clear() {
	clear(s.ecs.Obstacles)
}
