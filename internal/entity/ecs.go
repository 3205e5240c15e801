// internal/entity/ecs.go
package entity

import (
	"slices"

	"go-radial-arena/internal/component"
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/types"
)

// ECS owns every live object of one session.
type ECS struct {
	GameTime  float64
	NextID    types.EntityID
	Bullets   map[types.EntityID]*component.Bullet
	Enemies   map[types.EntityID]*component.Enemy
	Obstacles map[types.EntityID]*component.Obstacle
	PowerUps  map[types.EntityID]*component.PowerUp
	Lasers    map[types.EntityID]*component.Laser
	Particles map[types.EntityID]*component.Particle
	Boss      *component.StageBoss
	Player    *component.Player
	Session   *component.Session
	Camera    *component.Camera
	Banner    *component.Banner
}

func NewECS(rules config.ModeRules) *ECS {
	return &ECS{
		NextID:    1,
		Bullets:   make(map[types.EntityID]*component.Bullet),
		Enemies:   make(map[types.EntityID]*component.Enemy),
		Obstacles: make(map[types.EntityID]*component.Obstacle),
		PowerUps:  make(map[types.EntityID]*component.PowerUp),
		Lasers:    make(map[types.EntityID]*component.Laser),
		Particles: make(map[types.EntityID]*component.Particle),
		Player:    component.NewPlayer(),
		Session:   component.NewSession(rules),
		Camera:    &component.Camera{},
		Banner:    &component.Banner{},
	}
}

// Reset empties every registry and restores the player and session for a new
// run. Ids keep counting so stale references never match a new entity.
func (ecs *ECS) Reset(rules config.ModeRules) {
	ecs.GameTime = 0
	clear(ecs.Bullets)
	clear(ecs.Enemies)
	clear(ecs.Obstacles)
	clear(ecs.PowerUps)
	clear(ecs.Lasers)
	clear(ecs.Particles)
	ecs.Boss = nil
	ecs.Player = component.NewPlayer()
	ecs.Session = component.NewSession(rules)
	ecs.Camera = &component.Camera{}
	ecs.Banner = &component.Banner{}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Ordered id helpers. Map iteration order is random in Go; every pass that
// can change game state walks ids in creation order instead.

func (ecs *ECS) BulletIDs() []types.EntityID   { return sortedIDs(ecs.Bullets) }
func (ecs *ECS) EnemyIDs() []types.EntityID    { return sortedIDs(ecs.Enemies) }
func (ecs *ECS) ObstacleIDs() []types.EntityID { return sortedIDs(ecs.Obstacles) }
func (ecs *ECS) PowerUpIDs() []types.EntityID  { return sortedIDs(ecs.PowerUps) }
func (ecs *ECS) LaserIDs() []types.EntityID    { return sortedIDs(ecs.Lasers) }
func (ecs *ECS) ParticleIDs() []types.EntityID { return sortedIDs(ecs.Particles) }

func sortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
