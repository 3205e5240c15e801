// internal/system/bullet.go
package system

import (
	"math"

	"go-radial-arena/internal/component"
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/entity"
	"go-radial-arena/internal/event"
	"go-radial-arena/internal/types"
	"go-radial-arena/internal/utils"
)

// BulletSystem owns projectiles of both sides.
type BulletSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewBulletSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *BulletSystem {
	return &BulletSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Fire launches a player shot from the player's polar position.
// Homing weapons fly free; the rest travel radially outward.
func (s *BulletSystem) Fire(angle, radius float64, w defs.WeaponDefinition, sizeMult, damageMult float64) types.EntityID {
	b := &component.Bullet{
		Owner:     component.OwnerPlayer,
		Damage:    w.Damage * damageMult,
		Size:      w.BulletSize * sizeMult,
		Piercing:  w.Piercing,
		Explosive: w.Explosive,
		Homing:    w.Homing,
		Color:     w.Color,
	}
	if b.Piercing {
		b.MaxPierce = w.MaxPierce
		if b.MaxPierce <= 0 {
			b.MaxPierce = config.DefaultMaxPierce
		}
		b.HitEnemies = make(map[types.EntityID]bool)
	}

	b.Life = config.PlayerBulletLife
	if w.Homing {
		x, y := utils.PolarToCartesian(radius, angle)
		b.Motion = component.MotionFree
		b.X, b.Y = x, y
		b.VX, b.VY = math.Cos(angle)*w.BulletSpeed, math.Sin(angle)*w.BulletSpeed
		b.TurnRate = config.HomingTurnRate
	} else {
		b.Motion = component.MotionRadial
		b.Angle = angle
		b.Radius = radius
		b.RadialSpeed = w.BulletSpeed
	}
	return s.add(b)
}

// FireFree launches a free-flying bullet with an explicit velocity.
func (s *BulletSystem) FireFree(x, y, vx, vy float64, owner component.Owner, damage, size, life float64) types.EntityID {
	c := config.EnemyBullet
	if owner == component.OwnerPlayer {
		c = config.PlayerBullet
	}
	return s.add(&component.Bullet{
		Owner:  owner,
		Motion: component.MotionFree,
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Damage: damage,
		Size:   size,
		Life:   life,
		Color:  c,
	})
}

// FireDirection launches an enemy shot along a heading.
func (s *BulletSystem) FireDirection(x, y, heading, speed float64) types.EntityID {
	return s.FireFree(x, y, math.Cos(heading)*speed, math.Sin(heading)*speed,
		component.OwnerEnemy, 1, config.EnemyBulletRadius, config.EnemyBulletLife)
}

// FireAt launches an enemy shot aimed at a point.
func (s *BulletSystem) FireAt(fromX, fromY, toX, toY, speed float64) types.EntityID {
	return s.FireDirection(fromX, fromY, math.Atan2(toY-fromY, toX-fromX), speed)
}

// FireHomingAt launches an enemy shot that keeps turning toward the player.
func (s *BulletSystem) FireHomingAt(fromX, fromY, toX, toY, speed float64) types.EntityID {
	id := s.FireAt(fromX, fromY, toX, toY, speed)
	b := s.ecs.Bullets[id]
	b.Homing = true
	b.TurnRate = config.HomingEnemyTurnRate
	return id
}

func (s *BulletSystem) add(b *component.Bullet) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Bullets[id] = b
	return id
}

func (s *BulletSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.BulletIDs() {
		b := s.ecs.Bullets[id]
		b.Life -= deltaTime
		if b.Motion == component.MotionRadial {
			b.Radius += b.RadialSpeed * deltaTime
			if b.Life <= 0 || b.Radius > config.BulletMaxRadius || b.Radius < 0 {
				s.Remove(id)
			}
			continue
		}

		if b.Homing {
			s.steerHoming(b, deltaTime)
		}
		b.X += b.VX * deltaTime
		b.Y += b.VY * deltaTime
		if b.Life <= 0 || math.Hypot(b.X, b.Y) > config.BulletMaxRadius {
			s.Remove(id)
		}
	}
}

func (s *BulletSystem) steerHoming(b *component.Bullet, deltaTime float64) {
	tx, ty, ok := s.homingTarget(b)
	if !ok {
		return
	}
	speed := math.Hypot(b.VX, b.VY)
	heading := steer(math.Atan2(b.VY, b.VX), math.Atan2(ty-b.Y, tx-b.X), b.TurnRate*deltaTime)
	b.VX, b.VY = math.Cos(heading)*speed, math.Sin(heading)*speed
}

// homingTarget: enemy shots chase the player, player shots the nearest enemy or the boss.
func (s *BulletSystem) homingTarget(b *component.Bullet) (x, y float64, ok bool) {
	if b.Owner == component.OwnerEnemy {
		x, y = s.ecs.Player.Position()
		return x, y, true
	}
	best := math.Inf(1)
	for _, id := range s.ecs.EnemyIDs() {
		ex, ey := s.ecs.Enemies[id].Position()
		if d := utils.Distance(b.X, b.Y, ex, ey); d < best {
			best, x, y, ok = d, ex, ey, true
		}
	}
	if boss := s.ecs.Boss; boss != nil {
		bx, by := boss.Position()
		if d := utils.Distance(b.X, b.Y, bx, by); d < best {
			x, y, ok = bx, by, true
		}
	}
	return x, y, ok
}

func (s *BulletSystem) Remove(id types.EntityID) {
	delete(s.ecs.Bullets, id)
}

// ClearOwner removes every bullet of one side.
func (s *BulletSystem) ClearOwner(owner component.Owner) {
	for id, b := range s.ecs.Bullets {
		if b.Owner == owner {
			delete(s.ecs.Bullets, id)
		}
	}
}

func (s *BulletSystem) Clear() {
	clear(s.ecs.Bullets)
}
