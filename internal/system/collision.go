// internal/system/collision.go
package system

import (
	"math"

	"go-radial-arena/internal/component"
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/entity"
	"go-radial-arena/internal/event"
	"go-radial-arena/internal/interfaces"
	"go-radial-arena/internal/types"
	"go-radial-arena/internal/utils"
)

// CombatSystems groups the collaborators the collision pass reads and mutates.
type CombatSystems struct {
	Enemies   *EnemySystem
	Bullets   *BulletSystem
	Obstacles *ObstacleSystem
	Boss      *BossSystem
	Lasers    *LaserSystem
	Pickups   *PowerUpSystem
	PowerUps  *PowerUpManager
	Particles *ParticleSystem
	Combo     *ComboManager
	Wave      *WaveManager
}

// CollisionSystem resolves all contacts once per frame in a fixed order.
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	ctx             interfaces.CombatContext
	sys             CombatSystems
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, ctx interfaces.CombatContext, sys CombatSystems) *CollisionSystem {
	return &CollisionSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		ctx:             ctx,
		sys:             sys,
	}
}

// Resolve runs every collision step. deltaTime is only used by the magnet pull.
func (s *CollisionSystem) Resolve(deltaTime float64) {
	s.playerBulletsVsObstacles()
	s.playerBulletsVsBoss()
	s.playerBulletsVsEnemies()
	s.enemiesVsPlayer()
	s.obstaclesVsPlayer()
	s.enemyBulletsVsPlayer()
	s.lasersVsPlayer()
	s.collectPickups()
	if s.sys.PowerUps.Has(defs.PowerUpMagnet) {
		px, py := s.ecs.Player.Position()
		s.sys.Pickups.Attract(px, py, deltaTime)
	}
}

func (s *CollisionSystem) playerBullets() []types.EntityID {
	var ids []types.EntityID
	for _, id := range s.ecs.BulletIDs() {
		if s.ecs.Bullets[id].Owner == component.OwnerPlayer {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s *CollisionSystem) playerBulletsVsObstacles() {
	for _, bid := range s.playerBullets() {
		b := s.ecs.Bullets[bid]
		bx, by := b.Position()
		for _, oid := range s.ecs.ObstacleIDs() {
			o := s.ecs.Obstacles[oid]
			ox, oy := o.Position()
			if !circlesOverlap(bx, by, b.Size, ox, oy, o.Size) {
				continue
			}
			s.sys.Bullets.Remove(bid)
			if s.sys.Obstacles.Hit(oid, b.Damage) {
				s.award(config.ObstacleScore, false)
				playCue(s.eventDispatcher, event.CueExplosion)
			}
			break
		}
	}
}

func (s *CollisionSystem) playerBulletsVsBoss() {
	for _, bid := range s.playerBullets() {
		boss := s.ecs.Boss
		if boss == nil {
			return
		}
		b, ok := s.ecs.Bullets[bid]
		if !ok {
			continue
		}
		bx, by := b.Position()
		hx, hy := boss.Position()
		if !circlesOverlap(bx, by, b.Size, hx, hy, config.StageBossHitRadius) {
			continue
		}
		s.sys.Bullets.Remove(bid)
		s.sys.Combo.OnHit()
		s.sys.Particles.Explode(bx, by, config.HitParticles, boss.Tint)
		if s.sys.Boss.TakeDamage(b.Damage) {
			s.ctx.OnBossDefeated()
			return
		}
	}
}

func (s *CollisionSystem) playerBulletsVsEnemies() {
	for _, bid := range s.playerBullets() {
		b, ok := s.ecs.Bullets[bid]
		if !ok {
			continue
		}
		bx, by := b.Position()
		for _, eid := range s.ecs.EnemyIDs() {
			e, ok := s.ecs.Enemies[eid]
			if !ok || (b.Piercing && b.HitEnemies[eid]) {
				continue
			}
			ex, ey := e.Position()
			if !circlesOverlap(bx, by, b.Size, ex, ey, e.Size) {
				continue
			}

			if e.Type == defs.EnemyShield && ShieldBlocks(e, bx, by) {
				s.sys.Bullets.Remove(bid)
				s.sys.Particles.Explode(bx, by, config.HitParticles, config.ShieldArcColor)
				break
			}

			s.hitEnemy(eid, b, bx, by)

			if b.Piercing {
				b.PierceCount++
				b.HitEnemies[eid] = true
				if b.PierceCount > b.MaxPierce {
					s.sys.Bullets.Remove(bid)
					break
				}
				continue
			}
			s.sys.Bullets.Remove(bid)
			break
		}
	}
}

// ShieldBlocks reports whether a bullet at (bx, by) arrives within the
// frontal 180 degrees of the enemy's shield.
func ShieldBlocks(e *component.Enemy, bx, by float64) bool {
	if e.Shield == nil {
		return false
	}
	ex, ey := e.Position()
	incidence := math.Atan2(by-ey, bx-ex)
	return math.Abs(utils.AngleDiff(e.Shield.ShieldAngle, incidence)) <= math.Pi/2
}

func (s *CollisionSystem) hitEnemy(eid types.EntityID, b *component.Bullet, bx, by float64) {
	s.sys.Combo.OnHit()
	killed := s.sys.Enemies.Damage(eid, b.Damage)

	if b.Explosive {
		s.sys.Particles.Explode(bx, by, config.KillParticles, config.ComboColor)
		playCue(s.eventDispatcher, event.CueExplosion)
		for _, other := range s.ecs.EnemyIDs() {
			if other == eid {
				continue
			}
			o := s.ecs.Enemies[other]
			ox, oy := o.Position()
			if utils.Distance(bx, by, ox, oy) < config.ExplosionRadius+o.Size {
				if s.sys.Enemies.Damage(other, b.Damage) {
					s.KillEnemy(other)
				}
			}
		}
	}

	if killed {
		s.KillEnemy(eid)
	}
}

// KillEnemy runs every death side effect and removes the enemy.
func (s *CollisionSystem) KillEnemy(eid types.EntityID) {
	e, ok := s.ecs.Enemies[eid]
	if !ok {
		return
	}
	x, y := e.Position()
	score := s.award(e.Score, true)
	s.ecs.Session.Kills++

	s.sys.Particles.Explode(x, y, config.KillParticles, e.Color)
	playCue(s.eventDispatcher, event.CueExplosion)
	s.sys.Pickups.TrySpawn(x, y)

	s.sys.Enemies.Remove(eid)

	switch e.Type {
	case defs.EnemySplitter:
		s.sys.Enemies.SpawnSplitOffspring(x, y)
	case defs.EnemyKamikaze:
		px, py := s.ecs.Player.Position()
		if utils.Distance(x, y, px, py) < config.KamikazeSplashRadius+config.PlayerHitRadius {
			s.ctx.DamagePlayer()
		}
	}

	if !s.sys.Wave.IsBossWaveActive() {
		s.sys.Wave.OnEnemyKilled()
	}
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{
			ID: eid, Type: e.Type, X: x, Y: y, Score: score,
		}})
	}
}

// award adds base score scaled by the multipliers and returns the amount.
func (s *CollisionSystem) award(base int, withCombo bool) int {
	mult := s.sys.PowerUps.ScoreMultiplier() * s.ecs.Session.ScoreMult
	if withCombo {
		mult *= s.sys.Combo.Multiplier()
	}
	pts := int(math.Floor(float64(base) * mult))
	s.ecs.Session.Score += pts
	return pts
}

func (s *CollisionSystem) enemiesVsPlayer() {
	p := s.ecs.Player
	px, py := p.Position()
	for _, eid := range s.ecs.EnemyIDs() {
		e := s.ecs.Enemies[eid]
		ex, ey := e.Position()
		breach := e.Radius < p.Radius
		if !breach && !circlesOverlap(ex, ey, e.Size, px, py, config.PlayerHitRadius) {
			continue
		}
		s.ctx.DamagePlayer()
		s.sys.Particles.Explode(ex, ey, config.KillParticles, e.Color)
		s.sys.Enemies.Remove(eid)
	}
}

func (s *CollisionSystem) obstaclesVsPlayer() {
	px, py := s.ecs.Player.Position()
	for _, oid := range s.ecs.ObstacleIDs() {
		o := s.ecs.Obstacles[oid]
		ox, oy := o.Position()
		if circlesOverlap(ox, oy, o.Size, px, py, config.PlayerHitRadius) {
			s.ctx.DamagePlayer()
			s.sys.Obstacles.Destroy(oid)
		}
	}
}

func (s *CollisionSystem) enemyBulletsVsPlayer() {
	px, py := s.ecs.Player.Position()
	for _, bid := range s.ecs.BulletIDs() {
		b := s.ecs.Bullets[bid]
		if b.Owner != component.OwnerEnemy {
			continue
		}
		bx, by := b.Position()
		if circlesOverlap(bx, by, b.Size, px, py, config.PlayerHitRadius) {
			s.ctx.DamagePlayer()
			s.sys.Bullets.Remove(bid)
		}
	}
}

func (s *CollisionSystem) lasersVsPlayer() {
	px, py := s.ecs.Player.Position()
	if s.sys.Lasers.HitsCircle(px, py, config.PlayerHitRadius) {
		s.ctx.DamagePlayer()
	}
}

func (s *CollisionSystem) collectPickups() {
	px, py := s.ecs.Player.Position()
	for _, t := range s.sys.Pickups.Collect(px, py) {
		if s.sys.PowerUps.Collect(t) {
			playCue(s.eventDispatcher, event.CuePowerUp)
		}
	}
}
