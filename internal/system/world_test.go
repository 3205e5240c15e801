package system

import (
	"testing"

	"go-radial-arena/internal/config"
	"go-radial-arena/internal/entity"
	"go-radial-arena/internal/event"
	"go-radial-arena/internal/utils"
)

// fakeCombat stands in for the orchestrator's damage path.
type fakeCombat struct {
	damage       int
	bossDefeated int
}

func (f *fakeCombat) DamagePlayer() bool { f.damage++; return true }
func (f *fakeCombat) OnBossDefeated()    { f.bossDefeated++ }

type testWorld struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	prng       *utils.PRNGService
	scheduler  *Scheduler
	particles  *ParticleSystem
	bullets    *BulletSystem
	lasers     *LaserSystem
	enemies    *EnemySystem
	obstacles  *ObstacleSystem
	pickups    *PowerUpSystem
	powerUps   *PowerUpManager
	boss       *BossSystem
	combo      *ComboManager
	wave       *WaveManager
	players    *PlayerSystem
	collision  *CollisionSystem
	ctx        *fakeCombat
}

// newTestWorld wires the systems the way the game does, without power-up drops.
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	w := &testWorld{
		ecs:        entity.NewECS(config.Rules(config.ModeClassic)),
		dispatcher: event.NewDispatcher(),
		prng:       utils.NewPRNGService(42),
		scheduler:  NewScheduler(),
		combo:      NewComboManager(),
		ctx:        &fakeCombat{},
	}
	w.powerUps = NewPowerUpManager(w.dispatcher)
	w.particles = NewParticleSystem(w.ecs, w.prng)
	w.bullets = NewBulletSystem(w.ecs, w.dispatcher)
	w.lasers = NewLaserSystem(w.ecs, w.dispatcher)
	w.enemies = NewEnemySystem(w.ecs, w.dispatcher, w.prng, w.bullets, w.lasers)
	w.obstacles = NewObstacleSystem(w.ecs, w.dispatcher, w.prng, w.particles, w.scheduler)
	w.pickups = NewPowerUpSystem(w.ecs, w.prng, nil)
	w.boss = NewBossSystem(w.ecs, w.dispatcher, w.bullets)
	w.wave = NewWaveManager(w.dispatcher, w.enemies)
	w.players = NewPlayerSystem(w.ecs, w.dispatcher, w.bullets, w.powerUps)
	w.collision = NewCollisionSystem(w.ecs, w.dispatcher, w.ctx, CombatSystems{
		Enemies:   w.enemies,
		Bullets:   w.bullets,
		Obstacles: w.obstacles,
		Boss:      w.boss,
		Lasers:    w.lasers,
		Pickups:   w.pickups,
		PowerUps:  w.powerUps,
		Particles: w.particles,
		Combo:     w.combo,
		Wave:      w.wave,
	})
	return w
}

// step advances bullets and resolves collisions, the minimal loop for hit tests.
func (w *testWorld) step(dt float64) {
	w.bullets.Update(dt)
	w.collision.Resolve(dt)
}
