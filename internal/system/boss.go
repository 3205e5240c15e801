// internal/system/boss.go
package system

import (
	"log/slog"
	"math"

	"go-radial-arena/internal/component"
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/entity"
	"go-radial-arena/internal/event"
)

// bossPhase is the per-phase script of the stage boss.
type bossPhase struct {
	threshold     float64 // enter when hp fraction <= threshold
	radius        float64
	orbit         float64
	shootInterval float64
	spawnInterval float64 // 0: no minions
	minions       int
	minionType    defs.EnemyType
}

var bossPhases = [...]bossPhase{
	{threshold: 1.0, radius: 30, orbit: 0.8, shootInterval: 2.0},
	{threshold: 0.66, radius: 25, orbit: 1.2, shootInterval: 1.5, spawnInterval: 5, minions: 2, minionType: defs.EnemyNormal},
	{threshold: 0.33, radius: 20, orbit: 1.8, shootInterval: 1.0, spawnInterval: 4, minions: 3, minionType: defs.EnemySpeed},
}

// BossSystem scripts the stage boss. It never touches the enemy registry;
// minions are queued as spawn requests for the orchestrator.
type BossSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	bullets         *BulletSystem
	requests        []component.SpawnRequest
}

func NewBossSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, bullets *BulletSystem) *BossSystem {
	return &BossSystem{ecs: ecs, eventDispatcher: eventDispatcher, bullets: bullets}
}

// Spawn places a new boss scaled to the wave number.
func (s *BossSystem) Spawn(wave int, angle float64) *component.StageBoss {
	hp := float64(config.StageBossBaseHP + config.StageBossHPPerWave*wave)
	b := &component.StageBoss{
		Wave:     wave,
		HP:       hp,
		MaxHP:    hp,
		Score:    config.StageBossBaseScore + config.StageBossScorePerWave*wave,
		Phase:    1,
		Angle:    angle,
		Radius:   bossPhases[0].radius,
		OrbitDir: 1,
		Orbit:    bossPhases[0].orbit,
		Tint:     config.BossPhaseColors[0],
	}
	s.ecs.Boss = b
	s.requests = nil
	slog.Info("stage boss spawned", "wave", wave, "hp", hp)
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.BossSpawned, Data: wave})
	}
	return b
}

func (s *BossSystem) Update(deltaTime float64) {
	b := s.ecs.Boss
	if b == nil {
		return
	}

	frac := b.HP / b.MaxHP
	for next := len(bossPhases); next > b.Phase; next-- {
		if frac <= bossPhases[next-1].threshold {
			s.enterPhase(b, next)
			break
		}
	}
	ph := bossPhases[b.Phase-1]

	b.Angle += b.Orbit * b.OrbitDir * deltaTime
	b.Spin += deltaTime * 2
	if b.FlashTimer > 0 {
		b.FlashTimer -= deltaTime
	}

	b.ShootTimer += deltaTime
	if b.ShootTimer >= ph.shootInterval {
		b.ShootTimer = 0
		s.shoot(b)
	}

	if ph.spawnInterval > 0 {
		b.SpawnTimer += deltaTime
		if b.SpawnTimer >= ph.spawnInterval {
			b.SpawnTimer = 0
			x, y := b.Position()
			s.requests = append(s.requests, component.SpawnRequest{Count: ph.minions, Type: ph.minionType, X: x, Y: y})
		}
	}
}

// enterPhase only ever moves forward.
func (s *BossSystem) enterPhase(b *component.StageBoss, phase int) {
	if phase <= b.Phase {
		return
	}
	b.Phase = phase
	ph := bossPhases[phase-1]
	b.Radius = ph.radius
	b.Orbit = ph.orbit
	b.Tint = config.BossPhaseColors[phase-1]
	b.SpawnTimer = 0
	slog.Debug("stage boss phase", "phase", phase)
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.BossPhaseChanged, Data: phase})
	}
}

func (s *BossSystem) shoot(b *component.StageBoss) {
	bx, by := b.Position()
	px, py := s.ecs.Player.Position()
	aim := math.Atan2(py-by, px-bx)

	switch b.Phase {
	case 1:
		s.spread(bx, by, aim, 3, math.Pi/8)
	case 2:
		s.spread(bx, by, aim, 5, math.Pi/6)
	default:
		step := 2 * math.Pi / 8
		for i := 0; i < 8; i++ {
			s.bullets.FireDirection(bx, by, step*float64(i), config.EnemyBulletSpeed)
		}
	}
	playCue(s.eventDispatcher, event.CueEnemyShoot)
}

func (s *BossSystem) spread(x, y, center float64, count int, step float64) {
	start := center - step*float64(count-1)/2
	for i := 0; i < count; i++ {
		s.bullets.FireDirection(x, y, start+step*float64(i), config.EnemyBulletSpeed)
	}
}

// TakeDamage reports whether the boss hp reached zero.
func (s *BossSystem) TakeDamage(n float64) bool {
	b := s.ecs.Boss
	if b == nil {
		return false
	}
	b.HP -= n
	b.FlashTimer = config.HitFlashDuration
	return b.HP <= 0
}

// HPFraction is 0 when no boss is alive.
func (s *BossSystem) HPFraction() float64 {
	b := s.ecs.Boss
	if b == nil {
		return 0
	}
	return math.Max(0, b.HP/b.MaxHP)
}

func (s *BossSystem) Phase() int {
	if s.ecs.Boss == nil {
		return 0
	}
	return s.ecs.Boss.Phase
}

// DrainSpawnRequests hands over and forgets the queued minion requests.
func (s *BossSystem) DrainSpawnRequests() []component.SpawnRequest {
	out := s.requests
	s.requests = nil
	return out
}

func (s *BossSystem) Despawn() {
	s.ecs.Boss = nil
	s.requests = nil
}
