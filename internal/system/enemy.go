// internal/system/enemy.go
package system

import (
	"log/slog"
	"math"

	"go-radial-arena/internal/component"
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/entity"
	"go-radial-arena/internal/event"
	"go-radial-arena/internal/types"
	"go-radial-arena/internal/utils"
)

// EnemySystem spawns enemies and runs the per-archetype behaviour.
type EnemySystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	prng            *utils.PRNGService
	bullets         *BulletSystem
	lasers          *LaserSystem

	// Difficulty knobs, pushed by the wave manager.
	SpawnInterval   float64
	ApproachSpeed   float64
	EliteInterval   float64
	SpawningEnabled bool

	wave       int
	spawnTable []defs.SpawnEntry
	spawnTimer float64
	eliteTimer float64
}

func NewEnemySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, prng *utils.PRNGService, bullets *BulletSystem, lasers *LaserSystem) *EnemySystem {
	return &EnemySystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		prng:            prng,
		bullets:         bullets,
		lasers:          lasers,
		SpawnInterval:   config.BaseSpawnInterval,
		ApproachSpeed:   config.BaseApproachSpeed,
		EliteInterval:   config.BaseEliteInterval,
		spawnTable:      defs.SpawnTable("CLASSIC"),
	}
}

// ApplyWave takes the knobs of a new wave.
func (s *EnemySystem) ApplyWave(def defs.WaveDefinition) {
	s.wave = def.Number
	s.SpawnInterval = def.SpawnInterval
	s.ApproachSpeed = def.ApproachSpeed
	s.EliteInterval = def.EliteInterval
	s.spawnTimer = 0
	s.eliteTimer = 0
}

func (s *EnemySystem) SetSpawningEnabled(enabled bool) {
	s.SpawningEnabled = enabled
}

func (s *EnemySystem) SetSpawnTable(table []defs.SpawnEntry) {
	s.spawnTable = table
}

func (s *EnemySystem) Update(deltaTime float64) {
	if s.SpawningEnabled {
		s.updateSpawning(deltaTime)
	}

	px, py := s.ecs.Player.Position()
	for _, id := range s.ecs.EnemyIDs() {
		e := s.ecs.Enemies[id]
		e.Age += deltaTime
		if e.FlashTimer > 0 {
			e.FlashTimer -= deltaTime
		}

		e.Angle += config.EnemyOrbitSpeed * e.OrbitDir * deltaTime
		s.behave(e, deltaTime, px, py)
		e.Angle = utils.NormalizeAngle(e.Angle)

		if e.Radius < config.CoreRadius {
			delete(s.ecs.Enemies, id)
		}
	}
}

func (s *EnemySystem) updateSpawning(deltaTime float64) {
	s.spawnTimer += deltaTime
	if s.spawnTimer >= s.SpawnInterval {
		s.spawnTimer = 0
		s.Spawn(s.prng.ChooseWeighted(s.spawnTable), s.prng.Range(0, 2*math.Pi), config.SpawnRadius)
	}

	if s.wave < config.EliteMinWave {
		return
	}
	s.eliteTimer += deltaTime
	if s.eliteTimer >= s.EliteInterval {
		s.eliteTimer = 0
		s.Spawn(defs.EnemyBoss, s.prng.Range(0, 2*math.Pi), s.prng.Range(20, 35))
	}
}

// behave applies the archetype rule after the shared orbit step.
func (s *EnemySystem) behave(e *component.Enemy, dt, px, py float64) {
	approach := s.ApproachSpeed * e.Speed
	ex, ey := e.Position()

	switch e.Type {
	case defs.EnemyNormal, defs.EnemySpeed, defs.EnemyTank, defs.EnemySplitter:
		e.Radius -= approach * dt

	case defs.EnemyShooter:
		st := e.Shooter
		if !st.Stopped {
			e.Radius -= approach * dt
			if e.Radius <= st.StopRadius {
				e.Radius = st.StopRadius
				st.Stopped = true
			}
			return
		}
		st.ShootTimer += dt
		if st.ShootTimer >= config.ShooterFireInterval {
			st.ShootTimer = 0
			s.bullets.FireAt(ex, ey, px, py, config.EnemyBulletSpeed)
			playCue(s.eventDispatcher, event.CueEnemyShoot)
		}

	case defs.EnemyZigzag:
		// Angular weave whose world amplitude stays constant as the radius shrinks.
		z := e.Zigzag
		z.Phase += config.ZigzagFrequency * dt
		amp := config.ZigzagAmplitude / math.Max(e.Radius, 1)
		e.Angle += amp * config.ZigzagFrequency * math.Cos(z.Phase) * dt
		e.Radius -= approach * dt

	case defs.EnemyKamikaze:
		k := e.Kamikaze
		if !k.Accelerating {
			e.Radius -= approach * dt
			if utils.Distance(ex, ey, px, py) < config.KamikazeTriggerRadius {
				k.Accelerating = true
				k.TargetAngle = s.ecs.Player.Angle
				k.DiveSpeed = approach
			}
			return
		}
		k.DiveSpeed += config.KamikazeAcceleration * dt
		e.Angle = steer(e.Angle, k.TargetAngle, config.KamikazeTurnRate*dt)
		e.Radius -= k.DiveSpeed * dt

	case defs.EnemyShield:
		e.Radius -= approach * dt
		ex, ey = e.Position()
		e.Shield.ShieldAngle = utils.NormalizeAngle(math.Atan2(py-ey, px-ex))

	case defs.EnemyTeleport:
		e.Radius -= approach * dt
		t := e.Teleport
		t.Countdown -= dt
		if t.Countdown <= 0 {
			t.Countdown = config.TeleportInterval
			s.teleport(e)
		}

	case defs.EnemyLaser:
		l := e.Laser
		if !l.Stopped {
			e.Radius -= approach * dt
			if e.Radius <= l.StopRadius {
				e.Radius = l.StopRadius
				l.Stopped = true
			}
			return
		}
		l.FireTimer += dt
		if l.FireTimer >= config.LaserInterval {
			l.FireTimer = 0
			s.lasers.Create(ex, ey, e.Angle, config.LaserTelegraphDuration, config.LaserFireDuration)
		}

	case defs.EnemyBoss:
		el := e.Elite
		el.ShootTimer += dt
		if el.ShootTimer >= el.ShootInterval {
			el.ShootTimer = 0
			if s.prng.Chance(config.HomingEnemyChance) {
				s.bullets.FireHomingAt(ex, ey, px, py, config.EnemyBulletSpeed)
			} else {
				s.bullets.FireAt(ex, ey, px, py, config.EnemyBulletSpeed)
			}
			playCue(s.eventDispatcher, event.CueEnemyShoot)
		}
	}
}

// teleport relocates the enemy to a random spot at least TeleportMinDistance away.
func (s *EnemySystem) teleport(e *component.Enemy) {
	ox, oy := e.Position()
	for attempt := 0; attempt < 8; attempt++ {
		a := s.prng.Range(0, 2*math.Pi)
		r := s.prng.Range(config.TeleportMinRadius, config.TeleportMaxRadius)
		nx, ny := utils.PolarToCartesian(r, a)
		if utils.Distance(ox, oy, nx, ny) >= config.TeleportMinDistance {
			e.Angle, e.Radius = a, r
			break
		}
	}
	e.FlashTimer = config.TeleportFlashDuration
}

// Spawn creates an enemy of type t. Unknown types are rejected and logged.
func (s *EnemySystem) Spawn(t defs.EnemyType, angle, radius float64) (types.EntityID, bool) {
	def, ok := defs.EnemyLibrary[t]
	if !ok {
		slog.Warn("rejected enemy spawn: unknown type", "type", t)
		return 0, false
	}

	e := &component.Enemy{
		Type:     t,
		Angle:    utils.NormalizeAngle(angle),
		Radius:   radius,
		OrbitDir: s.prng.Sign(),
		HP:       def.Health,
		MaxHP:    def.Health,
		Speed:    def.Speed,
		Score:    def.Score,
		Size:     def.Size,
		Color:    def.Visuals.Color,
		Scale:    def.Visuals.Scale,
	}
	switch t {
	case defs.EnemyShooter:
		e.Shooter = &component.ShooterState{StopRadius: s.prng.Range(config.ShooterStopMin, config.ShooterStopMax)}
	case defs.EnemyZigzag:
		e.Zigzag = &component.ZigzagState{Phase: s.prng.Range(0, 2*math.Pi)}
	case defs.EnemyKamikaze:
		e.Kamikaze = &component.KamikazeState{}
	case defs.EnemyShield:
		e.Shield = &component.ShieldState{ShieldAngle: utils.NormalizeAngle(e.Angle + math.Pi)}
	case defs.EnemyTeleport:
		e.Teleport = &component.TeleportState{Countdown: config.TeleportInterval}
	case defs.EnemyLaser:
		e.Laser = &component.LaserEmitterState{StopRadius: config.LaserStopRadius}
	case defs.EnemyBoss:
		e.Elite = &component.EliteState{ShootInterval: config.EliteShootInterval}
	}

	id := s.ecs.NewEntity()
	s.ecs.Enemies[id] = e
	return id, true
}

// SpawnSplitOffspring drops 2-3 speed enemies around a splitter's death point.
func (s *EnemySystem) SpawnSplitOffspring(x, y float64) []types.EntityID {
	n := s.prng.IntRange(config.SplitOffspringMin, config.SplitOffspringMax)
	return s.spawnAround(defs.EnemySpeed, n, x, y, config.SplitOffspringSpread)
}

// SpawnMinions realises a stage boss spawn request.
func (s *EnemySystem) SpawnMinions(req component.SpawnRequest) []types.EntityID {
	return s.spawnAround(req.Type, req.Count, req.X, req.Y, 3)
}

func (s *EnemySystem) spawnAround(t defs.EnemyType, n int, x, y, spread float64) []types.EntityID {
	var ids []types.EntityID
	for i := 0; i < n; i++ {
		ox := x + s.prng.Range(-spread, spread)
		oy := y + s.prng.Range(-spread, spread)
		r, a := utils.CartesianToPolar(ox, oy)
		if id, ok := s.Spawn(t, a, math.Max(r, config.CoreRadius+1)); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Damage subtracts hp and flashes the enemy. It reports whether the enemy died.
func (s *EnemySystem) Damage(id types.EntityID, amount float64) bool {
	e, ok := s.ecs.Enemies[id]
	if !ok {
		return false
	}
	e.HP -= amount
	e.FlashTimer = config.HitFlashDuration
	return e.HP <= 0
}

func (s *EnemySystem) Remove(id types.EntityID) {
	delete(s.ecs.Enemies, id)
}

func (s *EnemySystem) Clear() {
	clear(s.ecs.Enemies)
}

// Reset clears enemies and timers and returns the knobs to wave 0.
func (s *EnemySystem) Reset() {
	s.Clear()
	s.ApplyWave(defs.WaveFor(0))
	s.SpawningEnabled = false
}
