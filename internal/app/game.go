// internal/app/game.go
package app

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"go-radial-arena/internal/config"
	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/entity"
	"go-radial-arena/internal/event"
	"go-radial-arena/internal/input"
	"go-radial-arena/internal/interfaces"
	"go-radial-arena/internal/system"
	"go-radial-arena/internal/utils"
)

// Options configure a new session.
type Options struct {
	Mode  config.GameMode
	Seed  int64 // 0 picks a time based seed
	Audio interfaces.AudioSink
}

// Game owns one session: the registries, the managers and the tick order.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Rules           config.ModeRules
	RunID           string
	Tick            uint64

	PlayerSystem       *system.PlayerSystem
	BulletSystem       *system.BulletSystem
	EnemySystem        *system.EnemySystem
	ObstacleSystem     *system.ObstacleSystem
	PowerUpSystem      *system.PowerUpSystem
	LaserSystem        *system.LaserSystem
	ParticleSystem     *system.ParticleSystem
	BossSystem         *system.BossSystem
	VisualEffectSystem *system.VisualEffectSystem
	CollisionSystem    *system.CollisionSystem

	Combo     *system.ComboManager
	Ability   *system.SpecialAbility
	Wave      *system.WaveManager
	PowerUps  *system.PowerUpManager
	Upgrades  *system.UpgradeManager
	Scheduler *system.Scheduler

	pendingUpgrades []defs.UpgradeDefinition
	dying           bool
	gameOver        bool
}

// NewGame wires a session and starts wave 1.
func NewGame(opts Options) *Game {
	rules := config.Rules(opts.Mode)
	ecs := entity.NewECS(rules)
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Rules:           rules,
		RunID:           uuid.NewString(),
		Combo:           system.NewComboManager(),
		Ability:         system.NewSpecialAbility(),
		PowerUps:        system.NewPowerUpManager(eventDispatcher),
		Upgrades:        system.NewUpgradeManager(eventDispatcher, rng),
		Scheduler:       system.NewScheduler(),
	}

	g.ParticleSystem = system.NewParticleSystem(ecs, rng)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.BulletSystem = system.NewBulletSystem(ecs, eventDispatcher)
	g.LaserSystem = system.NewLaserSystem(ecs, eventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher, g.BulletSystem, g.PowerUps)
	g.EnemySystem = system.NewEnemySystem(ecs, eventDispatcher, rng, g.BulletSystem, g.LaserSystem)
	g.EnemySystem.SetSpawnTable(defs.SpawnTable(rules.SpawnTable))
	g.ObstacleSystem = system.NewObstacleSystem(ecs, eventDispatcher, rng, g.ParticleSystem, g.Scheduler)
	g.PowerUpSystem = system.NewPowerUpSystem(ecs, rng, availablePowerUps(rules))
	g.BossSystem = system.NewBossSystem(ecs, eventDispatcher, g.BulletSystem)
	g.Wave = system.NewWaveManager(eventDispatcher, g.EnemySystem)
	g.CollisionSystem = system.NewCollisionSystem(ecs, eventDispatcher, g, system.CombatSystems{
		Enemies:   g.EnemySystem,
		Bullets:   g.BulletSystem,
		Obstacles: g.ObstacleSystem,
		Boss:      g.BossSystem,
		Lasers:    g.LaserSystem,
		Pickups:   g.PowerUpSystem,
		PowerUps:  g.PowerUps,
		Particles: g.ParticleSystem,
		Combo:     g.Combo,
		Wave:      g.Wave,
	})

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.WaveStarted, listener)
	eventDispatcher.Subscribe(event.BossPhaseChanged, listener)

	bridge := NewAudioBridge(opts.Audio)
	eventDispatcher.Subscribe(event.SoundCue, bridge)
	eventDispatcher.Subscribe(event.MusicChanged, bridge)

	g.start()
	return g
}

func availablePowerUps(rules config.ModeRules) []defs.PowerUpType {
	if rules.FullPowerUpSet {
		return defs.FullPowerUps
	}
	return defs.BasicPowerUps
}

func (g *Game) start() {
	slog.Info("session started", "run", g.RunID, "mode", g.Rules.Mode, "seed", g.Rng.Seed())
	g.setMusic(event.MusicGame)
	g.Wave.StartNextWave()
}

// Restart resets the session in place and starts again from wave 1.
func (g *Game) Restart() {
	g.ECS.Reset(g.Rules)
	g.Combo.Reset()
	g.Ability.Reset()
	g.PowerUps.Clear()
	g.Upgrades.Reset()
	g.Scheduler.Clear()
	g.BossSystem.Despawn()
	g.EnemySystem.Reset()
	g.Wave.Reset()
	g.pendingUpgrades = nil
	g.dying = false
	g.gameOver = false
	g.Tick = 0
	g.RunID = uuid.NewString()
	g.start()
}

// Update advances the simulation by one frame.
func (g *Game) Update(rawDeltaTime float64, in input.State) {
	dt := math.Max(0, math.Min(rawDeltaTime, config.MaxDeltaTime))
	if g.gameOver {
		return
	}
	g.Tick++

	if g.dying {
		g.ParticleSystem.Update(dt)
		g.VisualEffectSystem.Update(dt)
		g.Scheduler.Update(dt)
		return
	}

	if len(g.pendingUpgrades) > 0 {
		if i := in.UpgradeChoice; i >= 1 && i <= len(g.pendingUpgrades) {
			g.ChooseUpgrade(g.pendingUpgrades[i-1].ID)
		}
		return
	}

	// Managers and cosmetic timers run on the raw frame delta.
	g.ECS.GameTime += dt
	g.ECS.Session.Clock += dt
	g.Ability.Update(dt)
	g.PowerUps.Update(dt)
	g.Combo.Update(dt)
	g.Wave.Update(dt)
	g.Scheduler.Update(dt)
	if g.updateCountdown(dt) {
		return
	}

	// After the wave tick, so a wave finished by the bomb is seen below.
	if in.Bomb {
		g.ActivateBomb()
	}

	// Gameplay runs on dilated time.
	scaled := dt * g.PowerUps.TimeScale()
	g.PlayerSystem.Update(scaled, in)
	g.EnemySystem.Update(scaled)
	g.ObstacleSystem.Update(scaled)
	g.BulletSystem.Update(scaled)
	g.LaserSystem.Update(scaled)
	g.BossSystem.Update(scaled)
	g.PowerUpSystem.Update(scaled)
	g.ParticleSystem.Update(dt)
	g.VisualEffectSystem.Update(dt)

	for _, req := range g.BossSystem.DrainSpawnRequests() {
		g.EnemySystem.SpawnMinions(req)
	}

	g.CollisionSystem.Resolve(scaled)

	// A run that ended this frame gets no clear rewards.
	if g.Wave.JustCompleted() && !g.dying {
		g.onWaveCleared()
	}
}

// updateCountdown runs the TIME_ATTACK clock and reports whether it expired.
func (g *Game) updateCountdown(dt float64) bool {
	if g.Rules.Countdown <= 0 {
		return false
	}
	s := g.ECS.Session
	s.TimeRemaining -= dt
	if s.TimeRemaining > 0 {
		return false
	}
	s.TimeRemaining = 0
	g.beginDeath()
	return true
}

// DamagePlayer is the single damage path for the player. It reports
// whether a life was lost.
func (g *Game) DamagePlayer() bool {
	if g.dying || g.gameOver {
		return false
	}
	p := g.ECS.Player
	if p.Invulnerable || g.PowerUps.Has(defs.PowerUpInvincibility) {
		return false
	}
	if g.PowerUps.ConsumeShield() {
		g.EventDispatcher.Dispatch(event.Event{Type: event.ShieldAbsorbed})
		return false
	}

	s := g.ECS.Session
	s.Lives--
	g.Combo.Break()
	g.VisualEffectSystem.Shake(config.ShakeOnDamage)
	px, py := p.Position()
	g.ParticleSystem.Explode(px, py, config.KillParticles, config.PlayerColor)
	g.playCue(event.CueDamage)
	g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: s.Lives})

	if s.Lives > 0 {
		p.Invulnerable = true
		p.InvulnTimer = 0
		return true
	}
	g.beginDeath()
	return true
}

// beginDeath stops gameplay; cosmetics keep running until the scheduled game over.
func (g *Game) beginDeath() {
	if g.dying {
		return
	}
	g.dying = true
	px, py := g.ECS.Player.Position()
	g.ParticleSystem.Explode(px, py, config.BossKillParticles, config.PlayerColor)
	g.VisualEffectSystem.Shake(config.ShakeOnBomb)
	g.playCue(event.CueBigExplosion)
	g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
	g.Scheduler.After(config.DeathAnimationDelay, g.finish)
}

func (g *Game) finish() {
	g.gameOver = true
	g.ECS.Session.GameOver = true
	slog.Info("session over", "run", g.RunID, "score", g.ECS.Session.Score, "wave", g.Wave.CurrentWave())
	g.setMusic(event.MusicMenu)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: g.ECS.Session.Score})
}

// ActivateBomb spends a bomb charge. It returns false when none is available.
func (g *Game) ActivateBomb() bool {
	if g.dying || g.gameOver || !g.Ability.Activate() {
		return false
	}

	for _, id := range g.ECS.EnemyIDs() {
		e, ok := g.ECS.Enemies[id]
		if !ok {
			continue
		}
		if e.MaxHP < config.BombKillThreshold {
			g.CollisionSystem.KillEnemy(id)
			continue
		}
		if g.EnemySystem.Damage(id, math.Max(1, e.MaxHP*config.BombDamageFraction)) {
			g.CollisionSystem.KillEnemy(id)
		}
	}
	if boss := g.ECS.Boss; boss != nil {
		if g.BossSystem.TakeDamage(math.Max(1, boss.MaxHP*config.BombBossFraction)) {
			g.OnBossDefeated()
		}
	}

	g.BulletSystem.Clear()
	g.ObstacleSystem.Clear()
	g.LaserSystem.Clear()
	g.VisualEffectSystem.Shake(config.ShakeOnBomb)
	g.playCue(event.CueBomb)
	g.EventDispatcher.Dispatch(event.Event{Type: event.BombActivated})
	return true
}

// OnBossDefeated ends the boss wave.
func (g *Game) OnBossDefeated() {
	b := g.ECS.Boss
	if b == nil {
		return
	}
	x, y := b.Position()
	g.ECS.Session.Score += int(math.Floor(float64(b.Score) * g.PowerUps.ScoreMultiplier() * g.ECS.Session.ScoreMult))
	g.ParticleSystem.Explode(x, y, config.BossKillParticles, b.Tint)
	g.VisualEffectSystem.Shake(config.ShakeOnBomb)
	g.playCue(event.CueBigExplosion)
	g.Ability.AddCharge()
	g.BossSystem.Despawn()
	g.Wave.CompleteBossWave()
	g.setMusic(event.MusicGame)
	g.EventDispatcher.Dispatch(event.Event{Type: event.BossDefeated})
}

// onWaveStarted sets up the field of a fresh wave.
func (g *Game) onWaveStarted(n int) {
	def := g.Wave.Definition()
	if def.Boss {
		g.BossSystem.Spawn(n, g.Rng.Range(0, 2*math.Pi))
		g.playCue(event.CueBossWarning)
		g.setMusic(event.MusicBoss)
		g.showBanner("WARNING: BOSS APPROACHING")
		return
	}
	if def.Obstacles > 0 {
		g.ObstacleSystem.SpawnWave(def.Obstacles)
	}
	g.showBanner(fmt.Sprintf("WAVE %d", n))
}

// onWaveCleared runs once in the frame a wave is completed.
func (g *Game) onWaveCleared() {
	s := g.ECS.Session
	if g.Rules.RecoverOnClear && s.Lives < s.MaxLives {
		s.Lives++
	}
	s.Score += g.Wave.WaveBonus()

	g.EnemySystem.Clear()
	g.BulletSystem.Clear()
	g.ObstacleSystem.Clear()
	g.LaserSystem.Clear()
	g.showBanner(fmt.Sprintf("WAVE %d CLEARED", g.Wave.CurrentWave()))

	if !g.Wave.WasBossWave() {
		g.pendingUpgrades = g.Upgrades.Offer(config.UpgradeChoices)
	}
}

// ChooseUpgrade applies one of the offered upgrades and resumes play.
func (g *Game) ChooseUpgrade(id defs.UpgradeID) bool {
	for _, u := range g.pendingUpgrades {
		if u.ID == id {
			g.pendingUpgrades = nil
			return g.Upgrades.Apply(id, g)
		}
	}
	return false
}

// PendingUpgrades lists the cards on offer; gameplay is held while non-empty.
func (g *Game) PendingUpgrades() []defs.UpgradeDefinition { return g.pendingUpgrades }

func (g *Game) IsGameOver() bool { return g.gameOver }
func (g *Game) IsDying() bool    { return g.dying }

func (g *Game) showBanner(text string) {
	banner := g.ECS.Banner
	banner.Text = text
	banner.Visible = true
	g.Scheduler.After(config.BannerDuration, func() {
		if g.ECS.Banner.Text == text {
			g.ECS.Banner.Visible = false
		}
	})
}

func (g *Game) playCue(cue event.Cue) {
	g.EventDispatcher.Dispatch(event.Event{Type: event.SoundCue, Data: cue})
}

func (g *Game) setMusic(m event.Music) {
	g.EventDispatcher.Dispatch(event.Event{Type: event.MusicChanged, Data: m})
}

// GameEventListener reacts to lifecycle events of the managers.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		if n, ok := e.Data.(int); ok {
			l.game.onWaveStarted(n)
		}
	case event.BossPhaseChanged:
		l.game.VisualEffectSystem.Shake(config.ShakeOnDamage)
	}
}
