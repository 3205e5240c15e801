package app

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-radial-arena/internal/component"
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/event"
	"go-radial-arena/internal/input"
)

type recordingSink struct {
	cues  []string
	music []string
}

func (r *recordingSink) PlayCue(name string)   { r.cues = append(r.cues, name) }
func (r *recordingSink) SetMusic(state string) { r.music = append(r.music, state) }

func newTestGame(t *testing.T, mode config.GameMode) (*Game, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	g := NewGame(Options{Mode: mode, Seed: 1, Audio: sink})
	return g, sink
}

// run advances the game by total seconds in fixed steps.
func run(g *Game, total, step float64, in input.State) {
	for elapsed := 0.0; elapsed < total-1e-9; elapsed += step {
		g.Update(step, in)
	}
}

// shootAt parks a static player bullet on top of the enemy.
func shootAt(g *Game, e *component.Enemy) {
	x, y := e.Position()
	g.BulletSystem.FireFree(x, y, 0, 0, component.OwnerPlayer, 1, 0.5, 1)
}

func enemyBulletOnPlayer(g *Game) {
	px, py := g.ECS.Player.Position()
	g.BulletSystem.FireFree(px, py, 0, 0, component.OwnerEnemy, 1, 0.5, 1)
}

func TestNewGameStartsFirstWave(t *testing.T) {
	g, sink := newTestGame(t, config.ModeClassic)

	assert.Equal(t, 1, g.Wave.CurrentWave())
	assert.Equal(t, 3, g.ECS.Session.Lives)
	assert.NotEmpty(t, g.RunID)
	assert.Equal(t, []string{string(event.MusicGame)}, sink.music)
	assert.Equal(t, "WAVE 1", g.HUD().Banner)
}

func TestScenarioPlayerHitAndInvulnerability(t *testing.T) {
	g, sink := newTestGame(t, config.ModeClassic)
	for i := 0; i < 6; i++ {
		g.Combo.OnHit()
	}

	enemyBulletOnPlayer(g)
	g.Update(0.016, input.State{})

	p := g.ECS.Player
	assert.Equal(t, 2, g.ECS.Session.Lives)
	assert.Equal(t, 0, g.Combo.Combo())
	assert.True(t, p.Invulnerable)
	assert.Contains(t, sink.cues, string(event.CueDamage))

	enemyBulletOnPlayer(g)
	g.Update(0.016, input.State{})
	assert.Equal(t, 2, g.ECS.Session.Lives, "no life lost while invulnerable")

	run(g, config.PlayerInvulnDuration, 0.05, input.State{})
	assert.False(t, p.Invulnerable)

	enemyBulletOnPlayer(g)
	g.Update(0.016, input.State{})
	assert.Equal(t, 1, g.ECS.Session.Lives)
}

func TestShieldAbsorbsHit(t *testing.T) {
	g, _ := newTestGame(t, config.ModeClassic)
	absorbed := 0
	g.EventDispatcher.Subscribe(event.ShieldAbsorbed, event.ListenerFunc(func(event.Event) { absorbed++ }))
	g.PowerUps.Collect(defs.PowerUpShield)
	g.Combo.OnHit()

	assert.False(t, g.DamagePlayer())
	assert.Equal(t, 3, g.ECS.Session.Lives)
	assert.Equal(t, 1, g.Combo.Combo(), "an absorbed hit keeps the combo")
	assert.False(t, g.ECS.Player.Invulnerable)
	assert.False(t, g.PowerUps.Has(defs.PowerUpShield))
	assert.Equal(t, 1, absorbed)

	assert.True(t, g.DamagePlayer())
	assert.Equal(t, 2, g.ECS.Session.Lives)
}

func TestInvincibilityPowerUp(t *testing.T) {
	g, _ := newTestGame(t, config.ModeTimeAttack)
	g.PowerUps.Collect(defs.PowerUpInvincibility)
	assert.False(t, g.DamagePlayer())
	assert.Equal(t, 3, g.ECS.Session.Lives)
}

func TestDeathSequence(t *testing.T) {
	g, sink := newTestGame(t, config.ModeSurvival)
	over := 0
	g.EventDispatcher.Subscribe(event.GameOver, event.ListenerFunc(func(event.Event) { over++ }))

	require.Equal(t, 1, g.ECS.Session.Lives)
	assert.True(t, g.DamagePlayer())
	assert.True(t, g.IsDying())
	assert.False(t, g.IsGameOver())
	assert.False(t, g.DamagePlayer(), "no damage while dying")

	clock := g.ECS.Session.Clock
	for i := 0; i < 14; i++ {
		g.Update(0.1, input.State{Fire: true})
	}
	assert.False(t, g.IsGameOver())
	assert.Equal(t, clock, g.ECS.Session.Clock, "gameplay is frozen while dying")
	assert.Empty(t, g.ECS.Bullets)

	g.Update(0.1, input.State{})
	assert.True(t, g.IsGameOver())
	assert.True(t, g.HUD().GameOver)
	assert.Equal(t, 1, over)
	assert.Equal(t, string(event.MusicMenu), sink.music[len(sink.music)-1])

	tick := g.Tick
	g.Update(0.1, input.State{})
	assert.Equal(t, tick, g.Tick, "nothing runs after game over")
}

func TestDeltaTimeClamp(t *testing.T) {
	g, _ := newTestGame(t, config.ModeClassic)
	g.Update(5, input.State{})
	assert.InDelta(t, config.MaxDeltaTime, g.ECS.Session.Clock, 1e-12)

	g.Update(-1, input.State{})
	assert.InDelta(t, config.MaxDeltaTime, g.ECS.Session.Clock, 1e-12)
}

func TestRadiusStaysClamped(t *testing.T) {
	g, _ := newTestGame(t, config.ModeClassic)
	p := g.ECS.Player
	for i := 0; i < 300; i++ {
		in := input.State{MoveIn: i%100 < 60, MoveOut: i%100 >= 60, RotateLeft: true}
		g.Update(0.05, in)
		require.GreaterOrEqual(t, p.Radius, p.MinRadius)
		require.LessOrEqual(t, p.Radius, p.MaxRadius)
	}
}

func TestBombEffects(t *testing.T) {
	g, sink := newTestGame(t, config.ModeClassic)
	normal, _ := g.EnemySystem.Spawn(defs.EnemyNormal, 0, 30)
	tank, _ := g.EnemySystem.Spawn(defs.EnemyTank, math.Pi, 30)
	g.ObstacleSystem.Spawn(1, 2)
	g.BulletSystem.FireFree(0, 20, 0, 0, component.OwnerEnemy, 1, 0.5, 5)
	g.LaserSystem.Create(20, 0, 0, 1, 1)

	g.Update(0.016, input.State{Bomb: true})

	assert.NotContains(t, g.ECS.Enemies, normal)
	require.Contains(t, g.ECS.Enemies, tank)
	assert.InDelta(t, 5*(1-config.BombDamageFraction), g.ECS.Enemies[tank].HP, 1e-9)
	assert.Empty(t, g.ECS.Bullets)
	assert.Empty(t, g.ECS.Obstacles)
	assert.Empty(t, g.ECS.Lasers)
	assert.Equal(t, config.BombStartCharges-1, g.Ability.Charges())
	assert.Equal(t, 1, g.Wave.Kills())
	assert.Contains(t, sink.cues, string(event.CueBomb))
	assert.Greater(t, g.ECS.Camera.Shake, 0.0)

	assert.False(t, g.ActivateBomb(), "cooldown")
	assert.Equal(t, config.BombStartCharges-1, g.Ability.Charges())
}

func TestBombDamagesBoss(t *testing.T) {
	g, _ := newTestGame(t, config.ModeClassic)
	b := g.BossSystem.Spawn(5, 0)
	require.True(t, g.ActivateBomb())
	assert.InDelta(t, b.MaxHP*(1-config.BombBossFraction), b.HP, 1e-9)
}

func clearWave(t *testing.T, g *Game) {
	t.Helper()
	n := g.Wave.RequiredKills() - g.Wave.Kills()
	for i := 0; i < n; i++ {
		id, ok := g.EnemySystem.Spawn(defs.EnemyNormal, 2*math.Pi*float64(i)/float64(n), 20)
		require.True(t, ok)
		shootAt(g, g.ECS.Enemies[id])
	}
	g.Update(0.001, input.State{})
	require.True(t, g.Wave.InTransition())
}

func TestWaveClearRecoversLifeAndOffersUpgrades(t *testing.T) {
	g, _ := newTestGame(t, config.ModeClassic)
	g.ECS.Session.Lives = 2

	clearWave(t, g)

	assert.Equal(t, 3, g.ECS.Session.Lives)
	assert.GreaterOrEqual(t, g.ECS.Session.Score, g.Wave.WaveBonus())
	assert.Empty(t, g.ECS.Enemies)
	assert.Len(t, g.PendingUpgrades(), config.UpgradeChoices)
	assert.Equal(t, "WAVE 1 CLEARED", g.HUD().Banner)
}

func TestWaveClearIgnoredWhenPlayerDiesSameFrame(t *testing.T) {
	g, _ := newTestGame(t, config.ModeClassic)
	g.ECS.Session.Lives = 1
	for g.Wave.Kills() < g.Wave.RequiredKills()-1 {
		g.Wave.OnEnemyKilled()
	}
	last, ok := g.EnemySystem.Spawn(defs.EnemyNormal, math.Pi/2, 20)
	require.True(t, ok)
	shootAt(g, g.ECS.Enemies[last])
	_, ok = g.EnemySystem.Spawn(defs.EnemyNormal, math.Pi, config.PlayerStartRadius-0.5)
	require.True(t, ok)
	score := g.ECS.Session.Score

	g.Update(0.001, input.State{})

	require.True(t, g.IsDying())
	assert.Equal(t, 0, g.ECS.Session.Lives)
	assert.Empty(t, g.PendingUpgrades())
	assert.Less(t, g.ECS.Session.Score-score, g.Wave.WaveBonus())
}

func TestUpgradeChoicePausesGameplay(t *testing.T) {
	g, _ := newTestGame(t, config.ModeClassic)
	clearWave(t, g)
	offer := g.PendingUpgrades()
	require.NotEmpty(t, offer)

	clock := g.ECS.Session.Clock
	run(g, 5, 0.1, input.State{Fire: true})
	assert.Equal(t, clock, g.ECS.Session.Clock)
	assert.Equal(t, 1, g.Wave.CurrentWave())
	assert.Empty(t, g.ECS.Bullets)

	g.Update(0.1, input.State{UpgradeChoice: 1})
	assert.Empty(t, g.PendingUpgrades())
	assert.Equal(t, 1, g.Upgrades.Level(offer[0].ID))

	run(g, config.WaveTransitionDuration+0.2, 0.1, input.State{})
	assert.Equal(t, 2, g.Wave.CurrentWave())
}

func TestChooseUpgradeRejectsCardsNotOffered(t *testing.T) {
	g, _ := newTestGame(t, config.ModeClassic)
	assert.False(t, g.ChooseUpgrade(defs.UpgradeFireRate))

	clearWave(t, g)
	offered := map[defs.UpgradeID]bool{}
	for _, u := range g.PendingUpgrades() {
		offered[u.ID] = true
	}
	for _, u := range defs.UpgradeCatalog {
		if !offered[u.ID] {
			assert.False(t, g.ChooseUpgrade(u.ID))
			break
		}
	}
	assert.NotEmpty(t, g.PendingUpgrades())
}

func TestUpgradeEffects(t *testing.T) {
	g, _ := newTestGame(t, config.ModeClassic)
	p := g.ECS.Player

	g.BoostFireRate(0.15)
	g.BoostMoveSpeed(0.1)
	g.BoostBulletSize(0.2)
	g.BoostScoreMultiplier(0.5)
	assert.InDelta(t, 1.15, p.FireRateMult, 1e-9)
	assert.InDelta(t, 1.1, p.MoveSpeedMult, 1e-9)
	assert.InDelta(t, 1.2, p.BulletSizeMult, 1e-9)
	assert.InDelta(t, 1.2, p.DamageMult, 1e-9)
	assert.InDelta(t, 1.5, g.ECS.Session.ScoreMult, 1e-9)

	g.ECS.Session.Lives = 2
	g.AddMaxLife()
	assert.Equal(t, 6, g.ECS.Session.MaxLives)
	assert.Equal(t, 3, g.ECS.Session.Lives)

	g.AddBombCapacity()
	assert.Equal(t, config.BombMaxCharges+1, g.Ability.MaxCharges())
	assert.Equal(t, config.BombStartCharges+1, g.Ability.Charges())
}

func TestSurvivalDoesNotRecoverLives(t *testing.T) {
	g, _ := newTestGame(t, config.ModeSurvival)
	g.PowerUps.Collect(defs.PowerUpShield) // keep the single life through the test
	clearWave(t, g)
	assert.Equal(t, 1, g.ECS.Session.Lives)
	assert.Equal(t, 1, g.ECS.Session.MaxLives)
}

func TestBossWaveFlow(t *testing.T) {
	g, sink := newTestGame(t, config.ModeClassic)
	for g.Wave.CurrentWave() < 5 {
		g.Wave.StartNextWave()
	}
	require.NotNil(t, g.ECS.Boss)
	assert.True(t, g.Wave.IsBossWaveActive())
	assert.False(t, g.EnemySystem.SpawningEnabled)
	assert.Contains(t, sink.cues, string(event.CueBossWarning))
	assert.Equal(t, string(event.MusicBoss), sink.music[len(sink.music)-1])
	assert.Equal(t, "WARNING: BOSS APPROACHING", g.HUD().Banner)

	b := g.ECS.Boss
	b.HP = 1
	g.BossSystem.Update(0) // settle into phase 3 before aiming
	require.Equal(t, 3, b.Phase)
	score := g.ECS.Session.Score
	charges := g.Ability.Charges()
	bx, by := b.Position()
	g.BulletSystem.FireFree(bx, by, 0, 0, component.OwnerPlayer, 1, 0.5, 1)
	g.Update(0.001, input.State{})

	assert.Nil(t, g.ECS.Boss)
	assert.Equal(t, charges+1, g.Ability.Charges())
	assert.GreaterOrEqual(t, g.ECS.Session.Score-score, b.Score+g.Wave.WaveBonus())
	assert.True(t, g.Wave.InTransition())
	assert.Empty(t, g.PendingUpgrades(), "no upgrade after a boss wave")
	assert.Equal(t, string(event.MusicGame), sink.music[len(sink.music)-1])
}

func TestBossMinionsRealised(t *testing.T) {
	g, _ := newTestGame(t, config.ModeClassic)
	for g.Wave.CurrentWave() < 5 {
		g.Wave.StartNextWave()
	}
	g.EnemySystem.Clear()
	g.ObstacleSystem.Clear()
	b := g.ECS.Boss
	b.HP = b.MaxHP * 0.5
	g.PowerUps.Collect(defs.PowerUpInvincibility)

	run(g, 5.1, 0.05, input.State{})
	assert.NotEmpty(t, g.ECS.Enemies)
	assert.Equal(t, 2, g.BossSystem.Phase())
}

func TestTimeAttackCountdown(t *testing.T) {
	g, _ := newTestGame(t, config.ModeTimeAttack)
	hud := g.HUD()
	require.True(t, hud.Timed)
	assert.Equal(t, 180.0, hud.TimeRemaining)

	g.ECS.Session.TimeRemaining = 0.05
	g.Update(0.1, input.State{})
	assert.True(t, g.IsDying())
	assert.Zero(t, g.ECS.Session.TimeRemaining)

	run(g, config.DeathAnimationDelay+0.1, 0.1, input.State{})
	assert.True(t, g.IsGameOver())
}

func TestTimeSlowScalesGameplayOnly(t *testing.T) {
	g, _ := newTestGame(t, config.ModeTimeAttack)
	id, _ := g.EnemySystem.Spawn(defs.EnemyTank, 0, 30)
	e := g.ECS.Enemies[id]
	e.OrbitDir = 0
	g.PowerUps.Collect(defs.PowerUpTimeSlow)
	g.Ability.Activate()
	cooldown := g.Ability.CooldownRemaining()

	g.Update(0.1, input.State{})

	approach := g.EnemySystem.ApproachSpeed * e.Speed
	assert.InDelta(t, 30-approach*0.1*config.TimeSlowFactor, e.Radius, 1e-9)
	assert.InDelta(t, cooldown-0.1, g.Ability.CooldownRemaining(), 1e-9, "managers run on the raw delta")
}

func TestRestart(t *testing.T) {
	g, _ := newTestGame(t, config.ModeClassic)
	runID := g.RunID
	g.ECS.Session.Score = 1234
	g.Combo.OnHit()
	g.ActivateBomb()
	g.ECS.Session.Lives = 1
	g.DamagePlayer()
	run(g, 2, 0.1, input.State{})
	require.True(t, g.IsGameOver())

	g.Restart()
	assert.False(t, g.IsGameOver())
	assert.False(t, g.IsDying())
	assert.Zero(t, g.ECS.Session.Score)
	assert.Equal(t, 3, g.ECS.Session.Lives)
	assert.Equal(t, 1, g.Wave.CurrentWave())
	assert.Equal(t, config.BombStartCharges, g.Ability.Charges())
	assert.Zero(t, g.Combo.Combo())
	assert.NotEqual(t, runID, g.RunID)
	assert.Equal(t, "WAVE 1", g.HUD().Banner)
	assert.Empty(t, g.ECS.Enemies)

	g.Update(0.1, input.State{})
	assert.InDelta(t, 0.1, g.ECS.Session.Clock, 1e-12)
}

func TestDeterministicReplay(t *testing.T) {
	play := func() *Game {
		g := NewGame(Options{Mode: config.ModeClassic, Seed: 2024})
		for i := 0; i < 1500; i++ {
			in := input.State{Fire: true, RotateLeft: (i/90)%2 == 0, RotateRight: (i/90)%2 == 1}
			if len(g.PendingUpgrades()) > 0 {
				in.UpgradeChoice = 1
			}
			g.Update(1.0/60, in)
		}
		return g
	}

	a, b := play(), play()
	assert.Equal(t, a.ECS.Session.Score, b.ECS.Session.Score)
	assert.Equal(t, a.ECS.Session.Kills, b.ECS.Session.Kills)
	assert.Equal(t, a.ECS.Session.Lives, b.ECS.Session.Lives)
	assert.Equal(t, a.Wave.CurrentWave(), b.Wave.CurrentWave())
	assert.Equal(t, a.ECS.EnemyIDs(), b.ECS.EnemyIDs())
	assert.Equal(t, a.ECS.Player.Angle, b.ECS.Player.Angle)
}
