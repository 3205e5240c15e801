package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-radial-arena/internal/component"
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/event"
)

func TestScenarioSingleKill(t *testing.T) {
	w := newTestWorld(t)
	w.wave.StartNextWave()

	var killed []event.EnemyKilledData
	w.dispatcher.Subscribe(event.EnemyKilled, event.ListenerFunc(func(e event.Event) {
		killed = append(killed, e.Data.(event.EnemyKilledData))
	}))

	eid, ok := w.enemies.Spawn(defs.EnemyNormal, 0, config.SpawnRadius)
	require.True(t, ok)
	w.bullets.Fire(0, config.PlayerStartRadius, defs.WeaponLibrary[defs.WeaponStandard], 1, 1)

	for i := 0; i < 200 && len(w.ecs.Enemies) > 0; i++ {
		w.step(0.02)
	}

	assert.NotContains(t, w.ecs.Enemies, eid)
	assert.Empty(t, w.ecs.Bullets)
	assert.Equal(t, 100, w.ecs.Session.Score)
	assert.Equal(t, 1, w.combo.Combo())
	assert.Equal(t, 1, w.wave.Kills())
	require.Len(t, killed, 1)
	assert.Equal(t, defs.EnemyNormal, killed[0].Type)
}

func TestScoreAppliesAllMultipliers(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 4; i++ {
		w.combo.OnHit()
	}
	w.powerUps.Collect(defs.PowerUpMultiplier)
	w.ecs.Session.ScoreMult = 1.5

	w.enemies.Spawn(defs.EnemyNormal, 0, 20)
	w.bullets.FireFree(20, 0, 0, 0, component.OwnerPlayer, 1, 0.5, 1)
	w.collision.Resolve(0.016)

	// combo 5 -> x2, power-up x2, upgrades x1.5
	assert.Equal(t, 600, w.ecs.Session.Score)
}

func TestPierceCap(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 5; i++ {
		_, ok := w.enemies.Spawn(defs.EnemyTank, 0, 20+2*float64(i))
		require.True(t, ok)
	}
	bid := w.bullets.Fire(0, 10, defs.WeaponLibrary[defs.WeaponPiercing], 1, 1)

	for i := 0; i < 500; i++ {
		if _, alive := w.ecs.Bullets[bid]; !alive {
			break
		}
		w.step(0.01)
	}
	require.NotContains(t, w.ecs.Bullets, bid)

	damaged := 0
	for _, e := range w.ecs.Enemies {
		if e.HP < e.MaxHP {
			damaged++
		}
	}
	assert.Equal(t, 4, damaged, "three pierces, removed on the fourth contact")
	assert.Len(t, w.ecs.Enemies, 5)
}

func TestShieldBlocksFrontalHemisphere(t *testing.T) {
	w := newTestWorld(t)
	id, _ := w.enemies.Spawn(defs.EnemyShield, 0, 20)
	e := w.ecs.Enemies[id]
	require.InDelta(t, math.Pi, e.Shield.ShieldAngle, 1e-9, "spawned facing the core")

	assert.True(t, ShieldBlocks(e, 19, 0))
	assert.True(t, ShieldBlocks(e, 20, 1), "the ±90° edge still blocks")
	assert.False(t, ShieldBlocks(e, 21, 0))
	assert.False(t, ShieldBlocks(&component.Enemy{}, 0, 0))
}

func TestShieldBlockDestroysBulletWithoutDamage(t *testing.T) {
	w := newTestWorld(t)
	id, _ := w.enemies.Spawn(defs.EnemyShield, 0, 20)
	e := w.ecs.Enemies[id]

	front := w.bullets.FireFree(19.5, 0, 0, 0, component.OwnerPlayer, 1, 0.5, 1)
	w.collision.Resolve(0.016)
	assert.NotContains(t, w.ecs.Bullets, front)
	assert.Equal(t, e.MaxHP, e.HP)
	assert.Equal(t, 0, w.combo.Combo())

	back := w.bullets.FireFree(20.5, 0, 0, 0, component.OwnerPlayer, 1, 0.5, 1)
	w.collision.Resolve(0.016)
	assert.NotContains(t, w.ecs.Bullets, back)
	assert.Equal(t, e.MaxHP-1, e.HP)
}

func TestExplosiveSplash(t *testing.T) {
	w := newTestWorld(t)
	w.enemies.Spawn(defs.EnemyNormal, 0, 20)
	w.enemies.Spawn(defs.EnemyNormal, 0, 22)
	far, _ := w.enemies.Spawn(defs.EnemyNormal, math.Pi, 20)

	w.bullets.Fire(0, 20, defs.WeaponLibrary[defs.WeaponExplosive], 1, 1)
	w.collision.Resolve(0.016)

	require.Len(t, w.ecs.Enemies, 1)
	assert.Contains(t, w.ecs.Enemies, far)
	assert.Equal(t, 2, w.ecs.Session.Kills)
}

func TestSplitterSpawnsOffspring(t *testing.T) {
	w := newTestWorld(t)
	id, _ := w.enemies.Spawn(defs.EnemySplitter, 0, 20)
	w.ecs.Enemies[id].HP = 1

	w.bullets.FireFree(20, 0, 0, 0, component.OwnerPlayer, 1, 0.5, 1)
	w.collision.Resolve(0.016)

	require.NotContains(t, w.ecs.Enemies, id)
	n := len(w.ecs.Enemies)
	assert.GreaterOrEqual(t, n, config.SplitOffspringMin)
	assert.LessOrEqual(t, n, config.SplitOffspringMax)
	for _, e := range w.ecs.Enemies {
		assert.Equal(t, defs.EnemySpeed, e.Type)
	}
}

func TestKamikazeDeathSplashesPlayer(t *testing.T) {
	w := newTestWorld(t)
	id, _ := w.enemies.Spawn(defs.EnemyKamikaze, 0, config.PlayerStartRadius+2.5)
	w.bullets.FireFree(config.PlayerStartRadius+2.5, 0, 0, 0, component.OwnerPlayer, 1, 0.5, 1)

	w.collision.Resolve(0.016)
	assert.NotContains(t, w.ecs.Enemies, id)
	assert.Equal(t, 1, w.ctx.damage)
}

func TestBossWaveKillsDoNotCount(t *testing.T) {
	w := newTestWorld(t)
	for w.wave.CurrentWave() < 5 {
		w.wave.StartNextWave()
	}
	require.True(t, w.wave.IsBossWaveActive())

	w.enemies.Spawn(defs.EnemyNormal, 0, 20)
	w.bullets.FireFree(20, 0, 0, 0, component.OwnerPlayer, 1, 0.5, 1)
	w.collision.Resolve(0.016)

	assert.Empty(t, w.ecs.Enemies)
	assert.Equal(t, 0, w.wave.Kills())
	assert.True(t, w.wave.IsBossWaveActive())
}

func TestEnemyContactAndBreach(t *testing.T) {
	w := newTestWorld(t)
	touching, _ := w.enemies.Spawn(defs.EnemyNormal, 0, config.PlayerStartRadius+1)
	breach, _ := w.enemies.Spawn(defs.EnemyNormal, math.Pi, config.PlayerStartRadius-0.5)
	safe, _ := w.enemies.Spawn(defs.EnemyNormal, math.Pi/2, config.PlayerStartRadius+10)

	w.collision.Resolve(0.016)

	assert.Equal(t, 2, w.ctx.damage)
	assert.NotContains(t, w.ecs.Enemies, touching)
	assert.NotContains(t, w.ecs.Enemies, breach)
	assert.Contains(t, w.ecs.Enemies, safe)
}

func TestEnemyBulletHitsPlayer(t *testing.T) {
	w := newTestWorld(t)
	px, py := w.ecs.Player.Position()
	hit := w.bullets.FireFree(px+0.5, py, 0, 0, component.OwnerEnemy, 1, 0.5, 1)
	miss := w.bullets.FireFree(px+5, py, 0, 0, component.OwnerEnemy, 1, 0.5, 1)

	w.collision.Resolve(0.016)
	assert.Equal(t, 1, w.ctx.damage)
	assert.NotContains(t, w.ecs.Bullets, hit)
	assert.Contains(t, w.ecs.Bullets, miss)
}

func TestObstacleHitFlashAndDestroy(t *testing.T) {
	w := newTestWorld(t)
	oid := w.obstacles.Spawn(0, 1)
	o := w.ecs.Obstacles[oid]
	o.Radius = 20
	require.Equal(t, 2.0, o.HP)

	w.bullets.FireFree(20, 0, 0, 0, component.OwnerPlayer, 1, 0.5, 1)
	w.collision.Resolve(0.016)
	assert.True(t, o.Flashing)
	assert.Equal(t, 0, w.ecs.Session.Score)

	w.scheduler.Update(config.HitFlashDuration)
	assert.False(t, o.Flashing)

	w.bullets.FireFree(20, 0, 0, 0, component.OwnerPlayer, 1, 0.5, 1)
	w.collision.Resolve(0.016)
	assert.NotContains(t, w.ecs.Obstacles, oid)
	assert.Equal(t, config.ObstacleScore, w.ecs.Session.Score)
	assert.NotEmpty(t, w.ecs.Particles, "debris left behind")
}

func TestObstacleFlashResetAfterDestroy(t *testing.T) {
	w := newTestWorld(t)
	oid := w.obstacles.Spawn(0, 2)
	w.obstacles.Hit(oid, 1)
	w.obstacles.Destroy(oid)

	assert.NotPanics(t, func() { w.scheduler.Update(1) })
}

func TestObstacleContactDamagesPlayer(t *testing.T) {
	w := newTestWorld(t)
	oid := w.obstacles.Spawn(0, 1)
	w.ecs.Obstacles[oid].Radius = config.PlayerStartRadius + 1

	w.collision.Resolve(0.016)
	assert.Equal(t, 1, w.ctx.damage)
	assert.NotContains(t, w.ecs.Obstacles, oid)
}

func TestLaserOnlyDamagesWhileFiring(t *testing.T) {
	w := newTestWorld(t)
	w.lasers.Create(20, 0, 0, config.LaserTelegraphDuration, config.LaserFireDuration)

	w.collision.Resolve(0.016)
	assert.Equal(t, 0, w.ctx.damage, "telegraph is harmless")

	w.lasers.Update(config.LaserTelegraphDuration)
	w.collision.Resolve(0.016)
	assert.Equal(t, 1, w.ctx.damage)

	w.lasers.Update(config.LaserFireDuration)
	assert.Empty(t, w.ecs.Lasers)
}

func TestBossHitAndDefeat(t *testing.T) {
	w := newTestWorld(t)
	b := w.boss.Spawn(5, 0)
	bx, by := b.Position()

	w.bullets.FireFree(bx, by, 0, 0, component.OwnerPlayer, 1, 0.5, 1)
	w.collision.Resolve(0.016)
	assert.Equal(t, b.MaxHP-1, b.HP)
	assert.Equal(t, 1, w.combo.Combo())
	assert.Zero(t, w.ctx.bossDefeated)

	b.HP = 1
	w.bullets.FireFree(bx, by, 0, 0, component.OwnerPlayer, 1, 0.5, 1)
	w.bullets.FireFree(bx, by, 0, 0, component.OwnerPlayer, 1, 0.5, 1)
	w.collision.Resolve(0.016)
	assert.Equal(t, 1, w.ctx.bossDefeated)
}

func TestPickupCollectionAndMagnet(t *testing.T) {
	w := newTestWorld(t)
	px, py := w.ecs.Player.Position()
	w.pickups.Spawn(px, py, defs.PowerUpMagnet)
	far := w.pickups.Spawn(px+10, py, defs.PowerUpRapidFire)

	w.collision.Resolve(0.1)
	assert.True(t, w.powerUps.Has(defs.PowerUpMagnet))
	require.Contains(t, w.ecs.PowerUps, far)

	x0, y0 := w.ecs.PowerUps[far].Position()
	before := math.Hypot(x0-px, y0-py)
	w.collision.Resolve(0.1)
	x1, y1 := w.ecs.PowerUps[far].Position()
	assert.InDelta(t, before-config.MagnetAttractionSpeed*0.1, math.Hypot(x1-px, y1-py), 1e-6)

	for i := 0; i < 20; i++ {
		w.collision.Resolve(0.1)
	}
	assert.True(t, w.powerUps.Has(defs.PowerUpRapidFire))
	assert.Empty(t, w.ecs.PowerUps)
}
