package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-radial-arena/internal/component"
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/input"
)

func spritesOf(f RenderFrame, kind SpriteKind) []Sprite {
	var out []Sprite
	for _, s := range f.Sprites {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

func TestHUDSnapshot(t *testing.T) {
	g, _ := newTestGame(t, config.ModeClassic)
	for i := 0; i < 5; i++ {
		g.Combo.OnHit()
	}
	g.PowerUps.Collect(defs.PowerUpRapidFire)
	g.ActivateBomb()

	h := g.HUD()
	assert.Equal(t, config.ModeClassic, h.Mode)
	assert.Equal(t, 1, h.Wave)
	assert.Equal(t, 12, h.RequiredKills)
	assert.Equal(t, 5, h.Combo)
	assert.Equal(t, 2.0, h.ComboMultiplier)
	require.Len(t, h.PowerUps, 1)
	assert.Equal(t, defs.PowerUpRapidFire, h.PowerUps[0].Type)
	assert.Equal(t, config.BombStartCharges-1, h.BombCharges)
	assert.Zero(t, h.BombCooldown)
	assert.False(t, h.Timed)
	assert.False(t, h.BossActive)
	assert.Equal(t, defs.WeaponLibrary[defs.WeaponStandard].Name, h.Weapon)

	g.BossSystem.Spawn(5, 0)
	h = g.HUD()
	assert.True(t, h.BossActive)
	assert.Equal(t, 1.0, h.BossHP)
	assert.Equal(t, 1, h.BossPhase)
}

func TestBannerHides(t *testing.T) {
	g, _ := newTestGame(t, config.ModeClassic)
	require.Equal(t, "WAVE 1", g.HUD().Banner)
	run(g, config.BannerDuration+0.1, 0.1, input.State{})
	assert.Empty(t, g.HUD().Banner)
}

func TestFrameLayering(t *testing.T) {
	g, _ := newTestGame(t, config.ModeClassic)
	g.EnemySystem.Spawn(defs.EnemyShield, 0, 30)
	g.BulletSystem.FireFree(0, 20, 1, 0, component.OwnerEnemy, 1, 0.5, 1)
	g.PowerUpSystem.Spawn(0, 25, defs.PowerUpMagnet)
	g.ParticleSystem.Explode(5, 5, 3, config.PlayerColor)
	g.LaserSystem.Create(20, 0, 0, 1, 1)

	f := g.Frame()
	require.NotEmpty(t, f.Sprites)
	assert.Equal(t, SpriteParticle, f.Sprites[0].Kind)
	assert.Equal(t, SpritePlayer, f.Sprites[len(f.Sprites)-1].Kind)

	enemies := spritesOf(f, SpriteEnemy)
	require.Len(t, enemies, 1)
	assert.True(t, enemies[0].Shielded)
	assert.Equal(t, string(defs.EnemyShield), enemies[0].Variant)

	assert.Len(t, spritesOf(f, SpriteEnemyShot), 1)
	assert.Len(t, spritesOf(f, SpritePickup), 1)
	require.Len(t, f.Lasers, 1)
	assert.False(t, f.Lasers[0].Firing)
	assert.Equal(t, config.PlayerMinRadius, f.MinRadius)
}

func TestFramePlayerStates(t *testing.T) {
	g, _ := newTestGame(t, config.ModeClassic)
	g.PowerUps.Collect(defs.PowerUpShield)
	assert.Len(t, spritesOf(g.Frame(), SpriteShieldField), 1)

	g.ECS.Player.Invulnerable = true
	g.ECS.Player.InvulnTimer = 0.05
	players := spritesOf(g.Frame(), SpritePlayer)
	require.Len(t, players, 1)
	assert.Less(t, players[0].Opacity, 1.0)

	g.ECS.Session.Lives = 1
	g.ECS.Player.Invulnerable = false
	g.PowerUps.ConsumeShield()
	g.DamagePlayer()
	assert.Empty(t, spritesOf(g.Frame(), SpritePlayer), "hidden while dying")
}

func TestSpectatorFrame(t *testing.T) {
	g, _ := newTestGame(t, config.ModeTimeAttack)
	g.EnemySystem.Spawn(defs.EnemyNormal, 0, 30)
	g.ParticleSystem.Explode(0, 0, 10, config.PlayerColor)
	g.Update(0.016, input.State{})

	f := g.SpectatorFrame()
	assert.Equal(t, g.RunID, f.RunID)
	assert.Equal(t, string(config.ModeTimeAttack), f.Mode)
	assert.Equal(t, g.Tick, f.Tick)
	assert.Equal(t, g.ECS.Session.Lives, f.HUD.Lives)

	kinds := map[string]int{}
	for _, e := range f.Entities {
		kinds[e.Kind]++
	}
	assert.Equal(t, 1, kinds["enemy:normal"])
	assert.Equal(t, 1, kinds[string(SpritePlayer)])
	assert.Zero(t, kinds[string(SpriteParticle)])

	_, err := f.Encode()
	assert.NoError(t, err)
}
