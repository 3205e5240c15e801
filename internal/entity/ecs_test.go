package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-radial-arena/internal/component"
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/types"
)

func TestNewECSStartsFromModeRules(t *testing.T) {
	ecs := NewECS(config.Rules(config.ModeSurvival))
	require.NotNil(t, ecs.Player)
	assert.Equal(t, 1, ecs.Session.Lives)
	assert.Equal(t, config.PlayerStartRadius, ecs.Player.Radius)
	assert.Nil(t, ecs.Boss)
}

func TestOrderedIDs(t *testing.T) {
	ecs := NewECS(config.Rules(config.ModeClassic))
	var want []types.EntityID
	for i := 0; i < 50; i++ {
		id := ecs.NewEntity()
		ecs.Enemies[id] = &component.Enemy{}
		want = append(want, id)
	}
	assert.Equal(t, want, ecs.EnemyIDs())
	assert.Empty(t, ecs.BulletIDs())
}

func TestResetKeepsIDsGrowing(t *testing.T) {
	ecs := NewECS(config.Rules(config.ModeClassic))
	id := ecs.NewEntity()
	ecs.Bullets[id] = &component.Bullet{}
	ecs.Session.Score = 900
	ecs.Player.Radius = 3

	ecs.Reset(config.Rules(config.ModeTimeAttack))
	assert.Empty(t, ecs.Bullets)
	assert.Zero(t, ecs.Session.Score)
	assert.Equal(t, 180.0, ecs.Session.TimeRemaining)
	assert.Equal(t, config.PlayerStartRadius, ecs.Player.Radius)
	assert.Greater(t, ecs.NewEntity(), id)
}
