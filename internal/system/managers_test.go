package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-radial-arena/internal/config"
	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/event"
	"go-radial-arena/internal/utils"
)

func TestComboMultiplierThresholds(t *testing.T) {
	cases := []struct {
		combo int
		want  float64
	}{
		{0, 1}, {2, 1}, {3, 1.5}, {4, 1.5}, {5, 2},
		{9, 2}, {10, 3}, {19, 3}, {20, 5}, {25, 5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ComboMultiplier(tc.combo), "combo %d", tc.combo)
	}
}

func TestComboDecay(t *testing.T) {
	c := NewComboManager()
	c.OnHit()
	c.Update(config.ComboTimeout - 1e-6)
	require.Equal(t, 1, c.Combo(), "a hit just before the timeout keeps the streak")

	c.OnHit()
	assert.Equal(t, 2, c.Combo())
	assert.InDelta(t, 1.0, c.Progress(), 1e-9)

	c.Update(config.ComboTimeout)
	assert.Equal(t, 0, c.Combo())
	assert.Equal(t, 2, c.MaxCombo())
	assert.Zero(t, c.TimeRemaining())
}

func TestComboBreakKeepsMax(t *testing.T) {
	c := NewComboManager()
	for i := 0; i < 6; i++ {
		c.OnHit()
	}
	assert.Equal(t, 2.0, c.Multiplier())

	c.Break()
	assert.Equal(t, 0, c.Combo())
	assert.Equal(t, 6, c.MaxCombo())

	c.Reset()
	assert.Equal(t, 0, c.MaxCombo())
}

func TestAbilityGating(t *testing.T) {
	a := NewSpecialAbility()
	require.Equal(t, config.BombStartCharges, a.Charges())

	assert.True(t, a.Activate())
	assert.Equal(t, config.BombStartCharges-1, a.Charges())
	assert.True(t, a.OnCooldown())

	charges := a.Charges()
	assert.False(t, a.Activate(), "on cooldown")
	assert.Equal(t, charges, a.Charges())

	a.Update(config.BombCooldown)
	assert.False(t, a.OnCooldown())
	assert.Equal(t, 1.0, a.CooldownProgress())

	assert.True(t, a.Activate())
	a.Update(config.BombCooldown)
	require.Equal(t, 0, a.Charges())
	assert.False(t, a.Activate(), "no charges")
	assert.Equal(t, 0, a.Charges())
}

func TestAbilityCapacity(t *testing.T) {
	a := NewSpecialAbility()
	for a.Charges() < a.MaxCharges() {
		require.True(t, a.AddCharge())
	}
	assert.False(t, a.AddCharge())

	a.RaiseCapacity()
	assert.Equal(t, config.BombMaxCharges+1, a.MaxCharges())
	assert.True(t, a.AddCharge())

	a.Activate()
	a.Update(config.BombCooldown / 2)
	assert.InDelta(t, 0.5, a.CooldownProgress(), 1e-9)
}

type knobRecorder struct {
	applied  []defs.WaveDefinition
	spawning bool
}

func (k *knobRecorder) ApplyWave(def defs.WaveDefinition) { k.applied = append(k.applied, def) }
func (k *knobRecorder) SetSpawningEnabled(enabled bool)   { k.spawning = enabled }

func killQuota(m *WaveManager) {
	for i := m.Kills(); i < m.RequiredKills(); i++ {
		m.OnEnemyKilled()
	}
}

func TestWaveKillGatingBeforeStart(t *testing.T) {
	m := NewWaveManager(nil, nil)
	m.OnEnemyKilled()
	m.Update(1)

	assert.Equal(t, 0, m.CurrentWave())
	assert.Equal(t, 0, m.Kills())
	assert.Equal(t, WaveIdle, m.Phase())
}

func TestWaveBossCadence(t *testing.T) {
	m := NewWaveManager(nil, nil)
	for n := 1; n <= 30; n++ {
		assert.Equal(t, n%5 == 0, m.IsBossWave(n), "wave %d", n)
	}
}

func TestWaveScenarioFiveWaves(t *testing.T) {
	knobs := &knobRecorder{}
	m := NewWaveManager(event.NewDispatcher(), knobs)

	for i := 1; i <= 5; i++ {
		m.StartNextWave()
		if i < 5 {
			assert.Equal(t, 10+2*i, m.RequiredKills())
			killQuota(m)
			assert.True(t, m.InTransition())
		}
	}

	assert.Equal(t, 5, m.CurrentWave())
	assert.True(t, m.IsBossWaveActive())
	assert.Equal(t, 1, m.RequiredKills())
	assert.False(t, knobs.spawning, "boss waves suspend normal spawning")

	require.Len(t, knobs.applied, 5)
	for i := 1; i < len(knobs.applied); i++ {
		prev, cur := knobs.applied[i-1], knobs.applied[i]
		assert.LessOrEqual(t, cur.SpawnInterval, prev.SpawnInterval)
		assert.Greater(t, cur.ApproachSpeed, prev.ApproachSpeed)
	}
}

func TestWaveJustCompletedLastsOneFrame(t *testing.T) {
	var completed int
	d := event.NewDispatcher()
	d.Subscribe(event.WaveCompleted, event.ListenerFunc(func(event.Event) { completed++ }))

	m := NewWaveManager(d, nil)
	m.StartNextWave()
	killQuota(m)
	m.OnEnemyKilled()

	assert.True(t, m.JustCompleted())
	assert.Equal(t, 1, completed)

	m.Update(0.016)
	assert.False(t, m.JustCompleted())
	assert.InDelta(t, 0.016/config.WaveTransitionDuration, m.TransitionProgress(), 1e-9)
}

func TestWaveTransitionStartsNextWave(t *testing.T) {
	var started []int
	d := event.NewDispatcher()
	d.Subscribe(event.WaveStarted, event.ListenerFunc(func(e event.Event) { started = append(started, e.Data.(int)) }))

	m := NewWaveManager(d, nil)
	m.StartNextWave()
	killQuota(m)

	m.Update(config.WaveTransitionDuration - 0.5)
	assert.Equal(t, 1, m.CurrentWave())
	m.Update(0.5)
	assert.Equal(t, 2, m.CurrentWave())
	assert.Equal(t, WaveActive, m.Phase())
	assert.Equal(t, []int{1, 2}, started)
}

func TestWaveBossCompletesOnlyExternally(t *testing.T) {
	m := NewWaveManager(nil, nil)
	assert.False(t, m.CompleteBossWave())

	for m.CurrentWave() < 5 {
		m.StartNextWave()
	}
	m.OnEnemyKilled()
	assert.True(t, m.IsBossWaveActive(), "kills never finish a boss wave")

	assert.True(t, m.CompleteBossWave())
	assert.True(t, m.JustCompleted())
	assert.True(t, m.WasBossWave())
	assert.False(t, m.CompleteBossWave())
}

func TestWaveReset(t *testing.T) {
	knobs := &knobRecorder{}
	m := NewWaveManager(nil, knobs)
	m.StartNextWave()
	require.True(t, knobs.spawning)

	m.Reset()
	assert.Equal(t, 0, m.CurrentWave())
	assert.Equal(t, WaveIdle, m.Phase())
	assert.False(t, knobs.spawning)
}

func TestPowerUpManagerExpiry(t *testing.T) {
	var expired []defs.PowerUpType
	d := event.NewDispatcher()
	d.Subscribe(event.PowerUpExpired, event.ListenerFunc(func(e event.Event) {
		expired = append(expired, e.Data.(defs.PowerUpType))
	}))

	m := NewPowerUpManager(d)
	require.True(t, m.Collect(defs.PowerUpRapidFire))
	require.True(t, m.Collect(defs.PowerUpMultiplier))
	assert.Equal(t, 2.0, m.ScoreMultiplier())

	m.Update(9)
	assert.True(t, m.Has(defs.PowerUpRapidFire))

	m.Collect(defs.PowerUpRapidFire) // refresh
	m.Update(2)
	assert.True(t, m.Has(defs.PowerUpRapidFire))

	m.Update(10)
	assert.False(t, m.Has(defs.PowerUpRapidFire))
	assert.False(t, m.Has(defs.PowerUpMultiplier))
	assert.ElementsMatch(t, []defs.PowerUpType{defs.PowerUpRapidFire, defs.PowerUpMultiplier}, expired)
	assert.Equal(t, 1.0, m.ScoreMultiplier())
}

func TestPowerUpManagerShieldIsOneShot(t *testing.T) {
	m := NewPowerUpManager(nil)
	assert.False(t, m.ConsumeShield())

	m.Collect(defs.PowerUpShield)
	m.Update(1000)
	require.True(t, m.Has(defs.PowerUpShield), "shield never times out")

	active := m.Active()
	require.Len(t, active, 1)
	assert.True(t, math.IsInf(active[0].Remaining, 1))

	assert.True(t, m.ConsumeShield())
	assert.False(t, m.Has(defs.PowerUpShield))
}

func TestPowerUpManagerTimeScaleAndUnknown(t *testing.T) {
	m := NewPowerUpManager(nil)
	assert.Equal(t, 1.0, m.TimeScale())
	m.Collect(defs.PowerUpTimeSlow)
	assert.Equal(t, config.TimeSlowFactor, m.TimeScale())

	assert.False(t, m.Collect(defs.PowerUpType("NOPE")))

	m.Clear()
	assert.Empty(t, m.Active())
}

type upgradeRecorder struct {
	fireRate, moveSpeed, bulletSize, scoreMult float64
	lives, bombs                               int
}

func (r *upgradeRecorder) BoostFireRate(step float64)        { r.fireRate += step }
func (r *upgradeRecorder) BoostMoveSpeed(step float64)       { r.moveSpeed += step }
func (r *upgradeRecorder) BoostBulletSize(step float64)      { r.bulletSize += step }
func (r *upgradeRecorder) AddMaxLife()                       { r.lives++ }
func (r *upgradeRecorder) AddBombCapacity()                  { r.bombs++ }
func (r *upgradeRecorder) BoostScoreMultiplier(step float64) { r.scoreMult += step }

func TestUpgradeOfferDistinct(t *testing.T) {
	m := NewUpgradeManager(nil, utils.NewPRNGService(7))
	for round := 0; round < 50; round++ {
		offer := m.Offer(config.UpgradeChoices)
		require.Len(t, offer, config.UpgradeChoices)
		seen := map[defs.UpgradeID]bool{}
		for _, u := range offer {
			assert.False(t, seen[u.ID], "duplicate %s", u.ID)
			seen[u.ID] = true
		}
	}

	all := m.Offer(len(defs.UpgradeCatalog) + 3)
	assert.Len(t, all, len(defs.UpgradeCatalog))
}

func TestUpgradeApply(t *testing.T) {
	m := NewUpgradeManager(event.NewDispatcher(), utils.NewPRNGService(1))
	r := &upgradeRecorder{}

	require.True(t, m.Apply(defs.UpgradeFireRate, r))
	require.True(t, m.Apply(defs.UpgradeFireRate, r))
	require.True(t, m.Apply(defs.UpgradeMaxLives, r))
	require.True(t, m.Apply(defs.UpgradeBombCap, r))
	require.True(t, m.Apply(defs.UpgradeScore, r))
	assert.False(t, m.Apply(defs.UpgradeID("bogus"), r))

	assert.InDelta(t, 0.30, r.fireRate, 1e-9)
	assert.Equal(t, 1, r.lives)
	assert.Equal(t, 1, r.bombs)
	assert.InDelta(t, 0.5, r.scoreMult, 1e-9)
	assert.Equal(t, 2, m.Level(defs.UpgradeFireRate))

	m.Reset()
	assert.Empty(t, m.Levels())
}

func TestSchedulerOrderAndCancel(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(0.5, func() { order = append(order, "b") })
	s.After(0.2, func() { order = append(order, "a") })
	cancelled := s.After(0.3, func() { order = append(order, "x") })
	s.After(0.5, func() { order = append(order, "c") })
	s.Cancel(cancelled)

	s.Update(0.1)
	assert.Empty(t, order)
	s.Update(0.5)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 0, s.Pending())
}

func TestSchedulerNestedAndClear(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(0, func() {
		fired++
		s.After(0, func() { fired++ })
	})

	s.Update(0)
	assert.Equal(t, 1, fired, "a timer added by a callback waits for the next update")
	s.Update(0)
	assert.Equal(t, 2, fired)

	s.After(1, func() { fired++ })
	s.Clear()
	s.Update(5)
	assert.Equal(t, 2, fired)
}
