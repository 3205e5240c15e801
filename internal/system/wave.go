// internal/system/wave.go
package system

import (
	"log/slog"

	"go-radial-arena/internal/config"
	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/event"
)

// WavePhase is the state of the wave machine.
type WavePhase int

const (
	WaveIdle WavePhase = iota // before the first wave
	WaveActive
	WaveTransition
)

// DifficultyTarget receives the knobs of the current wave.
type DifficultyTarget interface {
	ApplyWave(def defs.WaveDefinition)
	SetSpawningEnabled(enabled bool)
}

// WaveManager drives ACTIVE -> TRANSITION -> ACTIVE progression.
// Boss waves complete through CompleteBossWave, never through kills.
type WaveManager struct {
	eventDispatcher *event.Dispatcher
	target          DifficultyTarget

	phase           WavePhase
	current         int
	kills           int
	required        int
	transitionTimer float64
	bossActive      bool
	justCompleted   bool
	def             defs.WaveDefinition
}

func NewWaveManager(eventDispatcher *event.Dispatcher, target DifficultyTarget) *WaveManager {
	return &WaveManager{
		eventDispatcher: eventDispatcher,
		target:          target,
	}
}

// StartNextWave begins the following wave and pushes its knobs.
func (m *WaveManager) StartNextWave() {
	m.current++
	m.def = defs.WaveFor(m.current)
	m.kills = 0
	m.required = m.def.RequiredKills
	m.bossActive = m.def.Boss
	m.transitionTimer = 0
	m.phase = WaveActive

	if m.target != nil {
		m.target.ApplyWave(m.def)
		m.target.SetSpawningEnabled(!m.def.Boss)
	}
	slog.Debug("wave started", "wave", m.current, "boss", m.bossActive, "required", m.required)
	m.dispatch(event.WaveStarted)
}

// OnEnemyKilled counts a kill toward the quota of an active normal wave.
func (m *WaveManager) OnEnemyKilled() {
	if m.phase != WaveActive || m.bossActive {
		return
	}
	m.kills++
	if m.kills >= m.required {
		m.complete()
	}
}

// CompleteBossWave ends an active boss wave. It returns false otherwise.
func (m *WaveManager) CompleteBossWave() bool {
	if m.phase != WaveActive || !m.bossActive {
		return false
	}
	m.kills = m.required
	m.bossActive = false
	m.complete()
	return true
}

func (m *WaveManager) complete() {
	m.phase = WaveTransition
	m.transitionTimer = 0
	m.justCompleted = true
	if m.target != nil {
		m.target.SetSpawningEnabled(false)
	}
	m.dispatch(event.WaveCompleted)
}

// Update clears the one-frame completion flag and runs the transition timer.
func (m *WaveManager) Update(deltaTime float64) {
	m.justCompleted = false
	if m.phase != WaveTransition {
		return
	}
	m.transitionTimer += deltaTime
	if m.transitionTimer >= config.WaveTransitionDuration {
		m.StartNextWave()
	}
}

func (m *WaveManager) dispatch(t event.EventType) {
	if m.eventDispatcher != nil {
		m.eventDispatcher.Dispatch(event.Event{Type: t, Data: m.current})
	}
}

// JustCompleted is true only during the frame the wave was cleared.
func (m *WaveManager) JustCompleted() bool { return m.justCompleted }

// WasBossWave reports whether the current (or just cleared) wave is a boss wave.
func (m *WaveManager) WasBossWave() bool { return m.def.Boss }

func (m *WaveManager) IsBossWave(n int) bool           { return defs.IsBossWave(n) }
func (m *WaveManager) IsBossWaveActive() bool          { return m.phase == WaveActive && m.bossActive }
func (m *WaveManager) CurrentWave() int                { return m.current }
func (m *WaveManager) Kills() int                      { return m.kills }
func (m *WaveManager) RequiredKills() int              { return m.required }
func (m *WaveManager) Phase() WavePhase                { return m.phase }
func (m *WaveManager) InTransition() bool              { return m.phase == WaveTransition }
func (m *WaveManager) Definition() defs.WaveDefinition { return m.def }

// TransitionProgress runs 0..1 through the pause between waves.
func (m *WaveManager) TransitionProgress() float64 {
	if m.phase != WaveTransition {
		return 0
	}
	return min(1, m.transitionTimer/config.WaveTransitionDuration)
}

// WaveBonus is the score bonus for clearing the current wave.
func (m *WaveManager) WaveBonus() int {
	return m.current * config.WaveBonusPerLevel
}

func (m *WaveManager) Reset() {
	m.phase = WaveIdle
	m.current = 0
	m.kills = 0
	m.required = 0
	m.transitionTimer = 0
	m.bossActive = false
	m.justCompleted = false
	m.def = defs.WaveDefinition{}
	if m.target != nil {
		m.target.SetSpawningEnabled(false)
	}
}
