// internal/system/powerup_manager.go
package system

import (
	"log/slog"
	"math"

	"go-radial-arena/internal/config"
	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/event"
)

// ActivePowerUp is a HUD view of one running buff.
type ActivePowerUp struct {
	Type      defs.PowerUpType
	Name      string
	Icon      string
	Remaining float64 // +Inf for one-shot buffs
}

// PowerUpManager keeps the active buffs keyed by expiry on its own
// unscaled clock, so time dilation never stretches buff durations.
type PowerUpManager struct {
	eventDispatcher *event.Dispatcher
	clock           float64
	active          map[defs.PowerUpType]float64
}

func NewPowerUpManager(eventDispatcher *event.Dispatcher) *PowerUpManager {
	return &PowerUpManager{
		eventDispatcher: eventDispatcher,
		active:          make(map[defs.PowerUpType]float64),
	}
}

// Collect activates a buff or refreshes its expiry.
func (m *PowerUpManager) Collect(t defs.PowerUpType) bool {
	def, ok := defs.PowerUpLibrary[t]
	if !ok {
		slog.Warn("unknown power-up collected", "type", t)
		return false
	}
	m.active[t] = m.clock + def.Duration
	if m.eventDispatcher != nil {
		m.eventDispatcher.Dispatch(event.Event{Type: event.PowerUpCollected, Data: t})
	}
	return true
}

func (m *PowerUpManager) Has(t defs.PowerUpType) bool {
	_, ok := m.active[t]
	return ok
}

// ConsumeShield spends a held shield. It returns false when none is held.
func (m *PowerUpManager) ConsumeShield() bool {
	if !m.Has(defs.PowerUpShield) {
		return false
	}
	delete(m.active, defs.PowerUpShield)
	return true
}

// Update advances the clock and purges expired buffs.
func (m *PowerUpManager) Update(deltaTime float64) {
	m.clock += deltaTime
	for _, t := range defs.FullPowerUps {
		expiry, ok := m.active[t]
		if !ok || math.IsInf(expiry, 1) || m.clock < expiry {
			continue
		}
		delete(m.active, t)
		if m.eventDispatcher != nil {
			m.eventDispatcher.Dispatch(event.Event{Type: event.PowerUpExpired, Data: t})
		}
	}
}

// Active lists running buffs in catalog order.
func (m *PowerUpManager) Active() []ActivePowerUp {
	var out []ActivePowerUp
	for _, t := range defs.FullPowerUps {
		expiry, ok := m.active[t]
		if !ok {
			continue
		}
		def := defs.PowerUpLibrary[t]
		out = append(out, ActivePowerUp{
			Type:      t,
			Name:      def.Name,
			Icon:      def.Icon,
			Remaining: math.Max(0, expiry-m.clock),
		})
	}
	return out
}

// ScoreMultiplier is 2 while MULTIPLIER runs.
func (m *PowerUpManager) ScoreMultiplier() float64 {
	if m.Has(defs.PowerUpMultiplier) {
		return 2
	}
	return 1
}

// TimeScale is the gameplay time dilation factor.
func (m *PowerUpManager) TimeScale() float64 {
	if m.Has(defs.PowerUpTimeSlow) {
		return config.TimeSlowFactor
	}
	return 1
}

func (m *PowerUpManager) Clear() {
	m.active = make(map[defs.PowerUpType]float64)
}
