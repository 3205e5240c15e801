// internal/system/upgrade.go
package system

import (
	"log/slog"

	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/event"
	"go-radial-arena/internal/interfaces"
	"go-radial-arena/internal/utils"
)

// UpgradeManager offers permanent upgrades and applies the chosen one.
type UpgradeManager struct {
	eventDispatcher *event.Dispatcher
	prng            *utils.PRNGService
	levels          map[defs.UpgradeID]int
}

func NewUpgradeManager(eventDispatcher *event.Dispatcher, prng *utils.PRNGService) *UpgradeManager {
	return &UpgradeManager{
		eventDispatcher: eventDispatcher,
		prng:            prng,
		levels:          make(map[defs.UpgradeID]int),
	}
}

// Offer draws n distinct cards, weighted, without replacement.
func (m *UpgradeManager) Offer(n int) []defs.UpgradeDefinition {
	weights := make([]float64, len(defs.UpgradeCatalog))
	for i, u := range defs.UpgradeCatalog {
		weights[i] = u.Weight
	}
	picked := m.prng.SampleWeighted(weights, n)

	out := make([]defs.UpgradeDefinition, 0, len(picked))
	ids := make([]defs.UpgradeID, 0, len(picked))
	for _, i := range picked {
		out = append(out, defs.UpgradeCatalog[i])
		ids = append(ids, defs.UpgradeCatalog[i].ID)
	}
	if m.eventDispatcher != nil {
		m.eventDispatcher.Dispatch(event.Event{Type: event.UpgradeOffered, Data: ids})
	}
	return out
}

// Apply runs the upgrade's effect once against target.
func (m *UpgradeManager) Apply(id defs.UpgradeID, target interfaces.UpgradeTarget) bool {
	u, ok := defs.FindUpgrade(id)
	if !ok {
		slog.Warn("unknown upgrade", "id", id)
		return false
	}

	switch u.ID {
	case defs.UpgradeFireRate:
		target.BoostFireRate(u.Step)
	case defs.UpgradeMoveSpeed:
		target.BoostMoveSpeed(u.Step)
	case defs.UpgradeBulletSize:
		target.BoostBulletSize(u.Step)
	case defs.UpgradeMaxLives:
		target.AddMaxLife()
	case defs.UpgradeBombCap:
		target.AddBombCapacity()
	case defs.UpgradeScore:
		target.BoostScoreMultiplier(u.Step)
	}
	m.levels[u.ID]++

	if m.eventDispatcher != nil {
		m.eventDispatcher.Dispatch(event.Event{Type: event.UpgradeApplied, Data: u.ID})
	}
	return true
}

func (m *UpgradeManager) Level(id defs.UpgradeID) int { return m.levels[id] }

// Levels returns a copy of the per-upgrade pick counts.
func (m *UpgradeManager) Levels() map[defs.UpgradeID]int {
	out := make(map[defs.UpgradeID]int, len(m.levels))
	for k, v := range m.levels {
		out[k] = v
	}
	return out
}

func (m *UpgradeManager) Reset() {
	m.levels = make(map[defs.UpgradeID]int)
}
