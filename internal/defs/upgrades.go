// internal/defs/upgrades.go
package defs

// UpgradeID names a permanent stat upgrade.
type UpgradeID string

const (
	UpgradeFireRate   UpgradeID = "fireRate"
	UpgradeMoveSpeed  UpgradeID = "moveSpeed"
	UpgradeBulletSize UpgradeID = "bulletSize"
	UpgradeMaxLives   UpgradeID = "maxLives"
	UpgradeBombCap    UpgradeID = "bombCap"
	UpgradeScore      UpgradeID = "score"
)

// UpgradeDefinition is one card of the upgrade catalog.
type UpgradeDefinition struct {
	ID          UpgradeID
	Name        string
	Description string
	Weight      float64
	Step        float64 // multiplier increment per level, where applicable
}

// UpgradeCatalog is the fixed list of offerable upgrades.
var UpgradeCatalog = []UpgradeDefinition{
	{ID: UpgradeFireRate, Name: "Rapid Fire", Description: "Increases fire rate by 15%", Weight: 1.0, Step: 0.15},
	{ID: UpgradeMoveSpeed, Name: "Thrusters", Description: "Increases movement speed by 10%", Weight: 1.0, Step: 0.10},
	{ID: UpgradeBulletSize, Name: "Power Shot", Description: "Increases bullet size and damage", Weight: 0.8, Step: 0.20},
	{ID: UpgradeMaxLives, Name: "Hull Repair", Description: "Restores 1 life and increases max lives", Weight: 0.5},
	{ID: UpgradeBombCap, Name: "Extra Bomb", Description: "Increases max bomb capacity by 1", Weight: 0.6},
	{ID: UpgradeScore, Name: "Score Boost", Description: "Increases score multiplier by 0.5x", Weight: 0.7, Step: 0.5},
}

// FindUpgrade looks up a catalog entry by id.
func FindUpgrade(id UpgradeID) (UpgradeDefinition, bool) {
	for _, u := range UpgradeCatalog {
		if u.ID == id {
			return u, true
		}
	}
	return UpgradeDefinition{}, false
}
