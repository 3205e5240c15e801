// internal/defs/spawn_tables.go
package defs

// SpawnEntry is one row of a weighted spawn table. Weights of a table sum to 1.
type SpawnEntry struct {
	Type   EnemyType `json:"type"`
	Weight float64   `json:"weight"`
}

// SpawnTables holds the named weighting tables used by game modes.
var SpawnTables = map[string][]SpawnEntry{
	"CLASSIC": {
		{Type: EnemyNormal, Weight: 0.30},
		{Type: EnemySpeed, Weight: 0.12},
		{Type: EnemyTank, Weight: 0.10},
		{Type: EnemyShooter, Weight: 0.10},
		{Type: EnemySplitter, Weight: 0.08},
		{Type: EnemyZigzag, Weight: 0.08},
		{Type: EnemyKamikaze, Weight: 0.07},
		{Type: EnemyShield, Weight: 0.06},
		{Type: EnemyTeleport, Weight: 0.05},
		{Type: EnemyLaser, Weight: 0.04},
	},
	// More shooters and fast attackers, fewer plain drones.
	"TIME_ATTACK": {
		{Type: EnemyNormal, Weight: 0.15},
		{Type: EnemySpeed, Weight: 0.15},
		{Type: EnemyTank, Weight: 0.08},
		{Type: EnemyShooter, Weight: 0.16},
		{Type: EnemySplitter, Weight: 0.08},
		{Type: EnemyZigzag, Weight: 0.09},
		{Type: EnemyKamikaze, Weight: 0.10},
		{Type: EnemyShield, Weight: 0.07},
		{Type: EnemyTeleport, Weight: 0.06},
		{Type: EnemyLaser, Weight: 0.06},
	},
}

// SpawnTable returns the named table, falling back to CLASSIC.
func SpawnTable(name string) []SpawnEntry {
	if t, ok := SpawnTables[name]; ok {
		return t
	}
	return SpawnTables["CLASSIC"]
}
