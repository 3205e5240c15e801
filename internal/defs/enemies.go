// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      EnemyType `json:"id"`
	Name    string    `json:"name"`
	Health  float64   `json:"health"`
	Speed   float64   `json:"speed"` // multiplier of the wave approach speed
	Score   int       `json:"score"`
	Size    float64   `json:"size"` // collision radius, world units
	Visuals Visuals   `json:"visuals"`
}

// EnemyLibrary is the library of all enemy definitions, keyed by type.
var EnemyLibrary map[EnemyType]EnemyDefinition

func init() {
	EnemyLibrary = DefaultEnemyDefinitions()
}

// DefaultEnemyDefinitions returns a fresh copy of the built-in enemy table.
func DefaultEnemyDefinitions() map[EnemyType]EnemyDefinition {
	list := []EnemyDefinition{
		{ID: EnemyNormal, Name: "Drone", Health: 1, Speed: 1.0, Score: 100, Size: 0.75, Visuals: Visuals{Color: color.RGBA{255, 0, 0, 255}, Scale: 1.5}},
		{ID: EnemySpeed, Name: "Dart", Health: 1, Speed: 2.0, Score: 150, Size: 0.6, Visuals: Visuals{Color: color.RGBA{255, 255, 0, 255}, Scale: 1.2}},
		{ID: EnemyTank, Name: "Brute", Health: 5, Speed: 0.5, Score: 300, Size: 1.2, Visuals: Visuals{Color: color.RGBA{0, 120, 255, 255}, Scale: 2.4}},
		{ID: EnemyShooter, Name: "Gunner", Health: 2, Speed: 0.8, Score: 200, Size: 0.9, Visuals: Visuals{Color: color.RGBA{255, 0, 255, 255}, Scale: 1.8}},
		{ID: EnemySplitter, Name: "Splitter", Health: 3, Speed: 0.9, Score: 250, Size: 1.0, Visuals: Visuals{Color: color.RGBA{0, 255, 120, 255}, Scale: 2.0}},
		{ID: EnemyZigzag, Name: "Weaver", Health: 2, Speed: 1.2, Score: 175, Size: 0.75, Visuals: Visuals{Color: color.RGBA{255, 128, 0, 255}, Scale: 1.5}},
		{ID: EnemyKamikaze, Name: "Kamikaze", Health: 1, Speed: 1.5, Score: 200, Size: 0.7, Visuals: Visuals{Color: color.RGBA{255, 60, 60, 255}, Scale: 1.4}},
		{ID: EnemyShield, Name: "Bulwark", Health: 4, Speed: 0.7, Score: 300, Size: 1.0, Visuals: Visuals{Color: color.RGBA{80, 160, 255, 255}, Scale: 2.0}},
		{ID: EnemyTeleport, Name: "Blinker", Health: 2, Speed: 1.0, Score: 250, Size: 0.8, Visuals: Visuals{Color: color.RGBA{180, 80, 255, 255}, Scale: 1.6}},
		{ID: EnemyLaser, Name: "Lancer", Health: 3, Speed: 0.6, Score: 350, Size: 1.0, Visuals: Visuals{Color: color.RGBA{255, 0, 160, 255}, Scale: 2.0}},
		{ID: EnemyBoss, Name: "Elite", Health: 5, Speed: 0, Score: 500, Size: 2.0, Visuals: Visuals{Color: color.RGBA{255, 170, 0, 255}, Scale: 4.0}},
	}
	lib := make(map[EnemyType]EnemyDefinition, len(list))
	for _, def := range list {
		lib[def.ID] = def
	}
	return lib
}

// IsKnownEnemy reports whether t names a built-in archetype.
func IsKnownEnemy(t EnemyType) bool {
	for _, known := range AllEnemyTypes {
		if known == t {
			return true
		}
	}
	return false
}
