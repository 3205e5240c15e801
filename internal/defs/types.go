// internal/defs/types.go
package defs

import "image/color"

// EnemyType is the closed set of enemy archetypes.
type EnemyType string

const (
	EnemyNormal   EnemyType = "normal"
	EnemySpeed    EnemyType = "speed"
	EnemyTank     EnemyType = "tank"
	EnemyShooter  EnemyType = "shooter"
	EnemySplitter EnemyType = "splitter"
	EnemyZigzag   EnemyType = "zigzag"
	EnemyKamikaze EnemyType = "kamikaze"
	EnemyShield   EnemyType = "shield"
	EnemyTeleport EnemyType = "teleport"
	EnemyLaser    EnemyType = "laser"
	EnemyBoss     EnemyType = "boss"
)

// AllEnemyTypes lists every archetype in declaration order.
var AllEnemyTypes = []EnemyType{
	EnemyNormal, EnemySpeed, EnemyTank, EnemyShooter, EnemySplitter,
	EnemyZigzag, EnemyKamikaze, EnemyShield, EnemyTeleport, EnemyLaser, EnemyBoss,
}

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color color.RGBA `json:"color"`
	Scale float64    `json:"scale"`
}
