// internal/component/boss.go
package component

import (
	"image/color"

	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/utils"
)

// StageBoss is the single scripted adversary of a boss wave.
type StageBoss struct {
	Wave     int
	HP       float64
	MaxHP    float64
	Score    int
	Phase    int // 1..3, never decreases
	Angle    float64
	Radius   float64
	OrbitDir float64
	Orbit    float64 // rad/s
	Tint     color.RGBA

	ShootTimer float64
	SpawnTimer float64
	Spin       float64 // cosmetic rotation
	FlashTimer float64
}

// Position derives the cartesian position from the polar state.
func (b *StageBoss) Position() (x, y float64) {
	return utils.PolarToCartesian(b.Radius, b.Angle)
}

// SpawnRequest asks the orchestrator to add minions around (X, Y).
type SpawnRequest struct {
	Count int
	Type  defs.EnemyType
	X, Y  float64
}
