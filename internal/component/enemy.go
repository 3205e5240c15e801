// internal/component/enemy.go
package component

import (
	"image/color"

	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/utils"
)

// Enemy is a closed tagged union: Type selects the archetype and only the
// payload pointer for that archetype is non-nil.
type Enemy struct {
	Type     defs.EnemyType
	Angle    float64
	Radius   float64
	OrbitDir float64 // +1 or -1

	HP    float64
	MaxHP float64
	Speed float64 // multiplier of the wave approach speed
	Score int
	Size  float64

	Color      color.RGBA
	Scale      float64
	FlashTimer float64 // >0 while drawn in the flash colour
	Age        float64

	Shooter  *ShooterState
	Zigzag   *ZigzagState
	Kamikaze *KamikazeState
	Shield   *ShieldState
	Teleport *TeleportState
	Laser    *LaserEmitterState
	Elite    *EliteState
}

// ShooterState: approach to StopRadius, then hold and fire aimed shots.
type ShooterState struct {
	StopRadius float64
	Stopped    bool
	ShootTimer float64
}

// ZigzagState stores the weave phase.
type ZigzagState struct {
	Phase float64
}

// KamikazeState: once Accelerating, the enemy dives at TargetAngle.
type KamikazeState struct {
	Accelerating bool
	TargetAngle  float64
	DiveSpeed    float64
}

// ShieldState keeps the facing of the frontal shield.
type ShieldState struct {
	ShieldAngle float64
}

// TeleportState counts down to the next blink.
type TeleportState struct {
	Countdown float64
}

// LaserEmitterState: approach to StopRadius, then emit beams on an interval.
type LaserEmitterState struct {
	StopRadius float64
	Stopped    bool
	FireTimer  float64
}

// EliteState drives the simple boss: orbit and periodic aimed shots.
type EliteState struct {
	ShootTimer    float64
	ShootInterval float64
}

// Position derives the cartesian position from the polar state.
func (e *Enemy) Position() (x, y float64) {
	return utils.PolarToCartesian(e.Radius, e.Angle)
}
