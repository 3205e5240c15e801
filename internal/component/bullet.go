// internal/component/bullet.go
package component

import (
	"image/color"
	"math"

	"go-radial-arena/internal/types"
	"go-radial-arena/internal/utils"
)

// Owner tells which side fired a bullet.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// MotionKind selects how a bullet integrates its position.
type MotionKind int

const (
	// MotionRadial bullets travel along a fixed angle; Angle/Radius are canonical.
	MotionRadial MotionKind = iota
	// MotionFree bullets own X/Y and a velocity vector.
	MotionFree
)

// Bullet is a projectile of either side.
type Bullet struct {
	Owner  Owner
	Motion MotionKind

	// radial motion
	Angle       float64
	Radius      float64
	RadialSpeed float64

	// free motion
	X, Y   float64
	VX, VY float64

	Damage float64
	Size   float64 // collision radius
	Life   float64 // seconds left

	Piercing    bool
	PierceCount int
	MaxPierce   int
	HitEnemies  map[types.EntityID]bool

	Explosive bool
	Homing    bool
	TurnRate  float64 // rad/s for homing steering

	Color color.RGBA
}

// Position returns the current cartesian position.
func (b *Bullet) Position() (x, y float64) {
	if b.Motion == MotionRadial {
		return utils.PolarToCartesian(b.Radius, b.Angle)
	}
	return b.X, b.Y
}

// Heading returns the direction of travel in radians.
func (b *Bullet) Heading() float64 {
	if b.Motion == MotionRadial {
		if b.RadialSpeed < 0 {
			return b.Angle + math.Pi
		}
		return b.Angle
	}
	_, a := utils.CartesianToPolar(b.VX, b.VY)
	return a
}
