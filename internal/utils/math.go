// internal/utils/math.go
package utils

import "math"

const twoPi = 2 * math.Pi

// PolarToCartesian converts an arena position to x/y around the center.
func PolarToCartesian(radius, angle float64) (x, y float64) {
	return radius * math.Cos(angle), radius * math.Sin(angle)
}

// CartesianToPolar is the inverse of PolarToCartesian. The angle is in [0, 2π).
func CartesianToPolar(x, y float64) (radius, angle float64) {
	return math.Hypot(x, y), NormalizeAngle(math.Atan2(y, x))
}

// NormalizeAngle maps an angle into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, twoPi)
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi {
		a = 0
	}
	return a
}

// AngleDiff returns the signed shortest rotation from one angle to another, in (-π, π].
func AngleDiff(from, to float64) float64 {
	d := math.Mod(to-from, twoPi)
	if d <= -math.Pi {
		d += twoPi
	} else if d > math.Pi {
		d -= twoPi
	}
	return d
}

// Distance is the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Lerp is plain linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// LerpAngle interpolates along the shortest arc.
func LerpAngle(from, to, t float64) float64 {
	return NormalizeAngle(from + AngleDiff(from, to)*t)
}

func ToRad(deg float64) float64 { return deg * math.Pi / 180 }
func ToDeg(rad float64) float64 { return rad * 180 / math.Pi }

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
