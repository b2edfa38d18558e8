package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is the 2D vector type used for positions and velocities across the
// simulation. Value semantics: consumers copy, never alias.
type Vec2 = mgl64.Vec2

// V is a shorthand constructor.
func V(x, y float64) Vec2 {
	return Vec2{x, y}
}

// FromAngle returns a unit vector pointing along the given angle in radians.
func FromAngle(rad float64) Vec2 {
	return Vec2{math.Cos(rad), math.Sin(rad)}
}

// Dist returns the distance between two points.
func Dist(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// DistSq returns the squared distance between two points.
func DistSq(a, b Vec2) float64 {
	d := b.Sub(a)
	return d.Dot(d)
}

// Normalize returns the unit vector of v. The zero vector is returned
// unchanged; mgl64's Normalize would produce NaN components.
func Normalize(v Vec2) Vec2 {
	if v.X() == 0 && v.Y() == 0 {
		return v
	}
	return v.Normalize()
}

// ClampLen limits the magnitude of v to max, preserving direction.
func ClampLen(v Vec2, max float64) Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Mul(max / l)
}

// NormalizeAngle wraps an angle into [0, 2π).
func NormalizeAngle(rad float64) float64 {
	rad = math.Mod(rad, 2*math.Pi)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return rad
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b Vec2, t float64) Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// Clamp limits x into [min, max].
func Clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
