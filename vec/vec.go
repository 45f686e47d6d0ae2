// Package vec holds the 2D helpers the ring core needs on top of r2.Vec.
package vec

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

var Zero = r2.Vec{}

func Len(v r2.Vec) float64 {
	return r2.Norm(v)
}

func Dist2(a, b r2.Vec) float64 {
	return r2.Norm2(r2.Sub(a, b))
}

// Unit returns v scaled to length 1. The zero vector stays zero.
func Unit(v r2.Vec) r2.Vec {
	l := r2.Norm(v)
	if l == 0 {
		return Zero
	}
	return r2.Scale(1/l, v)
}

// Perp rotates v by +90 degrees without going through sin/cos.
func Perp(v r2.Vec) r2.Vec {
	return r2.Vec{X: -v.Y, Y: v.X}
}

// Rotate turns v by angle radians about the origin, from +X toward +Y.
func Rotate(v r2.Vec, angle float64) r2.Vec {
	return r2.Rotate(v, angle, Zero)
}

// ClampLen shortens v to max if it is longer.
func ClampLen(v r2.Vec, max float64) r2.Vec {
	l := r2.Norm(v)
	if l <= max || l == 0 {
		return v
	}
	return r2.Scale(max/l, v)
}

// AngleBetween is the unsigned angle between a and b in [0, pi].
// It is NaN when either vector is zero.
func AngleBetween(a, b r2.Vec) float64 {
	if a == Zero || b == Zero {
		return math.NaN()
	}
	return math.Acos(max(-1, min(1, r2.Cos(a, b))))
}

func Finite(v r2.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
