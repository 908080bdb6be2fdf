// math/core.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

// Degrees converts an angle expressed in radians to degrees
func Degrees(r float64) float64 {
	return r * 180 / gomath.Pi
}

// Radians converts an angle expressed in degrees to radians
func Radians(d float64) float64 {
	return d / 180 * gomath.Pi
}

const Pi = gomath.Pi

// A handful of thin wrappers so that callers in this module can say
// math.Sin() and the like without also importing the standard library
// package under another name.

func Sin(a float64) float64 { return gomath.Sin(a) }

func Cos(a float64) float64 { return gomath.Cos(a) }

func Tan(a float64) float64 { return gomath.Tan(a) }

func Atan(a float64) float64 { return gomath.Atan(a) }

func Atan2(y, x float64) float64 { return gomath.Atan2(y, x) }

func Sqrt(a float64) float64 { return gomath.Sqrt(a) }

func Hypot(a, b float64) float64 { return gomath.Hypot(a, b) }

func Cbrt(a float64) float64 { return gomath.Cbrt(a) }

func Floor(a float64) float64 { return gomath.Floor(a) }

func SafeASin(a float64) float64 {
	return gomath.Asin(Clamp(a, -1, 1))
}

// SafeSqrt returns 0 for (slightly) negative arguments that arise from
// floating-point roundoff.
func SafeSqrt(a float64) float64 {
	if a <= 0 {
		return 0
	}
	return gomath.Sqrt(a)
}

func IsFinite(v float64) bool {
	return !gomath.IsNaN(v) && !gomath.IsInf(v, 0)
}

func Sign[V constraints.Signed | constraints.Float](v V) V {
	if v > 0 {
		return 1
	} else if v < 0 {
		return -1
	}
	return 0
}

func Abs[V constraints.Integer | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

func Sqr[V constraints.Integer | constraints.Float](v V) V { return v * v }

func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

// Mod returns a mod b with the result in [0,b) for positive b, unlike the
// standard library's Mod, which takes the sign of a.
func Mod(a, b float64) float64 {
	m := gomath.Mod(a, b)
	if m < 0 {
		m += b
	}
	return m
}

// Epsilon is the default tolerance used by AlmostEquals; it is relative
// for large magnitudes and absolute near zero.
const Epsilon = 1e-9

// AlmostEquals reports whether a and b are equal to within Epsilon,
// measured relative to their magnitude when that exceeds 1.
func AlmostEquals(a, b float64) bool {
	return Within(a, b, Epsilon*max(1, Abs(a), Abs(b)))
}

// Within reports whether a and b differ by no more than tol.
func Within(a, b, tol float64) bool {
	return Abs(a-b) <= tol
}
