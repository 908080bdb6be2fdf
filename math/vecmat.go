// math/vecmat.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

///////////////////////////////////////////////////////////////////////////
// point 2d

// Various useful functions for arithmetic with 2D points/vectors.
// Names are brief in order to avoid clutter when they're used.

// a+b
func Add2d(a [2]float64, b [2]float64) [2]float64 {
	return [2]float64{a[0] + b[0], a[1] + b[1]}
}

// a-b
func Sub2d(a [2]float64, b [2]float64) [2]float64 {
	return [2]float64{a[0] - b[0], a[1] - b[1]}
}

// a*s
func Scale2d(a [2]float64, s float64) [2]float64 {
	return [2]float64{s * a[0], s * a[1]}
}

// Length of v
func Length2d(v [2]float64) float64 {
	return Hypot(v[0], v[1])
}

// Distance between two points
func Distance2d(a [2]float64, b [2]float64) float64 {
	return Length2d(Sub2d(a, b))
}

// Normalizes the given vector.
func Normalize2d(a [2]float64) [2]float64 {
	l := Length2d(a)
	if l == 0 {
		return [2]float64{0, 0}
	}
	return Scale2d(a, 1/l)
}

// TrackVector returns the unit vector pointing along the given track angle
// (radians, clockwise from +y/north).
func TrackVector(trk float64) [2]float64 {
	return [2]float64{Sin(trk), Cos(trk)}
}

// VectorTrack returns the track angle in [0,2pi) of the given vector,
// measured clockwise from +y. The zero vector has track 0.
func VectorTrack(v [2]float64) float64 {
	if v[0] == 0 && v[1] == 0 {
		return 0
	}
	// Note that atan2() normally measures w.r.t. the +x axis and angles
	// are positive for counter-clockwise. We want to measure w.r.t. +y and
	// to have positive angles be clockwise. Happily, swapping the order of
	// values passed to atan2()--passing (x,y), gives what we want.
	return NormalizeTrack(Atan2(v[0], v[1]))
}

///////////////////////////////////////////////////////////////////////////
// point 3d

func Add3d(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func Scale3d(a [3]float64, s float64) [3]float64 {
	return [3]float64{s * a[0], s * a[1], s * a[2]}
}

// XY returns the horizontal components of a 3D point.
func XY(p [3]float64) [2]float64 {
	return [2]float64{p[0], p[1]}
}

// AlmostEquals3d reports whether a and b agree component-wise to within tol.
func AlmostEquals3d(a, b [3]float64, tol float64) bool {
	return Within(a[0], b[0], tol) && Within(a[1], b[1], tol) && Within(a[2], b[2], tol)
}
