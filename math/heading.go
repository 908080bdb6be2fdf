// math/heading.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

// Track angles are carried in radians throughout the library; headings
// in degrees are only used at the edges (parsing, display).

// NormalizeTrack reduces a track angle in radians to [0,2pi).
func NormalizeTrack(trk float64) float64 {
	t := Mod(trk, 2*Pi)
	if t >= 2*Pi { // roundoff when trk is a tiny negative number
		t = 0
	}
	return t
}

// TurnDelta returns the signed angle in radians to turn from track from
// to track to along the shorter direction; positive is a right
// (clockwise) turn. The result is in (-pi,pi]; a reversal (to within
// roundoff) is reported as a right turn.
func TurnDelta(from, to float64) float64 {
	d := NormalizeTrack(to - from)
	if d > Pi && !AlmostEquals(d, Pi) {
		d -= 2 * Pi
	}
	return d
}

// TrackDifference returns the minimum unsigned difference between two
// track angles, in [0,pi].
func TrackDifference(a, b float64) float64 {
	return Abs(TurnDelta(a, b))
}

// Reduces it to [0,360).
func NormalizeHeading(h float64) float64 {
	return Mod(h, 360)
}

