// math/velocity.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
	"log/slog"
)

// Velocity is a 3D velocity expressed in the local frame of the position
// it is paired with: 0 is east, 1 is north, 2 is up, all in meters/second.
// Most callers think of it in terms of track, ground speed, and vertical
// speed; the accessors below provide that view.
type Velocity [3]float64

// MakeVelocity returns the velocity with the given track (radians,
// clockwise from north), ground speed, and vertical speed (both m/s).
func MakeVelocity(trk, gs, vs float64) Velocity {
	return Velocity{gs * Sin(trk), gs * Cos(trk), vs}
}

// MakeVelocityTrkGsVs is MakeVelocity for aviation units: degrees,
// knots, and feet per minute.
func MakeVelocityTrkGsVs(trkDeg, gsKts, vsFpm float64) Velocity {
	return MakeVelocity(Radians(trkDeg), KnotsToMPS(gsKts), FPMToMPS(vsFpm))
}

// Trk returns the track angle in [0,2pi); it is 0 when the ground speed
// is zero.
func (v Velocity) Trk() float64 {
	return VectorTrack([2]float64{v[0], v[1]})
}

// Gs returns the ground speed in m/s.
func (v Velocity) Gs() float64 {
	return Hypot(v[0], v[1])
}

// Vs returns the vertical speed in m/s; positive is climbing.
func (v Velocity) Vs() float64 {
	return v[2]
}

// XY returns the horizontal velocity vector.
func (v Velocity) XY() [2]float64 {
	return [2]float64{v[0], v[1]}
}

// MkTrk returns a velocity with the same ground and vertical speeds but
// the given track.
func (v Velocity) MkTrk(trk float64) Velocity {
	return MakeVelocity(trk, v.Gs(), v.Vs())
}

// MkGs returns a velocity with the same track and vertical speed but the
// given ground speed. A negative ground speed reverses the horizontal
// direction.
func (v Velocity) MkGs(gs float64) Velocity {
	return MakeVelocity(v.Trk(), gs, v.Vs())
}

// MkVs returns a velocity with the same horizontal components and the
// given vertical speed.
func (v Velocity) MkVs(vs float64) Velocity {
	return Velocity{v[0], v[1], vs}
}

// AlmostEquals reports whether the two velocities agree component-wise to
// within tol m/s.
func (v Velocity) AlmostEquals(w Velocity, tol float64) bool {
	return AlmostEquals3d(v, w, tol)
}

func (v Velocity) String() string {
	return fmt.Sprintf("trk %.1f gs %.1fkts vs %.0ffpm", Degrees(v.Trk()),
		MPSToKnots(v.Gs()), MPSToFPM(v.Vs()))
}

func (v Velocity) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("trk_deg", Degrees(v.Trk())),
		slog.Float64("gs_mps", v.Gs()),
		slog.Float64("vs_mps", v.Vs()),
	)
}
