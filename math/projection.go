// math/projection.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

// Projection maps geodetic positions to a local Cartesian frame tangent
// to the earth at a reference point: x east, y north, z altitude, all in
// meters. It is azimuthal equidistant, so distances and courses measured
// from the reference point are exact; accuracy of other quantities
// degrades with distance from the reference (see ProjectionConflictRange).
type Projection struct {
	ref LatLonAlt
}

// MakeProjection returns the projection tangent at ref. Only ref's
// latitude and longitude matter; altitudes pass through unchanged.
func MakeProjection(ref LatLonAlt) Projection {
	return Projection{ref: ref.WithAlt(0)}
}

// Project returns the Cartesian coordinates of p.
func (pr Projection) Project(p LatLonAlt) [3]float64 {
	d := Distance(pr.ref, p)
	if d == 0 {
		return [3]float64{0, 0, p.Alt}
	}
	v := Scale2d(TrackVector(InitialCourse(pr.ref, p)), d)
	return [3]float64{v[0], v[1], p.Alt}
}

// Inverse returns the geodetic position of the Cartesian point p.
func (pr Projection) Inverse(p [3]float64) LatLonAlt {
	xy := XY(p)
	d := Length2d(xy)
	return LinearDist(pr.ref, VectorTrack(xy), d).WithAlt(p[2])
}

// velocityStep is the horizontal distance, in meters, used to measure how
// a track angle maps between frames.
const velocityStep = 10

// InverseVelocity converts a velocity expressed in the projection's frame
// at the Cartesian point p into the local frame of the corresponding
// geodetic position.
func (pr Projection) InverseVelocity(p [3]float64, v Velocity) Velocity {
	gs := v.Gs()
	if gs == 0 {
		return v
	}
	step := Scale2d(Normalize2d(v.XY()), velocityStep)
	q := [3]float64{p[0] + step[0], p[1] + step[1], p[2]}
	return MakeVelocity(InitialCourse(pr.Inverse(p), pr.Inverse(q)), gs, v.Vs())
}

// ProjectionConflictRange returns an estimate of the distance in meters
// from the reference point at which the projection's error reaches
// accuracy meters, for a reference at latitude lat. Trajectories that
// span larger distances should be examined as shorter segments.
func ProjectionConflictRange(lat, accuracy float64) float64 {
	// Azimuthal equidistant distortion transverse to the radial grows
	// like d^3/(6 R^2); meridian convergence adds a latitude-dependent term.
	d := Cbrt(6 * Sqr(EarthRadius) * accuracy)
	return d * Cos(lat/2)
}

// ProjectionMaxRange is the distance beyond which the projection
// produces meaningless results.
const ProjectionMaxRange = EarthRadius * Pi / 2
