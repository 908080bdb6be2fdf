// geodetic/turn.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package geodetic

import (
	"github.com/mmp/kinematics/cartesian"
	"github.com/mmp/kinematics/math"
)

// minTurnRadius matches the Cartesian engine's threshold for degenerate
// turns.
const minTurnRadius = 1e-6

// inPlane evaluates the planar maneuver f in the projection tangent at
// so and maps the result back to geodetic coordinates.
func inPlane(so math.LatLonAlt, vo math.Velocity,
	f func(p [3]float64, v math.Velocity) ([3]float64, math.Velocity)) (math.LatLonAlt, math.Velocity) {
	pr := math.MakeProjection(so)
	// The local frame at so and the projection's frame coincide, so vo
	// can be used as is.
	p, v := f(pr.Project(so), vo)
	return pr.Inverse(p), pr.InverseVelocity(p, v)
}

// TurnOmega turns at the constant rate omega (radians/second, positive is
// right) for t seconds. A zero rate is exactly Linear.
func TurnOmega(so math.LatLonAlt, vo math.Velocity, t, omega float64) (math.LatLonAlt, math.Velocity) {
	if omega == 0 {
		return Linear(so, vo, t)
	}
	return inPlane(so, vo, func(p [3]float64, v math.Velocity) ([3]float64, math.Velocity) {
		return cartesian.TurnOmega(p, v, t, omega)
	})
}

// Turn flies a turn of radius R meters in the given direction for t
// seconds. A radius of (nearly) zero returns the initial state.
func Turn(so math.LatLonAlt, vo math.Velocity, t, R float64, turnRight bool) (math.LatLonAlt, math.Velocity) {
	if math.Abs(R) < minTurnRadius {
		return so, vo
	}
	return inPlane(so, vo, func(p [3]float64, v math.Velocity) ([3]float64, math.Velocity) {
		return cartesian.Turn(p, v, t, R, turnRight)
	})
}

// TurnUntil turns at the rate given by the bank angle toward goalTrack,
// in the direction of the smaller angle (a reversal turns right), and
// then follows the great circle at goalTrack.
func TurnUntil(so math.LatLonAlt, vo math.Velocity, t, goalTrack, bank float64) (math.LatLonAlt, math.Velocity) {
	omega, turnTime, ok := cartesian.TurnUntilParams(vo, goalTrack, bank)
	if !ok {
		return Linear(so, vo, t)
	}
	if t <= turnTime {
		return TurnOmega(so, vo, t, omega)
	}
	p, v := TurnOmega(so, vo, turnTime, omega)
	return Linear(p, v.MkTrk(math.NormalizeTrack(goalTrack)), t-turnTime)
}

// TurnUntilTimeOmega turns at rate omega for turnTime seconds and then
// follows the great circle at the resulting track.
func TurnUntilTimeOmega(so math.LatLonAlt, vo math.Velocity, t, turnTime, omega float64) (math.LatLonAlt, math.Velocity) {
	turnTime = max(turnTime, 0)
	if t <= turnTime {
		return TurnOmega(so, vo, t, omega)
	}
	p, v := TurnOmega(so, vo, turnTime, omega)
	return Linear(p, v, t-turnTime)
}

// TurnUntilTimeRadius is TurnUntilTimeOmega for a turn of radius R in the
// given direction.
func TurnUntilTimeRadius(so math.LatLonAlt, vo math.Velocity, t, turnTime, R float64, turnRight bool) (math.LatLonAlt, math.Velocity) {
	turnTime = max(turnTime, 0)
	if t <= turnTime {
		return Turn(so, vo, t, R, turnRight)
	}
	p, v := Turn(so, vo, turnTime, R, turnRight)
	return Linear(p, v, t-turnTime)
}

// TurnOmegaAlt turns at rate omega directly on the sphere: the aircraft
// moves at its ground speed around a center that is gs/|omega| meters
// abeam its initial position on the inside of the turn, and its altitude
// follows the vertical speed. Unlike TurnOmega, no projection is involved, so the
// result is accurate for arbitrarily long turns.
func TurnOmegaAlt(so math.LatLonAlt, vo math.Velocity, t, omega float64) (math.LatLonAlt, math.Velocity) {
	gs := vo.Gs()
	if omega == 0 || gs == 0 {
		return Linear(so, vo, t)
	}

	dir := math.Sign(omega)
	R := gs / math.Abs(omega)
	center := math.LinearDist(so, vo.Trk()+dir*math.Pi/2, R)

	// Advance the arc length gs*t along the small circle; see TurnByDist.
	dtheta := dir * gs * t / (math.EarthRadius * math.Sin(R/math.EarthRadius))
	bearing := math.InitialCourse(center, so) + dtheta
	p := math.LinearDist(center, bearing, R)
	trk := math.FinalCourse(center, p) + dir*math.Pi/2
	return p.WithAlt(so.Alt + vo.Vs()*t), math.MakeVelocity(math.NormalizeTrack(trk), gs, vo.Vs())
}

// TurnByDist returns the state after traveling the arc distance d around
// center on the circle through so; positive d is clockwise. The resulting
// track is tangent to the circle, the ground speed is gsAtD and the
// vertical speed is zero; the altitude is that of so.
func TurnByDist(so, center math.LatLonAlt, d, gsAtD float64) (math.LatLonAlt, math.Velocity) {
	R := math.Distance(center, so)
	if R < minTurnRadius {
		return so, math.MakeVelocity(0, gsAtD, 0)
	}

	dir := 1.
	if d < 0 {
		dir = -1
	}
	// The circumference of a small circle of geodesic radius R is
	// 2 pi EarthRadius sin(R/EarthRadius).
	dtheta := d / (math.EarthRadius * math.Sin(R/math.EarthRadius))
	bearing := math.InitialCourse(center, so) + dtheta
	p := math.LinearDist(center, bearing, R)
	trk := math.FinalCourse(center, p) + dir*math.Pi/2
	return p.WithAlt(so.Alt), math.MakeVelocity(math.NormalizeTrack(trk), gsAtD, 0)
}
