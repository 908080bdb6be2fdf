// cartesian/turn.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package cartesian implements closed-form aircraft kinematics in a local
// Cartesian frame: x east, y north, z up, all in meters, with velocities
// in meters/second and tracks in radians clockwise from north.
package cartesian

import (
	"github.com/mmp/kinematics/math"
)

// minTurnRadius is the radius below which a turn is treated as
// degenerate.
const minTurnRadius = 1e-6

// TurnRadius returns the radius in meters of a coordinated turn at ground
// speed gs and the given bank angle (radians).
func TurnRadius(gs, bank float64) float64 {
	return math.Sqr(gs) / (math.Gravity * math.Tan(math.Abs(bank)))
}

// TurnRate returns the turn rate in radians/second of a coordinated turn
// at ground speed gs and the given bank angle; the result has the sign
// of bank, so positive banks turn right.
func TurnRate(gs, bank float64) float64 {
	return math.Gravity * math.Tan(bank) / gs
}

// BankAngle returns the bank angle needed to fly a turn of radius R at
// ground speed gs.
func BankAngle(gs, R float64) float64 {
	return math.Atan(math.Sqr(gs) / (math.Gravity * R))
}

// TurnRateRadius returns the turn rate in radians/second for a turn of
// radius R at ground speed gs.
func TurnRateRadius(gs, R float64) float64 {
	return gs / R
}

// Linear projects so forward for t seconds at constant velocity.
func Linear(so [3]float64, vo math.Velocity, t float64) ([3]float64, math.Velocity) {
	return math.Add3d(so, math.Scale3d(vo, t)), vo
}

// TurnOmega turns at the constant rate omega (radians/second, positive is
// to the right) for t seconds. Ground speed is unchanged and the altitude
// changes linearly with the vertical speed. A zero omega flies straight.
func TurnOmega(so [3]float64, vo math.Velocity, t, omega float64) ([3]float64, math.Velocity) {
	if omega == 0 {
		return Linear(so, vo, t)
	}

	gs, trk0 := vo.Gs(), vo.Trk()
	trk := trk0 + omega*t
	r := gs / omega // signed
	p := [3]float64{
		so[0] + r*(math.Cos(trk0)-math.Cos(trk)),
		so[1] + r*(math.Sin(trk)-math.Sin(trk0)),
		so[2] + vo.Vs()*t,
	}
	return p, math.MakeVelocity(math.NormalizeTrack(trk), gs, vo.Vs())
}

// Turn flies a turn of radius R in the given direction for t seconds. A
// radius of (nearly) zero returns the initial state unchanged.
func Turn(so [3]float64, vo math.Velocity, t, R float64, turnRight bool) ([3]float64, math.Velocity) {
	if math.Abs(R) < minTurnRadius {
		return so, vo
	}
	omega := TurnRateRadius(vo.Gs(), math.Abs(R))
	if !turnRight {
		omega = -omega
	}
	return TurnOmega(so, vo, t, omega)
}

// TurnByDist returns the state after traveling the arc distance d around
// center on the circle that passes through so. Positive d is clockwise.
// The resulting track is tangent to the circle, the ground speed is gsAtD
// and the vertical speed is zero; the altitude is that of so.
func TurnByDist(so, center [3]float64, d, gsAtD float64) ([3]float64, math.Velocity) {
	radial := math.Sub2d(math.XY(so), math.XY(center))
	R := math.Length2d(radial)
	if R < minTurnRadius {
		return so, math.MakeVelocity(0, gsAtD, 0)
	}

	dir := 1.
	if d < 0 {
		dir = -1
	}
	bearing := math.VectorTrack(radial) + d/R
	xy := math.Add2d(math.XY(center), math.Scale2d(math.TrackVector(bearing), R))
	trk := math.NormalizeTrack(bearing + dir*math.Pi/2)
	return [3]float64{xy[0], xy[1], so[2]}, math.MakeVelocity(trk, gsAtD, 0)
}

// TurnUntilTimeOmega turns at rate omega for turnTime seconds and then
// holds the resulting track for the remainder of t. A negative turnTime
// is treated as zero.
func TurnUntilTimeOmega(so [3]float64, vo math.Velocity, t, turnTime, omega float64) ([3]float64, math.Velocity) {
	turnTime = max(turnTime, 0)
	if t <= turnTime {
		return TurnOmega(so, vo, t, omega)
	}
	p, v := TurnOmega(so, vo, turnTime, omega)
	return Linear(p, v, t-turnTime)
}

// TurnUntilTimeRadius is TurnUntilTimeOmega for a turn of radius R in the
// given direction.
func TurnUntilTimeRadius(so [3]float64, vo math.Velocity, t, turnTime, R float64, turnRight bool) ([3]float64, math.Velocity) {
	turnTime = max(turnTime, 0)
	if t <= turnTime {
		return Turn(so, vo, t, R, turnRight)
	}
	p, v := Turn(so, vo, turnTime, R, turnRight)
	return Linear(p, v, t-turnTime)
}

// TurnUntilParams returns the signed turn rate and the turn duration for
// turning from the track of vo to goalTrack at the given bank angle. The
// turn is in the direction of the smaller angle; a reversal turns right.
// ok is false if no turn is needed or the turn rate is degenerate (zero
// ground speed or zero bank).
func TurnUntilParams(vo math.Velocity, goalTrack, bank float64) (omega, turnTime float64, ok bool) {
	delta := math.TurnDelta(vo.Trk(), goalTrack)
	omega = math.Abs(TurnRate(vo.Gs(), bank))
	if delta == 0 || omega == 0 || !math.IsFinite(omega) {
		return 0, 0, false
	}
	if delta < 0 {
		omega = -omega
	}
	return omega, math.Abs(delta / omega), true
}

// TurnUntil turns at the rate given by the bank angle until the track
// reaches goalTrack and then flies straight. If the turn cannot be
// flown (see TurnUntilParams) the aircraft continues straight.
func TurnUntil(so [3]float64, vo math.Velocity, t, goalTrack, bank float64) ([3]float64, math.Velocity) {
	omega, turnTime, ok := TurnUntilParams(vo, goalTrack, bank)
	if !ok {
		return Linear(so, vo, t)
	}
	if t <= turnTime {
		return TurnOmega(so, vo, t, omega)
	}
	p, v := TurnOmega(so, vo, turnTime, omega)
	return Linear(p, v.MkTrk(math.NormalizeTrack(goalTrack)), t-turnTime)
}
