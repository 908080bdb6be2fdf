// geodetic/engine.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package geodetic

import (
	"github.com/mmp/kinematics/math"
)

// Engine provides the package's maneuvers as methods so that it can be
// supplied wherever a geodetic kinematics engine is expected. It has no
// state.
type Engine struct{}

func (Engine) Linear(so math.LatLonAlt, vo math.Velocity, t float64) (math.LatLonAlt, math.Velocity) {
	return Linear(so, vo, t)
}

func (Engine) Turn(so math.LatLonAlt, vo math.Velocity, t, R float64, turnRight bool) (math.LatLonAlt, math.Velocity) {
	return Turn(so, vo, t, R, turnRight)
}

func (Engine) TurnOmega(so math.LatLonAlt, vo math.Velocity, t, omega float64) (math.LatLonAlt, math.Velocity) {
	return TurnOmega(so, vo, t, omega)
}

func (Engine) TurnOmegaAlt(so math.LatLonAlt, vo math.Velocity, t, omega float64) (math.LatLonAlt, math.Velocity) {
	return TurnOmegaAlt(so, vo, t, omega)
}

func (Engine) TurnByDist(so, center math.LatLonAlt, d, gsAtD float64) (math.LatLonAlt, math.Velocity) {
	return TurnByDist(so, center, d, gsAtD)
}

func (Engine) TurnUntil(so math.LatLonAlt, vo math.Velocity, t, goalTrack, bank float64) (math.LatLonAlt, math.Velocity) {
	return TurnUntil(so, vo, t, goalTrack, bank)
}

func (Engine) TurnUntilTimeOmega(so math.LatLonAlt, vo math.Velocity, t, turnTime, omega float64) (math.LatLonAlt, math.Velocity) {
	return TurnUntilTimeOmega(so, vo, t, turnTime, omega)
}

func (Engine) TurnUntilTimeRadius(so math.LatLonAlt, vo math.Velocity, t, turnTime, R float64, turnRight bool) (math.LatLonAlt, math.Velocity) {
	return TurnUntilTimeRadius(so, vo, t, turnTime, R, turnRight)
}

func (Engine) GsAccel(so math.LatLonAlt, vo math.Velocity, t, a float64) (math.LatLonAlt, math.Velocity) {
	return GsAccel(so, vo, t, a)
}

func (Engine) GsAccelUntil(so math.LatLonAlt, vo math.Velocity, t, goalGs, a float64) (math.LatLonAlt, math.Velocity) {
	return GsAccelUntil(so, vo, t, goalGs, a)
}

func (Engine) VsAccel(so math.LatLonAlt, vo math.Velocity, t, a float64) (math.LatLonAlt, math.Velocity) {
	return VsAccel(so, vo, t, a)
}

func (Engine) VsAccelUntil(so math.LatLonAlt, vo math.Velocity, t, goalVs, a float64) (math.LatLonAlt, math.Velocity) {
	return VsAccelUntil(so, vo, t, goalVs, a)
}

func (Engine) VsLevelOut(so math.LatLonAlt, vo math.Velocity, t, climbRate, targetAlt, accelUp, accelDown float64,
	allowClimbRateChange bool) (math.LatLonAlt, math.Velocity) {
	return VsLevelOut(so, vo, t, climbRate, targetAlt, accelUp, accelDown, allowClimbRateChange)
}
