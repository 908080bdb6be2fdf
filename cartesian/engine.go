// cartesian/engine.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package cartesian

import (
	"github.com/mmp/kinematics/math"
)

// Engine provides the package's maneuvers as methods so that it can be
// supplied wherever a Cartesian kinematics engine is expected. It has no
// state.
type Engine struct{}

func (Engine) Linear(so [3]float64, vo math.Velocity, t float64) ([3]float64, math.Velocity) {
	return Linear(so, vo, t)
}

func (Engine) Turn(so [3]float64, vo math.Velocity, t, R float64, turnRight bool) ([3]float64, math.Velocity) {
	return Turn(so, vo, t, R, turnRight)
}

func (Engine) TurnOmega(so [3]float64, vo math.Velocity, t, omega float64) ([3]float64, math.Velocity) {
	return TurnOmega(so, vo, t, omega)
}

func (Engine) TurnByDist(so, center [3]float64, d, gsAtD float64) ([3]float64, math.Velocity) {
	return TurnByDist(so, center, d, gsAtD)
}

func (Engine) TurnUntil(so [3]float64, vo math.Velocity, t, goalTrack, bank float64) ([3]float64, math.Velocity) {
	return TurnUntil(so, vo, t, goalTrack, bank)
}

func (Engine) TurnUntilTimeOmega(so [3]float64, vo math.Velocity, t, turnTime, omega float64) ([3]float64, math.Velocity) {
	return TurnUntilTimeOmega(so, vo, t, turnTime, omega)
}

func (Engine) TurnUntilTimeRadius(so [3]float64, vo math.Velocity, t, turnTime, R float64, turnRight bool) ([3]float64, math.Velocity) {
	return TurnUntilTimeRadius(so, vo, t, turnTime, R, turnRight)
}

func (Engine) GsAccel(so [3]float64, vo math.Velocity, t, a float64) ([3]float64, math.Velocity) {
	return GsAccel(so, vo, t, a)
}

func (Engine) GsAccelUntil(so [3]float64, vo math.Velocity, t, goalGs, a float64) ([3]float64, math.Velocity) {
	return GsAccelUntil(so, vo, t, goalGs, a)
}

func (Engine) VsAccel(so [3]float64, vo math.Velocity, t, a float64) ([3]float64, math.Velocity) {
	return VsAccel(so, vo, t, a)
}

func (Engine) VsAccelUntil(so [3]float64, vo math.Velocity, t, goalVs, a float64) ([3]float64, math.Velocity) {
	return VsAccelUntil(so, vo, t, goalVs, a)
}

func (Engine) VsLevelOut(so [3]float64, vo math.Velocity, t, climbRate, targetAlt, accelUp, accelDown float64,
	allowClimbRateChange bool) ([3]float64, math.Velocity) {
	return VsLevelOut(so, vo, t, climbRate, targetAlt, accelUp, accelDown, allowClimbRateChange)
}
