// maneuver/maneuver.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package maneuver predicts aircraft state after a single maneuver
// without the caller needing to know which coordinate frame the state is
// in. Each maneuver takes a position.Position and math.Velocity (or a
// position.StatePair holding both) and returns the StatePair at time t,
// in the same frame as the input, computed by the kinematics engine for
// that frame.
//
// All quantities are SI: meters, seconds, radians (tracks clockwise from
// north), meters/second. Positions with an invalid frame cause a panic.
//
// The functions here use Default; use a Dispatcher to supply other
// engines.
package maneuver

import (
	"github.com/mmp/kinematics/math"
	"github.com/mmp/kinematics/position"
)

// Default uses the cartesian and geodetic packages' engines.
var Default Dispatcher

func Linear(so position.Position, vo math.Velocity, t float64) position.StatePair {
	return Default.Linear(so, vo, t)
}

func LinearState(sp position.StatePair, t float64) position.StatePair {
	return Default.LinearState(sp, t)
}

func Turn(so position.Position, vo math.Velocity, t, R float64, turnRight bool) position.StatePair {
	return Default.Turn(so, vo, t, R, turnRight)
}

func TurnState(sp position.StatePair, t, R float64, turnRight bool) position.StatePair {
	return Default.TurnState(sp, t, R, turnRight)
}

func TurnOmega(so position.Position, vo math.Velocity, t, omega float64) position.StatePair {
	return Default.TurnOmega(so, vo, t, omega)
}

func TurnOmegaState(sp position.StatePair, t, omega float64) position.StatePair {
	return Default.TurnOmegaState(sp, t, omega)
}

func TurnOmegaAlt(so position.Position, vo math.Velocity, t, omega float64) position.StatePair {
	return Default.TurnOmegaAlt(so, vo, t, omega)
}

func TurnOmegaAltState(sp position.StatePair, t, omega float64) position.StatePair {
	return Default.TurnOmegaAltState(sp, t, omega)
}

func TurnByDist(so, center position.Position, d, gsAtD float64) position.StatePair {
	return Default.TurnByDist(so, center, d, gsAtD)
}

func TurnUntil(so position.Position, vo math.Velocity, t, goalTrack, bank float64) position.StatePair {
	return Default.TurnUntil(so, vo, t, goalTrack, bank)
}

func TurnUntilState(sp position.StatePair, t, goalTrack, bank float64) position.StatePair {
	return Default.TurnUntilState(sp, t, goalTrack, bank)
}

func TurnUntilTimeOmega(so position.Position, vo math.Velocity, t, turnTime, omega float64) position.StatePair {
	return Default.TurnUntilTimeOmega(so, vo, t, turnTime, omega)
}

func TurnUntilTimeOmegaState(sp position.StatePair, t, turnTime, omega float64) position.StatePair {
	return Default.TurnUntilTimeOmegaState(sp, t, turnTime, omega)
}

func TurnUntilTime(so position.Position, vo math.Velocity, t, turnTime, R float64, turnRight bool) position.StatePair {
	return Default.TurnUntilTime(so, vo, t, turnTime, R, turnRight)
}

func TurnUntilTimeState(sp position.StatePair, t, turnTime, R float64, turnRight bool) position.StatePair {
	return Default.TurnUntilTimeState(sp, t, turnTime, R, turnRight)
}

func GsAccel(so position.Position, vo math.Velocity, t, a float64) position.StatePair {
	return Default.GsAccel(so, vo, t, a)
}

func GsAccelState(sp position.StatePair, t, a float64) position.StatePair {
	return Default.GsAccelState(sp, t, a)
}

func GsAccelUntil(so position.Position, vo math.Velocity, t, goalGs, a float64) position.StatePair {
	return Default.GsAccelUntil(so, vo, t, goalGs, a)
}

func GsAccelUntilState(sp position.StatePair, t, goalGs, a float64) position.StatePair {
	return Default.GsAccelUntilState(sp, t, goalGs, a)
}

func VsAccel(so position.Position, vo math.Velocity, t, a float64) position.StatePair {
	return Default.VsAccel(so, vo, t, a)
}

func VsAccelState(sp position.StatePair, t, a float64) position.StatePair {
	return Default.VsAccelState(sp, t, a)
}

func VsAccelUntil(so position.Position, vo math.Velocity, t, goalVs, a float64) position.StatePair {
	return Default.VsAccelUntil(so, vo, t, goalVs, a)
}

func VsAccelUntilState(sp position.StatePair, t, goalVs, a float64) position.StatePair {
	return Default.VsAccelUntilState(sp, t, goalVs, a)
}

func VsLevelOut(so position.Position, vo math.Velocity, t, climbRate, targetAlt, accelUp, accelDown float64,
	allowClimbRateChange bool) position.StatePair {
	return Default.VsLevelOut(so, vo, t, climbRate, targetAlt, accelUp, accelDown, allowClimbRateChange)
}

func VsLevelOutState(sp position.StatePair, t, climbRate, targetAlt, accelUp, accelDown float64,
	allowClimbRateChange bool) position.StatePair {
	return Default.VsLevelOutState(sp, t, climbRate, targetAlt, accelUp, accelDown, allowClimbRateChange)
}

func VsLevelOutSymmetric(so position.Position, vo math.Velocity, t, climbRate, targetAlt, a float64,
	allowClimbRateChange bool) position.StatePair {
	return Default.VsLevelOutSymmetric(so, vo, t, climbRate, targetAlt, a, allowClimbRateChange)
}

func VsLevelOutSymmetricState(sp position.StatePair, t, climbRate, targetAlt, a float64,
	allowClimbRateChange bool) position.StatePair {
	return Default.VsLevelOutSymmetricState(sp, t, climbRate, targetAlt, a, allowClimbRateChange)
}

func VsLevelOutDefault(so position.Position, vo math.Velocity, t, climbRate, targetAlt, a float64) position.StatePair {
	return Default.VsLevelOutDefault(so, vo, t, climbRate, targetAlt, a)
}

func VsLevelOutDefaultState(sp position.StatePair, t, climbRate, targetAlt, a float64) position.StatePair {
	return Default.VsLevelOutDefaultState(sp, t, climbRate, targetAlt, a)
}
