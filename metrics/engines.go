// metrics/engines.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package metrics

import (
	"github.com/mmp/kinematics/maneuver"
	"github.com/mmp/kinematics/math"
	"github.com/mmp/kinematics/position"
)

type countingCartesian struct {
	engine maneuver.CartesianEngine
	c      *EngineCollector
}

var _ maneuver.CartesianEngine = countingCartesian{}

func (e countingCartesian) Linear(so [3]float64, vo math.Velocity, t float64) ([3]float64, math.Velocity) {
	e.c.inc(position.Cartesian, "Linear")
	return e.engine.Linear(so, vo, t)
}

func (e countingCartesian) Turn(so [3]float64, vo math.Velocity, t, R float64, turnRight bool) ([3]float64, math.Velocity) {
	e.c.inc(position.Cartesian, "Turn")
	return e.engine.Turn(so, vo, t, R, turnRight)
}

func (e countingCartesian) TurnOmega(so [3]float64, vo math.Velocity, t, omega float64) ([3]float64, math.Velocity) {
	e.c.inc(position.Cartesian, "TurnOmega")
	return e.engine.TurnOmega(so, vo, t, omega)
}

func (e countingCartesian) TurnByDist(so, center [3]float64, d, gsAtD float64) ([3]float64, math.Velocity) {
	e.c.inc(position.Cartesian, "TurnByDist")
	return e.engine.TurnByDist(so, center, d, gsAtD)
}

func (e countingCartesian) TurnUntil(so [3]float64, vo math.Velocity, t, goalTrack, bank float64) ([3]float64, math.Velocity) {
	e.c.inc(position.Cartesian, "TurnUntil")
	return e.engine.TurnUntil(so, vo, t, goalTrack, bank)
}

func (e countingCartesian) TurnUntilTimeOmega(so [3]float64, vo math.Velocity, t, turnTime, omega float64) ([3]float64, math.Velocity) {
	e.c.inc(position.Cartesian, "TurnUntilTimeOmega")
	return e.engine.TurnUntilTimeOmega(so, vo, t, turnTime, omega)
}

func (e countingCartesian) TurnUntilTimeRadius(so [3]float64, vo math.Velocity, t, turnTime, R float64, turnRight bool) ([3]float64, math.Velocity) {
	e.c.inc(position.Cartesian, "TurnUntilTimeRadius")
	return e.engine.TurnUntilTimeRadius(so, vo, t, turnTime, R, turnRight)
}

func (e countingCartesian) GsAccel(so [3]float64, vo math.Velocity, t, a float64) ([3]float64, math.Velocity) {
	e.c.inc(position.Cartesian, "GsAccel")
	return e.engine.GsAccel(so, vo, t, a)
}

func (e countingCartesian) GsAccelUntil(so [3]float64, vo math.Velocity, t, goalGs, a float64) ([3]float64, math.Velocity) {
	e.c.inc(position.Cartesian, "GsAccelUntil")
	return e.engine.GsAccelUntil(so, vo, t, goalGs, a)
}

func (e countingCartesian) VsAccel(so [3]float64, vo math.Velocity, t, a float64) ([3]float64, math.Velocity) {
	e.c.inc(position.Cartesian, "VsAccel")
	return e.engine.VsAccel(so, vo, t, a)
}

func (e countingCartesian) VsAccelUntil(so [3]float64, vo math.Velocity, t, goalVs, a float64) ([3]float64, math.Velocity) {
	e.c.inc(position.Cartesian, "VsAccelUntil")
	return e.engine.VsAccelUntil(so, vo, t, goalVs, a)
}

func (e countingCartesian) VsLevelOut(so [3]float64, vo math.Velocity, t, climbRate, targetAlt, accelUp, accelDown float64,
	allowClimbRateChange bool) ([3]float64, math.Velocity) {
	e.c.inc(position.Cartesian, "VsLevelOut")
	return e.engine.VsLevelOut(so, vo, t, climbRate, targetAlt, accelUp, accelDown, allowClimbRateChange)
}

///////////////////////////////////////////////////////////////////////////

type countingGeodetic struct {
	engine maneuver.GeodeticEngine
	c      *EngineCollector
}

var _ maneuver.GeodeticEngine = countingGeodetic{}

func (e countingGeodetic) Linear(so math.LatLonAlt, vo math.Velocity, t float64) (math.LatLonAlt, math.Velocity) {
	e.c.inc(position.Geodetic, "Linear")
	return e.engine.Linear(so, vo, t)
}

func (e countingGeodetic) Turn(so math.LatLonAlt, vo math.Velocity, t, R float64, turnRight bool) (math.LatLonAlt, math.Velocity) {
	e.c.inc(position.Geodetic, "Turn")
	return e.engine.Turn(so, vo, t, R, turnRight)
}

func (e countingGeodetic) TurnOmega(so math.LatLonAlt, vo math.Velocity, t, omega float64) (math.LatLonAlt, math.Velocity) {
	e.c.inc(position.Geodetic, "TurnOmega")
	return e.engine.TurnOmega(so, vo, t, omega)
}

func (e countingGeodetic) TurnOmegaAlt(so math.LatLonAlt, vo math.Velocity, t, omega float64) (math.LatLonAlt, math.Velocity) {
	e.c.inc(position.Geodetic, "TurnOmegaAlt")
	return e.engine.TurnOmegaAlt(so, vo, t, omega)
}

func (e countingGeodetic) TurnByDist(so, center math.LatLonAlt, d, gsAtD float64) (math.LatLonAlt, math.Velocity) {
	e.c.inc(position.Geodetic, "TurnByDist")
	return e.engine.TurnByDist(so, center, d, gsAtD)
}

func (e countingGeodetic) TurnUntil(so math.LatLonAlt, vo math.Velocity, t, goalTrack, bank float64) (math.LatLonAlt, math.Velocity) {
	e.c.inc(position.Geodetic, "TurnUntil")
	return e.engine.TurnUntil(so, vo, t, goalTrack, bank)
}

func (e countingGeodetic) TurnUntilTimeOmega(so math.LatLonAlt, vo math.Velocity, t, turnTime, omega float64) (math.LatLonAlt, math.Velocity) {
	e.c.inc(position.Geodetic, "TurnUntilTimeOmega")
	return e.engine.TurnUntilTimeOmega(so, vo, t, turnTime, omega)
}

func (e countingGeodetic) TurnUntilTimeRadius(so math.LatLonAlt, vo math.Velocity, t, turnTime, R float64, turnRight bool) (math.LatLonAlt, math.Velocity) {
	e.c.inc(position.Geodetic, "TurnUntilTimeRadius")
	return e.engine.TurnUntilTimeRadius(so, vo, t, turnTime, R, turnRight)
}

func (e countingGeodetic) GsAccel(so math.LatLonAlt, vo math.Velocity, t, a float64) (math.LatLonAlt, math.Velocity) {
	e.c.inc(position.Geodetic, "GsAccel")
	return e.engine.GsAccel(so, vo, t, a)
}

func (e countingGeodetic) GsAccelUntil(so math.LatLonAlt, vo math.Velocity, t, goalGs, a float64) (math.LatLonAlt, math.Velocity) {
	e.c.inc(position.Geodetic, "GsAccelUntil")
	return e.engine.GsAccelUntil(so, vo, t, goalGs, a)
}

func (e countingGeodetic) VsAccel(so math.LatLonAlt, vo math.Velocity, t, a float64) (math.LatLonAlt, math.Velocity) {
	e.c.inc(position.Geodetic, "VsAccel")
	return e.engine.VsAccel(so, vo, t, a)
}

func (e countingGeodetic) VsAccelUntil(so math.LatLonAlt, vo math.Velocity, t, goalVs, a float64) (math.LatLonAlt, math.Velocity) {
	e.c.inc(position.Geodetic, "VsAccelUntil")
	return e.engine.VsAccelUntil(so, vo, t, goalVs, a)
}

func (e countingGeodetic) VsLevelOut(so math.LatLonAlt, vo math.Velocity, t, climbRate, targetAlt, accelUp, accelDown float64,
	allowClimbRateChange bool) (math.LatLonAlt, math.Velocity) {
	e.c.inc(position.Geodetic, "VsLevelOut")
	return e.engine.VsLevelOut(so, vo, t, climbRate, targetAlt, accelUp, accelDown, allowClimbRateChange)
}
