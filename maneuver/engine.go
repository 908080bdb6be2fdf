// maneuver/engine.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package maneuver

import (
	"github.com/mmp/kinematics/cartesian"
	"github.com/mmp/kinematics/geodetic"
	"github.com/mmp/kinematics/math"
)

// Engine is the set of maneuvers a kinematics engine provides for
// positions of type P. Each takes the initial position and velocity (the
// velocity in the position's local frame), the elapsed time t in seconds
// and maneuver-specific parameters in SI units, and returns the position
// and velocity at time t.
type Engine[P any] interface {
	Linear(so P, vo math.Velocity, t float64) (P, math.Velocity)
	Turn(so P, vo math.Velocity, t, R float64, turnRight bool) (P, math.Velocity)
	TurnOmega(so P, vo math.Velocity, t, omega float64) (P, math.Velocity)
	TurnByDist(so, center P, d, gsAtD float64) (P, math.Velocity)
	TurnUntil(so P, vo math.Velocity, t, goalTrack, bank float64) (P, math.Velocity)
	TurnUntilTimeOmega(so P, vo math.Velocity, t, turnTime, omega float64) (P, math.Velocity)
	TurnUntilTimeRadius(so P, vo math.Velocity, t, turnTime, R float64, turnRight bool) (P, math.Velocity)
	GsAccel(so P, vo math.Velocity, t, a float64) (P, math.Velocity)
	GsAccelUntil(so P, vo math.Velocity, t, goalGs, a float64) (P, math.Velocity)
	VsAccel(so P, vo math.Velocity, t, a float64) (P, math.Velocity)
	VsAccelUntil(so P, vo math.Velocity, t, goalVs, a float64) (P, math.Velocity)
	VsLevelOut(so P, vo math.Velocity, t, climbRate, targetAlt, accelUp, accelDown float64,
		allowClimbRateChange bool) (P, math.Velocity)
}

// CartesianEngine computes maneuvers for positions in a local Cartesian
// frame (x east, y north, z up, meters).
type CartesianEngine = Engine[[3]float64]

// GeodeticEngine computes maneuvers for latitude/longitude/altitude
// positions. It also provides TurnOmegaAlt, a turn computed directly on
// the earth's surface.
type GeodeticEngine interface {
	Engine[math.LatLonAlt]
	TurnOmegaAlt(so math.LatLonAlt, vo math.Velocity, t, omega float64) (math.LatLonAlt, math.Velocity)
}

var (
	_ CartesianEngine = cartesian.Engine{}
	_ GeodeticEngine  = geodetic.Engine{}
)
