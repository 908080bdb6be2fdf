// maneuver/dispatch.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package maneuver

import (
	"fmt"

	"github.com/mmp/kinematics/cartesian"
	"github.com/mmp/kinematics/geodetic"
	"github.com/mmp/kinematics/math"
	"github.com/mmp/kinematics/position"
)

// Dispatcher routes each maneuver to the engine for the frame of its
// initial position. A nil engine selects the corresponding engine from
// the cartesian or geodetic package, so the zero Dispatcher is ready to
// use. Dispatchers hold no mutable state and are safe for concurrent use.
type Dispatcher struct {
	Cartesian CartesianEngine
	Geodetic  GeodeticEngine
}

func (d Dispatcher) cartesian() CartesianEngine {
	if d.Cartesian != nil {
		return d.Cartesian
	}
	return cartesian.Engine{}
}

func (d Dispatcher) geodetic() GeodeticEngine {
	if d.Geodetic != nil {
		return d.Geodetic
	}
	return geodetic.Engine{}
}

// Engines returns the engines d uses for each frame.
func (d Dispatcher) Engines() (CartesianEngine, GeodeticEngine) {
	return d.cartesian(), d.geodetic()
}

type (
	cartesianFunc func(so [3]float64) ([3]float64, math.Velocity)
	geodeticFunc  func(so math.LatLonAlt) (math.LatLonAlt, math.Velocity)
)

// dispatch calls the function for so's frame with so's coordinates and
// returns the result as a StatePair in the same frame. It panics if so
// is not a valid position.
func dispatch(so position.Position, cart cartesianFunc, geo geodeticFunc) position.StatePair {
	switch so.Frame() {
	case position.Geodetic:
		p, v := geo(so.LatLonAlt())
		return position.MakeStatePair(position.MakeLatLon(p), v)
	case position.Cartesian:
		p, v := cart(so.Point())
		return position.MakeStatePair(position.MakeCartesian(p), v)
	default:
		panic(fmt.Sprintf("maneuver: position has %s frame", so.Frame()))
	}
}

// Linear flies at constant velocity for t seconds.
func (d Dispatcher) Linear(so position.Position, vo math.Velocity, t float64) position.StatePair {
	return dispatch(so,
		func(p [3]float64) ([3]float64, math.Velocity) { return d.cartesian().Linear(p, vo, t) },
		func(p math.LatLonAlt) (math.LatLonAlt, math.Velocity) { return d.geodetic().Linear(p, vo, t) })
}

func (d Dispatcher) LinearState(sp position.StatePair, t float64) position.StatePair {
	return d.Linear(sp.Position, sp.Velocity, t)
}

// Turn flies a turn of radius R meters in the given direction for t
// seconds.
func (d Dispatcher) Turn(so position.Position, vo math.Velocity, t, R float64, turnRight bool) position.StatePair {
	return dispatch(so,
		func(p [3]float64) ([3]float64, math.Velocity) { return d.cartesian().Turn(p, vo, t, R, turnRight) },
		func(p math.LatLonAlt) (math.LatLonAlt, math.Velocity) {
			return d.geodetic().Turn(p, vo, t, R, turnRight)
		})
}

func (d Dispatcher) TurnState(sp position.StatePair, t, R float64, turnRight bool) position.StatePair {
	return d.Turn(sp.Position, sp.Velocity, t, R, turnRight)
}

// TurnOmega turns at omega radians/second (positive is right) for t
// seconds.
func (d Dispatcher) TurnOmega(so position.Position, vo math.Velocity, t, omega float64) position.StatePair {
	return dispatch(so,
		func(p [3]float64) ([3]float64, math.Velocity) { return d.cartesian().TurnOmega(p, vo, t, omega) },
		func(p math.LatLonAlt) (math.LatLonAlt, math.Velocity) {
			return d.geodetic().TurnOmega(p, vo, t, omega)
		})
}

func (d Dispatcher) TurnOmegaState(sp position.StatePair, t, omega float64) position.StatePair {
	return d.TurnOmega(sp.Position, sp.Velocity, t, omega)
}

// TurnOmegaAlt is TurnOmega, except that geodetic positions use the
// geodetic engine's turn on the sphere. Cartesian positions are handled
// by TurnOmega.
func (d Dispatcher) TurnOmegaAlt(so position.Position, vo math.Velocity, t, omega float64) position.StatePair {
	return dispatch(so,
		func(p [3]float64) ([3]float64, math.Velocity) { return d.cartesian().TurnOmega(p, vo, t, omega) },
		func(p math.LatLonAlt) (math.LatLonAlt, math.Velocity) {
			return d.geodetic().TurnOmegaAlt(p, vo, t, omega)
		})
}

func (d Dispatcher) TurnOmegaAltState(sp position.StatePair, t, omega float64) position.StatePair {
	return d.TurnOmegaAlt(sp.Position, sp.Velocity, t, omega)
}

// TurnByDist returns the state after traveling the arc distance d meters
// around center on the circle through so (positive d is clockwise), with
// ground speed gsAtD at the end. Altitude is not changed. so and center
// must be in the same frame.
func (d Dispatcher) TurnByDist(so, center position.Position, dist, gsAtD float64) position.StatePair {
	if so.Frame() != center.Frame() {
		panic(fmt.Sprintf("maneuver: TurnByDist from %s position around %s center", so.Frame(), center.Frame()))
	}
	return dispatch(so,
		func(p [3]float64) ([3]float64, math.Velocity) {
			return d.cartesian().TurnByDist(p, center.Point(), dist, gsAtD)
		},
		func(p math.LatLonAlt) (math.LatLonAlt, math.Velocity) {
			return d.geodetic().TurnByDist(p, center.LatLonAlt(), dist, gsAtD)
		})
}

// TurnUntil turns at the rate given by bank toward goalTrack, in the
// direction the engine chooses, and then flies straight.
func (d Dispatcher) TurnUntil(so position.Position, vo math.Velocity, t, goalTrack, bank float64) position.StatePair {
	return dispatch(so,
		func(p [3]float64) ([3]float64, math.Velocity) {
			return d.cartesian().TurnUntil(p, vo, t, goalTrack, bank)
		},
		func(p math.LatLonAlt) (math.LatLonAlt, math.Velocity) {
			return d.geodetic().TurnUntil(p, vo, t, goalTrack, bank)
		})
}

func (d Dispatcher) TurnUntilState(sp position.StatePair, t, goalTrack, bank float64) position.StatePair {
	return d.TurnUntil(sp.Position, sp.Velocity, t, goalTrack, bank)
}

// TurnUntilTimeOmega turns at rate omega for at most turnTime seconds and
// then holds the track.
func (d Dispatcher) TurnUntilTimeOmega(so position.Position, vo math.Velocity, t, turnTime, omega float64) position.StatePair {
	return dispatch(so,
		func(p [3]float64) ([3]float64, math.Velocity) {
			return d.cartesian().TurnUntilTimeOmega(p, vo, t, turnTime, omega)
		},
		func(p math.LatLonAlt) (math.LatLonAlt, math.Velocity) {
			return d.geodetic().TurnUntilTimeOmega(p, vo, t, turnTime, omega)
		})
}

func (d Dispatcher) TurnUntilTimeOmegaState(sp position.StatePair, t, turnTime, omega float64) position.StatePair {
	return d.TurnUntilTimeOmega(sp.Position, sp.Velocity, t, turnTime, omega)
}

// TurnUntilTime flies a turn of radius R in the given direction for at
// most turnTime seconds and then holds the track.
func (d Dispatcher) TurnUntilTime(so position.Position, vo math.Velocity, t, turnTime, R float64, turnRight bool) position.StatePair {
	return dispatch(so,
		func(p [3]float64) ([3]float64, math.Velocity) {
			return d.cartesian().TurnUntilTimeRadius(p, vo, t, turnTime, R, turnRight)
		},
		func(p math.LatLonAlt) (math.LatLonAlt, math.Velocity) {
			return d.geodetic().TurnUntilTimeRadius(p, vo, t, turnTime, R, turnRight)
		})
}

func (d Dispatcher) TurnUntilTimeState(sp position.StatePair, t, turnTime, R float64, turnRight bool) position.StatePair {
	return d.TurnUntilTime(sp.Position, sp.Velocity, t, turnTime, R, turnRight)
}

// GsAccel changes the ground speed at a m/s^2 for t seconds.
func (d Dispatcher) GsAccel(so position.Position, vo math.Velocity, t, a float64) position.StatePair {
	return dispatch(so,
		func(p [3]float64) ([3]float64, math.Velocity) { return d.cartesian().GsAccel(p, vo, t, a) },
		func(p math.LatLonAlt) (math.LatLonAlt, math.Velocity) { return d.geodetic().GsAccel(p, vo, t, a) })
}

func (d Dispatcher) GsAccelState(sp position.StatePair, t, a float64) position.StatePair {
	return d.GsAccel(sp.Position, sp.Velocity, t, a)
}

// GsAccelUntil changes the ground speed toward goalGs at |a| m/s^2 and
// then holds it.
func (d Dispatcher) GsAccelUntil(so position.Position, vo math.Velocity, t, goalGs, a float64) position.StatePair {
	return dispatch(so,
		func(p [3]float64) ([3]float64, math.Velocity) {
			return d.cartesian().GsAccelUntil(p, vo, t, goalGs, a)
		},
		func(p math.LatLonAlt) (math.LatLonAlt, math.Velocity) {
			return d.geodetic().GsAccelUntil(p, vo, t, goalGs, a)
		})
}

func (d Dispatcher) GsAccelUntilState(sp position.StatePair, t, goalGs, a float64) position.StatePair {
	return d.GsAccelUntil(sp.Position, sp.Velocity, t, goalGs, a)
}

// VsAccel changes the vertical speed at a m/s^2 for t seconds.
func (d Dispatcher) VsAccel(so position.Position, vo math.Velocity, t, a float64) position.StatePair {
	return dispatch(so,
		func(p [3]float64) ([3]float64, math.Velocity) { return d.cartesian().VsAccel(p, vo, t, a) },
		func(p math.LatLonAlt) (math.LatLonAlt, math.Velocity) { return d.geodetic().VsAccel(p, vo, t, a) })
}

func (d Dispatcher) VsAccelState(sp position.StatePair, t, a float64) position.StatePair {
	return d.VsAccel(sp.Position, sp.Velocity, t, a)
}

// VsAccelUntil changes the vertical speed toward goalVs at |a| m/s^2 and
// then holds it.
func (d Dispatcher) VsAccelUntil(so position.Position, vo math.Velocity, t, goalVs, a float64) position.StatePair {
	return dispatch(so,
		func(p [3]float64) ([3]float64, math.Velocity) {
			return d.cartesian().VsAccelUntil(p, vo, t, goalVs, a)
		},
		func(p math.LatLonAlt) (math.LatLonAlt, math.Velocity) {
			return d.geodetic().VsAccelUntil(p, vo, t, goalVs, a)
		})
}

func (d Dispatcher) VsAccelUntilState(sp position.StatePair, t, goalVs, a float64) position.StatePair {
	return d.VsAccelUntil(sp.Position, sp.Velocity, t, goalVs, a)
}

// VsLevelOut climbs or descends at climbRate to level off at targetAlt,
// using accelUp to reach the climb rate and accelDown to level off. If
// allowClimbRateChange is set, an aircraft already moving toward the
// target faster than climbRate keeps its rate.
func (d Dispatcher) VsLevelOut(so position.Position, vo math.Velocity, t, climbRate, targetAlt, accelUp, accelDown float64,
	allowClimbRateChange bool) position.StatePair {
	return dispatch(so,
		func(p [3]float64) ([3]float64, math.Velocity) {
			return d.cartesian().VsLevelOut(p, vo, t, climbRate, targetAlt, accelUp, accelDown, allowClimbRateChange)
		},
		func(p math.LatLonAlt) (math.LatLonAlt, math.Velocity) {
			return d.geodetic().VsLevelOut(p, vo, t, climbRate, targetAlt, accelUp, accelDown, allowClimbRateChange)
		})
}

func (d Dispatcher) VsLevelOutState(sp position.StatePair, t, climbRate, targetAlt, accelUp, accelDown float64,
	allowClimbRateChange bool) position.StatePair {
	return d.VsLevelOut(sp.Position, sp.Velocity, t, climbRate, targetAlt, accelUp, accelDown, allowClimbRateChange)
}

// VsLevelOutSymmetric is VsLevelOut with the same acceleration for both
// phases.
func (d Dispatcher) VsLevelOutSymmetric(so position.Position, vo math.Velocity, t, climbRate, targetAlt, a float64,
	allowClimbRateChange bool) position.StatePair {
	return d.VsLevelOut(so, vo, t, climbRate, targetAlt, a, a, allowClimbRateChange)
}

func (d Dispatcher) VsLevelOutSymmetricState(sp position.StatePair, t, climbRate, targetAlt, a float64,
	allowClimbRateChange bool) position.StatePair {
	return d.VsLevelOut(sp.Position, sp.Velocity, t, climbRate, targetAlt, a, a, allowClimbRateChange)
}

// VsLevelOutDefault is VsLevelOutSymmetric with climb rate changes
// allowed.
func (d Dispatcher) VsLevelOutDefault(so position.Position, vo math.Velocity, t, climbRate, targetAlt, a float64) position.StatePair {
	return d.VsLevelOut(so, vo, t, climbRate, targetAlt, a, a, true)
}

func (d Dispatcher) VsLevelOutDefaultState(sp position.StatePair, t, climbRate, targetAlt, a float64) position.StatePair {
	return d.VsLevelOut(sp.Position, sp.Velocity, t, climbRate, targetAlt, a, a, true)
}
