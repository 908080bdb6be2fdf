// cartesian/accel.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package cartesian

import (
	"github.com/mmp/kinematics/math"
)

// SpeedAccel returns the distance covered and the final speed after t
// seconds of constant acceleration a starting at speed v0. The speed is
// not bounded and may change sign.
func SpeedAccel(v0, t, a float64) (dist, v float64) {
	return v0*t + a*t*t/2, v0 + a*t
}

// SpeedAccelUntil accelerates from v0 toward goal with acceleration
// magnitude |a| and then holds goal. It returns the distance covered and
// the speed after t seconds.
func SpeedAccelUntil(v0, t, goal, a float64) (dist, v float64) {
	a = math.Abs(a) * math.Sign(goal-v0)
	if a == 0 {
		return v0 * t, v0
	}
	accelTime := (goal - v0) / a
	if t <= accelTime {
		return SpeedAccel(v0, t, a)
	}
	d, _ := SpeedAccel(v0, accelTime, a)
	return d + goal*(t-accelTime), goal
}

// GsAccel applies the constant ground speed acceleration a along the
// current track for t seconds. The ground speed is not bounded; if it
// passes through zero the aircraft moves backward along its original
// track.
func GsAccel(so [3]float64, vo math.Velocity, t, a float64) ([3]float64, math.Velocity) {
	dist, gs := SpeedAccel(vo.Gs(), t, a)
	return alongTrack(so, vo, t, dist, gs)
}

// GsAccelUntil accelerates the ground speed toward goalGs with
// acceleration magnitude a and holds it there once reached.
func GsAccelUntil(so [3]float64, vo math.Velocity, t, goalGs, a float64) ([3]float64, math.Velocity) {
	dist, gs := SpeedAccelUntil(vo.Gs(), t, goalGs, a)
	return alongTrack(so, vo, t, dist, gs)
}

func alongTrack(so [3]float64, vo math.Velocity, t, dist, gs float64) ([3]float64, math.Velocity) {
	trk := vo.Trk()
	xy := math.Add2d(math.XY(so), math.Scale2d(math.TrackVector(trk), dist))
	return [3]float64{xy[0], xy[1], so[2] + vo.Vs()*t}, vo.MkGs(gs)
}

// VsAccel applies the constant vertical acceleration a for t seconds;
// horizontal motion is unaffected.
func VsAccel(so [3]float64, vo math.Velocity, t, a float64) ([3]float64, math.Velocity) {
	dz, vs := SpeedAccel(vo.Vs(), t, a)
	return vertical(so, vo, t, so[2]+dz, vs)
}

// VsAccelUntil accelerates the vertical speed toward goalVs with
// acceleration magnitude a and holds it there once reached.
func VsAccelUntil(so [3]float64, vo math.Velocity, t, goalVs, a float64) ([3]float64, math.Velocity) {
	dz, vs := SpeedAccelUntil(vo.Vs(), t, goalVs, a)
	return vertical(so, vo, t, so[2]+dz, vs)
}

func vertical(so [3]float64, vo math.Velocity, t, z, vs float64) ([3]float64, math.Velocity) {
	p, _ := Linear(so, vo, t)
	p[2] = z
	return p, vo.MkVs(vs)
}
