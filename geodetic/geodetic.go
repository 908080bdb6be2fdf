// geodetic/geodetic.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package geodetic implements aircraft kinematics for positions given as
// latitude, longitude and altitude on a spherical earth. Velocities are
// expressed in the local east/north/up frame of the position they are
// paired with.
//
// Straight-line maneuvers follow great circles. Turns are solved in the
// azimuthal equidistant projection tangent at the starting point, which
// preserves distances and courses from that point, using the closed forms
// of the cartesian package.
package geodetic

import (
	"github.com/mmp/kinematics/cartesian"
	"github.com/mmp/kinematics/math"
)

// alongTrack moves p dist meters along the great circle leaving it at
// track trk and returns the new position and the track there in the
// original direction of travel. A negative dist moves backward.
func alongTrack(p math.LatLonAlt, trk, dist float64) (math.LatLonAlt, float64) {
	if dist == 0 {
		return p, trk
	}
	q := math.LinearDist(p, trk, dist)
	crs := math.FinalCourse(p, q)
	if dist < 0 {
		crs += math.Pi
	}
	return q, math.NormalizeTrack(crs)
}

// Linear flies the great circle along the current track at constant
// ground speed for t seconds; the altitude changes with the vertical
// speed.
func Linear(so math.LatLonAlt, vo math.Velocity, t float64) (math.LatLonAlt, math.Velocity) {
	gs := vo.Gs()
	if gs == 0 {
		return so.WithAlt(so.Alt + vo.Vs()*t), vo
	}
	p, trk := alongTrack(so, vo.Trk(), gs*t)
	return p.WithAlt(so.Alt + vo.Vs()*t), math.MakeVelocity(trk, gs, vo.Vs())
}

// GsAccel applies the constant ground speed acceleration a along the
// current great circle for t seconds; the ground speed is not bounded.
func GsAccel(so math.LatLonAlt, vo math.Velocity, t, a float64) (math.LatLonAlt, math.Velocity) {
	dist, gs := cartesian.SpeedAccel(vo.Gs(), t, a)
	return speedChange(so, vo, t, dist, gs)
}

// GsAccelUntil accelerates the ground speed toward goalGs with
// acceleration magnitude a and holds it there once reached.
func GsAccelUntil(so math.LatLonAlt, vo math.Velocity, t, goalGs, a float64) (math.LatLonAlt, math.Velocity) {
	dist, gs := cartesian.SpeedAccelUntil(vo.Gs(), t, goalGs, a)
	return speedChange(so, vo, t, dist, gs)
}

func speedChange(so math.LatLonAlt, vo math.Velocity, t, dist, gs float64) (math.LatLonAlt, math.Velocity) {
	p, trk := alongTrack(so, vo.Trk(), dist)
	return p.WithAlt(so.Alt + vo.Vs()*t), math.MakeVelocity(trk, gs, vo.Vs())
}

// VsAccel applies the constant vertical acceleration a for t seconds
// while continuing along the great circle.
func VsAccel(so math.LatLonAlt, vo math.Velocity, t, a float64) (math.LatLonAlt, math.Velocity) {
	dz, vs := cartesian.SpeedAccel(vo.Vs(), t, a)
	return vertical(so, vo, t, so.Alt+dz, vs)
}

// VsAccelUntil accelerates the vertical speed toward goalVs with
// acceleration magnitude a and holds it there once reached.
func VsAccelUntil(so math.LatLonAlt, vo math.Velocity, t, goalVs, a float64) (math.LatLonAlt, math.Velocity) {
	dz, vs := cartesian.SpeedAccelUntil(vo.Vs(), t, goalVs, a)
	return vertical(so, vo, t, so.Alt+dz, vs)
}

// VsLevelOut flies the vertical level-out described by
// cartesian.MakeLevelOutProfile while continuing along the great circle.
func VsLevelOut(so math.LatLonAlt, vo math.Velocity, t, climbRate, targetAlt, accelUp, accelDown float64,
	allowClimbRateChange bool) (math.LatLonAlt, math.Velocity) {
	z, vs := cartesian.LevelOut(so.Alt, vo.Vs(), t, climbRate, targetAlt, accelUp, accelDown, allowClimbRateChange)
	return vertical(so, vo, t, z, vs)
}

func vertical(so math.LatLonAlt, vo math.Velocity, t, alt, vs float64) (math.LatLonAlt, math.Velocity) {
	p, v := Linear(so, vo, t)
	return p.WithAlt(alt), v.MkVs(vs)
}
