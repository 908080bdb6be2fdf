// cartesian/levelout.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package cartesian

import (
	"github.com/mmp/kinematics/math"
)

// levelOutSegment is one constant-acceleration phase of a level-out.
type levelOutSegment struct {
	Duration float64 // seconds
	Accel    float64 // m/s^2, signed (positive is up)
}

// LevelOutProfile is the vertical speed schedule that takes an aircraft
// from its current altitude and vertical speed to level flight at a
// target altitude. It is a sequence of at most four constant-acceleration
// segments: stopping (only if the aircraft would otherwise overshoot),
// accelerating toward the climb rate, holding it, and decelerating.
type LevelOutProfile struct {
	Z0, Vs0   float64
	TargetAlt float64
	Segments  []levelOutSegment
}

// MakeLevelOutProfile computes the level-out from altitude z0 and vertical
// speed vs0 to targetAlt. climbRate is the magnitude of the vertical
// speed to hold on the way; accelUp is used to reach it and accelDown to
// level off. When allowClimbRateChange is set and the aircraft is already
// moving toward the target faster than climbRate, it keeps its current
// rate rather than slowing down first. A zero climbRate places no limit on
// the vertical speed. ok is false if either acceleration is not
// positive.
func MakeLevelOutProfile(z0, vs0, climbRate, targetAlt, accelUp, accelDown float64,
	allowClimbRateChange bool) (prof LevelOutProfile, ok bool) {
	if !(accelUp > 0) || !(accelDown > 0) {
		return LevelOutProfile{}, false
	}
	prof = LevelOutProfile{Z0: z0, Vs0: vs0, TargetAlt: targetAlt}
	prof.Segments = levelOutSegments(prof.Segments, targetAlt-z0, vs0, math.Abs(climbRate),
		accelUp, accelDown, allowClimbRateChange)
	return prof, true
}

// levelOutSegments appends the segments that cover the altitude change
// dz starting at vertical speed vs.
func levelOutSegments(segs []levelOutSegment, dz, vs, c, a1, a2 float64, allow bool) []levelOutSegment {
	// Work in terms of speed toward the target (w) and the distance to
	// it (dist) and convert back to signed accelerations at the end.
	s := math.Sign(dz)
	if s == 0 {
		s = -math.Sign(vs)
		if s == 0 {
			return segs // already level at the target
		}
	}
	w0, dist := s*vs, math.Abs(dz)
	seg := func(dur, a float64) {
		if dur > 0 {
			segs = append(segs, levelOutSegment{Duration: dur, Accel: s * a})
		}
	}

	if w0 > 0 && math.Sqr(w0)/(2*a2) > dist {
		// Can't stop in time: stop past the target and come back.
		tStop := w0 / a2
		seg(tStop, -a2)
		return levelOutSegments(segs, dz-s*math.Sqr(w0)/(2*a2), 0, c, a1, a2, false)
	}

	if allow && w0 > c {
		c = w0
	}

	if c > 0 {
		// Trapezoid: w0 -> c, hold c, c -> 0.
		t1 := math.Abs(c-w0) / a1
		d1 := (w0 + c) / 2 * t1
		d3 := math.Sqr(c) / (2 * a2)
		if d2 := dist - d1 - d3; d2 >= 0 {
			seg(t1, math.Sign(c-w0)*a1)
			seg(d2/c, 0)
			seg(c/a2, -a2)
			return segs
		}
	}

	if c == 0 || w0 <= c {
		// Triangle: accelerate to the peak rate p and immediately
		// decelerate; p is found from (p^2-w0^2)/(2 a1) + p^2/(2 a2) = dist.
		p := math.SafeSqrt((dist + math.Sqr(w0)/(2*a1)) / (1/(2*a1) + 1/(2*a2)))
		seg((p-w0)/a1, a1)
		seg(p/a2, -a2)
		return segs
	}

	// Faster than the climb rate without room to slow to it: hold the
	// current rate and then level off.
	seg((dist-math.Sqr(w0)/(2*a2))/w0, 0)
	seg(w0/a2, -a2)
	return segs
}

// Duration returns the total time of the level-out in seconds.
func (p LevelOutProfile) Duration() float64 {
	var d float64
	for _, s := range p.Segments {
		d += s.Duration
	}
	return d
}

// At returns the altitude and vertical speed t seconds into the
// level-out. After the profile ends the aircraft is level at exactly the
// target altitude.
func (p LevelOutProfile) At(t float64) (z, vs float64) {
	z, vs = p.Z0, p.Vs0
	for _, s := range p.Segments {
		if t <= s.Duration {
			return z + vs*t + s.Accel*t*t/2, vs + s.Accel*t
		}
		z += vs*s.Duration + s.Accel*s.Duration*s.Duration/2
		vs += s.Accel * s.Duration
		t -= s.Duration
	}
	return p.TargetAlt, 0
}

// LevelOut returns the altitude and vertical speed t seconds into the
// level-out described by MakeLevelOutProfile's arguments. If the profile
// can't be computed, the vertical speed is held.
func LevelOut(z0, vs0, t, climbRate, targetAlt, accelUp, accelDown float64, allow bool) (z, vs float64) {
	prof, ok := MakeLevelOutProfile(z0, vs0, climbRate, targetAlt, accelUp, accelDown, allow)
	if !ok {
		return z0 + vs0*t, vs0
	}
	return prof.At(t)
}

// LevelOutDuration returns the time in seconds needed to level off at
// targetAlt; it returns 0 if the profile can't be computed.
func LevelOutDuration(z0, vs0, climbRate, targetAlt, accelUp, accelDown float64, allow bool) float64 {
	prof, ok := MakeLevelOutProfile(z0, vs0, climbRate, targetAlt, accelUp, accelDown, allow)
	if !ok {
		return 0
	}
	return prof.Duration()
}

// VsLevelOut flies the vertical level-out to targetAlt while the
// horizontal motion continues unchanged. Non-positive accelerations
// leave the vertical speed unchanged.
func VsLevelOut(so [3]float64, vo math.Velocity, t, climbRate, targetAlt, accelUp, accelDown float64,
	allowClimbRateChange bool) ([3]float64, math.Velocity) {
	z, vs := LevelOut(so[2], vo.Vs(), t, climbRate, targetAlt, accelUp, accelDown, allowClimbRateChange)
	return vertical(so, vo, t, z, vs)
}
