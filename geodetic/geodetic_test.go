// geodetic/geodetic_test.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package geodetic

import (
	"testing"

	"github.com/mmp/kinematics/cartesian"
	"github.com/mmp/kinematics/math"
)

func TestLinear(t *testing.T) {
	so := math.MakeLatLonAlt(0, 0, 0)
	vo := math.MakeVelocity(math.Pi/2, 100, 2)

	// Sixty nautical miles along the equator is one degree of longitude.
	tm := math.NMToMeters(60) / 100
	p, v := Linear(so, vo, tm)
	if !math.Within(p.LatDeg(), 0, 1e-9) || !math.Within(p.LonDeg(), 1, 1e-9) {
		t.Errorf("got %s, expected (0, 1)", p.DDString())
	}
	if !math.Within(p.Alt, 2*tm, 1e-9) {
		t.Errorf("altitude %f, expected %f", p.Alt, 2*tm)
	}
	if !math.Within(math.Degrees(v.Trk()), 90, 1e-9) || !math.Within(v.Gs(), 100, 1e-9) || v.Vs() != 2 {
		t.Errorf("velocity %v", v)
	}

	// Identity at t=0.
	so = math.MakeLatLonAlt(40.6, -73.8, 5000)
	vo = math.MakeVelocityTrkGsVs(310, 250, -1000)
	p, v = Linear(so, vo, 0)
	if p != so || !v.AlmostEquals(vo, 1e-9) {
		t.Errorf("t=0 gave %s %v, expected %s %v", p, v, so, vo)
	}

	// Stationary aircraft only change altitude.
	p, v = Linear(so, math.Velocity{0, 0, -3}, 10)
	if p != so.WithAlt(so.Alt-30) || v != (math.Velocity{0, 0, -3}) {
		t.Errorf("stationary gave %s %v", p, v)
	}
}

func TestLinearGreatCircle(t *testing.T) {
	jfk := math.MakeLatLonAlt(40.6398, -73.7789, 0)
	lax := math.MakeLatLonAlt(33.9425, -118.4081, 0)
	d := math.Distance(jfk, lax)

	vo := math.MakeVelocity(math.InitialCourse(jfk, lax), 250, 0)
	p, v := Linear(jfk, vo, d/250)
	if dist := math.Distance(p, lax); dist > 1 {
		t.Errorf("ended %f m from LAX", dist)
	}
	if fc := math.FinalCourse(jfk, lax); !math.Within(v.Trk(), fc, 1e-6) {
		t.Errorf("final track %f, expected %f", math.Degrees(v.Trk()), math.Degrees(fc))
	}
}

func TestTurnOmegaZero(t *testing.T) {
	so := math.MakeLatLonAlt(51.5, -0.1, 3000)
	vo := math.MakeVelocityTrkGsVs(45, 200, 500)
	for _, tm := range []float64{0, 10, 600} {
		p0, v0 := TurnOmega(so, vo, tm, 0)
		p1, v1 := Linear(so, vo, tm)
		if p0 != p1 || v0 != v1 {
			t.Errorf("t=%f: TurnOmega(0) %s %v, Linear %s %v", tm, p0, v0, p1, v1)
		}
		p0, v0 = TurnOmegaAlt(so, vo, tm, 0)
		if p0 != p1 || v0 != v1 {
			t.Errorf("t=%f: TurnOmegaAlt(0) %s %v, Linear %s %v", tm, p0, v0, p1, v1)
		}
	}
}

func TestTurnMatchesCartesian(t *testing.T) {
	so := math.MakeLatLonAlt(40, -74, 8000)
	vo := math.MakeVelocityTrkGsVs(120, 220, 800)
	pr := math.MakeProjection(so)

	for _, right := range []bool{true, false} {
		p, v := Turn(so, vo, 60, 3000, right)
		pc, vc := cartesian.Turn(pr.Project(so), vo, 60, 3000, right)

		if d := math.Distance2d(math.XY(pr.Project(p)), math.XY(pc)); d > 1e-3 {
			t.Errorf("right=%v: geodetic turn is %f m from the planar one", right, d)
		}
		if p.Alt != pc[2] {
			t.Errorf("right=%v: altitude %f, expected %f", right, p.Alt, pc[2])
		}
		// Tracks differ only by meridian convergence.
		if d := math.TrackDifference(v.Trk(), vc.Trk()); d > 2e-3 {
			t.Errorf("right=%v: track %f, planar %f", right, math.Degrees(v.Trk()), math.Degrees(vc.Trk()))
		}
		if !math.Within(v.Gs(), vo.Gs(), 1e-6) || !math.Within(v.Vs(), vo.Vs(), 1e-12) {
			t.Errorf("right=%v: speeds changed: %v -> %v", right, vo, v)
		}
	}

	if p, v := Turn(so, vo, 60, 0, true); p != so || v != vo {
		t.Errorf("zero radius turn gave %s %v", p, v)
	}
}

func TestTurnOmegaAlt(t *testing.T) {
	so := math.MakeLatLonAlt(47.45, -122.3, 2000)
	vo := math.MakeVelocityTrkGsVs(340, 180, -700)
	gs := vo.Gs()

	for _, omega := range []float64{0.03, -0.03} {
		// Short turns agree with the projected solution.
		p0, v0 := TurnOmega(so, vo, 40, omega)
		p1, v1 := TurnOmegaAlt(so, vo, 40, omega)
		if !p0.AlmostEquals(p1, 1, 1e-9) {
			t.Errorf("omega %f: TurnOmega %s, TurnOmegaAlt %s (%f m apart)", omega, p0, p1, math.Distance(p0, p1))
		}
		if d := math.TrackDifference(v0.Trk(), v1.Trk()); d > 1e-3 {
			t.Errorf("omega %f: tracks %f and %f", omega, math.Degrees(v0.Trk()), math.Degrees(v1.Trk()))
		}

		// The aircraft stays abeam the center.
		R := gs / math.Abs(omega)
		center := math.LinearDist(so, vo.Trk()+math.Sign(omega)*math.Pi/2, R)
		for _, tm := range []float64{5, 50, 150} {
			p, _ := TurnOmegaAlt(so, vo, tm, omega)
			if d := math.Distance(center, p); !math.Within(d, R, 1e-6) {
				t.Errorf("omega %f t %f: %f m from center, expected %f", omega, tm, d, R)
			}
			if !math.Within(p.Alt, so.Alt+vo.Vs()*tm, 1e-9) {
				t.Errorf("omega %f t %f: altitude %f", omega, tm, p.Alt)
			}
		}

		// A full circle returns to the start with the same track. The
		// small circle's circumference is a little less than 2 pi R.
		period := 2 * math.Pi * math.EarthRadius * math.Sin(R/math.EarthRadius) / gs
		p, v := TurnOmegaAlt(so, vo, period, omega)
		if d := math.Distance(p, so); d > 1e-3 {
			t.Errorf("omega %f: full circle ended %f m away", omega, d)
		}
		if d := math.TrackDifference(v.Trk(), vo.Trk()); d > 1e-6 {
			t.Errorf("omega %f: full circle track %f, expected %f", omega, math.Degrees(v.Trk()),
				math.Degrees(vo.Trk()))
		}
	}
}

func TestTurnOmegaAltLongRadius(t *testing.T) {
	so := math.MakeLatLonAlt(35, 139, 10000)
	vo := math.MakeVelocityTrkGsVs(75, 480, 0)
	gs := vo.Gs()
	R := 500000.
	tm := 100000 / gs // 100 km along the circle

	for _, dir := range []float64{1, -1} {
		omega := dir * gs / R
		p, v := TurnOmegaAlt(so, vo, tm, omega)

		center := math.LinearDist(so, vo.Trk()+dir*math.Pi/2, R)
		if d := math.Distance(center, p); !math.Within(d, R, 1e-3) {
			t.Errorf("dir %f: %f m from center, expected %f", dir, d, R)
		}

		// Arc length on the small circle matches the distance flown.
		swept := math.TrackDifference(math.InitialCourse(center, so), math.InitialCourse(center, p))
		arc := swept * math.EarthRadius * math.Sin(R/math.EarthRadius)
		if !math.Within(arc, gs*tm, 1) {
			t.Errorf("dir %f: flew %f m along the circle, expected %f", dir, arc, gs*tm)
		}

		// Same place as going the distance with TurnByDist.
		pd, vd := TurnByDist(so, center, dir*gs*tm, gs)
		if d := math.Distance(p, pd); d > 1e-3 {
			t.Errorf("dir %f: TurnOmegaAlt %s, TurnByDist %s (%f m apart)", dir, p, pd, d)
		}
		if d := math.TrackDifference(v.Trk(), vd.Trk()); d > 1e-7 {
			t.Errorf("dir %f: tracks %f and %f", dir, math.Degrees(v.Trk()), math.Degrees(vd.Trk()))
		}
	}
}

func TestTurnByDist(t *testing.T) {
	center := math.MakeLatLonAlt(40, -74, 0)
	R := 2000.
	so := math.LinearDist(center, 0, R).WithAlt(1500)
	quarter := math.Pi / 2 * math.EarthRadius * math.Sin(R/math.EarthRadius)

	for _, tc := range []struct {
		name    string
		d       float64
		bearing float64
	}{
		{"clockwise", quarter, math.Pi / 2},
		{"counterclockwise", -quarter, -math.Pi / 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p, v := TurnByDist(so, center, tc.d, 80)
			expect := math.LinearDist(center, tc.bearing, R).WithAlt(1500)
			if !p.AlmostEquals(expect, 1e-3, 0) {
				t.Errorf("got %s, expected %s", p, expect)
			}
			// Moving south on either side of the center.
			if d := math.TrackDifference(v.Trk(), math.Pi); d > 1e-3 {
				t.Errorf("track %f, expected about 180", math.Degrees(v.Trk()))
			}
			if !math.Within(v.Gs(), 80, 1e-9) || v.Vs() != 0 {
				t.Errorf("velocity %v", v)
			}
		})
	}

	if p, v := TurnByDist(center, center, 100, 50); p != center || !math.Within(v.Gs(), 50, 1e-9) {
		t.Errorf("degenerate TurnByDist gave %s %v", p, v)
	}
}

func TestTurnUntil(t *testing.T) {
	so := math.MakeLatLonAlt(35, 139, 10000)
	vo := math.MakeVelocityTrkGsVs(0, 240, 0)
	bank := math.Radians(25)
	_, turnTime, ok := cartesian.TurnUntilParams(vo, math.Radians(90), bank)
	if !ok {
		t.Fatalf("TurnUntilParams failed")
	}

	_, v := TurnUntil(so, vo, turnTime+1, math.Radians(90), bank)
	if d := math.TrackDifference(v.Trk(), math.Radians(90)); d > 1e-4 {
		t.Errorf("track %f after the turn, expected about 90", math.Degrees(v.Trk()))
	}

	_, v = TurnUntil(so, vo, 1, math.Pi, bank)
	if trk := math.Degrees(v.Trk()); trk <= 0 || trk > 90 {
		t.Errorf("reversal: track %f, expected a right turn", trk)
	}

	p, v := TurnUntil(so, math.Velocity{0, 0, 1}, 10, math.Pi, bank)
	pl, vl := Linear(so, math.Velocity{0, 0, 1}, 10)
	if p != pl || v != vl {
		t.Errorf("zero ground speed: %s %v, expected %s %v", p, v, pl, vl)
	}
}

func TestTurnUntilTime(t *testing.T) {
	so := math.MakeLatLonAlt(-33.9, 151.2, 3000)
	vo := math.MakeVelocityTrkGsVs(200, 210, 1200)

	pt, vt := TurnOmega(so, vo, 20, -0.04)
	pe, ve := Linear(pt, vt, 30)
	p, v := TurnUntilTimeOmega(so, vo, 50, 20, -0.04)
	if p != pe || v != ve {
		t.Errorf("TurnUntilTimeOmega %s %v, expected %s %v", p, v, pe, ve)
	}

	R := vo.Gs() / 0.04
	p, v = TurnUntilTimeRadius(so, vo, 50, 20, R, false)
	if !p.AlmostEquals(pe, 1e-3, 1e-6) || !v.AlmostEquals(ve, 1e-6) {
		t.Errorf("TurnUntilTimeRadius %s %v, expected %s %v", p, v, pe, ve)
	}
}

func TestSpeedChanges(t *testing.T) {
	so := math.MakeLatLonAlt(10, 10, 0)

	// Already at the goal ground speed.
	vo := math.MakeVelocity(1, 100, 0)
	for _, tm := range []float64{0, 5, 500} {
		if _, v := GsAccelUntil(so, vo, tm, 100, 4); !math.Within(v.Gs(), 100, 1e-9) {
			t.Errorf("t=%f: gs %f, expected 100", tm, v.Gs())
		}
	}

	// Acceleration covers the same distance as in the plane.
	p, v := GsAccel(so, vo, 10, 2)
	if d := math.Distance(so, p); !math.Within(d, 1100, 1e-6) {
		t.Errorf("GsAccel covered %f m, expected 1100", d)
	}
	if !math.Within(v.Gs(), 120, 1e-9) {
		t.Errorf("GsAccel gs %f, expected 120", v.Gs())
	}

	// Slowing through zero backs up along the original track.
	p, v = GsAccel(so, math.MakeVelocity(0, 10, 0), 10, -2)
	if p != so || !math.Within(math.Degrees(v.Trk()), 180, 1e-9) {
		t.Errorf("reversal gave %s %v", p, v)
	}
	p, _ = GsAccel(so, math.MakeVelocity(0, 10, 0), 20, -2)
	if !math.Within(p.LatDeg(), 10-math.MetersToNM(200)/60, 1e-9) {
		t.Errorf("reversal went to %s", p.DDString())
	}

	p, v = VsAccelUntil(so, math.MakeVelocity(0, 50, 0), 20, 5, 1)
	if !math.Within(p.Alt, 12.5+75, 1e-9) || v.Vs() != 5 {
		t.Errorf("VsAccelUntil gave alt %f vs %f", p.Alt, v.Vs())
	}
	p, v = VsAccel(so, math.MakeVelocity(0, 50, 0), 10, -1)
	if !math.Within(p.Alt, -50, 1e-9) || v.Vs() != -10 {
		t.Errorf("VsAccel gave alt %f vs %f", p.Alt, v.Vs())
	}
	if d := math.Distance(so, p); !math.Within(d, 500, 1e-6) {
		t.Errorf("VsAccel moved %f m horizontally, expected 500", d)
	}
}

func TestVsLevelOut(t *testing.T) {
	so := math.MakeLatLonAlt(60, 5, 1000)
	vo := math.MakeVelocityTrkGsVs(90, 160, 1500)
	target := math.FeetToMeters(9000)

	for _, allow := range []bool{false, true} {
		d := cartesian.LevelOutDuration(so.Alt, vo.Vs(), math.FPMToMPS(2000), target, 0.5, 0.5, allow)
		p, v := VsLevelOut(so, vo, d+1, math.FPMToMPS(2000), target, 0.5, 0.5, allow)
		if p.Alt != target || v.Vs() != 0 {
			t.Errorf("allow=%v: alt %f vs %f, expected %f and 0", allow, p.Alt, v.Vs(), target)
		}
		pl, _ := Linear(so, vo, d+1)
		if !p.AlmostEquals(pl.WithAlt(target), 1e-9, 0) {
			t.Errorf("allow=%v: horizontal position %s, expected %s", allow, p, pl)
		}
	}
}
