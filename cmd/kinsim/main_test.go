// cmd/kinsim/main_test.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/mmp/kinematics/math"
	"github.com/mmp/kinematics/position"
	"github.com/mmp/kinematics/scenario"
)

func TestWriteFinalStates(t *testing.T) {
	v := math.MakeVelocityTrkGsVs(90, 250, -1000)
	trajectories := []scenario.Trajectory{
		{Name: "empty", Frame: position.Cartesian},
		{
			Name:  "xy",
			Frame: position.Cartesian,
			Samples: []scenario.Sample{
				{T: 0, State: position.MakeStatePair(position.MakeXYZ(0, 0, 6000), v)},
				{T: 30, State: position.MakeStatePair(position.MakeXYZ(3, -2, 5000), v)},
			},
		},
		{
			Name:  "ll",
			Frame: position.Geodetic,
			Samples: []scenario.Sample{
				{T: 10, State: position.MakeStatePair(position.MakeLatLonDeg(40.6, -73.8, 3000), v)},
			},
		},
	}

	var buf bytes.Buffer
	if err := writeFinalStates(&buf, trajectories); err != nil {
		t.Fatalf("%v", err)
	}

	var states []finalState
	dec := json.NewDecoder(&buf)
	for {
		var fs finalState
		if err := dec.Decode(&fs); errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			t.Fatalf("%v", err)
		}
		states = append(states, fs)
	}
	if len(states) != 2 {
		t.Fatalf("expected 2 final states, got %d", len(states))
	}

	xy := states[0]
	if xy.Name != "xy" || xy.Frame != "cartesian" || xy.TimeS != 30 || xy.LatLong != nil || xy.XYNM == nil {
		t.Fatalf("unexpected cartesian state %+v", xy)
	}
	for _, c := range []struct{ got, want float64 }{
		{xy.XYNM[0], 3}, {xy.XYNM[1], -2}, {xy.AltitudeFt, 5000},
		{xy.TrackDeg, 90}, {xy.GroundspeedKts, 250}, {xy.VerticalSpeedFpm, -1000},
	} {
		if !math.Within(c.got, c.want, 1e-6) {
			t.Errorf("got %f, expected %f", c.got, c.want)
		}
	}

	ll := states[1]
	if ll.Name != "ll" || ll.Frame != "geodetic" || ll.XYNM != nil || ll.LatLong == nil || *ll.LatLong == "" {
		t.Errorf("unexpected geodetic state %+v", ll)
	}
	if !math.Within(ll.AltitudeFt, 3000, 1e-6) {
		t.Errorf("altitude %f, expected 3000", ll.AltitudeFt)
	}
}
