// metrics/metrics_test.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mmp/kinematics/maneuver"
	"github.com/mmp/kinematics/math"
	"github.com/mmp/kinematics/position"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestInstrumentCountsCalls(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewEngineCollector(reg)
	if err != nil {
		t.Fatalf("NewEngineCollector: %v", err)
	}
	d := c.Instrument(maneuver.Dispatcher{})

	cart := position.MakeXYZ(1, 1, 2000)
	geo := position.MakeLatLonDeg(40, -74, 2000)
	vo := math.MakeVelocityTrkGsVs(90, 200, 0)

	for range 2 {
		if got, want := d.Linear(cart, vo, 30), maneuver.Linear(cart, vo, 30); got != want {
			t.Errorf("instrumented Linear gave %s, expected %s", got, want)
		}
	}
	if got, want := d.TurnOmegaAlt(geo, vo, 30, 0.02), maneuver.TurnOmegaAlt(geo, vo, 30, 0.02); got != want {
		t.Errorf("instrumented TurnOmegaAlt gave %s, expected %s", got, want)
	}
	d.TurnUntilTime(geo, vo, 30, 10, 3000, true)
	d.VsLevelOutDefault(cart, vo, 30, 5, 2500, 0.5)

	for _, tc := range []struct {
		frame, maneuver string
		want            float64
	}{
		{"cartesian", "Linear", 2},
		{"geodetic", "Linear", 0},
		{"geodetic", "TurnOmegaAlt", 1},
		{"geodetic", "TurnUntilTimeRadius", 1},
		{"cartesian", "VsLevelOut", 1},
	} {
		if got := testutil.ToFloat64(c.EngineCalls.WithLabelValues(tc.frame, tc.maneuver)); got != tc.want {
			t.Errorf("%s{frame=%q,maneuver=%q} = %v, want %v", engineCallsName, tc.frame, tc.maneuver, got, tc.want)
		}
	}
}

func TestInstrumentWrapsCustomEngine(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewEngineCollector(reg)
	if err != nil {
		t.Fatalf("NewEngineCollector: %v", err)
	}

	var calls int
	d := c.Instrument(maneuver.Dispatcher{Cartesian: stubEngine{calls: &calls}})
	sp := d.GsAccel(position.MakeXYZ(0, 0, 0), math.MakeVelocity(0, 100, 0), 10, 1)
	if calls != 1 || sp.Position.Point() != [3]float64{7, 8, 9} {
		t.Errorf("custom engine calls %d, result %s", calls, sp)
	}
	if got := testutil.ToFloat64(c.EngineCalls.WithLabelValues("cartesian", "GsAccel")); got != 1 {
		t.Errorf("GsAccel count %v, want 1", got)
	}
}

type stubEngine struct {
	maneuver.CartesianEngine
	calls *int
}

func (s stubEngine) GsAccel(so [3]float64, vo math.Velocity, t, a float64) ([3]float64, math.Velocity) {
	*s.calls++
	return [3]float64{7, 8, 9}, vo
}

func TestReregistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	c1, err := NewEngineCollector(reg)
	if err != nil {
		t.Fatalf("NewEngineCollector: %v", err)
	}
	c2, err := NewEngineCollector(reg)
	if err != nil {
		t.Fatalf("second NewEngineCollector: %v", err)
	}
	if c1.EngineCalls != c2.EngineCalls {
		t.Errorf("re-registration created new counters")
	}

	reg = prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGauge(prometheus.GaugeOpts{Name: engineCallsName, Help: "not a counter"}))
	if _, err := NewEngineCollector(reg); err == nil {
		t.Errorf("expected error registering over an incompatible collector")
	}
}

func TestSnapshot(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewEngineCollector(reg)
	if err != nil {
		t.Fatalf("NewEngineCollector: %v", err)
	}
	d := c.Instrument(maneuver.Dispatcher{})
	vo := math.MakeVelocity(0, 100, 0)
	d.Turn(position.MakeXYZ(0, 0, 0), vo, 10, 2000, true)
	d.Turn(position.MakeLatLonDeg(10, 10, 0), vo, 10, 2000, false)
	d.Turn(position.MakeLatLonDeg(10, 10, 0), vo, 20, 2000, false)

	snap, err := c.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(snap) != 2 || snap["cartesian/Turn"] != 1 || snap["geodetic/Turn"] != 2 {
		t.Errorf("snapshot %v", snap)
	}
	if s := SnapshotString(snap); s != "cartesian/Turn=1 geodetic/Turn=2" {
		t.Errorf("SnapshotString gave %q", s)
	}

	if got := counterValue(t, reg, map[string]string{"frame": "geodetic", "maneuver": "Turn"}); got != 2 {
		t.Errorf("gathered geodetic Turn count %v, want 2", got)
	}
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewEngineCollector(reg)
	if err != nil {
		t.Fatalf("NewEngineCollector: %v", err)
	}
	c.Instrument(maneuver.Dispatcher{}).Linear(position.MakeXYZ(0, 0, 0), math.MakeVelocity(0, 1, 0), 1)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d, want 200", rr.Code)
	}
	if body := rr.Body.String(); !strings.Contains(body, `kinematics_engine_calls_total{frame="cartesian",maneuver="Linear"} 1`) {
		t.Errorf("/metrics output missing engine count: %s", body)
	}
}

func TestNilCollector(t *testing.T) {
	var c *EngineCollector
	// Counting is skipped but the engines still run.
	sp := c.Instrument(maneuver.Dispatcher{}).Linear(position.MakeXYZ(0, 0, 0), math.MakeVelocity(0, 10, 0), 1)
	if !sp.Position.AlmostEquals(position.MakeCartesian([3]float64{0, 10, 0}), 1e-9, 0) {
		t.Errorf("nil collector Linear gave %s", sp)
	}
	if snap, err := c.Snapshot(); snap != nil || err != nil {
		t.Errorf("nil collector snapshot %v %v", snap, err)
	}
}

func counterValue(t *testing.T, gatherer prometheus.Gatherer, labels map[string]string) float64 {
	t.Helper()

	mfs, err := gatherer.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() != engineCallsName {
			continue
		}
		for _, m := range mf.Metric {
			if matchLabels(m.GetLabel(), labels) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func matchLabels(got []*dto.LabelPair, want map[string]string) bool {
	matched := 0
	for _, lp := range got {
		if val, ok := want[lp.GetName()]; ok && val == lp.GetValue() {
			matched++
		}
	}
	return matched == len(want)
}
