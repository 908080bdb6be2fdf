// metrics/metrics.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package metrics counts kinematics engine invocations with Prometheus.
package metrics

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/mmp/kinematics/maneuver"
	"github.com/mmp/kinematics/position"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const engineCallsName = "kinematics_engine_calls_total"

// EngineCollector holds the engine call counters.
type EngineCollector struct {
	gatherer prometheus.Gatherer

	EngineCalls *prometheus.CounterVec
}

// NewEngineCollector registers the engine metrics with reg, defaulting to
// the global Prometheus registry when nil. Registering with a registry
// that already has them returns a collector sharing the existing
// counters.
func NewEngineCollector(reg prometheus.Registerer) (*EngineCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: engineCallsName,
		Help: "Number of kinematics engine invocations, labeled by coordinate frame and maneuver.",
	}, []string{"frame", "maneuver"})
	calls, err := registerCounterVec(reg, calls, engineCallsName)
	if err != nil {
		return nil, err
	}

	return &EngineCollector{
		gatherer:    gatherer,
		EngineCalls: calls,
	}, nil
}

func (c *EngineCollector) inc(frame position.Frame, name string) {
	if c == nil || c.EngineCalls == nil {
		return
	}
	c.EngineCalls.WithLabelValues(frame.String(), name).Inc()
}

// Instrument returns a Dispatcher that counts each engine call before
// passing it to the engine d would have used.
func (c *EngineCollector) Instrument(d maneuver.Dispatcher) maneuver.Dispatcher {
	cart, geo := d.Engines()
	return maneuver.Dispatcher{
		Cartesian: countingCartesian{engine: cart, c: c},
		Geodetic:  countingGeodetic{engine: geo, c: c},
	}
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *EngineCollector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// Handler exposes a ready-to-use /metrics handler.
func (c *EngineCollector) Handler() http.Handler {
	gatherer := c.Gatherer()
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Snapshot returns the current engine call counts, keyed by
// "frame/maneuver".
func (c *EngineCollector) Snapshot() (map[string]float64, error) {
	gatherer := c.Gatherer()
	if gatherer == nil {
		return nil, nil
	}
	mfs, err := gatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	counts := make(map[string]float64)
	for _, mf := range mfs {
		if mf.GetName() != engineCallsName {
			continue
		}
		for _, m := range mf.Metric {
			var frame, man string
			for _, lp := range m.GetLabel() {
				switch lp.GetName() {
				case "frame":
					frame = lp.GetValue()
				case "maneuver":
					man = lp.GetValue()
				}
			}
			counts[frame+"/"+man] = m.GetCounter().GetValue()
		}
	}
	return counts, nil
}

// SnapshotString formats a Snapshot for logging, one "key=count" per
// counter in sorted order.
func SnapshotString(counts map[string]float64) string {
	var s []string
	for k, v := range counts {
		s = append(s, fmt.Sprintf("%s=%.0f", k, v))
	}
	slices.Sort(s)
	return strings.Join(s, " ")
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
