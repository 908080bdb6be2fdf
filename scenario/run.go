// scenario/run.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/mmp/kinematics/log"
	"github.com/mmp/kinematics/maneuver"
	"github.com/mmp/kinematics/math"
	"github.com/mmp/kinematics/position"

	"github.com/brunoga/deep"
	"golang.org/x/sync/errgroup"
)

// Run samples the trajectory of each scenario using d. Scenarios run
// concurrently; each sample is computed directly from the initial state
// so that errors don't accumulate over the trajectory. The returned
// trajectories are in the same order as scenarios. The scenarios
// themselves are not modified. Geodetic turns that go far enough from
// their start to exceed ProjectionAccuracy are logged as warnings.
func Run(ctx context.Context, scenarios []*Scenario, d maneuver.Dispatcher, lg *log.Logger) ([]Trajectory, error) {
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}
	scenarios = deep.MustCopy(scenarios)
	for _, s := range scenarios {
		if s.StepS == 0 {
			s.StepS = DefaultStep
		}
	}

	trajectories := make([]Trajectory, len(scenarios))
	eg, ctx := errgroup.WithContext(ctx)
	for i, s := range scenarios {
		eg.Go(func() error {
			start := time.Now()
			tr, err := s.sample(ctx, d)
			if err != nil {
				return fmt.Errorf("%s: %w", s.Name, err)
			}
			lg.Debug("sampled scenario", slog.String("name", s.Name), slog.Int("samples", len(tr.Samples)),
				slog.Duration("elapsed", time.Since(start)))
			trajectories[i] = tr
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, tr := range trajectories {
		if f, ok := tr.Final(); ok {
			lg.Info("scenario complete", slog.String("name", tr.Name), slog.Any("final", f.State))
		}
		checkProjectionRange(tr, lg)
	}
	return trajectories, nil
}

// ProjectionAccuracy is the error in meters of the geodetic engine's
// local projection beyond which Run warns about a trajectory.
const ProjectionAccuracy = 1

// projectedManeuvers are the maneuvers the geodetic engine solves in a
// projection tangent at the initial position.
var projectedManeuvers = []string{"turn", "turn_omega", "turn_until", "turn_until_time", "turn_until_time_omega"}

// checkProjectionRange warns if a projected geodetic trajectory strays
// far enough from its starting point that the projection is inaccurate.
// It returns the distance in meters at which that happens, or 0 if the
// trajectory stays in range.
func checkProjectionRange(tr Trajectory, lg *log.Logger) float64 {
	if tr.Frame != position.Geodetic || !slices.Contains(projectedManeuvers, tr.Maneuver) || len(tr.Samples) == 0 {
		return 0
	}

	start := tr.Samples[0].State.Position
	limit := math.ProjectionConflictRange(start.LatLonAlt().Lat, ProjectionAccuracy)
	for _, s := range tr.Samples {
		d := start.Distance(s.State.Position)
		if d > math.ProjectionMaxRange {
			lg.Warnf("%s: %.0f nm from the start at t=%.0fs, beyond the range of the projection",
				tr.Name, math.MetersToNM(d), s.T)
			return d
		} else if d > limit {
			lg.Warnf("%s: %.1f nm from the start at t=%.0fs; errors may exceed %dm past %.1f nm",
				tr.Name, math.MetersToNM(d), s.T, ProjectionAccuracy, math.MetersToNM(limit))
			return d
		}
	}
	return 0
}

// SampleTimes returns the times at which a trajectory of the given
// duration is sampled: every step seconds starting at 0, plus the end
// time if it isn't a multiple of step.
func SampleTimes(duration, step float64) []float64 {
	if duration <= 0 {
		return []float64{0}
	}
	if step <= 0 {
		step = DefaultStep
	}
	n := int(math.Floor(duration/step + 1e-9))
	times := make([]float64, 0, n+2)
	for i := 0; i <= n; i++ {
		times = append(times, float64(i)*step)
	}
	if last := times[len(times)-1]; !math.Within(last, duration, 1e-9) {
		times = append(times, duration)
	}
	return times
}

// checkInterval is how many samples are computed between checks for
// cancellation.
const checkInterval = 64

func (s *Scenario) sample(ctx context.Context, d maneuver.Dispatcher) (Trajectory, error) {
	sp, err := s.InitialState()
	if err != nil {
		return Trajectory{}, err
	}
	f, err := s.ManeuverFunc(d)
	if err != nil {
		return Trajectory{}, err
	}

	times := SampleTimes(s.DurationS, s.Step())
	tr := Trajectory{
		Name:     s.Name,
		Frame:    sp.Frame(),
		Maneuver: s.Maneuver.Type,
		Samples:  make([]Sample, 0, len(times)),
	}
	for i, t := range times {
		if i%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Trajectory{}, err
			}
		}
		tr.Samples = append(tr.Samples, Sample{T: t, State: f(sp, t)})
	}
	return tr, nil
}
