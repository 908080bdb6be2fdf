// scenario/scenario.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package scenario loads single-maneuver projection scenarios from JSON,
// samples the resulting trajectories, and reads and writes trajectory
// files.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/mmp/kinematics/maneuver"
	"github.com/mmp/kinematics/math"
	"github.com/mmp/kinematics/position"
	"github.com/mmp/kinematics/util"
)

var (
	ErrNoScenarios         = errors.New("no scenarios specified")
	ErrUnknownManeuver     = errors.New("unknown maneuver type")
	ErrInvalidInitialState = errors.New("invalid initial state")
)

// DefaultStep is the sampling interval in seconds used when a scenario
// doesn't specify one.
const DefaultStep = 1

// File is the top-level object of a scenario file.
type File struct {
	Scenarios []*Scenario `json:"scenarios"`
}

// Scenario describes an aircraft's initial state and a single maneuver to
// project from it. Values are in the units named by their JSON keys.
type Scenario struct {
	Name  string `json:"name"`
	Frame string `json:"frame"`

	// Position is a latitude/longitude string for geodetic scenarios;
	// XYNM gives the position in nautical miles for cartesian ones.
	Position string      `json:"position,omitempty"`
	XYNM     *[2]float64 `json:"xy_nm,omitempty"`

	AltitudeFt       float64 `json:"altitude_ft"`
	TrackDeg         float64 `json:"track_deg"`
	GroundspeedKts   float64 `json:"groundspeed_kts"`
	VerticalSpeedFpm float64 `json:"vertical_speed_fpm"`

	Maneuver ManeuverSpec `json:"maneuver"`

	DurationS float64 `json:"duration_s"`
	StepS     float64 `json:"step_s,omitempty"`
}

// ManeuverSpec gives the maneuver type and its parameters. Only the
// parameters used by Type need to be given.
type ManeuverSpec struct {
	Type string `json:"type"`

	RadiusNM      float64 `json:"radius_nm,omitempty"`
	Direction     string  `json:"direction,omitempty"` // "left" or "right"
	RateDegPerSec float64 `json:"rate_deg_per_sec,omitempty"`
	GoalTrackDeg  float64 `json:"goal_track_deg,omitempty"`
	BankDeg       float64 `json:"bank_deg,omitempty"`
	TurnTimeS     float64 `json:"turn_time_s,omitempty"`

	// Center of a turn_by_dist; a lat/long string or nautical miles,
	// matching the scenario's frame.
	Center     string      `json:"center,omitempty"`
	CenterXYNM *[2]float64 `json:"center_xy_nm,omitempty"`
	GsAtEndKts float64     `json:"groundspeed_at_end_kts,omitempty"`

	AccelKtsPerSec       float64 `json:"accel_kts_per_sec,omitempty"`
	GoalGroundspeedKts   float64 `json:"goal_groundspeed_kts,omitempty"`
	AccelFpmPerSec       float64 `json:"accel_fpm_per_sec,omitempty"`
	GoalVerticalSpeedFpm float64 `json:"goal_vertical_speed_fpm,omitempty"`

	ClimbRateFpm         float64 `json:"climb_rate_fpm,omitempty"`
	TargetAltitudeFt     float64 `json:"target_altitude_ft,omitempty"`
	AccelUpFpmPerSec     float64 `json:"accel_up_fpm_per_sec,omitempty"`
	AccelDownFpmPerSec   float64 `json:"accel_down_fpm_per_sec,omitempty"`
	AllowClimbRateChange *bool   `json:"allow_climb_rate_change,omitempty"`
}

// Func returns the state t seconds after the initial state sp.
type Func func(sp position.StatePair, t float64) position.StatePair

var maneuverTypes = []string{
	"linear", "turn", "turn_omega", "turn_omega_alt", "turn_by_dist", "turn_until",
	"turn_until_time", "turn_until_time_omega", "gs_accel", "gs_accel_until",
	"vs_accel", "vs_accel_until", "vs_level_out",
}

// Load reads and validates the scenario file at path.
func Load(path string) ([]*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario file's contents. All validation
// problems are reported together in the returned error.
func Parse(b []byte) ([]*Scenario, error) {
	var f File
	var e util.ErrorLogger
	if !util.DecodeJSON(b, &f, &e) {
		return nil, e.Err()
	}
	if len(f.Scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	seen := make(map[string]int)
	for i, s := range f.Scenarios {
		if s == nil {
			e.ErrorString("scenario %d: null", i)
			continue
		}
		if s.Name != "" {
			if j, ok := seen[s.Name]; ok {
				e.ErrorString("%q: name also used by scenario %d", s.Name, j)
			}
			seen[s.Name] = i
		}
		s.PostDeserialize(i, &e)
	}
	if e.HaveErrors() {
		return nil, e.Err()
	}
	return f.Scenarios, nil
}

// PostDeserialize checks the scenario's fields, reporting problems to e.
// idx is the scenario's index in its file, used to identify unnamed
// scenarios.
func (s *Scenario) PostDeserialize(idx int, e *util.ErrorLogger) {
	defer e.CheckDepth(e.CurrentDepth())

	if s.Name == "" {
		e.Push(fmt.Sprintf("scenario %d", idx))
		e.ErrorString("\"name\" not specified")
	} else {
		e.Push(fmt.Sprintf("%q", s.Name))
	}
	defer e.Pop()

	frame, err := position.ParseFrame(s.Frame)
	if err != nil {
		e.Error(err)
	} else {
		switch frame {
		case position.Geodetic:
			if s.Position == "" {
				e.ErrorString("\"position\" must be specified for geodetic scenarios")
			} else if _, err := math.ParseLatLong([]byte(s.Position)); err != nil {
				e.ErrorString("\"position\": %v", err)
			}
			if s.XYNM != nil {
				e.ErrorString("\"xy_nm\" cannot be specified for geodetic scenarios")
			}
		case position.Cartesian:
			if s.XYNM == nil {
				e.ErrorString("\"xy_nm\" must be specified for cartesian scenarios")
			}
			if s.Position != "" {
				e.ErrorString("\"position\" cannot be specified for cartesian scenarios")
			}
		}
	}

	if s.GroundspeedKts < 0 {
		e.ErrorString("\"groundspeed_kts\" %.1f cannot be negative", s.GroundspeedKts)
	}
	if s.DurationS <= 0 {
		e.ErrorString("\"duration_s\" must be positive")
	}
	if s.StepS < 0 {
		e.ErrorString("\"step_s\" cannot be negative")
	}

	e.Push("\"maneuver\"")
	s.Maneuver.PostDeserialize(frame, e)
	e.Pop()
}

func (m *ManeuverSpec) PostDeserialize(frame position.Frame, e *util.ErrorLogger) {
	if m.Type == "" {
		e.ErrorString("\"type\" not specified")
		return
	} else if !slices.Contains(maneuverTypes, m.Type) {
		e.ErrorString("%q: %v", m.Type, ErrUnknownManeuver)
		return
	}

	checkDirection := func() {
		if m.Direction != "left" && m.Direction != "right" {
			e.ErrorString("\"direction\" must be \"left\" or \"right\"")
		}
	}
	checkPositive := func(v float64, name string) {
		if v <= 0 {
			e.ErrorString("%q must be positive", name)
		}
	}
	checkNonzero := func(v float64, name string) {
		if v == 0 {
			e.ErrorString("%q must be given and nonzero", name)
		}
	}

	switch m.Type {
	case "turn":
		checkPositive(m.RadiusNM, "radius_nm")
		checkDirection()

	case "turn_omega", "turn_omega_alt":
		checkNonzero(m.RateDegPerSec, "rate_deg_per_sec")

	case "turn_by_dist":
		switch frame {
		case position.Geodetic:
			if m.Center == "" {
				e.ErrorString("\"center\" must be specified for geodetic scenarios")
			} else if _, err := math.ParseLatLong([]byte(m.Center)); err != nil {
				e.ErrorString("\"center\": %v", err)
			}
		case position.Cartesian:
			if m.CenterXYNM == nil {
				e.ErrorString("\"center_xy_nm\" must be specified for cartesian scenarios")
			}
		}
		if m.GsAtEndKts < 0 {
			e.ErrorString("\"groundspeed_at_end_kts\" cannot be negative")
		}

	case "turn_until":
		if m.BankDeg <= 0 || m.BankDeg >= 90 {
			e.ErrorString("\"bank_deg\" %.1f must be between 0 and 90", m.BankDeg)
		}
		if m.GoalTrackDeg < 0 || m.GoalTrackDeg > 360 {
			e.ErrorString("\"goal_track_deg\" %.1f must be between 0 and 360", m.GoalTrackDeg)
		}

	case "turn_until_time":
		checkPositive(m.RadiusNM, "radius_nm")
		checkDirection()
		if m.TurnTimeS < 0 {
			e.ErrorString("\"turn_time_s\" cannot be negative")
		}

	case "turn_until_time_omega":
		checkNonzero(m.RateDegPerSec, "rate_deg_per_sec")
		if m.TurnTimeS < 0 {
			e.ErrorString("\"turn_time_s\" cannot be negative")
		}

	case "gs_accel":
		checkNonzero(m.AccelKtsPerSec, "accel_kts_per_sec")

	case "gs_accel_until":
		checkNonzero(m.AccelKtsPerSec, "accel_kts_per_sec")
		if m.GoalGroundspeedKts < 0 {
			e.ErrorString("\"goal_groundspeed_kts\" cannot be negative")
		}

	case "vs_accel":
		checkNonzero(m.AccelFpmPerSec, "accel_fpm_per_sec")

	case "vs_accel_until":
		checkNonzero(m.AccelFpmPerSec, "accel_fpm_per_sec")

	case "vs_level_out":
		checkPositive(m.ClimbRateFpm, "climb_rate_fpm")
		checkPositive(m.AccelUpFpmPerSec, "accel_up_fpm_per_sec")
		if m.AccelDownFpmPerSec < 0 {
			e.ErrorString("\"accel_down_fpm_per_sec\" cannot be negative")
		}
	}
}

// InitialState returns the scenario's initial position and velocity.
func (s *Scenario) InitialState() (position.StatePair, error) {
	frame, err := position.ParseFrame(s.Frame)
	if err != nil {
		return position.StatePair{}, err
	}

	vo := math.MakeVelocityTrkGsVs(s.TrackDeg, s.GroundspeedKts, s.VerticalSpeedFpm)
	switch frame {
	case position.Geodetic:
		p, err := math.ParseLatLong([]byte(s.Position))
		if err != nil {
			return position.StatePair{}, fmt.Errorf("%w: %v", ErrInvalidInitialState, err)
		}
		pos := position.MakeLatLon(p).WithAlt(math.FeetToMeters(s.AltitudeFt))
		return position.MakeStatePair(pos, vo), nil
	default:
		if s.XYNM == nil {
			return position.StatePair{}, fmt.Errorf("%w: no \"xy_nm\"", ErrInvalidInitialState)
		}
		return position.MakeStatePair(position.MakeXYZ(s.XYNM[0], s.XYNM[1], s.AltitudeFt), vo), nil
	}
}

// Step returns the sampling interval in seconds.
func (s *Scenario) Step() float64 {
	if s.StepS == 0 {
		return DefaultStep
	}
	return s.StepS
}

// ManeuverFunc converts the scenario's maneuver parameters to SI units and
// returns a function that evaluates the maneuver using d.
func (s *Scenario) ManeuverFunc(d maneuver.Dispatcher) (Func, error) {
	m := s.Maneuver
	right := m.Direction == "right"
	R := math.NMToMeters(m.RadiusNM)
	omega := math.Radians(m.RateDegPerSec)
	allow := m.AllowClimbRateChange == nil || *m.AllowClimbRateChange

	switch m.Type {
	case "linear":
		return d.LinearState, nil

	case "turn":
		return func(sp position.StatePair, t float64) position.StatePair {
			return d.TurnState(sp, t, R, right)
		}, nil

	case "turn_omega":
		return func(sp position.StatePair, t float64) position.StatePair {
			return d.TurnOmegaState(sp, t, omega)
		}, nil

	case "turn_omega_alt":
		return func(sp position.StatePair, t float64) position.StatePair {
			return d.TurnOmegaAltState(sp, t, omega)
		}, nil

	case "turn_by_dist":
		center, err := s.turnCenter()
		if err != nil {
			return nil, err
		}
		gsAtD := math.KnotsToMPS(m.GsAtEndKts)
		if m.GsAtEndKts == 0 {
			gsAtD = math.KnotsToMPS(s.GroundspeedKts)
		}
		// The distance flown is the arc covered at the initial ground
		// speed.
		return func(sp position.StatePair, t float64) position.StatePair {
			return d.TurnByDist(sp.Position, center, sp.Velocity.Gs()*t, gsAtD)
		}, nil

	case "turn_until":
		goal, bank := math.Radians(m.GoalTrackDeg), math.Radians(m.BankDeg)
		return func(sp position.StatePair, t float64) position.StatePair {
			return d.TurnUntilState(sp, t, goal, bank)
		}, nil

	case "turn_until_time":
		return func(sp position.StatePair, t float64) position.StatePair {
			return d.TurnUntilTimeState(sp, t, m.TurnTimeS, R, right)
		}, nil

	case "turn_until_time_omega":
		return func(sp position.StatePair, t float64) position.StatePair {
			return d.TurnUntilTimeOmegaState(sp, t, m.TurnTimeS, omega)
		}, nil

	case "gs_accel":
		a := math.KnotsToMPS(m.AccelKtsPerSec)
		return func(sp position.StatePair, t float64) position.StatePair {
			return d.GsAccelState(sp, t, a)
		}, nil

	case "gs_accel_until":
		a, goal := math.KnotsToMPS(m.AccelKtsPerSec), math.KnotsToMPS(m.GoalGroundspeedKts)
		return func(sp position.StatePair, t float64) position.StatePair {
			return d.GsAccelUntilState(sp, t, goal, a)
		}, nil

	case "vs_accel":
		a := math.FPMToMPS(m.AccelFpmPerSec)
		return func(sp position.StatePair, t float64) position.StatePair {
			return d.VsAccelState(sp, t, a)
		}, nil

	case "vs_accel_until":
		a, goal := math.FPMToMPS(m.AccelFpmPerSec), math.FPMToMPS(m.GoalVerticalSpeedFpm)
		return func(sp position.StatePair, t float64) position.StatePair {
			return d.VsAccelUntilState(sp, t, goal, a)
		}, nil

	case "vs_level_out":
		climbRate := math.FPMToMPS(m.ClimbRateFpm)
		target := math.FeetToMeters(m.TargetAltitudeFt)
		up := math.FPMToMPS(m.AccelUpFpmPerSec)
		if m.AccelDownFpmPerSec == 0 {
			return func(sp position.StatePair, t float64) position.StatePair {
				return d.VsLevelOutSymmetricState(sp, t, climbRate, target, up, allow)
			}, nil
		}
		down := math.FPMToMPS(m.AccelDownFpmPerSec)
		return func(sp position.StatePair, t float64) position.StatePair {
			return d.VsLevelOutState(sp, t, climbRate, target, up, down, allow)
		}, nil

	default:
		return nil, fmt.Errorf("%q: %w", m.Type, ErrUnknownManeuver)
	}
}

func (s *Scenario) turnCenter() (position.Position, error) {
	m := s.Maneuver
	alt := math.FeetToMeters(s.AltitudeFt)
	switch frame, _ := position.ParseFrame(s.Frame); frame {
	case position.Geodetic:
		p, err := math.ParseLatLong([]byte(m.Center))
		if err != nil {
			return position.Position{}, fmt.Errorf("\"center\": %w", err)
		}
		return position.MakeLatLon(p).WithAlt(alt), nil
	default:
		if m.CenterXYNM == nil {
			return position.Position{}, errors.New("\"center_xy_nm\" not specified")
		}
		return position.MakeXYZ(m.CenterXYNM[0], m.CenterXYNM[1], s.AltitudeFt), nil
	}
}
