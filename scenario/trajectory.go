// scenario/trajectory.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scenario

import (
	"errors"
	"fmt"

	"github.com/mmp/kinematics/position"
	"github.com/mmp/kinematics/util"
)

// TrajectoryFileVersion is stored in trajectory files and checked when
// they are read.
const TrajectoryFileVersion = 1

var ErrTrajectoryVersion = errors.New("unsupported trajectory file version")

// Sample is the state at time T seconds into a scenario.
type Sample struct {
	T     float64
	State position.StatePair
}

type Trajectory struct {
	Name     string
	Frame    position.Frame
	Maneuver string
	Samples  []Sample
}

// Final returns the last sample of the trajectory, if it has any.
func (tr Trajectory) Final() (Sample, bool) {
	if len(tr.Samples) == 0 {
		return Sample{}, false
	}
	return tr.Samples[len(tr.Samples)-1], true
}

type trajectoryFile struct {
	Version      int
	Trajectories []Trajectory
}

// StoreTrajectories writes the trajectories to path as compressed
// msgpack.
func StoreTrajectories(path string, trajectories []Trajectory) error {
	return util.StoreObjectFile(path, trajectoryFile{
		Version:      TrajectoryFileVersion,
		Trajectories: trajectories,
	})
}

// LoadTrajectories reads trajectories written by StoreTrajectories.
func LoadTrajectories(path string) ([]Trajectory, error) {
	var f trajectoryFile
	if err := util.RetrieveObjectFile(path, &f); err != nil {
		return nil, err
	}
	if f.Version != TrajectoryFileVersion {
		return nil, fmt.Errorf("%s: %w %d", path, ErrTrajectoryVersion, f.Version)
	}
	return f.Trajectories, nil
}
