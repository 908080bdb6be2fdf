// position/state.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package position

import (
	"fmt"
	"log/slog"

	"github.com/mmp/kinematics/math"
)

// StatePair is the kinematic state of an aircraft at one instant: where
// it is and how it is moving. The Velocity is expressed in the local
// frame of the Position. StatePairs are values; maneuvers return new
// ones rather than modifying their arguments.
type StatePair struct {
	Position Position
	Velocity math.Velocity
}

func MakeStatePair(p Position, v math.Velocity) StatePair {
	return StatePair{Position: p, Velocity: v}
}

// Frame returns the frame of the pair's position.
func (sp StatePair) Frame() Frame {
	return sp.Position.Frame()
}

// AlmostEquals reports whether the positions agree to within posTol
// meters (horizontally and vertically) and the velocities agree
// component-wise to within velTol m/s.
func (sp StatePair) AlmostEquals(q StatePair, posTol, velTol float64) bool {
	return sp.Position.AlmostEquals(q.Position, posTol, posTol) &&
		sp.Velocity.AlmostEquals(q.Velocity, velTol)
}

func (sp StatePair) String() string {
	return fmt.Sprintf("%s %s", sp.Position, sp.Velocity)
}

func (sp StatePair) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("position", sp.Position),
		slog.Any("velocity", sp.Velocity),
	)
}
