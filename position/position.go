// position/position.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package position provides the frame-agnostic description of aircraft
// state: a Position that is either geodetic or Cartesian, and the
// StatePair that couples a Position with its Velocity.
package position

import (
	"fmt"
	"log/slog"

	"github.com/mmp/kinematics/math"

	"github.com/vmihailenco/msgpack/v5"
)

// Frame identifies the coordinate system a Position is expressed in.
type Frame uint8

const (
	// FrameInvalid is the frame of the zero Position; no maneuver accepts
	// it.
	FrameInvalid Frame = iota
	Cartesian
	Geodetic
)

func (f Frame) String() string {
	switch f {
	case Cartesian:
		return "cartesian"
	case Geodetic:
		return "geodetic"
	default:
		return fmt.Sprintf("invalid(%d)", uint8(f))
	}
}

// ParseFrame returns the Frame named by s, as produced by Frame.String.
func ParseFrame(s string) (Frame, error) {
	switch s {
	case "cartesian":
		return Cartesian, nil
	case "geodetic":
		return Geodetic, nil
	default:
		return FrameInvalid, fmt.Errorf("%q: unknown frame", s)
	}
}

// Position is a point either on/above the earth (Geodetic) or in a local
// Cartesian frame with x east, y north and z up, in meters. The frame is
// fixed when the Position is made.
type Position struct {
	frame Frame
	lla   math.LatLonAlt
	pt    [3]float64
}

// MakeLatLon returns a geodetic Position.
func MakeLatLon(p math.LatLonAlt) Position {
	return Position{frame: Geodetic, lla: p}
}

// MakeLatLonDeg returns a geodetic Position given latitude and longitude
// in degrees and altitude in feet.
func MakeLatLonDeg(latDeg, lonDeg, altFt float64) Position {
	return MakeLatLon(math.MakeLatLonAlt(latDeg, lonDeg, altFt))
}

// MakeCartesian returns a Cartesian Position; p is in meters.
func MakeCartesian(p [3]float64) Position {
	return Position{frame: Cartesian, pt: p}
}

// MakeXYZ returns a Cartesian Position given horizontal offsets in
// nautical miles and altitude in feet.
func MakeXYZ(xNM, yNM, altFt float64) Position {
	return MakeCartesian([3]float64{math.NMToMeters(xNM), math.NMToMeters(yNM), math.FeetToMeters(altFt)})
}

func (p Position) Frame() Frame { return p.frame }

func (p Position) IsLatLon() bool { return p.frame == Geodetic }

func (p Position) IsCartesian() bool { return p.frame == Cartesian }

func (p Position) IsValid() bool { return p.frame == Cartesian || p.frame == Geodetic }

// LatLonAlt returns the geodetic coordinates of p; it panics if p is not
// geodetic.
func (p Position) LatLonAlt() math.LatLonAlt {
	if p.frame != Geodetic {
		panic(fmt.Sprintf("LatLonAlt called on %s position", p.frame))
	}
	return p.lla
}

// Point returns the Cartesian coordinates of p; it panics if p is not
// Cartesian.
func (p Position) Point() [3]float64 {
	if p.frame != Cartesian {
		panic(fmt.Sprintf("Point called on %s position", p.frame))
	}
	return p.pt
}

// Alt returns the altitude in meters in either frame.
func (p Position) Alt() float64 {
	switch p.frame {
	case Geodetic:
		return p.lla.Alt
	case Cartesian:
		return p.pt[2]
	default:
		return 0
	}
}

// WithAlt returns a copy of p at the given altitude, in the same frame.
func (p Position) WithAlt(alt float64) Position {
	p.lla.Alt = alt
	p.pt[2] = alt
	switch p.frame {
	case Geodetic:
		p.pt = [3]float64{}
	case Cartesian:
		p.lla = math.LatLonAlt{}
	}
	return p
}

// Distance returns the horizontal distance in meters between p and q,
// which must be in the same frame.
func (p Position) Distance(q Position) float64 {
	if p.frame != q.frame {
		panic(fmt.Sprintf("Distance between %s and %s positions", p.frame, q.frame))
	}
	switch p.frame {
	case Geodetic:
		return math.Distance(p.lla, q.lla)
	case Cartesian:
		return math.Distance2d(math.XY(p.pt), math.XY(q.pt))
	default:
		panic("Distance between invalid positions")
	}
}

// AlmostEquals reports whether p and q are in the same frame and within
// horizTol meters horizontally and vertTol meters vertically.
func (p Position) AlmostEquals(q Position, horizTol, vertTol float64) bool {
	if p.frame != q.frame || !p.IsValid() {
		return false
	}
	return p.Distance(q) <= horizTol && math.Within(p.Alt(), q.Alt(), vertTol)
}

func (p Position) String() string {
	switch p.frame {
	case Geodetic:
		return p.lla.String()
	case Cartesian:
		return fmt.Sprintf("(%.3fnm, %.3fnm) %.0fft", math.MetersToNM(p.pt[0]),
			math.MetersToNM(p.pt[1]), math.MetersToFeet(p.pt[2]))
	default:
		return "(invalid position)"
	}
}

func (p Position) LogValue() slog.Value {
	switch p.frame {
	case Geodetic:
		return slog.GroupValue(
			slog.String("frame", p.frame.String()),
			slog.Any("lla", p.lla),
		)
	case Cartesian:
		return slog.GroupValue(
			slog.String("frame", p.frame.String()),
			slog.Float64("x_m", p.pt[0]),
			slog.Float64("y_m", p.pt[1]),
			slog.Float64("z_m", p.pt[2]),
		)
	default:
		return slog.StringValue("invalid")
	}
}

// Positions are serialized as their frame followed by the three
// coordinates of that frame.
type positionWire struct {
	Frame Frame
	C     [3]float64
}

func (p Position) MarshalMsgpack() ([]byte, error) {
	w := positionWire{Frame: p.frame}
	switch p.frame {
	case Geodetic:
		w.C = [3]float64{p.lla.Lat, p.lla.Lon, p.lla.Alt}
	case Cartesian:
		w.C = p.pt
	}
	return msgpack.Marshal(w)
}

func (p *Position) UnmarshalMsgpack(b []byte) error {
	var w positionWire
	if err := msgpack.Unmarshal(b, &w); err != nil {
		return err
	}
	switch w.Frame {
	case Geodetic:
		*p = MakeLatLon(math.MakeLatLonAltRad(w.C[0], w.C[1], w.C[2]))
	case Cartesian:
		*p = MakeCartesian(w.C)
	case FrameInvalid:
		*p = Position{}
	default:
		return fmt.Errorf("%d: unknown position frame", w.Frame)
	}
	return nil
}
