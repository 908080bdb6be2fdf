// math/latlong.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
	"log/slog"
	gomath "math"
	"regexp"
	"strconv"
)

// EarthRadius is the radius of the spherical earth model, in meters. It
// is chosen so that one arc-minute of a great circle is exactly one
// nautical mile (see NMPerLatitude).
const EarthRadius = MetersPerNauticalMile * NMPerLatitude * 180 / Pi

///////////////////////////////////////////////////////////////////////////
// LatLonAlt

// LatLonAlt represents a point in a geodetic frame. Lat and Lon are in
// radians and Alt is in meters.
type LatLonAlt struct {
	Lat, Lon, Alt float64
}

// MakeLatLonAlt returns the LatLonAlt for a position given in degrees and
// an altitude in feet.
func MakeLatLonAlt(latDeg, lonDeg, altFt float64) LatLonAlt {
	return LatLonAlt{Lat: Radians(latDeg), Lon: Radians(lonDeg), Alt: FeetToMeters(altFt)}
}

// MakeLatLonAltRad returns the LatLonAlt for the given position in
// radians and altitude in meters.
func MakeLatLonAltRad(lat, lon, alt float64) LatLonAlt {
	return LatLonAlt{Lat: lat, Lon: lon, Alt: alt}
}

func (p LatLonAlt) LatDeg() float64 { return Degrees(p.Lat) }

func (p LatLonAlt) LonDeg() float64 { return Degrees(p.Lon) }

func (p LatLonAlt) AltFt() float64 { return MetersToFeet(p.Alt) }

// WithAlt returns a copy of p at the given altitude.
func (p LatLonAlt) WithAlt(alt float64) LatLonAlt {
	p.Alt = alt
	return p
}

// DDString returns the position in decimal degrees, e.g.:
// (39.860901, -75.274864)
func (p LatLonAlt) DDString() string {
	return fmt.Sprintf("(%f, %f)", p.LatDeg(), p.LonDeg())
}

// DMSString returns the position in degrees minutes, seconds, e.g.
// N039.51.39.243,W075.16.29.511
func (p LatLonAlt) DMSString() string {
	format := func(v float64) string {
		s := fmt.Sprintf("%03d", int(v))
		v -= gomath.Floor(v)
		v *= 60
		s += fmt.Sprintf(".%02d", int(v))
		v -= gomath.Floor(v)
		v *= 60
		s += fmt.Sprintf(".%02d", int(v))
		v -= gomath.Floor(v)
		v *= 1000
		s += fmt.Sprintf(".%03d", int(v))
		return s
	}

	var s string
	if p.Lat > 0 {
		s = "N"
	} else {
		s = "S"
	}
	s += format(Abs(p.LatDeg()))

	if p.Lon > 0 {
		s += ",E"
	} else {
		s += ",W"
	}
	s += format(Abs(p.LonDeg()))

	return s
}

func (p LatLonAlt) String() string {
	return fmt.Sprintf("%s %.0fft", p.DMSString(), p.AltFt())
}

func (p LatLonAlt) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("lat_deg", p.LatDeg()),
		slog.Float64("lon_deg", p.LonDeg()),
		slog.Float64("alt_m", p.Alt),
	)
}

// AlmostEquals reports whether p and q are within horizTol meters
// horizontally and vertTol meters vertically.
func (p LatLonAlt) AlmostEquals(q LatLonAlt, horizTol, vertTol float64) bool {
	return Distance(p, q) <= horizTol && Within(p.Alt, q.Alt, vertTol)
}

///////////////////////////////////////////////////////////////////////////
// Great circles

// angularDistance returns the central angle between a and b using the
// haversine formula, which is well-conditioned for small distances.
func angularDistance(a, b LatLonAlt) float64 {
	// https://www.movable-type.co.uk/scripts/latlong.html
	dlat, dlon := b.Lat-a.Lat, b.Lon-a.Lon
	x := Sqr(Sin(dlat/2)) + Cos(a.Lat)*Cos(b.Lat)*Sqr(Sin(dlon/2))
	return 2 * Atan2(SafeSqrt(x), SafeSqrt(1-x))
}

// Distance returns the great-circle distance in meters between a and b,
// ignoring altitude.
func Distance(a, b LatLonAlt) float64 {
	return EarthRadius * angularDistance(a, b)
}

// InitialCourse returns the track angle at a of the great circle from a
// to b. Coincident points have course 0.
func InitialCourse(a, b LatLonAlt) float64 {
	if a.Lat == b.Lat && a.Lon == b.Lon {
		return 0
	}
	dlon := b.Lon - a.Lon
	y := Sin(dlon) * Cos(b.Lat)
	x := Cos(a.Lat)*Sin(b.Lat) - Sin(a.Lat)*Cos(b.Lat)*Cos(dlon)
	if Abs(x) < 1e-15 && Abs(y) < 1e-15 {
		return 0
	}
	return NormalizeTrack(Atan2(y, x))
}

// FinalCourse returns the track angle at b when following the great
// circle from a to b.
func FinalCourse(a, b LatLonAlt) float64 {
	return NormalizeTrack(InitialCourse(b, a) + Pi)
}

// LinearDist returns the point reached by following the great circle
// leaving p at track trk for dist meters. The altitude is unchanged.
func LinearDist(p LatLonAlt, trk, dist float64) LatLonAlt {
	if dist == 0 {
		return p
	}
	delta := dist / EarthRadius
	sinLat := Sin(p.Lat)*Cos(delta) + Cos(p.Lat)*Sin(delta)*Cos(trk)
	lat := SafeASin(sinLat)
	lon := p.Lon + Atan2(Sin(trk)*Sin(delta)*Cos(p.Lat), Cos(delta)-Sin(p.Lat)*sinLat)
	return LatLonAlt{Lat: lat, Lon: normalizeLongitude(lon), Alt: p.Alt}
}

// normalizeLongitude reduces a longitude to [-pi,pi).
func normalizeLongitude(lon float64) float64 {
	return Mod(lon+Pi, 2*Pi) - Pi
}

///////////////////////////////////////////////////////////////////////////
// Parsing

var (
	// pair of floats (no exponents)
	reWaypointFloat = regexp.MustCompile(`^(\-?[0-9]+\.[0-9]+), *(\-?[0-9]+\.[0-9]+)`)
	// https://en.wikipedia.org/wiki/ISO_6709#String_expression_(Annex_H)
	// e.g. +403527.580-0734452.955
	reISO6709H = regexp.MustCompile(`^([-+][0-9][0-9])([0-9][0-9])([0-9][0-9])\.([0-9][0-9][0-9])([-+][0-9][0-9][0-9])([0-9][0-9])([0-9][0-9])\.([0-9][0-9][0-9])`)
)

// Parse positions of the form "N40.37.58.400, W073.46.17.000" by hand;
// returns latitude and longitude in degrees.
func tryParseDotted(b []byte) (float64, float64, bool) {
	if len(b) == 0 || (b[0] != 'N' && b[0] != 'S') {
		return 0, 0, false
	}
	negateLatitude := b[0] == 'S'

	// Skip over the N/S and parse the four dotted numbers following it
	b = b[1:]
	latitude, n, ok := tryParseDottedNumbers(b)
	if !ok {
		return 0, 0, false
	}
	if negateLatitude {
		latitude = -latitude
	}
	b = b[n:]

	if len(b) == 0 || b[0] != ',' {
		return 0, 0, false
	}
	b = b[1:]

	// Skip optional space
	if len(b) > 0 && b[0] == ' ' {
		b = b[1:]
	}

	// Onward to E/W
	if len(b) == 0 || (b[0] != 'E' && b[0] != 'W') {
		return 0, 0, false
	}
	negateLongitude := b[0] == 'W'

	b = b[1:]
	longitude, _, ok := tryParseDottedNumbers(b)
	if !ok {
		return 0, 0, false
	}
	if negateLongitude {
		longitude = -longitude
	}

	return latitude, longitude, true
}

// Parse a latlong of the form aaa.bbb.ccc.ddd and return the
// corresponding value in degrees. Returns the value, the number of bytes
// of b consumed, and a bool indicating success or failure.
func tryParseDottedNumbers(b []byte) (float64, int, bool) {
	n := 0
	var ll float64

	// Scan to the end of the current number group; return
	// the number of bytes it uses.
	scan := func(b []byte) int {
		for i, v := range b {
			if v == '.' || v == ',' {
				return i
			}
		}
		return len(b)
	}

	for i := 0; i < 4; i++ {
		end := scan(b)
		if end == 0 {
			return 0, 0, false
		}

		value := 0
		for _, ch := range b[:end] {
			if ch < '0' || ch > '9' {
				return 0, 0, false
			}
			value *= 10
			value += int(ch - '0')
		}
		if i == 3 {
			// Treat the last set of digits as a decimal, so that
			// Nxx.yy.zz.1 is handled like Nxx.yy.zz.100.
			for j := end; j < 3; j++ {
				value *= 10
			}
		}

		scales := [4]float64{1, 60, 3600, 3600000}
		ll += float64(value) / scales[i]
		n += end
		b = b[end:]

		if i < 3 {
			if len(b) == 0 {
				return 0, 0, false
			}
			b = b[1:]
			n++
		}
	}

	return ll, n, true
}

// ParseLatLong parses a latitude-longitude string in one of the supported
// formats and returns the corresponding position at zero altitude.
func ParseLatLong(llstr []byte) (LatLonAlt, error) {
	if lat, lon, ok := tryParseDotted(llstr); ok {
		return MakeLatLonAlt(lat, lon, 0), nil
	} else if strs := reWaypointFloat.FindStringSubmatch(string(llstr)); len(strs) == 3 {
		lat, err := strconv.ParseFloat(strs[1], 64)
		if err != nil {
			return LatLonAlt{}, err
		}
		lon, err := strconv.ParseFloat(strs[2], 64)
		if err != nil {
			return LatLonAlt{}, err
		}
		return MakeLatLonAlt(lat, lon, 0), nil
	} else if strs := reISO6709H.FindStringSubmatch(string(llstr)); len(strs) == 9 {
		parse := func(deg, min, sec, frac string) (float64, error) {
			d, err := strconv.Atoi(deg)
			if err != nil {
				return 0, err
			}
			m, err := strconv.Atoi(min)
			if err != nil {
				return 0, err
			}
			s, err := strconv.Atoi(sec)
			if err != nil {
				return 0, err
			}
			f, err := strconv.Atoi(frac)
			if err != nil {
				return 0, err
			}
			sgn := float64(Sign(d))
			d = Abs(d)
			return sgn * (float64(d) + float64(m)/60 + float64(s)/3600 + float64(f)/3600000), nil
		}

		lat, err := parse(strs[1], strs[2], strs[3], strs[4])
		if err != nil {
			return LatLonAlt{}, err
		}
		lon, err := parse(strs[5], strs[6], strs[7], strs[8])
		if err != nil {
			return LatLonAlt{}, err
		}
		return MakeLatLonAlt(lat, lon, 0), nil
	} else {
		return LatLonAlt{}, fmt.Errorf("%s: invalid latlong string", llstr)
	}
}
