// math/units.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

// Everything inside the library is SI (meters, seconds, radians); these
// are for getting values in and out in the units pilots and controllers
// use.

const NMPerLatitude = 60

const (
	MetersPerFoot         = 0.3048
	MetersPerNauticalMile = 1852
	// Standard gravity, m/s^2.
	Gravity = 9.80665
)

func FeetToMeters(ft float64) float64 { return ft * MetersPerFoot }

func MetersToFeet(m float64) float64 { return m / MetersPerFoot }

func NMToMeters(nm float64) float64 { return nm * MetersPerNauticalMile }

func MetersToNM(m float64) float64 { return m / MetersPerNauticalMile }

// KnotsToMPS converts knots to meters/second.
func KnotsToMPS(kts float64) float64 { return kts * MetersPerNauticalMile / 3600 }

func MPSToKnots(mps float64) float64 { return mps * 3600 / MetersPerNauticalMile }

// FPMToMPS converts feet/minute to meters/second.
func FPMToMPS(fpm float64) float64 { return fpm * MetersPerFoot / 60 }

func MPSToFPM(mps float64) float64 { return mps * 60 / MetersPerFoot }
