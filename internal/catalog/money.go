package catalog

// Monetary amounts travel as int64 minor currency units (cents). Conversion
// to and from display amounts lives here so rounding happens in one place.

import (
	"fmt"
	"math"
	"strconv"
)

const minorUnitsPerMajor = 100

// MinorUnits converts a major-unit amount (e.g. 19.99) to minor units (1999),
// rounding to the nearest unit. Non-finite and out-of-range amounts are
// rejected rather than silently truncated.
func MinorUnits(major float64) (int64, error) {
	if math.IsNaN(major) || math.IsInf(major, 0) {
		return 0, fmt.Errorf("amount %v is not a finite number", major)
	}

	scaled := math.Round(major * minorUnitsPerMajor)
	if scaled >= float64(math.MaxInt64) || scaled <= float64(math.MinInt64) {
		return 0, fmt.Errorf("amount %v overflows minor units", major)
	}
	return int64(scaled), nil
}

// MajorUnits converts a minor-unit amount to its major-unit decimal value.
func MajorUnits(minor int64) float64 {
	return float64(minor) / minorUnitsPerMajor
}

// FormatMinorUnits renders a minor-unit amount as a decimal string. Square
// returns 64-bit amounts that lose precision in consumers that read JSON
// numbers as floats, so integer money leaves this service as strings.
func FormatMinorUnits(minor int64) string {
	return strconv.FormatInt(minor, 10)
}
