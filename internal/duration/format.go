package duration

import (
	"math"
	"strconv"
)

// Format renders seconds in the compact notation, e.g. 150 -> "2.5 minutes",
// 1.5778800e14 -> "5m years". Values below InstantThreshold, negative values
// included, render as Instantly, as do NaN and infinities, which have no
// parseable rendering.
func Format(seconds float64) string {
	if seconds < InstantThreshold || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return Instantly
	}

	unit := selectUnit(seconds)
	value, prefix := selectPrefix(seconds / unit.Seconds)

	rounded := roundTenth(value)
	if rounded >= 1000 {
		// Rounding crossed the prefix boundary: re-select on the rounded magnitude.
		if v, p := selectPrefix(rounded * prefix.Multiplier); p.Multiplier > prefix.Multiplier {
			rounded, prefix = roundTenth(v), p
		}
	}

	number := strconv.FormatFloat(rounded, 'f', -1, 64)
	name := unit.Name
	if number != "1" {
		name += "s"
	}
	if prefix.Symbol == "" {
		return number + " " + name
	}
	return number + prefix.Symbol + " " + name
}

// selectUnit returns the largest unit not longer than seconds, falling back to
// second for values under one second.
func selectUnit(seconds float64) Unit {
	for i := len(units) - 1; i >= 0; i-- {
		if seconds >= units[i].Seconds {
			return units[i]
		}
	}
	return units[0]
}

// selectPrefix scans from the largest multiplier down and returns the first
// prefix that lands value in [1, 1000). Values that no prefix normalises (below
// 1, or beyond the largest prefix) keep the empty prefix.
func selectPrefix(value float64) (float64, Prefix) {
	for i := len(prefixes) - 1; i >= 0; i-- {
		adj := value / prefixes[i].Multiplier
		if adj >= 1 && adj < 1000 {
			return adj, prefixes[i]
		}
	}
	return value, prefixes[0]
}

// roundTenth rounds half up to one decimal place.
func roundTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
