// Package mathutil provides small numeric helpers for the periodic surface.
package mathutil

import (
	"math"
)

// Mod1 reduces x into [0, 1) using floor semantics, so negative inputs wrap
// upwards: Mod1(-0.25) = 0.75. NaN and ±Inf yield NaN.
func Mod1(x float64) float64 {
	r := x - math.Floor(x)
	// A value a hair below an integer can round up to exactly 1.
	if r >= 1 {
		return 0
	}
	return r
}

// Reflect mirrors t in [0, 1) about ½ when it lies in the upper half, so the
// result is always in [0, ½].
func Reflect(t float64) float64 {
	if t > halfPeriod {
		return 1 - t
	}
	return t
}
