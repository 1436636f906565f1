// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/gbm-sim/pkg/constants"
)

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// ApproxEqual checks if two values agree within the default comparison
// tolerance. Used for logical comparisons of simulated values.
func ApproxEqual(val1, val2 float64) bool {
	return WithinTolerance(val1, val2, constants.ComparisonTolerance)
}

// IsFinite checks that a value is neither NaN nor infinite
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// MaxAbsDiff returns the largest absolute elementwise difference between
// two equal-length sequences. Returns NaN if the lengths differ.
func MaxAbsDiff(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.NaN()
	}
	maxDiff := 0.0
	for i := range a {
		if diff := math.Abs(a[i] - b[i]); diff > maxDiff {
			maxDiff = diff
		}
	}
	return maxDiff
}
