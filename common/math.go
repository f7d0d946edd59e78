package common

import "math"

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// ClampStep bounds a frame delta to (0, max]. Non-finite or negative deltas
// collapse to zero so physics never receives an unbounded step.
func ClampStep(dt, max float64) float64 {
	if math.IsNaN(dt) || dt <= 0 {
		return 0
	}
	if max > 0 && dt > max {
		return max
	}
	return dt
}
