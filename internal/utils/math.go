package utils

import "math"

// Clamp bounds v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Round2 rounds to two decimal places, the precision used for per-gram prices.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
