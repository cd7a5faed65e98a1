package util

import (
	"math"
	"math/rand"
)

// Epsilon is the highest absolute value that is still considered zero.
const Epsilon = 1e-10

// IsApproxZero reports whether |val| < eps.
func IsApproxZero(val, eps float64) bool {
	return math.Abs(val) < eps
}

func IsFinite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func RandomInInterval(low, high float64) float64 {
	return low + (rand.Float64() * (high - low))
}
