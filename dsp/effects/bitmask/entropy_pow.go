//go:build !fastmath

package bitmask

import "math"

func mathPow(base, exp float64) float64 {
	return math.Pow(base, exp)
}
