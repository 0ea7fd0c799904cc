//go:build fastmath

package bitmask

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// mathPow computes base^exp as exp(exp*ln(base)) with fast approximations.
// Non-positive bases and infinite operands keep math.Pow semantics so the
// NaN and overflow cases of the entropy stage are unchanged.
func mathPow(base, exp float64) float64 {
	if base <= 0 || math.IsInf(base, 0) || math.IsInf(exp, 0) || math.IsNaN(exp) {
		return math.Pow(base, exp)
	}

	return approx.FastExp(exp * approx.FastLog(base))
}
