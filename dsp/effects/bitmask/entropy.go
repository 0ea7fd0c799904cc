package bitmask

import (
	"math"

	"github.com/cwbudde/algo-bitmask/dsp/core"
)

// shapeEntropy applies the entropy feedback stage to the dequantized sample x
// given the channel's previous output:
//
//	y = value^((last - x + 1)^(1/value)) * amount + x - amount/2
//
// amount == 0 contributes nothing and passes x through. Otherwise a NaN
// result becomes 0, and value == 0 leaves the inner exponent undefined and
// takes the same fallback. Everything else is clamped to [-1, 1].
func shapeEntropy(x, last, value, amount float64) float64 {
	if amount == 0 {
		return core.Clamp(x, -1, 1)
	}

	if value == 0 {
		return 0
	}

	y := mathPow(value, mathPow(last-x+1, 1/value))*amount + x - amount/2
	if math.IsNaN(y) {
		return 0
	}

	return core.Clamp(y, -1, 1)
}
