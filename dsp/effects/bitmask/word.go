package bitmask

import (
	"math"

	"github.com/cwbudde/algo-bitmask/dsp/core"
)

// Word is the integer container a sample is quantized into. Its size fixes
// the engine's bit width.
type Word interface {
	uint8 | uint16
}

// maxBits is the widest supported word.
const maxBits = 16

// bitsOf returns the bit width of W.
func bitsOf[W Word]() int {
	var w W
	w = ^w
	n := 0
	for w != 0 {
		n++
		w >>= 1
	}
	return n
}

// allOnes returns a W with every bit set.
func allOnes[W Word]() W {
	var w W
	return ^w
}

// quantize maps x in [-1, 1] onto the signed range of W and returns its
// two's-complement bit pattern. NaN maps to zero; out-of-range input clips.
func quantize[W Word](x float64, bits int) W {
	if math.IsNaN(x) {
		return 0
	}

	full := core.FullScale(bits)
	v := math.Round(core.Clamp(x, -1, 1) * full)
	if v > full-1 {
		v = full - 1
	}

	return W(int64(v))
}

// dequantize interprets w as a signed integer of bits width and maps it back
// to [-1, 1).
func dequantize[W Word](w W, bits int) float64 {
	v := int64(w)
	half := int64(1) << (bits - 1)
	if v >= half {
		v -= half << 1
	}

	return float64(v) / core.FullScale(bits)
}

// remapBits moves source bit i to position table[i] for ascending i. A later
// source bit overwrites an earlier one targeting the same position; positions
// no source maps to stay zero.
func remapBits[W Word](src W, table *remapTable, bits int) W {
	var dst W
	for i := range bits {
		d := table[i]
		bit := (src >> i) & 1
		dst = dst&^(W(1)<<d) | bit<<d
	}
	return dst
}

// applyMasks combines d with the masks as ((d AND and) OR or) XOR xor.
func applyMasks[W Word](d, and, or, xor W) W {
	d &= and
	d |= or
	d ^= xor
	return d
}
