package bitmask

import (
	"fmt"
	"math"
	"sync/atomic"
)

// SetAndMask stores the AND mask from a binary digit string (MSB first).
// The string must have exactly Bits() digits; on error nothing is stored.
func (e *Engine[W]) SetAndMask(pattern string) error {
	return storePattern[W](&e.andMask, pattern)
}

// SetOrMask stores the OR mask from a binary digit string (MSB first).
func (e *Engine[W]) SetOrMask(pattern string) error {
	return storePattern[W](&e.orMask, pattern)
}

// SetXorMask stores the XOR mask from a binary digit string (MSB first).
func (e *Engine[W]) SetXorMask(pattern string) error {
	return storePattern[W](&e.xorMask, pattern)
}

// SetAndMaskBits stores the AND mask word.
func (e *Engine[W]) SetAndMaskBits(w W) { e.andMask.Store(uint32(w)) }

// SetOrMaskBits stores the OR mask word.
func (e *Engine[W]) SetOrMaskBits(w W) { e.orMask.Store(uint32(w)) }

// SetXorMaskBits stores the XOR mask word.
func (e *Engine[W]) SetXorMaskBits(w W) { e.xorMask.Store(uint32(w)) }

// AndMask returns the AND mask as a binary digit string.
func (e *Engine[W]) AndMask() string { return FormatPattern(e.AndMaskBits()) }

// OrMask returns the OR mask as a binary digit string.
func (e *Engine[W]) OrMask() string { return FormatPattern(e.OrMaskBits()) }

// XorMask returns the XOR mask as a binary digit string.
func (e *Engine[W]) XorMask() string { return FormatPattern(e.XorMaskBits()) }

// AndMaskBits returns the AND mask word.
func (e *Engine[W]) AndMaskBits() W { return W(e.andMask.Load()) }

// OrMaskBits returns the OR mask word.
func (e *Engine[W]) OrMaskBits() W { return W(e.orMask.Load()) }

// XorMaskBits returns the XOR mask word.
func (e *Engine[W]) XorMaskBits() W { return W(e.xorMask.Load()) }

func storePattern[W Word](dst *atomic.Uint32, pattern string) error {
	w, err := ParsePattern[W](pattern)
	if err != nil {
		return err
	}
	dst.Store(uint32(w))
	return nil
}

// SetRemapEntry routes source bit src to destination bit dst. Both must be
// in [0, Bits()); anything else is a programming error and panics.
// Concurrent entry updates are all applied.
func (e *Engine[W]) SetRemapEntry(src, dst int) {
	if src < 0 || src >= e.bits {
		panic(fmt.Sprintf("bitmask: remap source bit %d out of range [0, %d)", src, e.bits))
	}
	if dst < 0 || dst >= e.bits {
		panic(fmt.Sprintf("bitmask: remap destination bit %d out of range [0, %d)", dst, e.bits))
	}

	for {
		old := e.remap.Load()
		next := *old
		next[src] = uint8(dst)
		if e.remap.CompareAndSwap(old, &next) {
			return
		}
	}
}

// SetRemap replaces the whole remap table in one atomic swap. table must
// have Bits() entries, each < Bits().
func (e *Engine[W]) SetRemap(table []uint8) error {
	t, err := remapFromSlice(table, e.bits)
	if err != nil {
		return err
	}
	e.remap.Store(t)
	return nil
}

// Remap returns a copy of the remap table.
func (e *Engine[W]) Remap() []uint8 {
	t := e.remap.Load()
	out := make([]uint8, e.bits)
	copy(out, t[:e.bits])
	return out
}

// RemapEntry returns the destination bit of source bit src. It panics when
// src is out of range.
func (e *Engine[W]) RemapEntry(src int) int {
	if src < 0 || src >= e.bits {
		panic(fmt.Sprintf("bitmask: remap source bit %d out of range [0, %d)", src, e.bits))
	}
	return int(e.remap.Load()[src])
}

// SetEntropyValue sets the entropy shape in [0, 1].
func (e *Engine[W]) SetEntropyValue(v float64) error {
	if err := validateEntropyValue(v); err != nil {
		return err
	}
	e.entropyValue.Store(math.Float64bits(v))
	return nil
}

// SetEntropyAmount sets the entropy scale in [-10, 10].
func (e *Engine[W]) SetEntropyAmount(v float64) error {
	if err := validateEntropyAmount(v); err != nil {
		return err
	}
	e.entropyAmount.Store(math.Float64bits(v))
	return nil
}

// EntropyValue returns the entropy shape.
func (e *Engine[W]) EntropyValue() float64 {
	return math.Float64frombits(e.entropyValue.Load())
}

// EntropyAmount returns the entropy scale.
func (e *Engine[W]) EntropyAmount() float64 {
	return math.Float64frombits(e.entropyAmount.Load())
}

// SetDenormalRemoval enables or disables the periodic DC filter flush.
func (e *Engine[W]) SetDenormalRemoval(enabled bool) { e.removeDenormals.Store(enabled) }

// DenormalRemoval reports whether the periodic DC filter flush is enabled.
func (e *Engine[W]) DenormalRemoval() bool { return e.removeDenormals.Load() }
