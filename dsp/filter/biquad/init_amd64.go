//go:build amd64 && !purego

package biquad

import (
	_ "github.com/cwbudde/algo-bitmask/dsp/filter/biquad/internal/arch/amd64/unrolled" // register 4x-unrolled backend
	_ "github.com/cwbudde/algo-bitmask/dsp/filter/biquad/internal/arch/generic"        // register generic backend
)
