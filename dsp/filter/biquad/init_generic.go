//go:build !amd64 || purego

package biquad

import (
	_ "github.com/cwbudde/algo-bitmask/dsp/filter/biquad/internal/arch/generic"
)
