package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-bitmask/dsp/core"
)

// DeterministicSine generates a sine wave starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates uniform white noise in [-amplitude, amplitude)
// from a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Levels returns every representable level of a signed bits-wide word,
// k/2^(bits-1) for k in [-2^(bits-1), 2^(bits-1)), in ascending order.
func Levels(bits int) []float64 {
	if bits < 1 || bits > 24 {
		return nil
	}
	half := int(core.FullScale(bits))
	lsb := core.LSB(bits)
	out := make([]float64, 2*half)
	for i := range out {
		out[i] = float64(i-half) * lsb
	}
	return out
}

// Block deep-copies channels into a channel-major block so a test can
// process it in place and still compare against the inputs.
func Block(channels ...[]float64) [][]float64 {
	out := make([][]float64, len(channels))
	for i, ch := range channels {
		out[i] = append([]float64(nil), ch...)
	}
	return out
}
