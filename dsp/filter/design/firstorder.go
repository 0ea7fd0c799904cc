package design

import (
	"math"

	"github.com/cwbudde/algo-bitmask/dsp/filter/biquad"
)

// FirstOrderHP designs a first-order Butterworth highpass at freq (Hz)
// using the bilinear transform with frequency prewarping.
func FirstOrderHP(freq, sampleRate float64) biquad.Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}
}

// FirstOrderLP designs a first-order Butterworth lowpass at freq (Hz).
func FirstOrderLP(freq, sampleRate float64) biquad.Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}

// ValidCutoff reports whether freq can be designed at sampleRate.
func ValidCutoff(freq, sampleRate float64) bool {
	_, ok := bilinearK(freq, sampleRate)
	return ok
}

func bilinearK(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 ||
		math.IsNaN(freq) || math.IsInf(sampleRate, 0) || math.IsNaN(sampleRate) {
		return 0, false
	}

	return math.Tan(math.Pi * freq / sampleRate), true
}
