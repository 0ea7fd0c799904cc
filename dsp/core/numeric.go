package core

import "math"

const (
	nearlyEqualEps = 1e-12

	// denormalThreshold is the magnitude below which FlushDenormals snaps to zero.
	denormalThreshold = 1e-30

	// MaxWordBits is the widest signed fixed-point word FullScale and LSB
	// describe exactly in a float64 mantissa.
	MaxWordBits = 53
)

// Clamp limits value to the inclusive range spanned by lo and hi. The bounds
// may be given in either order. NaN passes through.
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	switch {
	case value < lo:
		return lo
	case value > hi:
		return hi
	default:
		return value
	}
}

// FullScale returns 2^(bits-1), the integer magnitude that a signed bits-wide
// word assigns to a sample of 1.0. bits outside [1, MaxWordBits] yield 0.
func FullScale(bits int) float64 {
	if bits < 1 || bits > MaxWordBits {
		return 0
	}
	return math.Ldexp(1, bits-1)
}

// LSB returns the sample value of one least significant bit of a signed
// bits-wide word, 2^-(bits-1). bits outside [1, MaxWordBits] yield 0.
func LSB(bits int) float64 {
	if bits < 1 || bits > MaxWordBits {
		return 0
	}
	return math.Ldexp(1, -(bits - 1))
}

// NearlyEqual reports whether a and b agree within eps, absolutely or
// relative to the larger magnitude. eps <= 0 uses 1e-12.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = nearlyEqualEps
	}

	diff := math.Abs(a - b)
	return diff <= eps || diff <= eps*max(math.Abs(a), math.Abs(b))
}

// IsDenormal reports whether x is non-zero but small enough to be flushed
// by FlushDenormals.
func IsDenormal(x float64) bool {
	return x != 0 && math.Abs(x) < denormalThreshold
}

// FlushDenormals returns 0 when IsDenormal(x) and x otherwise.
func FlushDenormals(x float64) float64 {
	if IsDenormal(x) {
		return 0
	}
	return x
}

// LinearToDB converts an amplitude ratio to dB (20*log10).
// Zero gives -Inf and negative values give NaN.
func LinearToDB(linear float64) float64 {
	return logDB(linear, 20)
}

// LinearPowerToDB converts a power ratio to dB (10*log10).
// Zero gives -Inf and negative values give NaN.
func LinearPowerToDB(power float64) float64 {
	return logDB(power, 10)
}

func logDB(v, scale float64) float64 {
	switch {
	case v < 0:
		return math.NaN()
	case v == 0:
		return math.Inf(-1)
	default:
		return scale * math.Log10(v)
	}
}
