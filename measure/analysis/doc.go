// Package analysis measures the level and harmonic content of a rendered
// signal: DC offset, peak, RMS, fundamental amplitude and total harmonic
// distortion. It is used to check bit-transform output for residual DC and
// to report what a mask setting does to a test tone.
package analysis
