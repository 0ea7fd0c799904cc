// Package spectrum provides FFT-adjacent spectrum-domain utilities.
//
// The package does not implement FFT itself. It operates on complex
// spectrum bins produced by an external FFT backend.
package spectrum
