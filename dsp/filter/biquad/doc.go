// Package biquad provides the second-order IIR section runtime used by the
// processing packages.
//
// A [Section] implements Direct Form II Transposed processing for one set of
// [Coefficients]. First-order filters are expressed as sections with
// B2 = A2 = 0; coefficient design lives in dsp/filter/design.
//
// Block processing is dispatched to the fastest registered kernel for the
// running CPU. Build with the purego tag to force the generic kernel.
package biquad
