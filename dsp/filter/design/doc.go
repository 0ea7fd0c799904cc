// Package design computes filter coefficients for the biquad runtime.
//
// Designs return [biquad.Coefficients]; invalid frequency or sample rate
// yields the zero value, which silences a section rather than destabilizing it.
package design
