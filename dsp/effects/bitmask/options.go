package bitmask

import (
	"fmt"
	"math"
)

const (
	// DefaultEntropyValue is the entropy shape an engine starts with.
	DefaultEntropyValue = 0.0
	// DefaultEntropyAmount is the entropy scale an engine starts with.
	DefaultEntropyAmount = 1.0

	minEntropyValue  = 0.0
	maxEntropyValue  = 1.0
	minEntropyAmount = -10.0
	maxEntropyAmount = 10.0
)

// Option mutates engine construction parameters.
type Option func(*config) error

type config struct {
	andMask, orMask, xorMask string
	remap                    []uint8
	entropyValue             float64
	entropyAmount            float64
	removeDenormals          bool
}

func defaultConfig() config {
	return config{
		entropyValue:    DefaultEntropyValue,
		entropyAmount:   DefaultEntropyAmount,
		removeDenormals: true,
	}
}

// WithAndMask sets the initial AND mask as a binary digit string (MSB first).
// Default: all ones.
func WithAndMask(pattern string) Option {
	return func(cfg *config) error {
		cfg.andMask = pattern
		return nil
	}
}

// WithOrMask sets the initial OR mask. Default: all zeros.
func WithOrMask(pattern string) Option {
	return func(cfg *config) error {
		cfg.orMask = pattern
		return nil
	}
}

// WithXorMask sets the initial XOR mask. Default: all zeros.
func WithXorMask(pattern string) Option {
	return func(cfg *config) error {
		cfg.xorMask = pattern
		return nil
	}
}

// WithRemap sets the initial bit remap table. Default: identity.
func WithRemap(table []uint8) Option {
	return func(cfg *config) error {
		cfg.remap = append([]uint8(nil), table...)
		return nil
	}
}

// WithEntropyValue sets the entropy shape in [0, 1].
func WithEntropyValue(v float64) Option {
	return func(cfg *config) error {
		if err := validateEntropyValue(v); err != nil {
			return err
		}
		cfg.entropyValue = v
		return nil
	}
}

// WithEntropyAmount sets the entropy scale in [-10, 10].
func WithEntropyAmount(v float64) Option {
	return func(cfg *config) error {
		if err := validateEntropyAmount(v); err != nil {
			return err
		}
		cfg.entropyAmount = v
		return nil
	}
}

// WithDenormalRemoval enables or disables the periodic denormal flush of the
// DC filter state. Default: enabled.
func WithDenormalRemoval(enabled bool) Option {
	return func(cfg *config) error {
		cfg.removeDenormals = enabled
		return nil
	}
}

func validateEntropyValue(v float64) error {
	if v < minEntropyValue || v > maxEntropyValue || math.IsNaN(v) {
		return fmt.Errorf("bitmask: entropy value must be in [%g, %g]: %f",
			minEntropyValue, maxEntropyValue, v)
	}
	return nil
}

func validateEntropyAmount(v float64) error {
	if v < minEntropyAmount || v > maxEntropyAmount || math.IsNaN(v) {
		return fmt.Errorf("bitmask: entropy amount must be in [%g, %g]: %f",
			minEntropyAmount, maxEntropyAmount, v)
	}
	return nil
}
