package effectchain

import (
	"github.com/cwbudde/algo-bitmask/dsp/effects/bitmask"
)

// Built-in effect type names.
const (
	TypeBitmasker = "bitmasker"
	TypeDCBlock   = "dcblock"
)

// DefaultRegistry returns a Registry pre-populated with all built-in effect runtimes.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.MustRegister(TypeBitmasker, func(_ Context) (Runtime, error) {
		return &bitmaskerRuntime{}, nil
	})
	r.MustRegister(TypeDCBlock, func(_ Context) (Runtime, error) {
		return &dcBlockRuntime{cutoff: bitmask.DCCutoffHz}, nil
	})

	return r
}
