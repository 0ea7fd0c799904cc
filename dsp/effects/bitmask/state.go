package bitmask

import (
	"encoding/json"
	"fmt"
)

const (
	// StateVersion is written into every State snapshot.
	StateVersion = "1.0.0"

	stateLicense = "GNU Affero General Public License v3.0"
)

// State is the flat session record of an engine's configuration.
//
// Masks are binary digit strings (MSB first). RemapVals holds one raw byte
// per remap entry, source bit 0 first. The entropy and denormal fields are
// optional; Restore leaves the current value when they are nil.
type State struct {
	Version         string   `json:"version"`
	License         string   `json:"license"`
	XorMask         string   `json:"xormask"`
	OrMask          string   `json:"ormask"`
	AndMask         string   `json:"andmask"`
	RemapVals       string   `json:"remapvals"`
	Entropy         *float64 `json:"entropy,omitempty"`
	EntropyAmount   *float64 `json:"entropyamount,omitempty"`
	RemoveDenormals *bool    `json:"removedenormals,omitempty"`
}

// State snapshots the engine configuration.
func (e *Engine[W]) State() State {
	remap := e.Remap()
	vals := make([]byte, len(remap))
	copy(vals, remap)

	ev := e.EntropyValue()
	amt := e.EntropyAmount()
	rd := e.DenormalRemoval()

	return State{
		Version:         StateVersion,
		License:         stateLicense,
		XorMask:         e.XorMask(),
		OrMask:          e.OrMask(),
		AndMask:         e.AndMask(),
		RemapVals:       string(vals),
		Entropy:         &ev,
		EntropyAmount:   &amt,
		RemoveDenormals: &rd,
	}
}

// Restore applies a session record. Masks shorter or longer than the word
// are padded or truncated like text input; a short RemapVals is completed
// with the identity tail. Every field is validated before any is applied.
func (e *Engine[W]) Restore(s State) error {
	and, err := ParsePattern[W](PadMask(s.AndMask, MaskAnd.Fill(), e.bits))
	if err != nil {
		return fmt.Errorf("bitmask: restore andmask: %w", err)
	}

	or, err := ParsePattern[W](PadMask(s.OrMask, MaskOr.Fill(), e.bits))
	if err != nil {
		return fmt.Errorf("bitmask: restore ormask: %w", err)
	}

	xor, err := ParsePattern[W](PadMask(s.XorMask, MaskXor.Fill(), e.bits))
	if err != nil {
		return fmt.Errorf("bitmask: restore xormask: %w", err)
	}

	vals := []byte(s.RemapVals)
	if len(vals) > e.bits {
		vals = vals[:e.bits]
	}
	for i := len(vals); i < e.bits; i++ {
		vals = append(vals, byte(i))
	}

	remap, err := remapFromSlice(vals, e.bits)
	if err != nil {
		return fmt.Errorf("bitmask: restore remapvals: %w", err)
	}

	if s.Entropy != nil {
		if err := validateEntropyValue(*s.Entropy); err != nil {
			return err
		}
	}

	if s.EntropyAmount != nil {
		if err := validateEntropyAmount(*s.EntropyAmount); err != nil {
			return err
		}
	}

	e.SetAndMaskBits(and)
	e.SetOrMaskBits(or)
	e.SetXorMaskBits(xor)
	e.remap.Store(remap)

	if s.Entropy != nil {
		_ = e.SetEntropyValue(*s.Entropy)
	}

	if s.EntropyAmount != nil {
		_ = e.SetEntropyAmount(*s.EntropyAmount)
	}

	if s.RemoveDenormals != nil {
		e.SetDenormalRemoval(*s.RemoveDenormals)
	}

	return nil
}

// MarshalState encodes a State as JSON.
func MarshalState(s State) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bitmask: encode state: %w", err)
	}
	return data, nil
}

// UnmarshalState decodes a State from JSON.
func UnmarshalState(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("bitmask: decode state: %w", err)
	}
	return s, nil
}
