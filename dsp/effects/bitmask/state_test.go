package bitmask

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestStateSnapshot(t *testing.T) {
	e, _ := NewEngine8(
		WithAndMask("11110000"),
		WithXorMask("00000011"),
		WithRemap([]uint8{7, 6, 5, 4, 3, 2, 1, 0}),
		WithEntropyValue(0.4),
		WithEntropyAmount(2),
	)

	s := e.State()
	if s.Version != StateVersion || s.License == "" {
		t.Fatalf("header = %q %q", s.Version, s.License)
	}
	if s.AndMask != "11110000" || s.OrMask != "00000000" || s.XorMask != "00000011" {
		t.Fatalf("masks = %s %s %s", s.AndMask, s.OrMask, s.XorMask)
	}
	if s.RemapVals != "\x07\x06\x05\x04\x03\x02\x01\x00" {
		t.Fatalf("RemapVals = %q", s.RemapVals)
	}
	if *s.Entropy != 0.4 || *s.EntropyAmount != 2 || !*s.RemoveDenormals {
		t.Fatalf("scalars = %v %v %v", *s.Entropy, *s.EntropyAmount, *s.RemoveDenormals)
	}
}

func TestStateRoundTripThroughJSON(t *testing.T) {
	src, _ := NewEngine16(
		WithOrMask("0000000000000001"),
		WithRemap([]uint8{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}),
		WithEntropyValue(0.9),
		WithEntropyAmount(-4),
		WithDenormalRemoval(false),
	)

	data, err := MarshalState(src.State())
	if err != nil {
		t.Fatalf("MarshalState: %v", err)
	}

	s, err := UnmarshalState(data)
	if err != nil {
		t.Fatalf("UnmarshalState: %v", err)
	}

	dst, _ := NewEngine16()
	if err := dst.Restore(s); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if dst.OrMask() != src.OrMask() || dst.AndMask() != src.AndMask() || dst.XorMask() != src.XorMask() {
		t.Fatal("masks did not round-trip")
	}
	if dst.RemapText() != "FEDCBA9876543210" {
		t.Fatalf("RemapText() = %q", dst.RemapText())
	}
	if dst.EntropyValue() != 0.9 || dst.EntropyAmount() != -4 || dst.DenormalRemoval() {
		t.Fatalf("scalars = %v %v %v", dst.EntropyValue(), dst.EntropyAmount(), dst.DenormalRemoval())
	}
}

func TestStateJSONKeys(t *testing.T) {
	e, _ := NewEngine8()
	data, err := MarshalState(e.State())
	if err != nil {
		t.Fatalf("MarshalState: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	for _, key := range []string{"version", "license", "xormask", "ormask", "andmask", "remapvals"} {
		if _, ok := m[key]; !ok {
			t.Fatalf("missing key %q in %s", key, data)
		}
	}
}

func TestRestoreLegacyRecord(t *testing.T) {
	e, _ := NewEngine8(WithEntropyValue(0.2))

	// Short masks and remap values, no entropy fields.
	err := e.Restore(State{
		Version:   "0.0.0",
		AndMask:   "0",
		OrMask:    "1",
		XorMask:   "",
		RemapVals: "\x01\x00",
	})
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if e.AndMask() != "01111111" || e.OrMask() != "10000000" || e.XorMask() != "00000000" {
		t.Fatalf("masks = %s %s %s", e.AndMask(), e.OrMask(), e.XorMask())
	}
	if e.RemapText() != "10234567" {
		t.Fatalf("RemapText() = %q", e.RemapText())
	}
	if e.EntropyValue() != 0.2 {
		t.Fatalf("EntropyValue() = %v, want unchanged 0.2", e.EntropyValue())
	}
}

func TestRestoreRejectsInvalidWithoutPartialApply(t *testing.T) {
	bad := 3.0
	tests := []struct {
		name string
		s    State
		is   error
	}{
		{name: "mask digit", s: State{AndMask: "2"}, is: ErrInvalidPattern},
		{name: "remap byte", s: State{RemapVals: "\x08"}, is: ErrInvalidRemap},
		{name: "remap digit text", s: State{RemapVals: "7"}, is: ErrInvalidRemap},
		{name: "entropy", s: State{Entropy: &bad}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := NewEngine8(WithXorMask("00000001"))
			tt.s.XorMask = "1"

			err := e.Restore(tt.s)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Fatalf("err = %v, want %v", err, tt.is)
			}
			if e.XorMask() != "00000001" {
				t.Fatalf("XorMask() = %q, partial restore applied", e.XorMask())
			}
		})
	}
}

func TestUnmarshalStateError(t *testing.T) {
	if _, err := UnmarshalState([]byte("{")); err == nil {
		t.Fatal("expected decode error")
	}
}
