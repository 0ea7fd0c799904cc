package bitmask

import (
	"errors"
	"testing"
)

func TestParsePattern(t *testing.T) {
	w, err := ParsePattern[uint8]("10000001")
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}
	if w != 0x81 {
		t.Fatalf("ParsePattern = %#02x, want 0x81", w)
	}

	w16, err := ParsePattern[uint16]("0000000100000000")
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}
	if w16 != 0x0100 {
		t.Fatalf("ParsePattern = %#04x, want 0x0100", w16)
	}
}

func TestParsePatternRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "1111", "111111111", "1111000x", "1111 000"} {
		if _, err := ParsePattern[uint8](s); !errors.Is(err, ErrInvalidPattern) {
			t.Fatalf("ParsePattern(%q) err = %v, want ErrInvalidPattern", s, err)
		}
	}
}

func TestFormatPattern(t *testing.T) {
	if got := FormatPattern[uint8](0x0f); got != "00001111" {
		t.Fatalf("FormatPattern(0x0f) = %q", got)
	}
	if got := FormatPattern[uint16](0x8001); got != "1000000000000001" {
		t.Fatalf("FormatPattern(0x8001) = %q", got)
	}
}
