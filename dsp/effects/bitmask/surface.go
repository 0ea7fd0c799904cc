package bitmask

import (
	"fmt"
	"strings"
)

// MaskKind selects one of the three masks.
type MaskKind int

const (
	// MaskAnd is the AND mask, applied first.
	MaskAnd MaskKind = iota
	// MaskOr is the OR mask, applied second.
	MaskOr
	// MaskXor is the XOR mask, applied last.
	MaskXor
)

// String returns the lowercase mask name.
func (k MaskKind) String() string {
	switch k {
	case MaskAnd:
		return "and"
	case MaskOr:
		return "or"
	case MaskXor:
		return "xor"
	default:
		return fmt.Sprintf("MaskKind(%d)", int(k))
	}
}

// Fill returns the digit used to complete a short mask of this kind: '1'
// for AND so missing bits pass through, '0' for OR and XOR.
func (k MaskKind) Fill() byte {
	if k == MaskAnd {
		return '1'
	}
	return '0'
}

const remapDigits = "0123456789ABCDEF"

// PadMask right-pads s with fill, or truncates it, to exactly bits characters.
func PadMask(s string, fill byte, bits int) string {
	if len(s) >= bits {
		return s[:bits]
	}
	return s + strings.Repeat(string(fill), bits-len(s))
}

// SetMaskText pads or truncates text the way a text-entry surface does and
// stores the result in the selected mask.
func (e *Engine[W]) SetMaskText(kind MaskKind, text string) error {
	pattern := PadMask(text, kind.Fill(), e.bits)

	switch kind {
	case MaskAnd:
		return e.SetAndMask(pattern)
	case MaskOr:
		return e.SetOrMask(pattern)
	case MaskXor:
		return e.SetXorMask(pattern)
	default:
		return fmt.Errorf("bitmask: unknown mask kind %d", int(kind))
	}
}

// MaskText returns the selected mask as a binary digit string.
func (e *Engine[W]) MaskText(kind MaskKind) string {
	switch kind {
	case MaskAnd:
		return e.AndMask()
	case MaskOr:
		return e.OrMask()
	case MaskXor:
		return e.XorMask()
	default:
		return ""
	}
}

// FormatRemap renders a remap table as one hex digit per entry, source bit 0
// first. The identity table of an 8-bit word is "01234567".
func FormatRemap(table []uint8) string {
	var sb strings.Builder
	sb.Grow(len(table))
	for _, d := range table {
		if int(d) < len(remapDigits) {
			sb.WriteByte(remapDigits[d])
		} else {
			sb.WriteByte('?')
		}
	}
	return sb.String()
}

// ParseRemap decodes one hex digit per entry into a table of bits entries.
// A short string is completed with the identity tail; a long one is
// truncated. Digits must name a bit below bits.
func ParseRemap(s string, bits int) ([]uint8, error) {
	if bits < 1 || bits > maxBits {
		return nil, fmt.Errorf("%w: unsupported width %d", ErrInvalidRemap, bits)
	}

	if len(s) < bits {
		s += remapDigits[len(s):bits]
	}
	s = s[:bits]

	table := make([]uint8, bits)
	for i := range bits {
		d := strings.IndexByte(remapDigits, upperHex(s[i]))
		if d < 0 {
			return nil, fmt.Errorf("%w: %q has non-hex digit %q at %d", ErrInvalidRemap, s, s[i], i)
		}
		if d >= bits {
			return nil, fmt.Errorf("%w: %q entry %d maps to bit %d, want < %d", ErrInvalidRemap, s, i, d, bits)
		}
		table[i] = uint8(d)
	}

	return table, nil
}

func upperHex(c byte) byte {
	if c >= 'a' && c <= 'f' {
		return c - 'a' + 'A'
	}
	return c
}

// SetRemapText parses s with ParseRemap and stores the table.
func (e *Engine[W]) SetRemapText(s string) error {
	table, err := ParseRemap(s, e.bits)
	if err != nil {
		return err
	}
	return e.SetRemap(table)
}

// RemapText returns the remap table formatted with FormatRemap.
func (e *Engine[W]) RemapText() string {
	return FormatRemap(e.Remap())
}
