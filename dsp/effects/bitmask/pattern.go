package bitmask

import (
	"fmt"
	"strings"
)

// ParsePattern decodes a binary digit string into a word. The first
// character is the most significant bit and the string must hold exactly
// as many digits as W has bits.
func ParsePattern[W Word](s string) (W, error) {
	bits := bitsOf[W]()
	if len(s) != bits {
		return 0, fmt.Errorf("%w: %q has %d digits, want %d", ErrInvalidPattern, s, len(s), bits)
	}

	var w W
	for i := range len(s) {
		w <<= 1
		switch s[i] {
		case '0':
		case '1':
			w |= 1
		default:
			return 0, fmt.Errorf("%w: %q has non-binary digit %q at %d", ErrInvalidPattern, s, s[i], i)
		}
	}

	return w, nil
}

// FormatPattern renders w as a binary digit string, most significant bit first.
func FormatPattern[W Word](w W) string {
	bits := bitsOf[W]()

	var sb strings.Builder
	sb.Grow(bits)
	for i := bits - 1; i >= 0; i-- {
		if (w>>i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
