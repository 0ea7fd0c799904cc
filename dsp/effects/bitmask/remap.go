package bitmask

import "fmt"

// remapTable holds one destination bit per source bit. Only the first
// bit-width entries are meaningful. Tables are immutable once published.
type remapTable [maxBits]uint8

func identityRemap(bits int) *remapTable {
	var t remapTable
	for i := range bits {
		t[i] = uint8(i)
	}
	return &t
}

func remapFromSlice(table []uint8, bits int) (*remapTable, error) {
	if len(table) != bits {
		return nil, fmt.Errorf("%w: remap table has %d entries, want %d", ErrInvalidRemap, len(table), bits)
	}

	var t remapTable
	for i, dst := range table {
		if int(dst) >= bits {
			return nil, fmt.Errorf("%w: entry %d maps to bit %d, want < %d", ErrInvalidRemap, i, dst, bits)
		}
		t[i] = dst
	}

	return &t, nil
}
