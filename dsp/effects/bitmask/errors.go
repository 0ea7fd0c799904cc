package bitmask

import "errors"

var (
	// ErrTooManyChannels is returned by Configure above MaxChannels.
	ErrTooManyChannels = errors.New("bitmask: too many channels")

	// ErrInvalidPattern is returned for mask strings of the wrong length or
	// containing characters other than '0' and '1'.
	ErrInvalidPattern = errors.New("bitmask: invalid mask pattern")

	// ErrInvalidRemap is returned for remap tables of the wrong length or
	// with destinations outside the word.
	ErrInvalidRemap = errors.New("bitmask: invalid remap table")
)
