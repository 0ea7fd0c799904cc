// Package bitmask implements a bit-level sample transform effect.
//
// Each sample is quantized to a signed 8- or 16-bit word, its bits are moved
// to new positions through a remap table, the result is masked with AND, OR
// and XOR patterns (in that order), and the word is converted back to
// floating point. A nonlinear "entropy" stage then mixes the sample with the
// channel's previous output, and a 1 Hz first-order highpass removes the DC
// offset the entropy formula introduces.
//
// The word width is the engine's type parameter:
//
//	e8, _ := bitmask.NewEngine[uint8]()
//	e16, _ := bitmask.NewEngine[uint16](bitmask.WithXorMask("1000000000000000"))
//
// Configuration setters are safe to call from any goroutine while another
// goroutine runs [Engine.Process]. Each field is swapped atomically on its
// own; a block may see an old value of one field together with a new value
// of another. [Engine.Configure] and [Engine.Reset] must not overlap with
// Process.
package bitmask
