package core

// NewBlock allocates a zeroed channel-major block of channels x n samples.
func NewBlock(channels, n int) [][]float64 {
	if channels <= 0 {
		return nil
	}

	n = max(n, 0)
	backing := make([]float64, channels*n)
	block := make([][]float64, channels)
	for ch := range block {
		block[ch] = backing[ch*n : (ch+1)*n : (ch+1)*n]
	}
	return block
}

// BlockView points view at samples [start, end) of every channel of block
// and returns it. view is reused when it has enough capacity, so a render
// loop can walk a long buffer block by block without allocating.
func BlockView(view, block [][]float64, start, end int) [][]float64 {
	if cap(view) >= len(block) {
		view = view[:len(block)]
	} else {
		view = make([][]float64, len(block))
	}

	for ch := range block {
		view[ch] = block[ch][start:end]
	}
	return view
}
