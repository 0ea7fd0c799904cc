package effectchain

// Runtime is the per-node processing and configuration contract.
//
// Configure is called when a node is created, when its parameters change and
// when the chain context changes. Process transforms one mono block in place.
type Runtime interface {
	Configure(ctx Context, params Params) error
	Process(block []float64)
}

// Resetter is implemented by runtimes that keep signal history.
type Resetter interface {
	Reset()
}
