package effectchain

import "errors"

// stubRuntime is a minimal Runtime implementation for testing.
type stubRuntime struct {
	configureErr   error
	configureCalls int
	processCalls   int
	resetCalls     int
	lastCtx        Context
	lastParams     Params
}

func (s *stubRuntime) Configure(ctx Context, params Params) error {
	s.configureCalls++
	s.lastCtx = ctx
	s.lastParams = params

	return s.configureErr
}

func (s *stubRuntime) Process(_ []float64) {
	s.processCalls++
}

func (s *stubRuntime) Reset() {
	s.resetCalls++
}

// gainRuntime multiplies every sample by a fixed gain.
type gainRuntime struct {
	gain float64
}

func (g *gainRuntime) Configure(_ Context, params Params) error {
	g.gain = params.GetNum("gain", 1.0)

	return nil
}

func (g *gainRuntime) Process(block []float64) {
	for i := range block {
		block[i] *= g.gain
	}
}

// addRuntime adds a constant to every sample, so ordering is observable.
type addRuntime struct {
	value float64
}

func (a *addRuntime) Configure(_ Context, params Params) error {
	a.value = params.GetNum("value", 0)

	return nil
}

func (a *addRuntime) Process(block []float64) {
	for i := range block {
		block[i] += a.value
	}
}

var errRejected = errors.New("rejected")

// rejectRuntime fails Configure whenever the "reject" flag is set.
type rejectRuntime struct{}

func (rejectRuntime) Configure(_ Context, params Params) error {
	if params.GetBool("reject", false) {
		return errRejected
	}

	return nil
}

func (rejectRuntime) Process(_ []float64) {}

// testRegistry creates a registry with simple test effects.
func testRegistry() *Registry {
	r := NewRegistry()

	r.MustRegister("stub", func(_ Context) (Runtime, error) {
		return &stubRuntime{}, nil
	})
	r.MustRegister("gain", func(_ Context) (Runtime, error) {
		return &gainRuntime{gain: 1.0}, nil
	})
	r.MustRegister("add", func(_ Context) (Runtime, error) {
		return &addRuntime{}, nil
	})
	r.MustRegister("reject", func(_ Context) (Runtime, error) {
		return rejectRuntime{}, nil
	})
	r.MustRegister("broken", func(_ Context) (Runtime, error) {
		return nil, nil
	})

	return r
}
