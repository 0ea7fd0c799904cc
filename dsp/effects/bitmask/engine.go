package bitmask

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-bitmask/dsp/core"
	"github.com/cwbudde/algo-bitmask/dsp/filter/biquad"
	"github.com/cwbudde/algo-bitmask/dsp/filter/design"
)

const (
	// MaxChannels is the largest channel count Configure accepts.
	MaxChannels = core.MaxChannels

	// DCCutoffHz is the cutoff of the per-channel DC-removal highpass.
	DCCutoffHz = 1.0

	// denormalCheckInterval is the sample stride of the DC filter flush.
	denormalCheckInterval = 5
)

// Engine is the bit transform processor for words of type W.
//
// Configuration fields are independent atomics so a control goroutine can
// update them while the audio goroutine runs Process. Per-channel state is
// owned by the goroutine calling Process.
type Engine[W Word] struct {
	bits int

	andMask atomic.Uint32
	orMask  atomic.Uint32
	xorMask atomic.Uint32
	remap   atomic.Pointer[remapTable]

	entropyValue    atomic.Uint64
	entropyAmount   atomic.Uint64
	removeDenormals atomic.Bool

	sampleRate float64
	blockSize  int
	channels   []channelState
}

type channelState struct {
	dc   biquad.Section
	last float64
}

// params is the per-block view of the configuration.
type params[W Word] struct {
	and, or, xor    W
	remap           *remapTable
	entropyValue    float64
	entropyAmount   float64
	removeDenormals bool
}

// NewEngine creates an engine with identity remap, transparent masks and
// default entropy settings, then applies opts. The engine processes nothing
// until Configure is called.
func NewEngine[W Word](opts ...Option) (*Engine[W], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	e := &Engine[W]{bits: bitsOf[W]()}
	e.andMask.Store(uint32(allOnes[W]()))
	e.remap.Store(identityRemap(e.bits))
	e.entropyValue.Store(math.Float64bits(cfg.entropyValue))
	e.entropyAmount.Store(math.Float64bits(cfg.entropyAmount))
	e.removeDenormals.Store(cfg.removeDenormals)

	masks := []struct {
		pattern string
		set     func(string) error
	}{
		{cfg.andMask, e.SetAndMask},
		{cfg.orMask, e.SetOrMask},
		{cfg.xorMask, e.SetXorMask},
	}
	for _, m := range masks {
		if m.pattern == "" {
			continue
		}
		if err := m.set(m.pattern); err != nil {
			return nil, err
		}
	}

	if cfg.remap != nil {
		if err := e.SetRemap(cfg.remap); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// NewEngine8 creates an 8-bit engine.
func NewEngine8(opts ...Option) (*Engine[uint8], error) { return NewEngine[uint8](opts...) }

// NewEngine16 creates a 16-bit engine.
func NewEngine16(opts ...Option) (*Engine[uint16], error) { return NewEngine[uint16](opts...) }

// Configure prepares per-channel state for channels channels at sampleRate.
// Every channel's DC filter and output history is reset. blockSize is a hint
// recorded for hosts; values <= 0 fall back to the default block size.
//
// Configure must not run concurrently with Process.
func (e *Engine[W]) Configure(channels int, sampleRate float64, blockSize int) error {
	if channels < 1 {
		return fmt.Errorf("bitmask: channel count must be >= 1: %d", channels)
	}

	if channels > MaxChannels {
		return fmt.Errorf("%w: %d exceeds %d", ErrTooManyChannels, channels, MaxChannels)
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("bitmask: sample rate must be > 0 and finite: %f", sampleRate)
	}

	if !design.ValidCutoff(DCCutoffHz, sampleRate) {
		return fmt.Errorf("bitmask: sample rate %f too low for the %g Hz DC filter", sampleRate, DCCutoffHz)
	}

	if blockSize <= 0 {
		blockSize = core.DefaultProcessorConfig().BlockSize
	}

	coeffs := design.FirstOrderHP(DCCutoffHz, sampleRate)

	if cap(e.channels) >= channels {
		e.channels = e.channels[:channels]
	} else {
		e.channels = make([]channelState, channels)
	}

	for i := range e.channels {
		e.channels[i] = channelState{dc: biquad.Section{Coefficients: coeffs}}
	}

	e.sampleRate = sampleRate
	e.blockSize = blockSize

	return nil
}

// ConfigureWith is Configure driven by processor options applied on top of
// core.DefaultProcessorConfig.
func (e *Engine[W]) ConfigureWith(opts ...core.ProcessorOption) error {
	cfg := core.ApplyProcessorOptions(opts...)
	return e.Configure(cfg.Channels, cfg.SampleRate, cfg.BlockSize)
}

// Reset clears every channel's DC filter state and output history without
// changing the configuration. It must not run concurrently with Process.
func (e *Engine[W]) Reset() {
	for i := range e.channels {
		e.channels[i].dc.Reset()
		e.channels[i].last = 0
	}
}

// Process transforms block in place. block[ch] holds the samples of channel
// ch; channels beyond the configured count are left untouched.
// Process does not allocate or lock.
func (e *Engine[W]) Process(block [][]float64) {
	p := e.load()

	n := min(len(block), len(e.channels))
	for ch := range n {
		e.processChannel(&p, &e.channels[ch], block[ch])
	}
}

// ProcessChannel transforms one channel's samples in place. It is a no-op
// for channels outside the configured range.
func (e *Engine[W]) ProcessChannel(ch int, buf []float64) {
	if ch < 0 || ch >= len(e.channels) {
		return
	}

	p := e.load()
	e.processChannel(&p, &e.channels[ch], buf)
}

func (e *Engine[W]) load() params[W] {
	return params[W]{
		and:             W(e.andMask.Load()),
		or:              W(e.orMask.Load()),
		xor:             W(e.xorMask.Load()),
		remap:           e.remap.Load(),
		entropyValue:    math.Float64frombits(e.entropyValue.Load()),
		entropyAmount:   math.Float64frombits(e.entropyAmount.Load()),
		removeDenormals: e.removeDenormals.Load(),
	}
}

func (e *Engine[W]) processChannel(p *params[W], st *channelState, buf []float64) {
	bits := e.bits
	last := st.last

	for i, x := range buf {
		w := quantize[W](x, bits)
		w = remapBits(w, p.remap, bits)
		w = applyMasks(w, p.and, p.or, p.xor)

		y := shapeEntropy(dequantize(w, bits), last, p.entropyValue, p.entropyAmount)

		if p.removeDenormals && i%denormalCheckInterval == 0 {
			st.dc.FlushDenormals()
		}

		last = st.dc.ProcessSample(y)
		buf[i] = last
	}

	st.last = last
}

// Bits returns the word width in bits.
func (e *Engine[W]) Bits() int { return e.bits }

// Channels returns the configured channel count.
func (e *Engine[W]) Channels() int { return len(e.channels) }

// SampleRate returns the configured sample rate, or 0 before Configure.
func (e *Engine[W]) SampleRate() float64 { return e.sampleRate }

// BlockSize returns the configured block size hint.
func (e *Engine[W]) BlockSize() int { return e.blockSize }

// LastOutput returns the most recent output sample of channel ch, or 0 when
// ch is not configured.
func (e *Engine[W]) LastOutput(ch int) float64 {
	if ch < 0 || ch >= len(e.channels) {
		return 0
	}
	return e.channels[ch].last
}
