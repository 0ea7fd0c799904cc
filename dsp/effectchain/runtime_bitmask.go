package effectchain

import (
	"fmt"

	"github.com/cwbudde/algo-bitmask/dsp/effects/bitmask"
	"github.com/cwbudde/algo-bitmask/dsp/filter/biquad"
	"github.com/cwbudde/algo-bitmask/dsp/filter/design"
)

// bitEngine is the width-independent part of bitmask.Engine.
type bitEngine interface {
	Bits() int
	Configure(channels int, sampleRate float64, blockSize int) error
	SampleRate() float64
	SetMaskText(kind bitmask.MaskKind, text string) error
	SetRemapText(s string) error
	SetEntropyValue(v float64) error
	SetEntropyAmount(v float64) error
	SetDenormalRemoval(enabled bool)
	ProcessChannel(ch int, buf []float64)
	Reset()
}

var (
	_ bitEngine = (*bitmask.Engine[uint8])(nil)
	_ bitEngine = (*bitmask.Engine[uint16])(nil)
)

// bitmaskerRuntime handles the "bitmasker" node type.
//
// Params: bits (8 or 16), and/or/xor (digit strings, padded like text
// input), remap (hex digits), entropy, entropyAmount, removeDenormals.
// Missing parameters take the engine defaults on every Configure.
type bitmaskerRuntime struct {
	engine bitEngine
}

func (r *bitmaskerRuntime) Configure(ctx Context, p Params) error {
	bits := int(p.GetNum("bits", 8))

	if r.engine == nil || r.engine.Bits() != bits {
		e, err := newBitEngine(bits)
		if err != nil {
			return err
		}

		if err := e.Configure(1, ctx.SampleRate, ctx.BlockSize); err != nil {
			return err
		}

		r.engine = e
	} else if r.engine.SampleRate() != ctx.SampleRate {
		if err := r.engine.Configure(1, ctx.SampleRate, ctx.BlockSize); err != nil {
			return err
		}
	}

	// Absent keys restore the defaults.
	for _, kind := range []bitmask.MaskKind{bitmask.MaskAnd, bitmask.MaskOr, bitmask.MaskXor} {
		text, _ := p.GetStr(kind.String())
		if err := r.engine.SetMaskText(kind, text); err != nil {
			return err
		}
	}

	remap, _ := p.GetStr("remap")
	if err := r.engine.SetRemapText(remap); err != nil {
		return err
	}

	if err := r.engine.SetEntropyValue(p.GetNum("entropy", bitmask.DefaultEntropyValue)); err != nil {
		return err
	}

	if err := r.engine.SetEntropyAmount(p.GetNum("entropyAmount", bitmask.DefaultEntropyAmount)); err != nil {
		return err
	}

	r.engine.SetDenormalRemoval(p.GetBool("removeDenormals", true))

	return nil
}

func (r *bitmaskerRuntime) Process(block []float64) {
	if r.engine == nil {
		return
	}
	r.engine.ProcessChannel(0, block)
}

func (r *bitmaskerRuntime) Reset() {
	if r.engine != nil {
		r.engine.Reset()
	}
}

func newBitEngine(bits int) (bitEngine, error) {
	switch bits {
	case 8:
		return bitmask.NewEngine8()
	case 16:
		return bitmask.NewEngine16()
	default:
		return nil, fmt.Errorf("effectchain: bitmasker bits must be 8 or 16: %d", bits)
	}
}

// dcBlockRuntime handles the "dcblock" node type: a first-order highpass
// with a cutoffHz parameter.
type dcBlockRuntime struct {
	section biquad.Section
	cutoff  float64
	rate    float64
}

func (r *dcBlockRuntime) Configure(ctx Context, p Params) error {
	cutoff := p.GetNum("cutoffHz", bitmask.DCCutoffHz)
	if !design.ValidCutoff(cutoff, ctx.SampleRate) {
		return fmt.Errorf("effectchain: dcblock cutoffHz must be in (0, %g): %f", ctx.SampleRate/2, cutoff)
	}

	if cutoff != r.cutoff || ctx.SampleRate != r.rate {
		r.section.SetCoefficients(design.FirstOrderHP(cutoff, ctx.SampleRate))
		r.cutoff = cutoff
		r.rate = ctx.SampleRate
	}

	return nil
}

func (r *dcBlockRuntime) Process(block []float64) {
	r.section.ProcessBlock(block)
}

func (r *dcBlockRuntime) Reset() {
	r.section.Reset()
}
