// Command bitmaskrender renders a test tone through the bit transform engine
// and prints level and distortion figures for every channel.
//
// Usage:
//
//	bitmaskrender [flags]
//
// Mask flags take binary digits, most significant bit first; short values are
// padded the way a text field would (AND with ones, OR and XOR with zeros).
// The remap flag takes one hex digit per source bit, bit 0 first.
//
// Examples:
//
//	bitmaskrender -xor 1 -entropy 0.5
//	bitmaskrender -bits 16 -remap FEDCBA9876543210 -entropy 1 -amount 0
//	bitmaskrender -load session.json -and 11110000 -save session.json
//	bitmaskrender -entropy 0.7 -chain post.json
//	bitmaskrender -xor 1 -entropy 0.5 -window blackman
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-bitmask/dsp/core"
	"github.com/cwbudde/algo-bitmask/dsp/effectchain"
	"github.com/cwbudde/algo-bitmask/dsp/effects/bitmask"
	"github.com/cwbudde/algo-bitmask/dsp/window"
	"github.com/cwbudde/algo-bitmask/measure/analysis"
	"github.com/unixpickle/essentials"
)

// engine is the width-independent surface of bitmask.Engine used here.
type engine interface {
	Bits() int
	Configure(channels int, sampleRate float64, blockSize int) error
	Process(block [][]float64)
	SetMaskText(kind bitmask.MaskKind, text string) error
	MaskText(kind bitmask.MaskKind) string
	SetRemapText(s string) error
	RemapText() string
	SetEntropyValue(v float64) error
	EntropyValue() float64
	SetEntropyAmount(v float64) error
	EntropyAmount() float64
	SetDenormalRemoval(enabled bool)
	DenormalRemoval() bool
	State() bitmask.State
	Restore(s bitmask.State) error
}

type renderConfig struct {
	bits       int
	masks      map[bitmask.MaskKind]string
	remap      *string
	entropy    *float64
	amount     *float64
	noDenormal bool

	freq     float64
	amp      float64
	rate     float64
	channels int
	block    int
	samples  int
	window   string

	loadPath  string
	savePath  string
	chainPath string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bitmaskrender: ")

	bits := flag.Int("bits", 8, "word width in bits (8 or 16)")
	and := flag.String("and", "", "AND mask digits")
	or := flag.String("or", "", "OR mask digits")
	xor := flag.String("xor", "", "XOR mask digits")
	remap := flag.String("remap", "", "remap table as hex digits, source bit 0 first")
	entropy := flag.Float64("entropy", bitmask.DefaultEntropyValue, "entropy value in [0, 1]")
	amount := flag.Float64("amount", bitmask.DefaultEntropyAmount, "entropy amount in [-10, 10]")
	noDenormal := flag.Bool("no-denormal", false, "disable the periodic denormal flush")
	freq := flag.Float64("freq", 1000, "test tone frequency in Hz")
	amp := flag.Float64("amp", 0.5, "test tone amplitude")
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	channels := flag.Int("channels", 2, "channel count")
	block := flag.Int("block", 512, "block size in samples")
	samples := flag.Int("samples", 96000, "rendered length in samples")
	load := flag.String("load", "", "restore a session file before applying flags")
	save := flag.String("save", "", "write the resulting session file")
	win := flag.String("window", window.TypeHann.String(), "analysis window: hann, hamming, blackman or rectangular")
	chain := flag.String("chain", "", "JSON effect chain applied to every channel after the engine")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bitmaskrender [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders a sine through the bit transform engine and prints its analysis.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 0 {
		essentials.Die("unexpected arguments:", flag.Args())
	}

	cfg := renderConfig{
		bits:       *bits,
		masks:      map[bitmask.MaskKind]string{},
		noDenormal: *noDenormal,
		freq:       *freq,
		amp:        *amp,
		rate:       *rate,
		channels:   *channels,
		block:      *block,
		samples:    *samples,
		window:     *win,
		loadPath:   *load,
		savePath:   *save,
		chainPath:  *chain,
	}

	// Only explicitly set flags override a loaded session.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "and":
			cfg.masks[bitmask.MaskAnd] = *and
		case "or":
			cfg.masks[bitmask.MaskOr] = *or
		case "xor":
			cfg.masks[bitmask.MaskXor] = *xor
		case "remap":
			cfg.remap = remap
		case "entropy":
			cfg.entropy = entropy
		case "amount":
			cfg.amount = amount
		}
	})

	essentials.Must(run(cfg, os.Stdout))
}

func run(cfg renderConfig, w io.Writer) error {
	e, err := newEngine(cfg.bits)
	if err != nil {
		return err
	}

	if cfg.loadPath != "" {
		if err := loadSession(e, cfg.loadPath); err != nil {
			return err
		}
	}

	if err := applyFlags(e, cfg); err != nil {
		return err
	}

	if err := e.Configure(cfg.channels, cfg.rate, cfg.block); err != nil {
		return err
	}

	if cfg.samples <= 0 {
		return fmt.Errorf("samples must be > 0: %d", cfg.samples)
	}

	wt := window.TypeHann
	if cfg.window != "" {
		if wt, err = window.ParseType(cfg.window); err != nil {
			return err
		}
	}

	out := render(e, cfg)

	if cfg.chainPath != "" {
		if err := applyChain(out, cfg); err != nil {
			return err
		}
	}

	if err := report(w, e, out, cfg, wt); err != nil {
		return err
	}

	if cfg.savePath != "" {
		return saveSession(e, cfg.savePath)
	}

	return nil
}

func newEngine(bits int) (engine, error) {
	switch bits {
	case 8:
		return bitmask.NewEngine8()
	case 16:
		return bitmask.NewEngine16()
	default:
		return nil, fmt.Errorf("bits must be 8 or 16: %d", bits)
	}
}

func applyFlags(e engine, cfg renderConfig) error {
	for _, kind := range []bitmask.MaskKind{bitmask.MaskAnd, bitmask.MaskOr, bitmask.MaskXor} {
		if text, ok := cfg.masks[kind]; ok {
			if err := e.SetMaskText(kind, text); err != nil {
				return fmt.Errorf("-%s: %w", kind, err)
			}
		}
	}

	if cfg.remap != nil {
		if err := e.SetRemapText(*cfg.remap); err != nil {
			return fmt.Errorf("-remap: %w", err)
		}
	}

	if cfg.entropy != nil {
		if err := e.SetEntropyValue(*cfg.entropy); err != nil {
			return fmt.Errorf("-entropy: %w", err)
		}
	}

	if cfg.amount != nil {
		if err := e.SetEntropyAmount(*cfg.amount); err != nil {
			return fmt.Errorf("-amount: %w", err)
		}
	}

	if cfg.noDenormal {
		e.SetDenormalRemoval(false)
	}

	return nil
}

// render processes a sine of cfg.samples samples per channel in blocks of
// cfg.block and returns the channel-major output.
func render(e engine, cfg renderConfig) [][]float64 {
	tone := sine(cfg.freq, cfg.rate, cfg.amp, cfg.samples)
	out := core.NewBlock(cfg.channels, cfg.samples)
	for ch := range out {
		copy(out[ch], tone)
	}

	block := cfg.block
	if block <= 0 {
		block = cfg.samples
	}

	var view [][]float64
	for start := 0; start < cfg.samples; start += block {
		view = core.BlockView(view, out, start, min(start+block, cfg.samples))
		e.Process(view)
	}

	return out
}

func applyChain(out [][]float64, cfg renderConfig) error {
	data, err := os.ReadFile(cfg.chainPath)
	if err != nil {
		return fmt.Errorf("read chain: %w", err)
	}

	ctx := effectchain.Context{SampleRate: cfg.rate, BlockSize: cfg.block}
	reg := effectchain.DefaultRegistry()

	for ch := range out {
		c := effectchain.New(ctx, reg)
		if err := c.Load(string(data)); err != nil {
			return err
		}
		if ch == 0 {
			log.Printf("chain %s: %d nodes", cfg.chainPath, c.Len())
		}
		c.Process(out[ch])
	}

	return nil
}

func report(w io.Writer, e engine, out [][]float64, cfg renderConfig, wt window.Type) error {
	fmt.Fprintf(w, "bits=%d and=%s or=%s xor=%s remap=%s entropy=%g amount=%g denormal=%v\n\n",
		e.Bits(),
		e.MaskText(bitmask.MaskAnd), e.MaskText(bitmask.MaskOr), e.MaskText(bitmask.MaskXor),
		e.RemapText(), e.EntropyValue(), e.EntropyAmount(), e.DenormalRemoval())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Channel\tDC\tPeak\tRMS\tFund Hz\tFund level\tTHD dB\t")

	// Skip the first half so the DC filter has settled.
	settle := len(out[0]) / 2

	for ch, samples := range out {
		res, err := analysis.Analyze(samples[settle:], analysis.Config{
			SampleRate:    cfg.rate,
			FundamentalHz: fundamentalHint(cfg),
			Window:        wt,
		})
		if err != nil {
			return fmt.Errorf("analyze channel %d: %w", ch, err)
		}

		fmt.Fprintf(tw, "%d\t%.5f\t%.4f\t%.4f\t%.1f\t%.4f\t%s\t\n",
			ch, res.DC, res.Peak, res.RMS, res.FundamentalHz, res.FundamentalLevel, formatDB(res.THD, res.THD_dB))
	}

	return tw.Flush()
}

func fundamentalHint(cfg renderConfig) float64 {
	if cfg.freq > 0 && cfg.freq < cfg.rate/2 {
		return cfg.freq
	}
	return 0
}

func formatDB(linear, db float64) string {
	if linear <= 0 {
		return "-inf"
	}
	return fmt.Sprintf("%.1f", db)
}

func sine(freq, rate, amp float64, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * freq / rate
	for i := range out {
		out[i] = amp * math.Sin(step*float64(i))
	}
	return out
}
