package analysis

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-bitmask/dsp/core"
	"github.com/cwbudde/algo-bitmask/dsp/spectrum"
	"github.com/cwbudde/algo-bitmask/dsp/window"
)

const defaultMaxHarmonics = 5

var errEmptySignal = errors.New("analysis: empty signal")

// Config holds analysis parameters.
type Config struct {
	SampleRate float64
	// FundamentalHz pins the fundamental. Zero searches for the strongest bin.
	FundamentalHz float64
	// MaxHarmonics is the highest harmonic included in THD. Default 5.
	MaxHarmonics int
	// CaptureBins is the half-width, in FFT bins, summed around each
	// spectral line. Zero derives it from the zero-padding ratio.
	CaptureBins int
	// Window tapers the mean-removed signal. The zero value is Hann.
	Window window.Type
}

// Result holds analysis results. Levels are linear amplitudes.
//
//nolint:revive
type Result struct {
	DC               float64
	Peak             float64
	RMS              float64
	FundamentalHz    float64
	FundamentalLevel float64
	Harmonics        []float64
	THD              float64
	THD_dB           float64
}

// Analyze measures signal. Time-domain figures use the raw samples; the
// spectrum is taken of the mean-removed signal under cfg.Window (Hann by
// default), zero-padded to a power of two.
func Analyze(signal []float64, cfg Config) (Result, error) {
	if len(signal) == 0 {
		return Result{}, errEmptySignal
	}

	if cfg.SampleRate <= 0 || math.IsNaN(cfg.SampleRate) || math.IsInf(cfg.SampleRate, 0) {
		return Result{}, fmt.Errorf("analysis: sample rate must be > 0 and finite: %f", cfg.SampleRate)
	}

	if cfg.FundamentalHz < 0 || cfg.FundamentalHz >= cfg.SampleRate/2 {
		return Result{}, fmt.Errorf("analysis: fundamental must be in [0, %g): %f", cfg.SampleRate/2, cfg.FundamentalHz)
	}

	if cfg.MaxHarmonics <= 0 {
		cfg.MaxHarmonics = defaultMaxHarmonics
	}

	res := timeDomain(signal)

	fftSize := nextPowerOf2(len(signal))
	if fftSize < 2 {
		return res, nil
	}

	power, windowEnergy, err := powerSpectrum(signal, res.DC, fftSize, cfg.Window)
	if err != nil {
		return Result{}, err
	}

	capture := cfg.CaptureBins
	if capture <= 0 {
		capture = int(math.Ceil(3 * float64(fftSize) / float64(len(signal))))
	}

	binHz := cfg.SampleRate / float64(fftSize)
	maxBin := len(power) - 1

	fundBin := findPeak(power, cfg.FundamentalHz, binHz, capture)
	if fundBin < 1 {
		return res, nil
	}

	level := func(bin int) float64 {
		lo := max(bin-capture, 1)
		hi := min(bin+capture, maxBin)

		sum := 0.0
		for k := lo; k <= hi; k++ {
			sum += power[k]
		}
		return 2 * math.Sqrt(sum/(float64(fftSize)*windowEnergy))
	}

	res.FundamentalHz = refineFrequency(power, fundBin) * binHz
	res.FundamentalLevel = level(fundBin)

	harmonicSum := 0.0
	for h := 2; h <= cfg.MaxHarmonics; h++ {
		bin := int(math.Round(float64(h) * res.FundamentalHz / binHz))
		if bin+capture > maxBin {
			break
		}
		a := level(bin)
		res.Harmonics = append(res.Harmonics, a)
		harmonicSum += a * a
	}

	if res.FundamentalLevel > 0 {
		fundPower := res.FundamentalLevel * res.FundamentalLevel
		res.THD = math.Sqrt(harmonicSum / fundPower)
		res.THD_dB = core.LinearPowerToDB(harmonicSum / fundPower)
	}

	return res, nil
}

func timeDomain(signal []float64) Result {
	var sum, sumSq, peak float64
	for _, x := range signal {
		sum += x
		sumSq += x * x
		peak = max(peak, math.Abs(x))
	}

	n := float64(len(signal))

	return Result{
		DC:   sum / n,
		Peak: peak,
		RMS:  math.Sqrt(sumSq / n),
	}
}

// powerSpectrum returns |X[k]|^2 for k in [0, fftSize/2] and the window's
// sum of squares.
func powerSpectrum(signal []float64, mean float64, fftSize int, wt window.Type) ([]float64, float64, error) {
	win := window.Generate(wt, len(signal))

	windowEnergy, err := window.Energy(win)
	if err != nil {
		return nil, 0, fmt.Errorf("analysis: window: %w", err)
	}

	buf := make([]float64, len(signal))
	for i, x := range signal {
		buf[i] = x - mean
	}
	if err := window.ApplyCoefficientsInPlace(buf, win); err != nil {
		return nil, 0, fmt.Errorf("analysis: window: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, x := range buf {
		in[i] = complex(x, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, 0, fmt.Errorf("analysis: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, 0, fmt.Errorf("analysis: fft: %w", err)
	}

	return spectrum.Power(out[:fftSize/2+1]), windowEnergy, nil
}

// findPeak returns the strongest bin near hz, or anywhere above the DC
// region when hz is zero. It returns -1 for a silent spectrum.
func findPeak(power []float64, hz, binHz float64, capture int) int {
	lo, hi := capture+1, len(power)-1
	if hz > 0 {
		center := int(math.Round(hz / binHz))
		lo = max(center-capture, 1)
		hi = min(center+capture, len(power)-1)
	}

	best, bestPower := -1, 0.0
	for k := lo; k <= hi; k++ {
		if power[k] > bestPower {
			best, bestPower = k, power[k]
		}
	}

	return best
}

// refineFrequency interpolates the peak position with a parabola through
// the log power of the neighboring bins.
func refineFrequency(power []float64, bin int) float64 {
	if bin <= 0 || bin >= len(power)-1 {
		return float64(bin)
	}

	a, b, c := power[bin-1], power[bin], power[bin+1]
	if a <= 0 || b <= 0 || c <= 0 {
		return float64(bin)
	}

	la, lb, lc := math.Log(a), math.Log(b), math.Log(c)

	den := la - 2*lb + lc
	if den == 0 {
		return float64(bin)
	}

	return float64(bin) + 0.5*(la-lc)/den
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
