// Package thd measures total harmonic distortion of a recovered message.
package thd

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-am/dsp/spectrum"
)

const defaultMaxHarmonic = 10

// Config holds THD calculation parameters.
type Config struct {
	SampleRate      float64
	FundamentalFreq float64
	// MaxHarmonic is the highest harmonic number included. Zero selects 10.
	MaxHarmonic int
}

// Result holds THD measurement results.
//
//nolint:revive
type Result struct {
	FundamentalFreq  float64 // centre of the bin used for the fundamental
	FundamentalLevel float64 // |X[k]| of that bin
	// THD is sqrt(Σ harmonic power) / sqrt(fundamental power) as a ratio.
	// It is +Inf when the fundamental bin is empty.
	THD    float64
	THD_dB float64
	// Harmonics holds each harmonic's amplitude relative to the fundamental,
	// starting at the second harmonic.
	Harmonics []float64
}

// Percent returns THD in percent.
func (r Result) Percent() float64 { return r.THD * 100 }

// Calculator performs THD analysis on frequency-domain data.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a new THD calculator.
func NewCalculator(cfg Config) *Calculator {
	if cfg.MaxHarmonic < 2 {
		cfg.MaxHarmonic = defaultMaxHarmonic
	}
	return &Calculator{cfg: cfg}
}

// AnalyzeSignal is a one-shot THD analysis of a time-domain signal.
func AnalyzeSignal(signal []float64, cfg Config) (Result, error) {
	return NewCalculator(cfg).AnalyzeSignal(signal)
}

// Percent returns the THD of signal at fundamental fm in percent, using
// harmonics 2 through 10. Signals shorter than two samples yield 0.
func Percent(signal []float64, fm, sampleRate float64) (float64, error) {
	res, err := AnalyzeSignal(signal, Config{SampleRate: sampleRate, FundamentalFreq: fm})
	if err != nil {
		return 0, err
	}
	return res.Percent(), nil
}

// AnalyzeSignal transforms the whole signal without windowing and evaluates
// the bins nearest to the fundamental and each harmonic.
func (c *Calculator) AnalyzeSignal(signal []float64) (Result, error) {
	if c.cfg.SampleRate <= 0 || math.IsNaN(c.cfg.SampleRate) || math.IsInf(c.cfg.SampleRate, 0) {
		return Result{}, fmt.Errorf("thd sample rate must be > 0 and finite: %f", c.cfg.SampleRate)
	}
	if c.cfg.FundamentalFreq <= 0 || math.IsNaN(c.cfg.FundamentalFreq) || math.IsInf(c.cfg.FundamentalFreq, 0) {
		return Result{}, fmt.Errorf("thd fundamental must be > 0 and finite: %f", c.cfg.FundamentalFreq)
	}

	n := len(signal)
	if n < 2 {
		return Result{}, nil
	}

	bins, err := spectrum.Transform(signal)
	if err != nil {
		return Result{}, fmt.Errorf("thd: %w", err)
	}

	return c.CalculateFromMagnitude(spectrum.Power(bins), n), nil
}

// CalculateFromMagnitude computes THD from the squared magnitudes of the
// non-negative bins of an fftSize-point transform. Only bins 0..(fftSize-1)/2
// are considered, so a harmonic above Nyquist maps to the highest strictly
// positive bin.
func (c *Calculator) CalculateFromMagnitude(magSquared []float64, fftSize int) Result {
	if fftSize < 2 || len(magSquared) == 0 {
		return Result{}
	}

	binHz := c.cfg.SampleRate / float64(fftSize)
	maxBin := min((fftSize-1)/2, len(magSquared)-1)

	fundamentalBin := nearestBin(c.cfg.FundamentalFreq, binHz, maxBin)
	fundamentalPower := magSquared[fundamentalBin]

	harmonicPower := 0.0
	powers := make([]float64, 0, c.cfg.MaxHarmonic-1)
	for k := 2; k <= c.cfg.MaxHarmonic; k++ {
		p := magSquared[nearestBin(float64(k)*c.cfg.FundamentalFreq, binHz, maxBin)]
		harmonicPower += p
		powers = append(powers, p)
	}

	res := Result{
		FundamentalFreq:  float64(fundamentalBin) * binHz,
		FundamentalLevel: math.Sqrt(fundamentalPower),
	}
	if fundamentalPower == 0 {
		res.THD = math.Inf(1)
		res.THD_dB = math.Inf(1)
		return res
	}

	res.THD = math.Sqrt(harmonicPower) / math.Sqrt(fundamentalPower)
	res.THD_dB = ratioToDB(res.THD)
	res.Harmonics = make([]float64, len(powers))
	for i, p := range powers {
		res.Harmonics[i] = math.Sqrt(p / fundamentalPower)
	}

	return res
}

// nearestBin returns the bin whose centre is closest to f, preferring the
// lower bin on an exact tie.
func nearestBin(f, binHz float64, maxBin int) int {
	k := int(math.Ceil(f/binHz - 0.5))
	return clampInt(k, 0, maxBin)
}

func ratioToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(v)
}

func clampInt(val, lo, hi int) int {
	if val < lo {
		return lo
	}

	if val > hi {
		return hi
	}

	return val
}
