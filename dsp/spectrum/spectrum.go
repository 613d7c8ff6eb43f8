package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-am/dsp/core"
)

// MaxAnalysisSamples bounds the transform length used by Analyze. Longer
// inputs are truncated to their leading samples.
const MaxAnalysisSamples = 1 << 16

// Result is a one-sided magnitude spectrum. All three slices have the same
// length and are ordered by ascending frequency.
type Result struct {
	Freq            []float64
	MagnitudeLinear []float64
	MagnitudeDB     []float64
}

// Len returns the number of bins.
func (r Result) Len() int { return len(r.Freq) }

// BinWidth returns the spacing between bins in Hz, or 0 for fewer than two
// bins.
func (r Result) BinWidth() float64 {
	if len(r.Freq) < 2 {
		return 0
	}
	return r.Freq[1] - r.Freq[0]
}

// Analyze returns the single-sided magnitude spectrum of signal.
//
// The input is truncated to MaxAnalysisSamples samples (n). The first n/2
// DFT bins are kept, frequencies are k·sampleRate/n, linear magnitudes are
// normalized as 2/n·|X[k]|, and the dB view is 20·log10(mag + 1e-9). An empty
// signal yields an empty Result.
func Analyze(signal []float64, sampleRate float64) (Result, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return Result{}, fmt.Errorf("spectrum sample rate must be > 0 and finite: %f", sampleRate)
	}

	n := min(len(signal), MaxAnalysisSamples)
	if n == 0 {
		return Result{Freq: []float64{}, MagnitudeLinear: []float64{}, MagnitudeDB: []float64{}}, nil
	}

	bins, err := Transform(signal[:n])
	if err != nil {
		return Result{}, err
	}

	half := n / 2
	mag := Magnitude(bins[:half])
	res := Result{
		Freq:            make([]float64, half),
		MagnitudeLinear: mag,
		MagnitudeDB:     make([]float64, half),
	}

	scale := 2 / float64(n)
	for k := range mag {
		mag[k] *= scale
		res.Freq[k] = float64(k) * sampleRate / float64(n)
		res.MagnitudeDB[k] = core.LinearToDBFloor(mag[k])
	}

	return res, nil
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return []float64{}
	}

	re, im := split(in)
	out := make([]float64, len(in))
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |X[k]|² for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return []float64{}
	}

	re, im := split(in)
	out := make([]float64, len(in))
	vecmath.Power(out, re, im)
	return out
}

func split(in []complex128) (re, im []float64) {
	buf := make([]float64, 2*len(in))
	re, im = buf[:len(in)], buf[len(in):]
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}
