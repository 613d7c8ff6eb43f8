package am

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-am/dsp/filter/biquad"
	"github.com/cwbudde/algo-am/dsp/filter/design/pass"
)

const (
	// LowpassOrder is the Butterworth order of the receiver's output filter.
	LowpassOrder = 4
	// LowpassCutoffRatio places the output filter cutoff at this multiple
	// of the message frequency.
	LowpassCutoffRatio = 1.5
)

// Receiver describes how a noisy AM signal is demodulated.
type Receiver struct {
	Mode          DemodMode
	CarrierFreq   float64 // Hz, local oscillator frequency for Coherent
	MessageFreq   float64 // Hz, sets the output lowpass cutoff
	SampleRate    float64 // Hz
	PhaseErrorDeg float64 // local oscillator offset for Coherent
}

// LowpassDesign returns the receiver output filter: a 4th-order Butterworth
// lowpass with cutoff 1.5·fm. It fails when the cutoff is not below Nyquist.
func LowpassDesign(fm, sampleRate float64) ([]biquad.Coefficients, error) {
	coeffs, err := pass.ButterworthLPChecked(LowpassCutoffRatio*fm, LowpassOrder, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("receiver lowpass: %w", err)
	}
	return coeffs, nil
}

// Demodulate recovers the message from noisy using r.Mode. t holds the
// sample instants and is only read by the coherent receiver.
func Demodulate(noisy, t []float64, r Receiver) ([]float64, error) {
	switch r.Mode {
	case Envelope:
		return EnvelopeDetect(noisy, r.MessageFreq, r.SampleRate)
	case Coherent:
		return CoherentDetect(noisy, t, r.CarrierFreq, r.PhaseErrorDeg, r.MessageFreq, r.SampleRate)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownDemodMode, int(r.Mode))
	}
}

// EnvelopeDetect rectifies noisy, lowpass filters it with zero phase and
// removes the mean the rectification leaves behind.
func EnvelopeDetect(noisy []float64, fm, sampleRate float64) ([]float64, error) {
	coeffs, err := LowpassDesign(fm, sampleRate)
	if err != nil {
		return nil, err
	}

	rect := make([]float64, len(noisy))
	for i, v := range noisy {
		rect[i] = math.Abs(v)
	}

	out, err := biquad.FiltFilt(coeffs, rect)
	if err != nil {
		return nil, fmt.Errorf("envelope detector: %w", err)
	}
	if len(out) > 0 {
		floats.AddConst(-floats.Sum(out)/float64(len(out)), out)
	}
	return out, nil
}

// CoherentDetect mixes noisy with cos(2π·fc·t + φ), lowpass filters the
// product with zero phase and doubles it to undo the product-to-sum
// halving. A phase error φ scales the recovered message by cos(φ).
func CoherentDetect(noisy, t []float64, fc, phaseErrorDeg, fm, sampleRate float64) ([]float64, error) {
	if len(noisy) != len(t) {
		return nil, fmt.Errorf("coherent detector length mismatch: signal %d, time %d", len(noisy), len(t))
	}
	coeffs, err := LowpassDesign(fm, sampleRate)
	if err != nil {
		return nil, err
	}

	phase := phaseErrorDeg * math.Pi / 180
	lo := make([]float64, len(t))
	for i, ti := range t {
		lo[i] = math.Cos(2*math.Pi*fc*ti + phase)
	}

	mixed := make([]float64, len(noisy))
	vecmath.MulBlock(mixed, noisy, lo)

	out, err := biquad.FiltFilt(coeffs, mixed)
	if err != nil {
		return nil, fmt.Errorf("coherent detector: %w", err)
	}
	floats.Scale(2, out)
	return out, nil
}
