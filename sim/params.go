package sim

import (
	"math"

	"github.com/cwbudde/algo-am/dsp/am"
	"github.com/cwbudde/algo-am/dsp/signal"
	"github.com/cwbudde/algo-am/measure/modulation"
)

// Params is one complete simulation setup.
//
// Carrier amplitude, message amplitude and modulation index are kept
// consistent through the With* methods: Am = m·Ac always holds.
type Params struct {
	ac float64
	am float64
	m  float64

	CarrierFreq   float64 // Hz
	MessageFreq   float64 // Hz
	Shape         signal.Shape
	Mode          am.Mode
	Demod         am.DemodMode
	PhaseErrorDeg float64
	SNRDb         float64
	// FFTCenter and FFTSpan describe the spectrum analysis window in Hz.
	// A zero FFTCenter selects the carrier frequency.
	FFTCenter float64
	FFTSpan   float64
}

// DefaultParams returns a 10 kHz carrier at unit amplitude modulated to
// m = 0.7 by a 500 Hz sine over a 50 dB channel with an envelope receiver.
func DefaultParams() Params {
	p := Params{
		CarrierFreq: 10e3,
		MessageFreq: 500,
		Shape:       signal.Sine,
		Mode:        am.DSBFC,
		Demod:       am.Envelope,
		SNRDb:       50,
	}
	p = p.WithCarrierAmplitude(1).WithModIndex(0.7)
	p.FFTSpan = DefaultFFTSpan(p.Shape, p.MessageFreq)
	return p
}

// CarrierAmplitude returns Ac.
func (p Params) CarrierAmplitude() float64 { return p.ac }

// MessageAmplitude returns Am.
func (p Params) MessageAmplitude() float64 { return p.am }

// ModIndex returns m = Am/Ac.
func (p Params) ModIndex() float64 { return p.m }

// WithCarrierAmplitude sets Ac, keeps Am and re-derives m.
func (p Params) WithCarrierAmplitude(ac float64) Params {
	p.ac = ac
	p.m = modulation.DeriveM(ac, p.am)
	return p
}

// WithModIndex sets m and derives Am = m·Ac.
func (p Params) WithModIndex(m float64) Params {
	p.m = m
	p.am = modulation.DeriveAm(p.ac, m)
	return p
}

// WithMessageAmplitude sets Am and derives m = Am/Ac.
func (p Params) WithMessageAmplitude(amplitude float64) Params {
	p.am = amplitude
	p.m = modulation.DeriveM(p.ac, amplitude)
	return p
}

// DefaultFFTSpan returns the analysis span that shows the sidebands of the
// given message shape: 12·fm for square waves, 8·fm for the dual tone and
// 4·fm otherwise.
func DefaultFFTSpan(shape signal.Shape, fm float64) float64 {
	switch shape {
	case signal.Square:
		return 12 * fm
	case signal.DualTone:
		return 8 * fm
	default:
		return 4 * fm
	}
}

// FFTWindow returns the analysed band [center-span/2, center+span/2].
func (p Params) FFTWindow() (lo, hi float64) {
	center := p.FFTCenter
	if center <= 0 {
		center = p.CarrierFreq
	}
	return center - p.FFTSpan/2, center + p.FFTSpan/2
}

// Validate reports the first parameter that is out of range as a
// *ValidationError.
func (p Params) Validate() error {
	positive := []struct {
		field string
		value float64
	}{
		{"carrier frequency", p.CarrierFreq},
		{"message frequency", p.MessageFreq},
		{"carrier amplitude", p.ac},
		{"fft span", p.FFTSpan},
	}
	for _, f := range positive {
		if !(f.value > 0) || math.IsInf(f.value, 0) {
			return &ValidationError{Field: f.field, Value: f.value, Constraint: "> 0 and finite"}
		}
	}

	if !(p.am >= 0) || math.IsInf(p.am, 0) {
		return &ValidationError{Field: "message amplitude", Value: p.am, Constraint: ">= 0 and finite"}
	}
	if p.FFTCenter < 0 || math.IsNaN(p.FFTCenter) || math.IsInf(p.FFTCenter, 0) {
		return &ValidationError{Field: "fft center", Value: p.FFTCenter, Constraint: ">= 0 and finite"}
	}
	if math.IsNaN(p.SNRDb) || math.IsInf(p.SNRDb, 0) {
		return &ValidationError{Field: "snr", Value: p.SNRDb, Constraint: "finite"}
	}
	if math.IsNaN(p.PhaseErrorDeg) || math.IsInf(p.PhaseErrorDeg, 0) {
		return &ValidationError{Field: "phase error", Value: p.PhaseErrorDeg, Constraint: "finite"}
	}
	if !p.Shape.Valid() {
		return &ValidationError{Field: "shape", Value: p.Shape, Constraint: "a declared shape"}
	}
	if !p.Mode.Valid() {
		return &ValidationError{Field: "mode", Value: p.Mode, Constraint: "DSB-FC or DSB-SC"}
	}
	if !p.Demod.Valid() {
		return &ValidationError{Field: "demodulator", Value: p.Demod, Constraint: "envelope or coherent"}
	}
	return nil
}
