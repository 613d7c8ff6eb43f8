package sim

import (
	"math"

	"github.com/cwbudde/algo-am/dsp/am"
	"github.com/cwbudde/algo-am/dsp/core"
	"github.com/cwbudde/algo-am/dsp/spectrum"
	"github.com/cwbudde/algo-am/measure/modulation"
	timestats "github.com/cwbudde/algo-am/stats/time"
)

// Buffers holds the sampled signals of one run. All slices have the same
// length.
type Buffers struct {
	Time        []float64
	Message     []float64
	Carrier     []float64
	Modulated   []float64
	Noisy       []float64
	Demodulated []float64
}

// Len returns the number of samples per buffer.
func (b Buffers) Len() int { return len(b.Time) }

// Metrics are the figures derived from a run.
type Metrics struct {
	ModIndex    float64
	Status      modulation.Status
	Power       modulation.Power
	BandwidthHz float64
	// THDPct is the distortion of the demodulated signal in percent. It is
	// +Inf when the demodulated signal has no energy at the message
	// frequency.
	THDPct float64
	// Correlation is the Pearson correlation between message and
	// demodulated signal.
	Correlation float64
	Insight     string
}

// Result is the immutable output of Run. Its slices must not be modified.
type Result struct {
	Params      Params
	SampleRate  float64
	Buffers     Buffers
	Spectrum    spectrum.Result // of the modulated signal
	Metrics     Metrics
	PlotSamples int
}

// plot returns the leading PlotSamples of x.
func (r *Result) plot(x []float64) []float64 {
	return x[:min(r.PlotSamples, len(x))]
}

// ScaledMessage returns the message over the plot window scaled to the peak
// of the demodulated signal, for overlaying the two. A message with a peak
// at or below core.Epsilon is returned unscaled.
func (r *Result) ScaledMessage() []float64 {
	msg := r.plot(r.Buffers.Message)
	out := append([]float64(nil), msg...)

	msgPeak := timestats.Peak(msg)
	if msgPeak <= core.Epsilon {
		return out
	}
	scale := timestats.Peak(r.plot(r.Buffers.Demodulated)) / msgPeak
	for i := range out {
		out[i] *= scale
	}
	return out
}

// Envelope returns the analytic DSB-FC envelope ±(Ac + message) over the
// plot window. Both slices are nil for DSB-SC.
func (r *Result) Envelope() (upper, lower []float64) {
	if r.Params.Mode != am.DSBFC {
		return nil, nil
	}

	msg := r.plot(r.Buffers.Message)
	ac := r.Params.CarrierAmplitude()
	upper = make([]float64, len(msg))
	lower = make([]float64, len(msg))
	for i, v := range msg {
		upper[i] = ac + v
		lower[i] = -(ac + v)
	}
	return upper, lower
}

// OvermodulationVisible reports whether the DSB-FC envelope crosses zero,
// which is when m > 1.
func (r *Result) OvermodulationVisible() bool {
	return r.Params.ModIndex() > 1 && r.Params.Mode == am.DSBFC
}

// OvermodulationTrace returns |ScaledMessage()| when OvermodulationVisible,
// the shape an ideal receiver would have recovered. It is nil otherwise.
func (r *Result) OvermodulationTrace() []float64 {
	if !r.OvermodulationVisible() {
		return nil
	}
	out := r.ScaledMessage()
	for i, v := range out {
		out[i] = math.Abs(v)
	}
	return out
}

// SpectrumWindow returns the spectrum bins inside Params.FFTWindow.
func (r *Result) SpectrumWindow() spectrum.Result {
	lo, hi := r.Params.FFTWindow()
	return r.Spectrum.Zoom(lo, hi)
}
