package sim

import (
	"github.com/cwbudde/algo-am/dsp/signal"
	"github.com/cwbudde/algo-am/dsp/spectrum"
)

// Marker labels a spectral line of the modulated signal.
type Marker struct {
	Label           string
	Freq            float64 // nominal line frequency
	Bin             int     // nearest spectrum bin
	MagnitudeLinear float64
	MagnitudeDB     float64
}

// Markers returns the carrier and sideband lines that fall strictly inside
// the analysis window, each with the magnitude of its nearest bin. Single
// tones have LSB and USB at fc∓fm; the dual tone adds LSB2 and USB2 at
// fc∓3fm.
func (r *Result) Markers() []Marker {
	fc, fm := r.Params.CarrierFreq, r.Params.MessageFreq

	lines := []Marker{{Label: "fc", Freq: fc}}
	if r.Params.Shape == signal.DualTone {
		lines = append(lines,
			Marker{Label: "LSB1", Freq: fc - fm},
			Marker{Label: "USB1", Freq: fc + fm},
			Marker{Label: "LSB2", Freq: fc - 3*fm},
			Marker{Label: "USB2", Freq: fc + 3*fm},
		)
	} else {
		lines = append(lines,
			Marker{Label: "LSB", Freq: fc - fm},
			Marker{Label: "USB", Freq: fc + fm},
		)
	}

	if r.Spectrum.Len() == 0 {
		return nil
	}

	lo, hi := r.Params.FFTWindow()
	out := make([]Marker, 0, len(lines))
	for _, m := range lines {
		if m.Freq <= lo || m.Freq >= hi {
			continue
		}
		m.Bin = spectrum.NearestBin(r.Spectrum.Freq, m.Freq)
		m.MagnitudeLinear = r.Spectrum.MagnitudeLinear[m.Bin]
		m.MagnitudeDB = r.Spectrum.MagnitudeDB[m.Bin]
		out = append(out, m)
	}
	return out
}
