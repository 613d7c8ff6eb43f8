package modulation

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-am/dsp/am"
)

const (
	// PhaseErrorToleranceDeg is the coherent receiver phase error above
	// which attenuation is flagged.
	PhaseErrorToleranceDeg = 5.0
	// LowSNRDb is the channel SNR below which noise is flagged.
	LowSNRDb = 15.0
)

// InsightInput holds the link state Insight inspects.
type InsightInput struct {
	M             float64
	Mode          am.Mode
	Demod         am.DemodMode
	PhaseErrorDeg float64
	SNRDb         float64
	THDPct        float64
}

// Insight returns one advisory sentence for the link. The first matching
// condition wins: overmodulation, suppressed carrier, coherent phase error,
// low SNR, then ideal conditions.
func Insight(in InsightInput) string {
	switch {
	case in.M > 1:
		return fmt.Sprintf("Overmodulation detected. Reduce m below 1.0 to remove the distortion (THD: %.1f%%).", in.THDPct)
	case in.Mode == am.DSBSC:
		return "DSB-SC is power efficient but needs a precise coherent demodulator."
	case in.Demod == am.Coherent && math.Abs(in.PhaseErrorDeg) > PhaseErrorToleranceDeg:
		return fmt.Sprintf("A phase error of %.0f° attenuates the output. Bring the phase error close to 0°.", in.PhaseErrorDeg)
	case in.SNRDb < LowSNRDb:
		return "Low SNR makes the output noisy. Raise the SNR for a cleaner signal."
	default:
		return "Ideal modulation conditions. The signal is transmitted and received with high fidelity."
	}
}
