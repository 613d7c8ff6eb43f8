package pass

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-am/dsp/filter/biquad"
)

// ErrCutoff is returned when a cutoff is not strictly inside (0, Nyquist).
var ErrCutoff = errors.New("cutoff must be inside (0, sampleRate/2)")

// ButterworthLP designs a lowpass Butterworth cascade.
//
// It returns nil for order <= 0 or a cutoff outside (0, Nyquist).
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !validCutoff(freq, sampleRate) {
		return nil
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		sections = append(sections, lowpassSection(freq, butterworthQ(order, i), sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, butterworthFirstOrderLP(freq, sampleRate))
	}
	return sections
}

// ButterworthLPChecked is ButterworthLP with an explicit error for
// unrealizable parameters.
func ButterworthLPChecked(freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if order <= 0 {
		return nil, fmt.Errorf("butterworth order must be > 0: %d", order)
	}
	if !validCutoff(freq, sampleRate) {
		return nil, fmt.Errorf("%w: cutoff %f Hz at sample rate %f Hz", ErrCutoff, freq, sampleRate)
	}
	return ButterworthLP(freq, order, sampleRate), nil
}
