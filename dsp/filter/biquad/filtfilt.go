package biquad

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCascade is returned when no sections are supplied.
	ErrEmptyCascade = errors.New("biquad: cascade has no sections")
	// ErrUnstable is returned when a section has a pole on or outside the unit circle.
	ErrUnstable = errors.New("biquad: cascade is unstable")
)

// PadLen returns the odd-extension length FiltFilt uses for a cascade of
// the given number of sections, before clamping to the signal length.
func PadLen(sections int) int {
	return 3 * (2*sections + 1)
}

// FiltFilt filters x with the cascade forward and then backward, returning
// a new slice. The two passes cancel each other's phase response, so the
// result has zero group delay and the squared magnitude response of the
// cascade.
//
// Both ends are extended by point reflection about the edge sample and each
// pass starts from the steady state for its first input, which suppresses
// the start-up transients an all-zero state would produce.
func FiltFilt(coeffs []Coefficients, x []float64) ([]float64, error) {
	if len(coeffs) == 0 {
		return nil, ErrEmptyCascade
	}

	chain := NewChain(coeffs)
	if !chain.Stable() {
		return nil, fmt.Errorf("%w: %d sections", ErrUnstable, len(coeffs))
	}

	n := len(x)
	if n == 0 {
		return []float64{}, nil
	}

	pad := PadLen(len(coeffs))
	if pad > n-1 {
		pad = n - 1
	}

	ext := make([]float64, n+2*pad)
	copy(ext[pad:], x)
	for i := 1; i <= pad; i++ {
		ext[pad-i] = 2*x[0] - x[i]
		ext[pad+n-1+i] = 2*x[n-1] - x[n-1-i]
	}

	chain.SettleTo(ext[0])
	chain.ProcessBlock(ext)

	reverse(ext)
	chain.Reset()
	chain.SettleTo(ext[0])
	chain.ProcessBlock(ext)
	reverse(ext)

	out := make([]float64, n)
	copy(out, ext[pad:pad+n])

	return out, nil
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
