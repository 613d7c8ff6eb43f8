package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrTransform is returned when an FFT backend fails.
var ErrTransform = errors.New("spectrum: transform failed")

const (
	// minPlanSize is the smallest power-of-two length routed to algo-fft.
	minPlanSize = 64
	// maxSmoothFactor is the largest prime factor gonum handles before
	// Bluestein becomes the cheaper path.
	maxSmoothFactor = 31
)

type backend int

const (
	backendPlan backend = iota + 1
	backendMixedRadix
	backendBluestein
)

func backendFor(n int) backend {
	switch {
	case n >= minPlanSize && isPowerOf2(n):
		return backendPlan
	case largestPrimeFactor(n) <= maxSmoothFactor:
		return backendMixedRadix
	default:
		return backendBluestein
	}
}

// Transform returns the non-negative frequency DFT bins X[0..n/2] of the
// real signal x (n/2+1 values, unnormalized). An empty input yields nil.
func Transform(x []float64) ([]complex128, error) {
	n := len(x)
	switch n {
	case 0:
		return nil, nil
	case 1:
		return []complex128{complex(x[0], 0)}, nil
	}

	switch backendFor(n) {
	case backendPlan:
		in := make([]complex128, n)
		for i, v := range x {
			in[i] = complex(v, 0)
		}
		out, err := forward(in)
		if err != nil {
			return nil, err
		}
		return out[:n/2+1], nil
	case backendMixedRadix:
		return fourier.NewFFT(n).Coefficients(nil, x), nil
	default:
		return bluestein(x)
	}
}

// forward runs a power-of-two algo-fft plan over in.
func forward(in []complex128) ([]complex128, error) {
	plan, err := algofft.NewPlan64(len(in))
	if err != nil {
		return nil, fmt.Errorf("%w: plan size %d: %v", ErrTransform, len(in), err)
	}

	out := make([]complex128, len(in))
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("%w: forward size %d: %v", ErrTransform, len(in), err)
	}
	return out, nil
}

// bluestein evaluates the length-n DFT as a circular convolution of
// power-of-two length m >= 2n-1 using the identity
// nk = (n² + k² - (k-n)²) / 2.
func bluestein(x []float64) ([]complex128, error) {
	n := len(x)
	m := nextPowerOf2(2*n - 1)
	if m < minPlanSize {
		m = minPlanSize
	}

	// w[k] = exp(-iπk²/n); k² is reduced mod 2n to keep the angle exact.
	w := make([]complex128, n)
	twoN := int64(2 * n)
	for k := range w {
		kk := (int64(k) * int64(k)) % twoN
		s, c := math.Sincos(math.Pi * float64(kk) / float64(n))
		w[k] = complex(c, -s)
	}

	a := make([]complex128, m)
	b := make([]complex128, m)
	for k, v := range x {
		a[k] = complex(v, 0) * w[k]
	}
	b[0] = cmplx.Conj(w[0])
	for k := 1; k < n; k++ {
		c := cmplx.Conj(w[k])
		b[k] = c
		b[m-k] = c
	}

	fa, err := forward(a)
	if err != nil {
		return nil, err
	}
	fb, err := forward(b)
	if err != nil {
		return nil, err
	}

	// Inverse transform via conj(FFT(conj(·)))/m.
	for i := range fa {
		fa[i] = cmplx.Conj(fa[i] * fb[i])
	}
	conv, err := forward(fa)
	if err != nil {
		return nil, err
	}

	scale := 1 / float64(m)
	out := make([]complex128, n/2+1)
	for k := range out {
		out[k] = w[k] * cmplx.Conj(conv[k]) * complex(scale, 0)
	}
	return out, nil
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

func largestPrimeFactor(n int) int {
	if n <= 1 {
		return 1
	}

	largest := 1
	for p := 2; p*p <= n; p++ {
		for n%p == 0 {
			largest = p
			n /= p
		}
	}
	if n > 1 {
		largest = n
	}

	return largest
}
