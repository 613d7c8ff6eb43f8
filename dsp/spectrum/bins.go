package spectrum

import "sort"

// NearestBin returns the index of the frequency in freq closest to f.
// freq must be sorted ascending; ties resolve to the lower index. Returns -1
// for an empty grid.
func NearestBin(freq []float64, f float64) int {
	if len(freq) == 0 {
		return -1
	}

	i := sort.SearchFloat64s(freq, f)
	switch {
	case i == 0:
		return 0
	case i == len(freq):
		return len(freq) - 1
	case f-freq[i-1] <= freq[i]-f:
		return i - 1
	default:
		return i
	}
}

// Zoom returns the bins whose frequency lies in [lo, hi]. The returned
// slices share storage with r.
func (r Result) Zoom(lo, hi float64) Result {
	if lo > hi {
		lo, hi = hi, lo
	}

	start := sort.SearchFloat64s(r.Freq, lo)
	end := sort.Search(len(r.Freq), func(i int) bool { return r.Freq[i] > hi })

	return Result{
		Freq:            r.Freq[start:end],
		MagnitudeLinear: r.MagnitudeLinear[start:end],
		MagnitudeDB:     r.MagnitudeDB[start:end],
	}
}

// Peak returns the index of the largest linear magnitude, or -1 when empty.
func (r Result) Peak() int {
	best := -1
	bestVal := -1.0
	for i, v := range r.MagnitudeLinear {
		if v > bestVal {
			best, bestVal = i, v
		}
	}
	return best
}
