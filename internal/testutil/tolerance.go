package testutil

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireCorrelationAbove fails t unless the Pearson correlation of got and
// want exceeds minCorr.
func RequireCorrelationAbove(t testing.TB, got, want []float64, minCorr float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	c := stat.Correlation(got, want, nil)
	if math.IsNaN(c) || c <= minCorr {
		t.Fatalf("correlation = %.6f, want > %.6f", c, minCorr)
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// PeakAbs returns max |x[i]| over the given index range [from, to).
func PeakAbs(x []float64, from, to int) float64 {
	from = max(from, 0)
	to = min(to, len(x))
	peak := 0.0
	for i := from; i < to; i++ {
		peak = max(peak, math.Abs(x[i]))
	}
	return peak
}
