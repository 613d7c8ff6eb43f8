package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Fatal("zero should equal zero with default eps")
	}
}

func TestAllFinite(t *testing.T) {
	if !AllFinite([]float64{0, 1, -1e300}) {
		t.Fatal("finite data reported as non-finite")
	}
	if AllFinite([]float64{0, math.NaN()}) {
		t.Fatal("NaN not detected")
	}
	if AllFinite([]float64{math.Inf(-1)}) {
		t.Fatal("-Inf not detected")
	}
}

func TestDBConversions(t *testing.T) {
	if got := DBToLinear(20); math.Abs(got-10) > 1e-12 {
		t.Fatalf("DBToLinear(20) = %v, want 10", got)
	}
	if got := LinearToDB(0.1); math.Abs(got+20) > 1e-12 {
		t.Fatalf("LinearToDB(0.1) = %v, want -20", got)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("LinearToDB(0) should be -Inf")
	}
	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("LinearPowerToDB(-1) should be NaN")
	}
	if got := DBPowerToLinear(-30); math.Abs(got-1e-3) > 1e-15 {
		t.Fatalf("DBPowerToLinear(-30) = %v, want 1e-3", got)
	}
}

func TestFlooredDB(t *testing.T) {
	if got := LinearToDBFloor(0); math.Abs(got+180) > 1e-9 {
		t.Fatalf("LinearToDBFloor(0) = %v, want -180", got)
	}
	if got := PowerToDBFloor(0); math.Abs(got+90) > 1e-9 {
		t.Fatalf("PowerToDBFloor(0) = %v, want -90", got)
	}
	if got := PowerToDBFloor(1); math.Abs(got) > 1e-6 {
		t.Fatalf("PowerToDBFloor(1) = %v, want ~0", got)
	}
}
