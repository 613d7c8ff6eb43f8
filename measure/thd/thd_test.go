package thd

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-am/internal/testutil"
)

func TestCalculateFromMagnitudeKnownSpectrum(t *testing.T) {
	cfg := Config{SampleRate: 48000, FundamentalFreq: 1000}

	mag := make([]float64, 48000/2+1)
	mag[1000] = 1.0       // Fundamental amplitude 1.0
	mag[2000] = 0.1 * 0.1 // H2 amplitude 0.1
	mag[3000] = 0.05 * 0.05
	mag[4500] = 0.02 * 0.02 // non-harmonic noise is ignored

	res := NewCalculator(cfg).CalculateFromMagnitude(mag, 48000)

	if math.Abs(res.FundamentalFreq-1000) > 1e-9 {
		t.Fatalf("fundamental freq mismatch: got %f", res.FundamentalFreq)
	}
	if math.Abs(res.FundamentalLevel-1.0) > 1e-9 {
		t.Fatalf("fundamental level mismatch: got %f", res.FundamentalLevel)
	}
	want := math.Sqrt(0.1*0.1 + 0.05*0.05)
	if math.Abs(res.THD-want) > 1e-12 {
		t.Fatalf("THD mismatch: got %.12f want %.12f", res.THD, want)
	}
	if math.Abs(res.Percent()-100*want) > 1e-10 {
		t.Fatalf("Percent mismatch: got %.12f", res.Percent())
	}
	if len(res.Harmonics) != 9 {
		t.Fatalf("harmonic count mismatch: got %d want 9", len(res.Harmonics))
	}
	if math.Abs(res.Harmonics[0]-0.1) > 1e-12 || math.Abs(res.Harmonics[1]-0.05) > 1e-12 || res.Harmonics[2] != 0 {
		t.Fatalf("harmonics mismatch: got %+v", res.Harmonics)
	}
	if math.Abs(res.THD_dB-20*math.Log10(want)) > 1e-9 {
		t.Fatalf("THD_dB mismatch: got %f", res.THD_dB)
	}
}

func TestCalculateFromMagnitudeMaxHarmonic(t *testing.T) {
	mag := make([]float64, 501)
	mag[10] = 1
	mag[20] = 0.04
	mag[30] = 0.09

	res := NewCalculator(Config{SampleRate: 1000, FundamentalFreq: 10, MaxHarmonic: 2}).CalculateFromMagnitude(mag, 1000)
	if math.Abs(res.THD-0.2) > 1e-12 || len(res.Harmonics) != 1 {
		t.Fatalf("THD = %v harmonics = %v, want 0.2 with one harmonic", res.THD, res.Harmonics)
	}
}

func TestAnalyzeSignalPureTone(t *testing.T) {
	tests := []struct {
		name string
		fm   float64
		sr   float64
		n    int
	}{
		{"bin centred", 1000, 48000, 48000},
		{"simulation grid", 500, 50000, 100000},
		{"power of two", 375, 48000, 4096},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := testutil.DeterministicCosine(tt.fm, tt.sr, 0.8, tt.n)
			got, err := Percent(x, tt.fm, tt.sr)
			if err != nil {
				t.Fatalf("Percent() error = %v", err)
			}
			if got > 1e-6 {
				t.Fatalf("THD = %v%%, want ~0", got)
			}
		})
	}
}

func TestAnalyzeSignalKnownHarmonics(t *testing.T) {
	x := testutil.Harmonics(500, 50000, []float64{1, 0.03, 0.1}, 100000)
	res, err := AnalyzeSignal(x, Config{SampleRate: 50000, FundamentalFreq: 500})
	if err != nil {
		t.Fatalf("AnalyzeSignal() error = %v", err)
	}
	want := math.Sqrt(0.03*0.03 + 0.1*0.1)
	if math.Abs(res.THD-want) > 1e-9 {
		t.Fatalf("THD = %v, want %v", res.THD, want)
	}
	if math.Abs(res.Harmonics[1]-0.1) > 1e-9 {
		t.Fatalf("H3 = %v, want 0.1", res.Harmonics[1])
	}
}

func TestAnalyzeSignalOddLength(t *testing.T) {
	// 44101 samples exercises the arbitrary-length transform.
	x := testutil.Harmonics(441, 44100, []float64{1, 0.05}, 44101)
	got, err := Percent(x, 441, 44100)
	if err != nil {
		t.Fatalf("Percent() error = %v", err)
	}
	if math.Abs(got-5) > 0.05 {
		t.Fatalf("THD = %v%%, want ~5%%", got)
	}
}

func TestAnalyzeSignalEdgeCases(t *testing.T) {
	got, err := Percent([]float64{1}, 100, 1000)
	if err != nil || got != 0 {
		t.Fatalf("Percent(short) = %v, %v; want 0", got, err)
	}

	got, err = Percent(make([]float64, 1000), 100, 1000)
	if err != nil {
		t.Fatalf("Percent(silent) error = %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Fatalf("Percent(silent) = %v, want +Inf", got)
	}

	if _, err := Percent([]float64{1, 2}, 100, 0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
	if _, err := Percent([]float64{1, 2}, 0, 1000); err == nil {
		t.Fatal("expected error for zero fundamental")
	}
}

func TestNearestBin(t *testing.T) {
	tests := []struct {
		f    float64
		want int
	}{
		{-3, 0}, {0, 0}, {2.4, 2}, {2.5, 2}, {2.6, 3}, {10, 10}, {100, 10},
	}
	for _, tt := range tests {
		if got := nearestBin(tt.f, 1, 10); got != tt.want {
			t.Fatalf("nearestBin(%v) = %d, want %d", tt.f, got, tt.want)
		}
	}
}

func TestHarmonicsAboveNyquistClampToTopBin(t *testing.T) {
	// fftSize 10 at 10 Hz keeps bins 0..4. Every harmonic of 2 Hz from
	// 4 Hz upward lands on bin 4.
	mag := make([]float64, 6)
	mag[2] = 1
	mag[4] = 0.01
	mag[5] = 100
	res := NewCalculator(Config{SampleRate: 10, FundamentalFreq: 2}).CalculateFromMagnitude(mag, 10)
	want := math.Sqrt(9 * 0.01)
	if math.Abs(res.THD-want) > 1e-12 {
		t.Fatalf("THD = %v, want %v", res.THD, want)
	}
}
