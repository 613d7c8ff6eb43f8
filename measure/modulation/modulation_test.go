package modulation

import (
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-am/dsp/am"
	"github.com/cwbudde/algo-am/dsp/signal"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		m    float64
		want Status
	}{
		{0, Undermodulation},
		{0.7, Undermodulation},
		{0.989, Undermodulation},
		{0.99, FullModulation},
		{1, FullModulation},
		{1.01, FullModulation},
		{1.0101, Overmodulation},
		{1.5, Overmodulation},
	}
	for _, tt := range tests {
		if got := Classify(tt.m); got != tt.want {
			t.Fatalf("Classify(%v) = %v, want %v", tt.m, got, tt.want)
		}
	}
}

func TestStatusLabels(t *testing.T) {
	if FullModulation.String() != "100% Modulation" || Overmodulation.Color() != "red" || Undermodulation.Color() != "blue" {
		t.Fatal("unexpected status labels")
	}
	if Status(0).String() != "Status(0)" || Status(0).Color() != "black" {
		t.Fatal("unexpected labels for invalid status")
	}
}

func TestCalcPower(t *testing.T) {
	tests := []struct {
		name string
		ac   float64
		m    float64
		mode am.Mode
		want Power
	}{
		{"full carrier m=1", 1, 1, am.DSBFC, Power{0.5, 0.25, 0.75, 100.0 / 3}},
		{"full carrier m=0", 1, 0, am.DSBFC, Power{0.5, 0, 0.5, 0}},
		{"full carrier m=0.5 ac=2", 2, 0.5, am.DSBFC, Power{2, 0.25, 2.25, 0.25 / 2.25 * 100}},
		{"overmodulated uses m_eff=1", 1, 1.5, am.DSBFC, Power{0.5, 0.25, 0.75, 100.0 / 3}},
		{"suppressed carrier", 1, 0.7, am.DSBSC, Power{0, 0.245, 0.245, 100}},
		{"suppressed carrier silent", 1, 0, am.DSBSC, Power{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcPower(tt.ac, tt.m, tt.mode)
			for _, f := range []struct {
				name      string
				got, want float64
			}{
				{"Carrier", got.Carrier, tt.want.Carrier},
				{"Sideband", got.Sideband, tt.want.Sideband},
				{"Total", got.Total, tt.want.Total},
				{"EfficiencyPct", got.EfficiencyPct, tt.want.EfficiencyPct},
			} {
				if math.Abs(f.got-f.want) > 1e-12 {
					t.Fatalf("%s = %v, want %v", f.name, f.got, f.want)
				}
			}
		})
	}
}

func TestEfficiencyThirdAtFullModulation(t *testing.T) {
	if got := CalcPower(1, 1, am.DSBFC).EfficiencyPct; math.Abs(got-33.33) > 0.01 {
		t.Fatalf("efficiency = %v, want ~33.33", got)
	}
}

func TestBandwidth(t *testing.T) {
	tests := []struct {
		shape signal.Shape
		want  float64
	}{
		{signal.Sine, 1000},
		{signal.Square, 1000},
		{signal.Sawtooth, 1000},
		{signal.DualTone, 3000},
	}
	for _, tt := range tests {
		if got := Bandwidth(500, tt.shape); got != tt.want {
			t.Fatalf("Bandwidth(%v) = %v, want %v", tt.shape, got, tt.want)
		}
	}
}

func TestDeriveInverse(t *testing.T) {
	for _, ac := range []float64{0.1, 1, 3.3, 1e3} {
		for _, m := range []float64{0, 0.25, 0.7, 1, 1.5} {
			amp := DeriveAm(ac, m)
			if got := DeriveM(ac, amp); math.Abs(got-m) > 1e-12 {
				t.Fatalf("DeriveM(%v, DeriveAm(%v, %v)) = %v", ac, ac, m, got)
			}
		}
	}
	if DeriveM(0, 1) != 0 {
		t.Fatal("DeriveM with zero carrier must be 0")
	}
}

func TestFormatTHD(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00 %"},
		{3.14159, "3.14 %"},
		{99.994, "99.99 %"},
		{100, ">100%"},
		{250, ">100%"},
		{math.Inf(1), ">100%"},
	}
	for _, tt := range tests {
		if got := FormatTHD(tt.in); got != tt.want {
			t.Fatalf("FormatTHD(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInsightPriority(t *testing.T) {
	base := InsightInput{M: 0.7, Mode: am.DSBFC, Demod: am.Envelope, SNRDb: 50}

	tests := []struct {
		name   string
		mutate func(*InsightInput)
		want   string
	}{
		{"ideal", func(*InsightInput) {}, "Ideal"},
		{"low snr", func(in *InsightInput) { in.SNRDb = 10 }, "Low SNR"},
		{"phase error beats low snr", func(in *InsightInput) {
			in.SNRDb = 10
			in.Demod = am.Coherent
			in.PhaseErrorDeg = -30
		}, "phase error of -30°"},
		{"small phase error ignored", func(in *InsightInput) {
			in.Demod = am.Coherent
			in.PhaseErrorDeg = 5
		}, "Ideal"},
		{"phase error on envelope ignored", func(in *InsightInput) { in.PhaseErrorDeg = 45 }, "Ideal"},
		{"dsb-sc beats phase error", func(in *InsightInput) {
			in.Mode = am.DSBSC
			in.Demod = am.Coherent
			in.PhaseErrorDeg = 45
		}, "DSB-SC"},
		{"overmodulation beats everything", func(in *InsightInput) {
			in.M = 1.2
			in.Mode = am.DSBSC
			in.SNRDb = 0
			in.THDPct = 12.345
		}, "THD: 12.3%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			if got := Insight(in); !strings.Contains(got, tt.want) {
				t.Fatalf("Insight() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}
