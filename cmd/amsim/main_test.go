package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-am/dsp/am"
	"github.com/cwbudde/algo-am/dsp/signal"
	"github.com/cwbudde/algo-am/sim"
)

// fakeFlags stands in for *cli.Context; only keys present are "set".
type fakeFlags map[string]any

func (f fakeFlags) IsSet(name string) bool { _, ok := f[name]; return ok }

func (f fakeFlags) String(name string) string {
	s, _ := f[name].(string)
	return s
}

func (f fakeFlags) Float64(name string) float64 {
	v, _ := f[name].(float64)
	return v
}

func TestParamsFromFlagsDefaults(t *testing.T) {
	p, err := paramsFromFlags(fakeFlags{})
	require.NoError(t, err)
	require.Equal(t, sim.DefaultParams(), p)
}

func TestParamsFromFlags(t *testing.T) {
	p, err := paramsFromFlags(fakeFlags{
		"fc":    "100k",
		"fm":    "1k",
		"ac":    2.0,
		"m":     0.5,
		"shape": "square",
		"mode":  "dsbsc",
		"demod": "coherent",
		"phase": 12.0,
		"snr":   20.0,
	})
	require.NoError(t, err)

	require.InDelta(t, 100e3, p.CarrierFreq, 1e-9)
	require.InDelta(t, 1e3, p.MessageFreq, 1e-9)
	require.InDelta(t, 2.0, p.CarrierAmplitude(), 1e-12)
	require.InDelta(t, 0.5, p.ModIndex(), 1e-12)
	require.InDelta(t, 1.0, p.MessageAmplitude(), 1e-12)
	require.Equal(t, signal.Square, p.Shape)
	require.Equal(t, am.DSBSC, p.Mode)
	require.Equal(t, am.Coherent, p.Demod)
	require.InDelta(t, 12.0, p.PhaseErrorDeg, 0)
	require.InDelta(t, 20.0, p.SNRDb, 0)
	require.InDelta(t, sim.DefaultFFTSpan(signal.Square, 1e3), p.FFTSpan, 1e-9)
}

func TestParamsFromFlagsMessageAmplitudeWins(t *testing.T) {
	p, err := paramsFromFlags(fakeFlags{"am": 0.25, "m": 0.9})
	require.NoError(t, err)
	require.InDelta(t, 0.25, p.ModIndex(), 1e-12)
}

func TestParamsFromFlagsExplicitSpan(t *testing.T) {
	p, err := paramsFromFlags(fakeFlags{"fm": "2k", "fft-span": "50k", "fft-center": "12k"})
	require.NoError(t, err)
	require.InDelta(t, 50e3, p.FFTSpan, 1e-9)
	require.InDelta(t, 12e3, p.FFTCenter, 1e-9)
}

func TestParamsFromFlagsConfigOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("carrier_freq: 50k\nsnr_db: 5\n"), 0o600))

	p, err := paramsFromFlags(fakeFlags{"config": path, "snr": 25.0})
	require.NoError(t, err)
	require.InDelta(t, 50e3, p.CarrierFreq, 1e-9)
	require.InDelta(t, 25.0, p.SNRDb, 0)
}

func TestParamsFromFlagsErrors(t *testing.T) {
	for _, flags := range []fakeFlags{
		{"fc": "fast"},
		{"fm": ""},
		{"shape": "triangle"},
		{"mode": "ssb"},
		{"demod": "ratio"},
		{"fft-span": "wide"},
		{"config": filepath.Join(t.TempDir(), "missing.yaml")},
	} {
		_, err := paramsFromFlags(flags)
		require.Error(t, err, "flags %v", flags)
	}
}

func TestFormatHz(t *testing.T) {
	require.Equal(t, "500 Hz", formatHz(500))
	require.Equal(t, "10 kHz", formatHz(10e3))
	require.Equal(t, "1.5 MHz", formatHz(1.5e6))
	require.Equal(t, "-2 kHz", formatHz(-2e3))
}

func TestReport(t *testing.T) {
	color.NoColor = true

	p := sim.DefaultParams().WithModIndex(1.2)
	res, err := sim.Run(p, sim.WithNoiseSeed(1), sim.WithDuration(0.2))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report(&buf, res))
	out := buf.String()

	for _, want := range []string{"DSB-FC", "Overmodulation", "USB", "LSB", "THD", res.Metrics.Insight} {
		require.True(t, strings.Contains(out, want), "report lacks %q:\n%s", want, out)
	}
}
