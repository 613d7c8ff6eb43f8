package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-am/dsp/signal"
)

func TestRequiredSampleRate(t *testing.T) {
	tests := []struct {
		name  string
		fc    float64
		fm    float64
		shape signal.Shape
		want  float64
	}{
		{"carrier dominated", 10e3, 500, signal.Sine, 50e3},
		{"audio floor", 1e3, 100, signal.Sine, 44100},
		{"message dominated", 1e3, 5e3, signal.Square, 100e3},
		{"dual tone harmonic", 1e3, 1e3, signal.DualTone, 60e3},
		{"dual tone carrier dominated", 10e3, 500, signal.DualTone, 50e3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RequiredSampleRate(tt.fc, tt.fm, tt.shape))
		})
	}
}

func TestNewPlan(t *testing.T) {
	plan, err := NewPlan(DefaultParams())
	require.NoError(t, err)
	require.Equal(t, Plan{SampleRate: 50e3, Duration: 2, Samples: 100_000}, plan)

	p := DefaultParams()
	p.CarrierFreq = 1e6
	plan, err = NewPlan(p)
	require.NoError(t, err)
	require.Equal(t, DefaultSampleCap, plan.Samples)

	plan, err = NewPlan(DefaultParams(), WithSampleCap(1000), WithDuration(0.5))
	require.NoError(t, err)
	require.Equal(t, 1000, plan.Samples)

	plan, err = NewPlan(DefaultParams(), WithDuration(0.01), WithSampleCap(-1))
	require.NoError(t, err)
	require.Equal(t, 500, plan.Samples)
}

func TestNewPlanFeasibility(t *testing.T) {
	p := DefaultParams()
	p.CarrierFreq = 3e6

	_, err := NewPlan(p)
	require.ErrorIs(t, err, ErrFeasibility)

	var ferr *FeasibilityError
	require.True(t, errors.As(err, &ferr))
	require.Equal(t, 15e6, ferr.RequiredRate)
	require.Equal(t, MaxSampleRate, ferr.MaxRate)
	require.Equal(t, 2e6, ferr.SuggestedMaxCarrier)
	require.Contains(t, err.Error(), "2000000")

	p.CarrierFreq = 2e6
	_, err = NewPlan(p)
	require.NoError(t, err)
}

func TestNewPlanValidatesFirst(t *testing.T) {
	p := DefaultParams()
	p.CarrierFreq = 3e6
	p.FFTSpan = 0
	_, err := NewPlan(p)
	require.ErrorIs(t, err, ErrValidation)
}

func TestPlotSamples(t *testing.T) {
	require.Equal(t, 500, PlotSamples(500, 50e3, 100_000))
	require.Equal(t, 100, PlotSamples(500, 50e3, 100))
	require.Equal(t, PlotSampleCap, PlotSamples(1, 10e6, DefaultSampleCap))
}
