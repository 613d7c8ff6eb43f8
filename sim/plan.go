package sim

import (
	"math"

	"github.com/cwbudde/algo-am/dsp/signal"
)

const (
	// MaxSampleRate is the highest sample rate a run may require.
	MaxSampleRate = 10e6
	// MinSampleRate keeps every run at least at audio CD rate.
	MinSampleRate = 44100.0
	// DefaultDuration is the simulated signal length in seconds.
	DefaultDuration = 2.0
	// DefaultSampleCap bounds the number of samples per buffer.
	DefaultSampleCap = 300_000
	// PlotSampleCap bounds the time-plot window.
	PlotSampleCap = 150_000
	// PlotPeriods is the number of message periods in the time-plot window.
	PlotPeriods = 5
)

// Option adjusts a run.
type Option func(*runConfig)

type runConfig struct {
	duration  float64
	sampleCap int
	seed      uint64
	seeded    bool
}

func newRunConfig(opts []Option) runConfig {
	cfg := runConfig{duration: DefaultDuration, sampleCap: DefaultSampleCap}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithNoiseSeed makes the channel noise reproducible.
func WithNoiseSeed(seed uint64) Option {
	return func(c *runConfig) {
		c.seed = seed
		c.seeded = true
	}
}

// WithSampleCap overrides DefaultSampleCap. Non-positive values are ignored.
func WithSampleCap(n int) Option {
	return func(c *runConfig) {
		if n > 0 {
			c.sampleCap = n
		}
	}
}

// WithDuration overrides DefaultDuration. Non-positive or non-finite values
// are ignored.
func WithDuration(seconds float64) Option {
	return func(c *runConfig) {
		if seconds > 0 && !math.IsInf(seconds, 0) {
			c.duration = seconds
		}
	}
}

// RequiredSampleRate returns max(5·fc, 20·fm, 44100), raised to 60·fm for
// the dual tone so its third harmonic is sampled as densely as a plain
// tone's fundamental.
func RequiredSampleRate(fc, fm float64, shape signal.Shape) float64 {
	sr := max(5*fc, 20*fm, MinSampleRate)
	if h := shape.HighestHarmonic(); h > 1 {
		sr = max(sr, 20*float64(h)*fm)
	}
	return sr
}

// Plan fixes the sampling grid of a run.
type Plan struct {
	SampleRate float64
	Duration   float64
	Samples    int
}

// NewPlan validates p and derives its sampling grid. It fails with a
// *ValidationError or *FeasibilityError before any signal is generated.
func NewPlan(p Params, opts ...Option) (Plan, error) {
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}
	return newPlan(p, newRunConfig(opts))
}

func newPlan(p Params, cfg runConfig) (Plan, error) {
	sr := RequiredSampleRate(p.CarrierFreq, p.MessageFreq, p.Shape)
	if sr > MaxSampleRate {
		return Plan{}, &FeasibilityError{
			RequiredRate:        sr,
			MaxRate:             MaxSampleRate,
			SuggestedMaxCarrier: MaxSampleRate / 5,
		}
	}

	return Plan{
		SampleRate: sr,
		Duration:   cfg.duration,
		Samples:    min(int(math.Floor(cfg.duration*sr)), cfg.sampleCap),
	}, nil
}

// PlotSamples returns the length of the time-plot window: five message
// periods, bounded by the buffer length and PlotSampleCap.
func PlotSamples(fm, sampleRate float64, n int) int {
	return max(min(int(PlotPeriods/fm*sampleRate), n, PlotSampleCap), 0)
}
