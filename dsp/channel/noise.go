package channel

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-am/dsp/core"
	timestats "github.com/cwbudde/algo-am/stats/time"
)

// Option configures AddNoise.
type Option func(*config)

type config struct {
	seed   uint64
	seeded bool
	src    rand.Source
}

// WithSeed makes the injected noise reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithSource draws noise from src. It takes precedence over WithSeed.
func WithSource(src rand.Source) Option {
	return func(c *config) {
		c.src = src
	}
}

func (c config) source() rand.Source {
	switch {
	case c.src != nil:
		return c.src
	case c.seeded:
		return rand.NewPCG(c.seed, c.seed^0x5851f42d4c957f2d)
	default:
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
}

// NoisePower returns the noise power that sets a channel carrying a signal of
// mean power signalPower to snrDb. The signal power is floored by
// core.Epsilon in the dB domain so a silent signal still yields a finite,
// tiny noise power.
func NoisePower(signalPower, snrDb float64) float64 {
	return core.DBPowerToLinear(core.PowerToDBFloor(signalPower) - snrDb)
}

// AddNoise returns signal plus zero-mean Gaussian noise whose power is
// NoisePower(mean(signal²), snrDb). The input is not modified.
func AddNoise(signal []float64, snrDb float64, opts ...Option) ([]float64, error) {
	if math.IsNaN(snrDb) || math.IsInf(snrDb, 0) {
		return nil, fmt.Errorf("channel snr must be finite: %f", snrDb)
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, len(signal))
	if len(signal) == 0 {
		return out, nil
	}

	sigma := math.Sqrt(NoisePower(timestats.MeanPower(signal), snrDb))
	dist := distuv.Normal{Mu: 0, Sigma: sigma, Src: cfg.source()}
	for i, v := range signal {
		out[i] = v + dist.Rand()
	}

	return out, nil
}
