package sim

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-am/dsp/am"
	"github.com/cwbudde/algo-am/dsp/channel"
	"github.com/cwbudde/algo-am/dsp/core"
	"github.com/cwbudde/algo-am/dsp/signal"
	"github.com/cwbudde/algo-am/dsp/spectrum"
	"github.com/cwbudde/algo-am/measure/modulation"
	"github.com/cwbudde/algo-am/measure/thd"
	timestats "github.com/cwbudde/algo-am/stats/time"
)

// Pipeline stage names reported by ComputationError.
const (
	StageGenerate   = "generate"
	StageModulate   = "modulate"
	StageChannel    = "channel"
	StageDemodulate = "demodulate"
	StageSpectrum   = "spectrum"
	StageMetrics    = "metrics"
)

// Run executes the whole chain for p.
//
// Validation and feasibility are checked first; a panic or a non-finite
// buffer inside any later stage is returned as a *ComputationError. After
// modulation the receiver branch (channel, demodulator, THD) and the
// spectrum analysis run concurrently; errors are still reported in chain
// order.
func Run(p Params, opts ...Option) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	cfg := newRunConfig(opts)
	plan, err := newPlan(p, cfg)
	if err != nil {
		return nil, err
	}

	c := &chain{p: p, cfg: cfg, sr: plan.SampleRate, duration: plan.Duration}
	if err := c.guard(c.transmit); err != nil {
		return nil, err
	}

	var (
		g                errgroup.Group
		recvErr, specErr error
	)
	g.Go(func() error {
		recvErr = c.guard(c.receive)
		return recvErr
	})
	g.Go(func() error {
		specErr = c.guard(c.analyze)
		return specErr
	})
	if g.Wait() != nil {
		if recvErr != nil {
			return nil, recvErr
		}
		return nil, specErr
	}

	return c.result(), nil
}

// chain carries the buffers of one run between stages. transmit runs
// first; receive and analyze only read what transmit wrote and write
// disjoint fields.
type chain struct {
	p        Params
	cfg      runConfig
	sr       float64
	duration float64

	t, msg, carrier, modulated []float64

	noisy, demod []float64
	thdPct       float64

	spec spectrum.Result
}

// stageFunc runs one or more stages and keeps *stage pointing at the
// current one so panics are attributed correctly.
type stageFunc func(stage *string) error

func (c *chain) guard(fn stageFunc) (err error) {
	stage := StageGenerate
	defer func() {
		if r := recover(); r != nil {
			err = &ComputationError{Stage: stage, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	return fn(&stage)
}

func fail(stage string, err error) error {
	return &ComputationError{Stage: stage, Err: err}
}

func checkFinite(stage, name string, x []float64) error {
	if !core.AllFinite(x) {
		return fail(stage, fmt.Errorf("%w in %s", ErrNonFinite, name))
	}
	return nil
}

func (c *chain) transmit(stage *string) error {
	p := c.p
	*stage = StageGenerate
	t, err := signal.TimeVector(c.duration, c.sr, c.cfg.sampleCap)
	if err != nil {
		return fail(*stage, err)
	}
	msg, err := signal.Message(t, p.MessageAmplitude(), p.MessageFreq, p.Shape)
	if err != nil {
		return fail(*stage, err)
	}
	c.t, c.msg = t, msg
	c.carrier = signal.Carrier(t, p.CarrierAmplitude(), p.CarrierFreq)

	*stage = StageModulate
	c.modulated, err = am.Modulate(msg, c.carrier, p.CarrierAmplitude(), p.Mode)
	if err != nil {
		return fail(*stage, err)
	}
	return checkFinite(*stage, "modulated", c.modulated)
}

func (c *chain) receive(stage *string) error {
	p := c.p
	*stage = StageChannel
	var noiseOpts []channel.Option
	if c.cfg.seeded {
		noiseOpts = append(noiseOpts, channel.WithSeed(c.cfg.seed))
	}
	noisy, err := channel.AddNoise(c.modulated, p.SNRDb, noiseOpts...)
	if err != nil {
		return fail(*stage, err)
	}
	if err := checkFinite(*stage, "noisy", noisy); err != nil {
		return err
	}
	c.noisy = noisy

	*stage = StageDemodulate
	demod, err := am.Demodulate(noisy, c.t, am.Receiver{
		Mode:          p.Demod,
		CarrierFreq:   p.CarrierFreq,
		MessageFreq:   p.MessageFreq,
		SampleRate:    c.sr,
		PhaseErrorDeg: p.PhaseErrorDeg,
	})
	if err != nil {
		return fail(*stage, err)
	}
	if err := checkFinite(*stage, "demodulated", demod); err != nil {
		return err
	}
	c.demod = demod

	*stage = StageMetrics
	c.thdPct, err = thd.Percent(demod, p.MessageFreq, c.sr)
	if err != nil {
		return fail(*stage, err)
	}
	if math.IsNaN(c.thdPct) {
		return fail(*stage, fmt.Errorf("%w in thd", ErrNonFinite))
	}
	return nil
}

func (c *chain) analyze(stage *string) error {
	*stage = StageSpectrum
	spec, err := spectrum.Analyze(c.modulated, c.sr)
	if err != nil {
		return fail(*stage, err)
	}
	if err := checkFinite(*stage, "spectrum", spec.MagnitudeDB); err != nil {
		return err
	}
	c.spec = spec
	return nil
}

func (c *chain) result() *Result {
	p := c.p
	m := p.ModIndex()
	metrics := Metrics{
		ModIndex:    m,
		Status:      modulation.Classify(m),
		Power:       modulation.CalcPower(p.CarrierAmplitude(), m, p.Mode),
		BandwidthHz: modulation.Bandwidth(p.MessageFreq, p.Shape),
		THDPct:      c.thdPct,
		Correlation: timestats.Correlation(c.msg, c.demod),
	}
	metrics.Insight = modulation.Insight(modulation.InsightInput{
		M:             m,
		Mode:          p.Mode,
		Demod:         p.Demod,
		PhaseErrorDeg: p.PhaseErrorDeg,
		SNRDb:         p.SNRDb,
		THDPct:        c.thdPct,
	})

	return &Result{
		Params:     p,
		SampleRate: c.sr,
		Buffers: Buffers{
			Time:        c.t,
			Message:     c.msg,
			Carrier:     c.carrier,
			Modulated:   c.modulated,
			Noisy:       c.noisy,
			Demodulated: c.demod,
		},
		Spectrum:    c.spec,
		Metrics:     metrics,
		PlotSamples: PlotSamples(p.MessageFreq, c.sr, len(c.t)),
	}
}
