package main

import (
	"gopkg.in/urfave/cli.v1"

	"github.com/cwbudde/algo-am/dsp/am"
	"github.com/cwbudde/algo-am/dsp/signal"
	"github.com/cwbudde/algo-am/sim"
	"github.com/cwbudde/algo-am/sim/config"
)

// flagSource is the subset of *cli.Context used to build parameters.
type flagSource interface {
	IsSet(name string) bool
	String(name string) string
	Float64(name string) float64
}

var _ flagSource = (*cli.Context)(nil)

// paramsFromFlags starts from the config file, or sim.DefaultParams, and
// applies every flag the user set explicitly. The flag defaults mirror
// sim.DefaultParams. Changing fm or the shape resets the FFT span to its
// default unless --fft-span is given too.
func paramsFromFlags(ctx flagSource) (sim.Params, error) {
	p := sim.DefaultParams()
	if path := ctx.String(configFlag.Name); path != "" {
		var err error
		if p, err = config.Load(path); err != nil {
			return sim.Params{}, err
		}
	}
	use := ctx.IsSet

	spanDependsChanged := false
	if use(carrierFreqFlag.Name) {
		f, err := config.ParseFrequency(ctx.String(carrierFreqFlag.Name))
		if err != nil {
			return sim.Params{}, err
		}
		p.CarrierFreq = f
	}
	if use(messageFreqFlag.Name) {
		f, err := config.ParseFrequency(ctx.String(messageFreqFlag.Name))
		if err != nil {
			return sim.Params{}, err
		}
		spanDependsChanged = spanDependsChanged || f != p.MessageFreq
		p.MessageFreq = f
	}
	if use(shapeFlag.Name) {
		s, err := signal.ParseShape(ctx.String(shapeFlag.Name))
		if err != nil {
			return sim.Params{}, err
		}
		spanDependsChanged = spanDependsChanged || s != p.Shape
		p.Shape = s
	}
	if use(modeFlag.Name) {
		m, err := am.ParseMode(ctx.String(modeFlag.Name))
		if err != nil {
			return sim.Params{}, err
		}
		p.Mode = m
	}
	if use(demodFlag.Name) {
		d, err := am.ParseDemodMode(ctx.String(demodFlag.Name))
		if err != nil {
			return sim.Params{}, err
		}
		p.Demod = d
	}

	if ctx.IsSet(carrierAmpFlag.Name) {
		m := p.ModIndex()
		p = p.WithCarrierAmplitude(ctx.Float64(carrierAmpFlag.Name)).WithModIndex(m)
	}
	switch {
	case ctx.IsSet(messageAmpFlag.Name):
		p = p.WithMessageAmplitude(ctx.Float64(messageAmpFlag.Name))
	case ctx.IsSet(modIndexFlag.Name):
		p = p.WithModIndex(ctx.Float64(modIndexFlag.Name))
	}
	if ctx.IsSet(phaseFlag.Name) {
		p.PhaseErrorDeg = ctx.Float64(phaseFlag.Name)
	}
	if ctx.IsSet(snrFlag.Name) {
		p.SNRDb = ctx.Float64(snrFlag.Name)
	}

	if ctx.IsSet(fftCenterFlag.Name) {
		f, err := config.ParseFrequency(ctx.String(fftCenterFlag.Name))
		if err != nil {
			return sim.Params{}, err
		}
		p.FFTCenter = f
	}
	switch {
	case ctx.IsSet(fftSpanFlag.Name):
		f, err := config.ParseFrequency(ctx.String(fftSpanFlag.Name))
		if err != nil {
			return sim.Params{}, err
		}
		p.FFTSpan = f
	case spanDependsChanged:
		p.FFTSpan = sim.DefaultFFTSpan(p.Shape, p.MessageFreq)
	}

	return p, nil
}
