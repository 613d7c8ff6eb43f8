// Package config reads simulation parameters from YAML files.
//
// Frequencies may be written as plain numbers or in engineering notation:
//
//	carrier_freq: 10k
//	message_freq: 500 Hz
//	fft_span: 1.5M
//
// Unset fields keep the values of sim.DefaultParams, except that fft_span
// follows the configured shape and message frequency.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-am/dsp/am"
	"github.com/cwbudde/algo-am/dsp/signal"
	"github.com/cwbudde/algo-am/sim"
)

var (
	// ErrFrequency is returned for frequency strings that cannot be parsed.
	ErrFrequency = errors.New("config: invalid frequency")
	// ErrAmbiguousAmplitude is returned when both mod_index and
	// message_amplitude are set.
	ErrAmbiguousAmplitude = errors.New("config: set either mod_index or message_amplitude, not both")
)

var suffixes = map[byte]float64{'k': 1e3, 'm': 1e6, 'g': 1e9}

// ParseFrequency converts "10k", "1.5M", "900 kHz" or "440" to Hz. Matching
// is case-insensitive and "m" means mega.
func ParseFrequency(s string) (float64, error) {
	v := strings.TrimSpace(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "hz", ""))
	if v == "" {
		return 0, fmt.Errorf("%w: empty input", ErrFrequency)
	}

	mult := 1.0
	if m, ok := suffixes[v[len(v)-1]]; ok {
		mult = m
		v = strings.TrimSpace(v[:len(v)-1])
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFrequency, s)
	}
	return f * mult, nil
}

// Frequency is a YAML scalar in Hz that also accepts engineering notation.
type Frequency float64

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Frequency) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrFrequency, node.Line)
	}
	v, err := ParseFrequency(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*f = Frequency(v)
	return nil
}

// File mirrors the YAML layout. Pointer fields distinguish "unset" from
// zero.
type File struct {
	CarrierAmplitude *float64     `yaml:"carrier_amplitude"`
	CarrierFreq      *Frequency   `yaml:"carrier_freq"`
	MessageFreq      *Frequency   `yaml:"message_freq"`
	ModIndex         *float64     `yaml:"mod_index"`
	MessageAmplitude *float64     `yaml:"message_amplitude"`
	Shape            signal.Shape `yaml:"shape"`
	Mode             am.Mode      `yaml:"mode"`
	Demod            am.DemodMode `yaml:"demod"`
	PhaseErrorDeg    *float64     `yaml:"phase_error_deg"`
	SNRDb            *float64     `yaml:"snr_db"`
	FFTCenter        *Frequency   `yaml:"fft_center"`
	FFTSpan          *Frequency   `yaml:"fft_span"`
}

// Params overlays the set fields of f on sim.DefaultParams. The result is
// not validated; sim.Run and the runner do that.
func (f File) Params() (sim.Params, error) {
	if f.ModIndex != nil && f.MessageAmplitude != nil {
		return sim.Params{}, ErrAmbiguousAmplitude
	}

	p := sim.DefaultParams()
	if f.CarrierFreq != nil {
		p.CarrierFreq = float64(*f.CarrierFreq)
	}
	if f.MessageFreq != nil {
		p.MessageFreq = float64(*f.MessageFreq)
	}
	if f.Shape != 0 {
		p.Shape = f.Shape
	}
	if f.Mode != 0 {
		p.Mode = f.Mode
	}
	if f.Demod != 0 {
		p.Demod = f.Demod
	}
	if f.PhaseErrorDeg != nil {
		p.PhaseErrorDeg = *f.PhaseErrorDeg
	}
	if f.SNRDb != nil {
		p.SNRDb = *f.SNRDb
	}

	// Ac first so that an explicit m or Am derives from it. Without either,
	// the default modulation index is kept.
	if f.CarrierAmplitude != nil {
		m := p.ModIndex()
		p = p.WithCarrierAmplitude(*f.CarrierAmplitude).WithModIndex(m)
	}
	switch {
	case f.ModIndex != nil:
		p = p.WithModIndex(*f.ModIndex)
	case f.MessageAmplitude != nil:
		p = p.WithMessageAmplitude(*f.MessageAmplitude)
	}

	if f.FFTCenter != nil {
		p.FFTCenter = float64(*f.FFTCenter)
	}
	p.FFTSpan = sim.DefaultFFTSpan(p.Shape, p.MessageFreq)
	if f.FFTSpan != nil {
		p.FFTSpan = float64(*f.FFTSpan)
	}

	return p, nil
}

// Parse decodes YAML data into simulation parameters. Unknown keys are an
// error.
func Parse(data []byte) (sim.Params, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return sim.Params{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return f.Params()
}

// Load reads and parses the YAML file at path.
func Load(path string) (sim.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.Params{}, fmt.Errorf("failed to read config file: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return sim.Params{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
