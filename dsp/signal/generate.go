package signal

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownShape is returned for shape values outside the declared set.
var ErrUnknownShape = errors.New("unknown message shape")

// TimeVector returns uniformly spaced sample instants starting at zero.
//
// The sample count is min(floor(duration*sampleRate), maxSamples) and the
// spacing is always 1/sampleRate, so the endpoint t=duration is excluded and
// a capped vector simply covers a shorter span. maxSamples <= 0 disables
// the cap.
func TimeVector(duration, sampleRate float64, maxSamples int) ([]float64, error) {
	if duration <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return nil, fmt.Errorf("time vector duration must be > 0 and finite: %f", duration)
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("time vector sample rate must be > 0 and finite: %f", sampleRate)
	}

	n := int(math.Floor(duration * sampleRate))
	if maxSamples > 0 && n > maxSamples {
		n = maxSamples
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / sampleRate
	}
	return out, nil
}

// Message synthesizes the message waveform of the given shape at each
// instant of t.
//
//	Sine:     A·cos(2πft)
//	Square:   +A for the first half of each period, -A for the second
//	Sawtooth: rises linearly from -A to +A over each period
//	DualTone: (A/2)·cos(2πft) + (A/2)·cos(2π·3f·t)
func Message(t []float64, amplitude, freq float64, shape Shape) ([]float64, error) {
	if !shape.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(shape))
	}

	out := make([]float64, len(t))
	switch shape {
	case Sine:
		for i, ti := range t {
			out[i] = amplitude * math.Cos(2*math.Pi*freq*ti)
		}
	case Square:
		for i, ti := range t {
			if cycleFraction(freq*ti) < 0.5 {
				out[i] = amplitude
			} else {
				out[i] = -amplitude
			}
		}
	case Sawtooth:
		for i, ti := range t {
			out[i] = amplitude * (2*cycleFraction(freq*ti) - 1)
		}
	case DualTone:
		half := amplitude / 2
		for i, ti := range t {
			w := 2 * math.Pi * freq * ti
			out[i] = half*math.Cos(w) + half*math.Cos(3*w)
		}
	}
	return out, nil
}

// Carrier returns amplitude·cos(2π·freq·t).
func Carrier(t []float64, amplitude, freq float64) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = amplitude * math.Cos(2*math.Pi*freq*ti)
	}
	return out
}

// cycleFraction returns the position inside the current period in [0, 1).
func cycleFraction(cycles float64) float64 {
	f := cycles - math.Floor(cycles)
	if f >= 1 {
		return 0
	}
	return f
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
