package testutil

import (
	"math"
	"math/rand/v2"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicCosine generates a deterministic cosine wave starting at its
// positive peak.
func DeterministicCosine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Cos(step*float64(i))
	}
	return out
}

// Harmonics sums cosines at freqHz·k for k = 1..len(amplitudes), where
// amplitudes[k-1] is the amplitude of harmonic k.
func Harmonics(freqHz, sampleRate float64, amplitudes []float64, length int) []float64 {
	out := make([]float64, length)
	for k, a := range amplitudes {
		if a == 0 {
			continue
		}
		step := 2 * math.Pi * freqHz * float64(k+1) / sampleRate
		for i := range out {
			out[i] += a * math.Cos(step*float64(i))
		}
	}
	return out
}

// DeterministicNoise generates uniform white noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// TimeAxis returns length instants spaced 1/sampleRate apart.
func TimeAxis(sampleRate float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i) / sampleRate
	}
	return out
}
