// Package time computes time-domain statistics for simulation buffers.
package time

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-am/dsp/core"
)

// Stats holds time-domain signal statistics.
//
//nolint:revive
type Stats struct {
	Length        int
	DC            float64 // mean
	RMS           float64
	RMS_dB        float64
	Max           float64
	MaxPos        int
	Min           float64
	MinPos        int
	Peak          float64 // max(|max|, |min|)
	Power         float64 // mean of squares
	Power_dB      float64 // 10·log10(Power + 1e-9)
	CrestFactor   float64 // peak / RMS (linear)
	Variance      float64
	ZeroCrossings int
}

// Calculate computes all time-domain statistics of signal. An empty signal
// yields a zero Stats with the dB fields at their floor.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{RMS_dB: core.LinearToDBFloor(0), Power_dB: core.PowerToDBFloor(0)}
	}

	power := MeanPower(signal)
	rms := math.Sqrt(power)
	maxPos := floats.MaxIdx(signal)
	minPos := floats.MinIdx(signal)
	maxVal, minVal := signal[maxPos], signal[minPos]
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))

	var crest float64
	if rms > 0 {
		crest = peak / rms
	}

	mean, variance := stat.PopMeanVariance(signal, nil)

	return Stats{
		Length:        n,
		DC:            mean,
		RMS:           rms,
		RMS_dB:        core.LinearToDBFloor(rms),
		Max:           maxVal,
		MaxPos:        maxPos,
		Min:           minVal,
		MinPos:        minPos,
		Peak:          peak,
		Power:         power,
		Power_dB:      core.PowerToDBFloor(power),
		CrestFactor:   crest,
		Variance:      variance,
		ZeroCrossings: ZeroCrossings(signal),
	}
}

// MeanPower returns mean(x²), or 0 for an empty signal.
func MeanPower(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return floats.Dot(signal, signal) / float64(len(signal))
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	return math.Sqrt(MeanPower(signal))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	var peak float64
	for _, x := range signal {
		peak = math.Max(peak, math.Abs(x))
	}
	return peak
}

// ZeroCrossings returns the number of zero crossings in the signal.
// A crossing is counted when consecutive samples have opposite signs.
func ZeroCrossings(signal []float64) int {
	var count int
	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}
	return count
}

// Correlation returns the Pearson correlation coefficient of a and b over
// their common prefix. It returns 0 when either input is constant or fewer
// than two samples overlap.
func Correlation(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n < 2 {
		return 0
	}
	a, b = a[:n], b[:n]

	_, va := stat.PopMeanVariance(a, nil)
	_, vb := stat.PopMeanVariance(b, nil)
	if va == 0 || vb == 0 {
		return 0
	}

	c := stat.Correlation(a, b, nil)
	if math.IsNaN(c) {
		return 0
	}
	return core.Clamp(c, -1, 1)
}
