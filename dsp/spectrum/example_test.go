package spectrum_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-am/dsp/spectrum"
)

func ExampleAnalyze() {
	const (
		sampleRate = 8000.0
		n          = 800
	)
	x := make([]float64, n)
	for i := range x {
		x[i] = 2 * math.Cos(2*math.Pi*1000*float64(i)/sampleRate)
	}

	res, err := spectrum.Analyze(x, sampleRate)
	if err != nil {
		panic(err)
	}
	k := res.Peak()
	fmt.Printf("bins=%d peak=%.0f Hz amplitude=%.2f\n", res.Len(), res.Freq[k], res.MagnitudeLinear[k])

	// Output:
	// bins=400 peak=1000 Hz amplitude=2.00
}

func ExampleNearestBin() {
	freq := []float64{0, 12.5, 25, 37.5}
	fmt.Println(spectrum.NearestBin(freq, 30))

	// Output:
	// 2
}
