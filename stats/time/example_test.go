package time_test

import (
	"fmt"

	timestats "github.com/cwbudde/algo-am/stats/time"
)

func ExampleCalculate() {
	s := timestats.Calculate([]float64{1, -1, 1, -1})
	fmt.Printf("rms=%.1f zc=%d\n", s.RMS, s.ZeroCrossings)

	// Output:
	// rms=1.0 zc=3
}

func ExampleCorrelation() {
	fmt.Printf("%.2f\n", timestats.Correlation([]float64{0, 1, 0, -1}, []float64{0, 2, 0, -2}))

	// Output:
	// 1.00
}
