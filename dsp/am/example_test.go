package am_test

import (
	"fmt"

	"github.com/cwbudde/algo-am/dsp/am"
)

func ExampleModulate() {
	msg := []float64{0.5, 0.25, -0.5}
	carrier := []float64{1, -1, 1}

	fc, _ := am.Modulate(msg, carrier, 1, am.DSBFC)
	sc, _ := am.Modulate(msg, carrier, 1, am.DSBSC)
	fmt.Println(fc)
	fmt.Println(sc)

	// Output:
	// [1.5 -1.25 0.5]
	// [0.5 -0.25 -0.5]
}
