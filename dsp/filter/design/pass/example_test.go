package pass_test

import (
	"fmt"

	"github.com/cwbudde/algo-am/dsp/filter/biquad"
	"github.com/cwbudde/algo-am/dsp/filter/design/pass"
)

func ExampleButterworthLP() {
	sections := pass.ButterworthLP(750, 4, 50000)
	chain := biquad.NewChain(sections)

	fmt.Printf("sections=%d order=%d cutoff=%.2f dB\n",
		len(sections), chain.Order(), chain.MagnitudeDB(750, 50000))

	// Output:
	// sections=2 order=4 cutoff=-3.01 dB
}
