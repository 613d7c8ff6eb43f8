package am

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Modulate combines msg with carrier into an AM signal.
//
//	DSBFC: (ac + msg) · carrier/ac
//	DSBSC: msg · carrier/ac
//
// carrier must have been generated with amplitude ac; the division only
// normalizes it back to a unit cosine. msg and carrier must have equal
// length.
func Modulate(msg, carrier []float64, ac float64, mode Mode) ([]float64, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	if ac <= 0 || math.IsNaN(ac) || math.IsInf(ac, 0) {
		return nil, fmt.Errorf("modulate carrier amplitude must be > 0 and finite: %f", ac)
	}
	if len(msg) != len(carrier) {
		return nil, fmt.Errorf("modulate length mismatch: message %d, carrier %d", len(msg), len(carrier))
	}

	out := make([]float64, len(msg))
	if len(msg) == 0 {
		return out, nil
	}

	unit := make([]float64, len(carrier))
	vecmath.ScaleBlock(unit, carrier, 1/ac)

	switch mode {
	case DSBFC:
		for i, v := range msg {
			out[i] = ac + v
		}
		vecmath.MulBlockInPlace(out, unit)
	case DSBSC:
		vecmath.MulBlock(out, msg, unit)
	}

	return out, nil
}
