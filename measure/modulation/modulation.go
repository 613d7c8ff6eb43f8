package modulation

import (
	"fmt"

	"github.com/cwbudde/algo-am/dsp/am"
	"github.com/cwbudde/algo-am/dsp/signal"
)

const (
	// FullModulationLow and FullModulationHigh bound the index range reported
	// as 100% modulation.
	FullModulationLow  = 0.99
	FullModulationHigh = 1.01
)

// Status classifies a modulation index.
type Status int

const (
	Undermodulation Status = iota + 1
	FullModulation
	Overmodulation
)

func (s Status) String() string {
	switch s {
	case Undermodulation:
		return "Undermodulation"
	case FullModulation:
		return "100% Modulation"
	case Overmodulation:
		return "Overmodulation"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Color is the display colour conventionally used for s.
func (s Status) Color() string {
	switch s {
	case Undermodulation:
		return "blue"
	case FullModulation:
		return "green"
	case Overmodulation:
		return "red"
	default:
		return "black"
	}
}

// Classify maps m to its Status. The band [0.99, 1.01] counts as full
// modulation.
func Classify(m float64) Status {
	switch {
	case m < FullModulationLow:
		return Undermodulation
	case m <= FullModulationHigh:
		return FullModulation
	default:
		return Overmodulation
	}
}

// Power is the power budget of a transmitted AM signal into a 1 Ω load.
type Power struct {
	Carrier       float64
	Sideband      float64
	Total         float64
	EfficiencyPct float64 // sideband share of total power
}

// CalcPower returns the power budget for carrier amplitude ac and index m.
//
// For DSB-FC the index is capped at 1 since overmodulated peaks are clipped
// by the envelope rather than adding sideband power. DSB-SC carries all of
// its power in the sidebands.
func CalcPower(ac, m float64, mode am.Mode) Power {
	if mode == am.DSBSC {
		p := (ac * m) * (ac * m) / 2
		var eff float64
		if ac*m > 0 {
			eff = 100
		}
		return Power{Sideband: p, Total: p, EfficiencyPct: eff}
	}

	mEff := min(m, 1.0)
	pc := ac * ac / 2
	psb := pc * mEff * mEff / 2
	pt := pc + psb

	var eff float64
	if pt > 0 {
		eff = psb / pt * 100
	}
	return Power{Carrier: pc, Sideband: psb, Total: pt, EfficiencyPct: eff}
}

// Bandwidth returns the occupied bandwidth of a DSB signal carrying the
// message shape at fm: 2·fm, widened to 6·fm for the dual tone whose third
// harmonic sidebands sit at ±3·fm.
func Bandwidth(fm float64, shape signal.Shape) float64 {
	return 2 * float64(shape.HighestHarmonic()) * fm
}

// DeriveAm returns the message amplitude m·ac.
func DeriveAm(ac, m float64) float64 { return m * ac }

// DeriveM returns the modulation index am/ac, or 0 when ac is not positive.
func DeriveM(ac, amplitude float64) float64 {
	if ac <= 0 {
		return 0
	}
	return amplitude / ac
}

// FormatTHD renders a THD percentage for display. Values of 100% and above,
// including +Inf, collapse to ">100%".
func FormatTHD(thdPct float64) string {
	if thdPct < 100 {
		return fmt.Sprintf("%.2f %%", thdPct)
	}
	return ">100%"
}
