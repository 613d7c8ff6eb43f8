package main

import (
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/cwbudde/algo-am/measure/modulation"
	"github.com/cwbudde/algo-am/sim"
)

var statusColors = map[string]color.Attribute{
	"blue":  color.FgBlue,
	"green": color.FgGreen,
	"red":   color.FgRed,
}

func statusText(s modulation.Status) string {
	attr, ok := statusColors[s.Color()]
	if !ok {
		return s.String()
	}
	return color.New(attr, color.Bold).Sprint(s.String())
}

// formatHz renders f with an engineering prefix, e.g. "10 kHz".
func formatHz(f float64) string {
	switch a := math.Abs(f); {
	case a >= 1e6:
		return fmt.Sprintf("%.4g MHz", f/1e6)
	case a >= 1e3:
		return fmt.Sprintf("%.4g kHz", f/1e3)
	default:
		return fmt.Sprintf("%.4g Hz", f)
	}
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetAutoWrapText(false)
	return t
}

// report prints parameters, metrics, markers and the insight of res.
func report(w io.Writer, res *sim.Result) error {
	p := res.Params
	lo, hi := p.FFTWindow()

	params := newTable(w, "Parameter", "Value")
	params.AppendBulk([][]string{
		{"Carrier", fmt.Sprintf("%s, Ac = %.3g", formatHz(p.CarrierFreq), p.CarrierAmplitude())},
		{"Message", fmt.Sprintf("%s %s, Am = %.3g", formatHz(p.MessageFreq), p.Shape, p.MessageAmplitude())},
		{"Mode", p.Mode.String()},
		{"Receiver", p.Demod.String()},
		{"Phase error", fmt.Sprintf("%.1f°", p.PhaseErrorDeg)},
		{"SNR", fmt.Sprintf("%.1f dB", p.SNRDb)},
		{"Sample rate", formatHz(res.SampleRate)},
		{"Samples", fmt.Sprint(res.Buffers.Len())},
		{"FFT window", fmt.Sprintf("%s .. %s", formatHz(lo), formatHz(hi))},
	})
	params.Render()

	m := res.Metrics
	metrics := newTable(w, "Metric", "Value")
	metrics.AppendBulk([][]string{
		{"Modulation index", fmt.Sprintf("%.3f", m.ModIndex)},
		{"Status", statusText(m.Status)},
		{"Carrier power", fmt.Sprintf("%.4g W", m.Power.Carrier)},
		{"Sideband power", fmt.Sprintf("%.4g W", m.Power.Sideband)},
		{"Total power", fmt.Sprintf("%.4g W", m.Power.Total)},
		{"Efficiency", fmt.Sprintf("%.2f %%", m.Power.EfficiencyPct)},
		{"Bandwidth", formatHz(m.BandwidthHz)},
		{"THD", modulation.FormatTHD(m.THDPct)},
		{"Correlation", fmt.Sprintf("%.4f", m.Correlation)},
	})
	metrics.Render()

	if markers := res.Markers(); len(markers) > 0 {
		t := newTable(w, "Line", "Frequency", "Bin", "Magnitude", "Level")
		for _, mk := range markers {
			t.Append([]string{
				mk.Label,
				formatHz(mk.Freq),
				fmt.Sprint(mk.Bin),
				fmt.Sprintf("%.4g", mk.MagnitudeLinear),
				fmt.Sprintf("%.1f dB", mk.MagnitudeDB),
			})
		}
		t.Render()
	}

	_, err := fmt.Fprintf(w, "\n%s\n", m.Insight)
	return err
}
