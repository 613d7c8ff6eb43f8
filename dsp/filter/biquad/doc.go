// Package biquad provides the second-order IIR runtime used by the
// demodulators.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Sections are cascaded via
// [Chain] for higher-order filters, and [FiltFilt] runs a chain forward and
// backward for zero-phase offline filtering.
//
// Coefficient design lives in dsp/filter/design/pass.
package biquad
