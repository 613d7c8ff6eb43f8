// Package channel models the transmission path between modulator and
// demodulator as an additive white Gaussian noise channel calibrated to a
// target signal-to-noise ratio.
package channel
