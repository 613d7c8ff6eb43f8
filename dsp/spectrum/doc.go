// Package spectrum computes one-sided magnitude spectra of real signals.
//
// [Transform] evaluates the exact DFT for any length. Power-of-two sizes run
// on algo-fft plans, lengths with only small prime factors use gonum's
// mixed-radix FFT, and everything else is mapped onto a power-of-two
// convolution with Bluestein's chirp-z algorithm. [Analyze] builds the
// normalized single-sided magnitude view used for plotting and markers.
package spectrum
