// Package pass designs lowpass filter cascades as biquad coefficient sets.
//
// Designs use the bilinear transform with frequency pre-warping, so the
// digital response matches the analog prototype exactly at the cutoff.
package pass
