// Package am implements double-sideband amplitude modulation and the two
// classic receivers for it.
//
// Modulate forms a full-carrier (DSB-FC) or suppressed-carrier (DSB-SC)
// signal from a message and a carrier generated with the same amplitude.
// Envelope recovers a DSB-FC message by rectification and zero-phase
// lowpass filtering; Coherent mixes with a local oscillator whose phase
// error attenuates the output by cos(φ).
package am
