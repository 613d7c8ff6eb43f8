// Package modulation derives the figures of merit of an AM link from its
// parameters: modulation status, power split and efficiency, occupied
// bandwidth, and a one-line advisory for the operator.
package modulation
