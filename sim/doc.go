// Package sim runs the complete AM link simulation.
//
// A validated Params value is turned into a sampling Plan, then Run
// synthesizes the message and carrier, modulates, passes the result through
// a noisy channel, demodulates, and derives the spectrum and metrics. Every
// run returns a fresh Result that callers treat as read-only.
//
// All failures surface as one of three error kinds, each matching a
// sentinel with errors.Is:
//
//	*ValidationError  (ErrValidation)   parameters out of range
//	*FeasibilityError (ErrFeasibility)  required sample rate above MaxSampleRate
//	*ComputationError (ErrComputation)  numeric failure inside a stage
package sim
