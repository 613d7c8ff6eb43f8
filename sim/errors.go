package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("sim: invalid parameters")
	// ErrFeasibility matches every *FeasibilityError.
	ErrFeasibility = errors.New("sim: parameters not feasible")
	// ErrComputation matches every *ComputationError.
	ErrComputation = errors.New("sim: computation failed")
	// ErrNonFinite is reported inside a ComputationError when a stage
	// produced NaN or Inf samples.
	ErrNonFinite = errors.New("non-finite samples")
	// ErrAudioUnavailable is returned by Result.Audio when the message
	// frequency lies outside the audible range.
	ErrAudioUnavailable = errors.New("sim: audio unavailable")
)

// ValidationError reports a parameter that violates its constraint.
type ValidationError struct {
	Field      string
	Value      any
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v (must be %s)", e.Field, e.Value, e.Constraint)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// FeasibilityError reports a sample rate the simulator refuses to run at.
type FeasibilityError struct {
	RequiredRate float64
	MaxRate      float64
	// SuggestedMaxCarrier is the highest carrier frequency that fits the
	// cap, MaxRate/5.
	SuggestedMaxCarrier float64
}

func (e *FeasibilityError) Error() string {
	return fmt.Sprintf("carrier frequency too high: required sample rate %.0f Hz exceeds %.0f Hz, try a carrier below %.0f Hz",
		e.RequiredRate, e.MaxRate, e.SuggestedMaxCarrier)
}

func (e *FeasibilityError) Unwrap() error { return ErrFeasibility }

// ComputationError wraps a failure inside one pipeline stage.
type ComputationError struct {
	Stage string
	Err   error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("simulation %s stage: %v", e.Stage, e.Err)
}

func (e *ComputationError) Unwrap() []error { return []error{ErrComputation, e.Err} }
