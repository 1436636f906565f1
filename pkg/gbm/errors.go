package gbm

import "errors"

// Domain errors for simulation operations. All are precondition
// violations raised at the point of the bad call; there is no retry or
// partial result.
var (
	// ErrInvalidSteps indicates a step count below one.
	ErrInvalidSteps = errors.New("gbm: step count must be at least 1")

	// ErrInvalidHorizon indicates a non-positive time horizon.
	ErrInvalidHorizon = errors.New("gbm: time horizon must be positive")

	// ErrUnknownScheme indicates a scheme name outside the registered set.
	ErrUnknownScheme = errors.New("gbm: unknown scheme")
)
