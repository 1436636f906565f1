package gbm

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Driver is the shared random driver for a simulation call: a uniform
// time grid and the realized Brownian path sampled on it. Every scheme
// applied within one call consumes the same Driver, which is what makes
// their outputs directly comparable.
type Driver struct {
	// Times is the uniform time grid of steps+1 points, starting at 0
	// and ending exactly at the horizon.
	Times []float64

	// Cumulative holds the realized Brownian path B(t_i) at each of the
	// steps non-initial grid points, i.e. the cumulative sum of the
	// Normal(0, dt) increments. B(0) = 0 is implicit and not stored.
	Cumulative []float64

	dt float64
}

// NewRand returns a pseudo-random generator for one simulation call.
// A non-nil seed yields a deterministic generator: the same
// (horizon, steps, seed) triple reproduces the same Brownian sample
// bit for bit. A nil seed yields a time-seeded generator whose output
// is not reproducible.
func NewRand(seed *int64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(*seed))
}

// NewDriver draws steps independent Normal(0, dt) increments from rng
// with dt = horizon/steps and accumulates them into the realized
// Brownian path. It fails fast on a non-positive horizon or a step
// count below one rather than propagate NaN into the sample.
func NewDriver(horizon float64, steps int, rng *rand.Rand) (*Driver, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}
	if horizon <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidHorizon, horizon)
	}

	dt := horizon / float64(steps)

	times := make([]float64, steps+1)
	for i := range times {
		// Divide rather than accumulate dt so the endpoints are exact.
		times[i] = horizon * float64(i) / float64(steps)
	}

	cumulative := make([]float64, steps)
	stdDev := math.Sqrt(dt)
	sum := 0.0
	for i := range cumulative {
		sum += rng.NormFloat64() * stdDev
		cumulative[i] = sum
	}

	return &Driver{
		Times:      times,
		Cumulative: cumulative,
		dt:         dt,
	}, nil
}

// StepSize returns the uniform grid spacing dt = horizon/steps.
func (d *Driver) StepSize() float64 {
	return d.dt
}

// Steps returns the number of discretization steps N.
func (d *Driver) Steps() int {
	return len(d.Cumulative)
}

// Increments reconstructs the Brownian increments dB_i by
// first-differencing the cumulative sample. The first increment equals
// the first cumulative value, consistent with B(0) = 0; this convention
// determines the statistical behavior of the first recurrence step and
// must match across schemes.
func (d *Driver) Increments() []float64 {
	increments := make([]float64, len(d.Cumulative))
	previous := 0.0
	for i, value := range d.Cumulative {
		increments[i] = value - previous
		previous = value
	}
	return increments
}
