// Package gbm generates sample paths of a Geometric Brownian Motion
// process dY = mu*Y dt + sigma*Y dW using an exact closed-form solution,
// the Euler-Maruyama approximation, and the Milstein approximation, all
// driven by a shared discretized Brownian sample.
package gbm

// ProcessParameters holds the parameterization of a GBM process. It is
// a plain value: simulation calls read it and never write it, so copies
// handed to a Simulator are effectively immutable.
type ProcessParameters struct {
	// InitialValue is Y(0). The model is only meaningful for values
	// greater than zero, but this is not enforced; zero or negative
	// initial values are computable and left to the caller.
	InitialValue float64

	// Drift is the deterministic growth-rate parameter mu.
	Drift float64

	// Diffusion is the volatility parameter sigma. A zero diffusion
	// degenerates the process to deterministic exponential growth.
	Diffusion float64
}

// NewProcessParameters constructs the parameterization for a GBM process.
func NewProcessParameters(initialValue, drift, diffusion float64) ProcessParameters {
	return ProcessParameters{
		InitialValue: initialValue,
		Drift:        drift,
		Diffusion:    diffusion,
	}
}
