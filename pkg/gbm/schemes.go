package gbm

import (
	"math"
	"sort"

	"github.com/iwvelando/gbm-sim/pkg/constants"
)

// schemeFunc applies one discretization scheme to a shared driver
// sample and returns the simulated values, one per grid point.
type schemeFunc func(params ProcessParameters, driver *Driver) []float64

// schemes is the closed registry of discretization schemes. Dispatch is
// by explicit lookup; an unregistered name is an invalid argument, never
// a silent fallback.
var schemes = map[string]schemeFunc{
	constants.SchemeExact:    exactScheme,
	constants.SchemeEuler:    eulerScheme,
	constants.SchemeMilstein: milsteinScheme,
}

// SchemeNames returns the registered scheme names in sorted order.
func SchemeNames() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// exactScheme evaluates the closed-form solution
// Y(t_i) = Y0 * exp((mu - sigma^2/2)*t_i + sigma*B(t_i)) at every grid
// point. Given the realized Brownian sample it carries no discretization
// error, which makes it the reference the approximations are judged
// against. The i-th value (i >= 1) pairs t_i with the (i-1)-th
// cumulative Brownian value; t_0 gets Y0 exactly, with no noise term.
func exactScheme(params ProcessParameters, driver *Driver) []float64 {
	values := make([]float64, len(driver.Times))
	values[0] = params.InitialValue

	driftTerm := params.Drift - 0.5*params.Diffusion*params.Diffusion
	for i := 1; i < len(driver.Times); i++ {
		exponent := driftTerm*driver.Times[i] + params.Diffusion*driver.Cumulative[i-1]
		values[i] = params.InitialValue * math.Exp(exponent)
	}
	return values
}

// eulerScheme applies the Euler-Maruyama recurrence
// Y_{i+1} = Y_i + mu*Y_i*dt + sigma*Y_i*dB_i over the reconstructed
// increments. Each step depends on the previous step's output, so this
// is a genuine left fold carrying the running value.
func eulerScheme(params ProcessParameters, driver *Driver) []float64 {
	values := make([]float64, len(driver.Times))
	values[0] = params.InitialValue

	dt := driver.StepSize()
	for i, dB := range driver.Increments() {
		previous := values[i]
		values[i+1] = previous + previous*params.Drift*dt + params.Diffusion*previous*dB
	}
	return values
}

// milsteinScheme applies the Euler-Maruyama recurrence plus the
// second-order correction 0.5*sigma^2*Y_i*(dB_i^2 - dt). The correction
// consumes the same increments as the Euler terms; feeding it an
// independent sample would break comparability.
func milsteinScheme(params ProcessParameters, driver *Driver) []float64 {
	values := make([]float64, len(driver.Times))
	values[0] = params.InitialValue

	dt := driver.StepSize()
	halfDiffusionSq := 0.5 * params.Diffusion * params.Diffusion
	for i, dB := range driver.Increments() {
		previous := values[i]
		values[i+1] = previous + previous*params.Drift*dt + params.Diffusion*previous*dB +
			halfDiffusionSq*previous*(dB*dB-dt)
	}
	return values
}
