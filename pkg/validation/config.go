package validation

import (
	"fmt"

	"github.com/iwvelando/gbm-sim/pkg/gbm"
)

// ValidateDiscretization checks the hard preconditions on a run's
// discretization: the step count must be at least one and the horizon
// strictly positive. These are never clamped or coerced.
func ValidateDiscretization(runName string, horizon float64, steps int) error {
	if steps < 1 {
		return fmt.Errorf("run '%s': %w: got %d", runName, gbm.ErrInvalidSteps, steps)
	}
	if horizon <= 0 {
		return fmt.Errorf("run '%s': %w: got %g", runName, gbm.ErrInvalidHorizon, horizon)
	}
	return nil
}

// ValidateSchemes checks every scheme name in a run against the
// registered set. An empty list is valid and means the default schemes.
func ValidateSchemes(runName string, schemeNames []string) error {
	registered := make(map[string]bool)
	for _, name := range gbm.SchemeNames() {
		registered[name] = true
	}

	for _, name := range schemeNames {
		if !registered[name] {
			return fmt.Errorf("run '%s': %w: %q", runName, gbm.ErrUnknownScheme, name)
		}
	}
	return nil
}

// ValidateProcess inspects the process parameters and returns warnings
// for degenerate but computable configurations. A non-positive initial
// value is a caller responsibility rather than a hard error, matching
// the permissive contract of the model.
func ValidateProcess(params gbm.ProcessParameters) []string {
	var warnings []string

	if params.InitialValue <= 0 {
		warnings = append(warnings, fmt.Sprintf(
			"Initial value %g is not positive - GBM is mathematically degenerate for Y(0) <= 0",
			params.InitialValue))
	}

	if params.Diffusion == 0 {
		warnings = append(warnings, "Diffusion is zero - all schemes reduce to deterministic exponential growth")
	}

	return warnings
}
