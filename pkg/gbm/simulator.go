package gbm

import (
	"fmt"
	"strings"

	"github.com/iwvelando/gbm-sim/pkg/constants"
)

// Path pairs the time grid with the simulated values. Both sequences
// have steps+1 elements and the first value always equals the initial
// value of the process.
type Path struct {
	Times  []float64
	Values []float64
}

// SchemePath labels a Path with the scheme that produced it.
type SchemePath struct {
	Scheme string
	Path
}

// Simulator generates sample paths for one GBM parameterization. It
// holds the process parameters as a plain field and never mutates them.
type Simulator struct {
	Params ProcessParameters
}

// NewSimulator creates a simulator for the given process parameters.
func NewSimulator(params ProcessParameters) *Simulator {
	return &Simulator{Params: params}
}

// SimulatePath generates a single path over (0, horizon] in steps
// uniform increments using the named scheme. A nil seed draws a fresh
// entropy-seeded sample; a non-nil seed makes the call deterministic.
// Each call constructs its own driver and generator, so concurrent
// calls share no state.
func (s *Simulator) SimulatePath(horizon float64, steps int, scheme string, seed *int64) (Path, error) {
	simulate, ok := schemes[scheme]
	if !ok {
		return Path{}, fmt.Errorf("%w: %q (valid schemes: %s)",
			ErrUnknownScheme, scheme, strings.Join(SchemeNames(), ", "))
	}

	driver, err := NewDriver(horizon, steps, NewRand(seed))
	if err != nil {
		return Path{}, err
	}

	return Path{Times: driver.Times, Values: simulate(s.Params, driver)}, nil
}

// SimulateCompare runs every named scheme against a single shared
// driver sample so the resulting paths are time-aligned and directly
// overlay-comparable. Results preserve the caller's scheme order; an
// empty list runs the default three (exact, euler, milstein). All
// scheme names are validated before the driver is built, so no random
// numbers are drawn for an invalid request.
func (s *Simulator) SimulateCompare(horizon float64, steps int, seed *int64, schemeNames []string) ([]SchemePath, error) {
	if len(schemeNames) == 0 {
		schemeNames = constants.DefaultSchemes()
	}

	for _, name := range schemeNames {
		if _, ok := schemes[name]; !ok {
			return nil, fmt.Errorf("%w: %q (valid schemes: %s)",
				ErrUnknownScheme, name, strings.Join(SchemeNames(), ", "))
		}
	}

	driver, err := NewDriver(horizon, steps, NewRand(seed))
	if err != nil {
		return nil, err
	}

	results := make([]SchemePath, 0, len(schemeNames))
	for _, name := range schemeNames {
		results = append(results, SchemePath{
			Scheme: name,
			Path:   Path{Times: driver.Times, Values: schemes[name](s.Params, driver)},
		})
	}
	return results, nil
}
