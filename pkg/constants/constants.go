// Package constants provides shared constants for the gbm-sim application.
package constants

// Scheme name constants. These form the closed set of registered
// discretization schemes; dispatching on any other name is an error.
const (
	// SchemeExact is the closed-form solution of the GBM SDE
	SchemeExact = "exact"

	// SchemeEuler is the Euler-Maruyama first-order approximation
	SchemeEuler = "euler"

	// SchemeMilstein is the Milstein second-order approximation
	SchemeMilstein = "milstein"
)

// Simulation defaults
const (
	// DefaultHorizon is the default time horizon T
	DefaultHorizon = 1.0

	// DefaultSteps is the default number of discretization steps N
	DefaultSteps = 100
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Axis labels shared by the output formatters. These match the labels
// an external plotting collaborator is expected to use.
const (
	// TimeAxisLabel is the label for the time grid column/axis
	TimeAxisLabel = "Time"

	// ValueAxisLabel is the label for the simulated value column/axis
	ValueAxisLabel = "Y(t)"
)

// Validation constants
const (
	// ComparisonTolerance is the tolerance for floating-point comparisons
	ComparisonTolerance = 1e-12
)

// DefaultSchemes returns the default ordered scheme list for comparison
// runs. Returned as a fresh slice so callers may reorder or truncate it.
func DefaultSchemes() []string {
	return []string{SchemeExact, SchemeEuler, SchemeMilstein}
}
