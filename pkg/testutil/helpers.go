// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/gbm-sim/internal/simulation"
	"github.com/iwvelando/gbm-sim/pkg/gbm"
)

// FindRun finds a run by name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindRun(results []simulation.Result, name string) *simulation.Result {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// FindScheme finds a labeled path by scheme name within a result.
// Returns a pointer to the path if found, nil otherwise.
func FindScheme(result *simulation.Result, scheme string) *gbm.SchemePath {
	if result == nil {
		return nil
	}
	for i := range result.Paths {
		if result.Paths[i].Scheme == scheme {
			return &result.Paths[i]
		}
	}
	return nil
}
