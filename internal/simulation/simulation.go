// Package simulation defines the data structures related to a given set
// of simulation runs and includes functions for computing them.
package simulation

import (
	"fmt"

	"github.com/iwvelando/gbm-sim/internal/config"
	"github.com/iwvelando/gbm-sim/pkg/gbm"
	"go.uber.org/zap"
)

// Result holds all simulated paths for one configured run.
type Result struct {
	Name  string
	Paths []gbm.SchemePath
}

// GetSimulations processes every active run in the configuration. Each
// run gets its own generator and driver sample; within a comparison run
// all schemes consume the same sample.
func GetSimulations(logger *zap.Logger, conf config.Configuration) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	simulator := gbm.NewSimulator(conf.ProcessParameters())

	var results []Result
	for _, run := range conf.Runs {
		if !run.Active {
			logger.Debug(fmt.Sprintf("skipping run %s because it is inactive", run.Name),
				zap.String("op", "simulation.GetSimulations"),
			)
			continue
		}

		logger.Debug("simulating run",
			zap.String("op", "simulation.GetSimulations"),
			zap.String("run", run.Name),
			zap.Float64("horizon", run.Horizon),
			zap.Int("steps", run.Steps),
			zap.Strings("schemes", run.Schemes),
			zap.Bool("seeded", run.Seed != nil),
		)

		paths, err := simulateRun(simulator, run)
		if err != nil {
			return results, fmt.Errorf("run '%s': %w", run.Name, err)
		}

		for _, path := range paths {
			logger.Debug("scheme complete",
				zap.String("op", "simulation.GetSimulations"),
				zap.String("run", run.Name),
				zap.String("scheme", path.Scheme),
				zap.Float64("terminalValue", path.Values[len(path.Values)-1]),
			)
		}

		results = append(results, Result{Name: run.Name, Paths: paths})
	}

	return results, nil
}

// simulateRun dispatches a single configured run. Exactly one scheme
// means a single path; anything else is a comparison against one shared
// Brownian sample, with an empty list meaning the default three.
func simulateRun(simulator *gbm.Simulator, run config.Run) ([]gbm.SchemePath, error) {
	if len(run.Schemes) == 1 {
		path, err := simulator.SimulatePath(run.Horizon, run.Steps, run.Schemes[0], run.Seed)
		if err != nil {
			return nil, err
		}
		return []gbm.SchemePath{{Scheme: run.Schemes[0], Path: path}}, nil
	}

	return simulator.SimulateCompare(run.Horizon, run.Steps, run.Seed, run.Schemes)
}
