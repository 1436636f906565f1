package integration

import (
	"testing"
	"time"

	"github.com/iwvelando/gbm-sim/internal/config"
	"github.com/iwvelando/gbm-sim/internal/simulation"
	"github.com/iwvelando/gbm-sim/pkg/gbm"
)

func seedOf(v int64) *int64 {
	return &v
}

// TestLargeGridPerformance checks that simulation cost stays linear in
// the step count: a million-step comparison run across all three
// schemes should complete in seconds on any reasonable machine.
func TestLargeGridPerformance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping performance test in short mode")
	}

	conf := config.Configuration{
		Process: config.ProcessConfig{InitialValue: 100.0, Drift: 0.05, Diffusion: 0.2},
		Runs: []config.Run{
			{
				Name:    "large grid",
				Active:  true,
				Horizon: 1.0,
				Steps:   1_000_000,
				Seed:    seedOf(42),
			},
		},
	}

	start := time.Now()
	results, err := simulation.GetSimulations(nil, conf)
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("GetSimulations() error = %v", err)
	}
	if len(results) != 1 || len(results[0].Paths) != 3 {
		t.Fatalf("unexpected result shape: %+v", results)
	}
	if elapsed > 10*time.Second {
		t.Errorf("million-step comparison took %v, expected well under 10s", elapsed)
	}
	t.Logf("million-step comparison across 3 schemes took %v", elapsed)
}

func BenchmarkSimulatePath(b *testing.B) {
	simulator := gbm.NewSimulator(gbm.NewProcessParameters(100.0, 0.05, 0.2))

	for _, scheme := range gbm.SchemeNames() {
		b.Run(scheme, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := simulator.SimulatePath(1.0, 10_000, scheme, seedOf(42)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSimulateCompare(b *testing.B) {
	simulator := gbm.NewSimulator(gbm.NewProcessParameters(100.0, 0.05, 0.2))

	for i := 0; i < b.N; i++ {
		if _, err := simulator.SimulateCompare(1.0, 10_000, seedOf(42), nil); err != nil {
			b.Fatal(err)
		}
	}
}
