// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/iwvelando/gbm-sim/pkg/constants"
	"github.com/iwvelando/gbm-sim/pkg/gbm"
	"github.com/iwvelando/gbm-sim/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for gbm-sim.
type Configuration struct {
	Process ProcessConfig
	Runs    []Run
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// ProcessConfig holds the GBM parameterization shared by all runs.
type ProcessConfig struct {
	InitialValue float64
	Drift        float64
	Diffusion    float64
}

// Run describes one configured simulation: a discretization, an
// optional seed, and the schemes to apply. A single scheme produces one
// path; multiple schemes produce a comparison against one shared
// Brownian sample.
type Run struct {
	Name    string
	Active  bool
	Horizon float64
	Steps   int
	Seed    *int64
	Schemes []string
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()

	return &configuration, nil
}

// ApplyDefaults fills in defaults for fields omitted from the config
// file: an unset horizon or step count takes the package default.
// Explicitly negative values are left alone so validation rejects them.
func (conf *Configuration) ApplyDefaults() {
	for i := range conf.Runs {
		if conf.Runs[i].Horizon == 0 {
			conf.Runs[i].Horizon = constants.DefaultHorizon
		}
		if conf.Runs[i].Steps == 0 {
			conf.Runs[i].Steps = constants.DefaultSteps
		}
	}
}

// ProcessParameters converts the configured process section into the
// simulation package's parameter value.
func (conf *Configuration) ProcessParameters() gbm.ProcessParameters {
	return gbm.NewProcessParameters(
		conf.Process.InitialValue,
		conf.Process.Drift,
		conf.Process.Diffusion,
	)
}

// ValidateConfiguration checks every active run's hard preconditions
// and collects non-fatal warnings about degenerate parameters. Errors
// abort before any simulation; warnings are surfaced to the caller.
func (conf *Configuration) ValidateConfiguration() ([]string, error) {
	warnings := validation.ValidateProcess(conf.ProcessParameters())

	active := 0
	for _, run := range conf.Runs {
		if !run.Active {
			continue
		}
		active++

		if err := validation.ValidateDiscretization(run.Name, run.Horizon, run.Steps); err != nil {
			return warnings, err
		}
		if err := validation.ValidateSchemes(run.Name, run.Schemes); err != nil {
			return warnings, err
		}

		if run.Seed == nil {
			warnings = append(warnings, fmt.Sprintf(
				"Run '%s' has no seed - results will not be reproducible", run.Name))
		}
	}

	if active == 0 {
		warnings = append(warnings, "No active runs configured - nothing to simulate")
	}

	return warnings, nil
}
