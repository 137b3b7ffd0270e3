// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/collegeroi/collegeroi/internal/state"
	"github.com/collegeroi/collegeroi/pkg/numeric"
)

// Configuration holds all configuration for a collegeroi run: the plan
// inputs plus logging and output options.
type Configuration struct {
	Plan    state.Snapshot `yaml:"plan"`
	Logging LoggingConfig  `yaml:"logging,omitempty"`
	Output  OutputConfig   `yaml:"output,omitempty"`
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

// LoadConfiguration takes a file path as input and loads the
// YAML-formatted configuration there.
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

	return &configuration, nil
}

// LoadConfigurationFromReader loads YAML-formatted configuration from an
// arbitrary reader.
func LoadConfigurationFromReader(reader io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(reader); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration checks the plan for questionable values and
// returns human-readable warnings. Warnings never block a run; the
// results panel shows best-effort numbers regardless.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	for _, fieldErr := range state.Validate(conf.Plan) {
		warnings = append(warnings, fmt.Sprintf("Field '%s': %s", fieldErr.Field, fieldErr.Message))
	}

	if term := numeric.CoerceInt(conf.Plan.Inputs.LoanTerm); term > 30 {
		warnings = append(warnings, fmt.Sprintf("Loan term of %d years is unusually long", term))
	}
	if rate := numeric.Coerce(conf.Plan.Inputs.LoanInterest); rate > 20 {
		warnings = append(warnings, fmt.Sprintf("Loan interest rate of %.1f%% is unusually high", rate))
	}
	if inflation := numeric.Coerce(conf.Plan.InflationRate); inflation > 15 {
		warnings = append(warnings, fmt.Sprintf("Inflation rate of %.1f%% is unusually high", inflation))
	}

	return warnings
}
