// Package config holds the run configuration the CLI and collaborators feed
// into the diagnostic bridge: verbosity selections, log destinations, and
// the runtime environment settings.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for a run.
type Config struct {
	// Workspace is the working directory handed to the external runtime.
	Workspace string `yaml:"workspace" validate:"required"`

	// Overwrite toggles the runtime's output overwrite policy.
	Overwrite bool `yaml:"overwrite"`

	// LogFile is the path of the shared log file.
	LogFile string `yaml:"log_file" validate:"required"`

	// LogLevel is the capture threshold for workflow narration.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=DEBUG INFO WARNING ERROR"`

	// MessageLevel is the capture threshold for relayed tool messages.
	// Empty captures everything.
	MessageLevel string `yaml:"message_level" validate:"omitempty,oneof=NOTSET DEBUG INFO WARNING ERROR"`

	// Console duplicates both log streams to stdout.
	Console bool `yaml:"console"`

	// Severity is the failure threshold wrapped calls run under: 2 aborts
	// on errors only, 1 escalates warnings to failures.
	Severity int `yaml:"severity" validate:"min=1,max=2"`
}

// Default returns the configuration a bare run uses: current directory as
// workspace, warnings and up narrated, every tool message captured, errors
// abort.
func Default() *Config {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return &Config{
		Workspace:    cwd,
		Overwrite:    true,
		LogFile:      "gpbridge.log",
		LogLevel:     "WARNING",
		MessageLevel: "NOTSET",
		Severity:     2,
	}
}

// Load reads a YAML config file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
