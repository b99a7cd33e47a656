package app

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// Output formats for the report.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DescribeTask is the built-in task that writes the configuration report.
const DescribeTask = "describe"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPaths []string // files or directories with .hcl/.yaml/.yml files

	InputRoot  string // "" means assist.DefaultRoot()
	OutputRoot string // "" means assist.DefaultRoot()

	LogFormat    string
	LogLevel     string
	OutputFormat string // "" defers to the describe option block, then text
	Task         string
}

var defaultConfig = Config{
	LogFormat: "text",
	LogLevel:  "info",
	Task:      DescribeTask,
}

// NewConfig fills unset fields with defaults and validates the result.
func NewConfig(cfg Config) (*Config, error) {
	if err := mergo.Merge(&cfg, defaultConfig); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	if len(cfg.ConfigPaths) == 0 {
		return nil, errors.New("at least one config path is required")
	}
	switch cfg.OutputFormat {
	case "", FormatText, FormatJSON:
	default:
		return nil, fmt.Errorf("invalid output format %q: must be '%s' or '%s'", cfg.OutputFormat, FormatText, FormatJSON)
	}

	return &cfg, nil
}
