// Package config loads respec settings from .respec.yaml, the environment
// and defaults.
package config

import (
	"errors"
	"fmt"
	"regexp"
)

// Default values applied before the config file and environment are read.
const (
	DefaultParenthesizeMatcherArg = true
	DefaultParallel               = 1
	DefaultReports                = ".respec-reports"
	DefaultRuntimeData            = ""
	DefaultDryRun                 = false
)

// Config is the top-level configuration struct for respec.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	ParenthesizeMatcherArg bool     `mapstructure:"parenthesize_matcher_arg"`
	Parallel               int      `mapstructure:"parallel"`
	Reports                string   `mapstructure:"reports"`
	RuntimeData            string   `mapstructure:"runtime_data"`
	Exclude                []string `mapstructure:"exclude"`
	DryRun                 bool     `mapstructure:"dry_run"`
}

// Sentinel errors for configuration validation.
var (
	// ErrInvalidParallel indicates the worker count is not positive.
	ErrInvalidParallel = errors.New("parallel must be positive")
	// ErrInvalidExclude indicates an exclude pattern is not a valid regular expression.
	ErrInvalidExclude = errors.New("exclude must hold valid regular expressions")
	// ErrEmptyReports indicates the reports directory is empty.
	ErrEmptyReports = errors.New("reports must not be empty")
)

// Validate returns the first invalid setting found.
func (c *Config) Validate() error {
	if c.Parallel < 1 {
		return ErrInvalidParallel
	}

	if c.Reports == "" {
		return ErrEmptyReports
	}

	for _, pattern := range c.Exclude {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidExclude, pattern, err)
		}
	}

	return nil
}
