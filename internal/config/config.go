// Package config provides centralized configuration management for the
// application. Process-level settings come from environment variables
// with sensible defaults and are validated on startup to fail fast on
// misconfiguration; per-run lookup jobs are described by YAML job files.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all process-level configuration.
// All settings can be configured via environment variables.
type Config struct {
	Output  OutputConfig
	Batch   BatchConfig
	Sample  SampleConfig
	Logging LoggingConfig
}

// OutputConfig holds result artifact settings.
type OutputConfig struct {
	// Label is the middle segment of generated result file names:
	// {base}_{label}_{timestamp}.xlsx (default: lookup_result)
	Label string `env:"OUTPUT_LABEL" default:"lookup_result"`

	// MaxNameAttempts bounds the collision-suffix search when two runs
	// land in the same clock second (default: 100)
	MaxNameAttempts int `env:"OUTPUT_MAX_NAME_ATTEMPTS" default:"100"`

	// PreviewRows is how many primary rows the "Input Preview" sheet of
	// a result workbook carries (default: 10)
	PreviewRows int `env:"OUTPUT_PREVIEW_ROWS" default:"10"`
}

// BatchConfig holds directory batch processing settings.
type BatchConfig struct {
	// Timeout is the maximum duration for one whole batch run; zero
	// disables the timeout (default: 0s)
	Timeout time.Duration `env:"BATCH_TIMEOUT" default:"0s"`
}

// SampleConfig holds demo-data generation settings.
type SampleConfig struct {
	// Dir is where sample workbooks are written (default: current directory)
	Dir string `env:"SAMPLE_DIR" default:"."`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Output.Label) == "" {
		errs = append(errs, "OUTPUT_LABEL must not be empty")
	}
	if strings.ContainsAny(c.Output.Label, `/\`) {
		errs = append(errs, fmt.Sprintf("OUTPUT_LABEL (%q) must not contain path separators", c.Output.Label))
	}
	if c.Output.MaxNameAttempts <= 0 {
		errs = append(errs, "OUTPUT_MAX_NAME_ATTEMPTS must be positive")
	}
	if c.Output.PreviewRows < 0 {
		errs = append(errs, "OUTPUT_PREVIEW_ROWS must be non-negative")
	}
	if c.Batch.Timeout < 0 {
		errs = append(errs, "BATCH_TIMEOUT must be non-negative")
	}
	if c.Sample.Dir == "" {
		errs = append(errs, "SAMPLE_DIR must not be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a string representation of the config for logging.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("Output: {Label: %q, MaxNameAttempts: %d, PreviewRows: %d}, ",
		c.Output.Label, c.Output.MaxNameAttempts, c.Output.PreviewRows))
	b.WriteString(fmt.Sprintf("Batch: {Timeout: %v}, ", c.Batch.Timeout))
	b.WriteString(fmt.Sprintf("Sample: {Dir: %q}, ", c.Sample.Dir))
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}",
		c.Logging.Level, c.Logging.Format))
	b.WriteString("}")
	return b.String()
}
