// Package config loads graphrun settings and jobs.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/lvlgraph/internal/runner"
)

// Config is the full graphrun configuration.
type Config struct {
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
	Workers int           `koanf:"workers"`
	Timeout time.Duration `koanf:"timeout"` // per job, 0 disables
	Jobs    []runner.Job  `koanf:"jobs"`
}

// LogConfig - logger settings.
type LogConfig struct {
	Level      string `koanf:"level"`  // debug, info, warn, error
	Format     string `koanf:"format"` // text, json
	File       string `koanf:"file"`   // empty logs to stderr
	MaxSize    int    `koanf:"max_size"`
	MaxBackups int    `koanf:"max_backups"`
}

// MetricsConfig - Prometheus textfile output.
type MetricsConfig struct {
	File string `koanf:"file"` // empty disables
}

// Validate collects every problem into one error.
func (c *Config) Validate() error {
	var errs []string

	if c.Workers < 1 {
		errs = append(errs, fmt.Sprintf("workers must be at least 1, got %d", c.Workers))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("timeout must be non-negative, got %s", c.Timeout))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %s", c.Log.Level))
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Log.Format)] {
		errs = append(errs, fmt.Sprintf("log.format must be one of: text, json, got %s", c.Log.Format))
	}

	names := make(map[string]bool, len(c.Jobs))
	for i, j := range c.Jobs {
		if j.Name == "" {
			errs = append(errs, fmt.Sprintf("jobs[%d].name is required", i))
		} else if names[j.Name] {
			errs = append(errs, fmt.Sprintf("jobs[%d].name %q is duplicated", i, j.Name))
		}
		names[j.Name] = true
		if err := j.Validate(); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}
