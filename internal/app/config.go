package app

import (
	"errors"
	"time"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // directory or file with .hcl config
	Flow       string // flow to execute

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	ModuleTimeout   time.Duration // zero disables the per-module deadline
	Watch           bool          // reload config on file changes
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	if cfg.Flow == "" {
		return nil, errors.New("Flow is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
