package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	// GridPath is an .hcl file or a directory searched for .hcl files.
	GridPath string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	WorkerCount     int
	// Seed, when non-zero, makes the whole run reproducible bit-for-bit.
	Seed uint64
}

// NewConfig validates cfg and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GridPath == "" {
		return nil, errors.New("GridPath is a required configuration field and cannot be empty")
	}
	if cfg.WorkerCount < 1 {
		return nil, errors.New("WorkerCount must be at least 1")
	}

	return &cfg, nil
}
