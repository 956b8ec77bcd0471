package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Capability    string   // capability name to discover implementations of
	ServiceRoots  []string // search roots carrying services/<capability> files
	ManifestsPath string   // directory of component manifest .hcl files, optional

	LogFormat   string
	LogLevel    string
	WorkerCount int
	Load        bool // instantiate present implementations after discovery
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Capability == "" {
		return nil, errors.New("Capability is a required configuration field and cannot be empty")
	}
	if len(cfg.ServiceRoots) == 0 {
		return nil, errors.New("at least one service root is required")
	}

	return &cfg, nil
}
