package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Backend selector values recognized in config.yaml.
const (
	BackendGit  = "git"
	BackendDir  = "dir"
	BackendNone = "none"
)

// DefaultFallbackName is the scope name used when no project is detected.
const DefaultFallbackName = "global"

// Config holds the user-tunable settings read from config.yaml.
type Config struct {
	// SeparateByBranch appends the current git branch to the scope key,
	// giving each branch its own mark set.
	SeparateByBranch bool `yaml:"separate_by_branch"`

	// FallbackName is the scope name used when no project is detected.
	FallbackName string `yaml:"fallback_name"`

	// ProjectBackend selects how the active project is detected
	// ("git", "dir", or "none").
	ProjectBackend string `yaml:"project_backend"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		SeparateByBranch: false,
		FallbackName:     DefaultFallbackName,
		ProjectBackend:   BackendGit,
	}
}

// Load reads the config file at path, applying defaults for any missing
// fields. A missing file is not an error; it yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.FallbackName == "" {
		cfg.FallbackName = DefaultFallbackName
	}
	if cfg.ProjectBackend == "" {
		cfg.ProjectBackend = BackendGit
	}

	return cfg, nil
}
