// Package config manages grapple configuration and filesystem paths.
//
// Configuration lives in a single YAML file under the data root, which
// defaults to ~/.grapple and can be moved with the GRAPPLE_ROOT environment
// variable. The data root also holds marks/, with one JSON file per scope.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by grapple.
type Paths struct {
	// Root is the base directory for all grapple data (default: ~/.grapple)
	Root string

	// Marks is the directory containing one mark file per scope key
	Marks string

	// Config is the path to the global config file
	Config string
}

// DefaultPaths returns the default paths for grapple.
// Paths can be overridden with environment variables:
// - GRAPPLE_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("GRAPPLE_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".grapple")
	}

	return &Paths{
		Root:   root,
		Marks:  filepath.Join(root, "marks"),
		Config: filepath.Join(root, "config.yaml"),
	}, nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.Marks,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
