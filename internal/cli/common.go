package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/danieljhkim/grapple/internal/config"
	"github.com/danieljhkim/grapple/internal/engine"
	"github.com/danieljhkim/grapple/internal/fsops"
	"github.com/danieljhkim/grapple/internal/gitx"
	"github.com/danieljhkim/grapple/internal/project"
	"github.com/danieljhkim/grapple/internal/scope"
	"github.com/danieljhkim/grapple/internal/store"
)

// maxQuickSlot bounds the slots assignable from the CLI; it matches the
// quick menu size.
const maxQuickSlot = engine.QuickMenuLimit

// newEngine creates a new engine with real implementations of all
// dependencies, configured from the user's config file.
func newEngine() (*engine.Engine, error) {
	// Get default paths
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	// Ensure directories exist
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	cfg, err := config.Load(paths.Config)
	if err != nil {
		return nil, err
	}

	backend, err := project.ForName(cfg.ProjectBackend)
	if err != nil {
		return nil, err
	}

	// Create real implementations
	fs := fsops.NewRealFS()
	resolver := scope.NewResolver(backend, gitx.NewGit(), cfg.SeparateByBranch, func() string {
		return cfg.FallbackName
	})
	fileStore := store.NewFileStore(fs, paths.Marks)

	eng := engine.New(fs, fileStore, resolver)
	eng.Warnf = func(format string, args ...any) {
		PrintWarning(fmt.Sprintf(format, args...))
	}
	return eng, nil
}

// workingDir returns the current directory for scope resolution.
func workingDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return cwd, nil
}

// parseSlot parses a positive slot number argument.
func parseSlot(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid slot number %q", arg)
	}
	return n, nil
}

// parseQuickSlot parses a slot argument restricted to the quick range 1..9.
func parseQuickSlot(arg string) (int, error) {
	n, err := parseSlot(arg)
	if err != nil {
		return 0, err
	}
	if n > maxQuickSlot {
		return 0, fmt.Errorf("slot number must be between 1 and %d", maxQuickSlot)
	}
	return n, nil
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
