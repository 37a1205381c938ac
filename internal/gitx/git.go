// Package gitx queries git for repository information.
//
// The branch lookup shells out to git; callers must treat failures as
// non-fatal since the working directory may not be a repository at all.
package gitx

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultBranchTimeout bounds the branch lookup so a wedged git process
// cannot block scope resolution.
const DefaultBranchTimeout = 2 * time.Second

// BranchProvider answers the current branch name for a directory.
type BranchProvider interface {
	// CurrentBranch returns the branch checked out in dir.
	CurrentBranch(dir string) (string, error)
}

// Git implements BranchProvider by running the git binary.
type Git struct {
	// Timeout bounds each git invocation.
	Timeout time.Duration
}

// NewGit creates a Git with the default timeout.
func NewGit() *Git {
	return &Git{Timeout: DefaultBranchTimeout}
}

// CurrentBranch returns the branch checked out in dir.
func (g *Git) CurrentBranch(dir string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), g.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to read current branch: %w", err)
	}

	return strings.TrimSpace(string(output)), nil
}

// Discover finds the git repository root by walking up from cwd looking for
// a .git entry.
func Discover(cwd string) (string, error) {
	absPath, err := filepath.Abs(cwd)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	current := absPath
	for {
		gitDir := filepath.Join(current, ".git")
		if info, err := os.Stat(gitDir); err == nil {
			// .git can be a directory or a file (for worktrees/submodules)
			if info.IsDir() || info.Mode().IsRegular() {
				return current, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached root directory
			return "", fmt.Errorf("not in a git repository")
		}
		current = parent
	}
}

// FakeBranchProvider implements BranchProvider with predetermined values
// for testing.
type FakeBranchProvider struct {
	branch string
	err    error
}

// NewFakeBranchProvider creates a FakeBranchProvider returning branch.
func NewFakeBranchProvider(branch string) *FakeBranchProvider {
	return &FakeBranchProvider{branch: branch}
}

// SetError sets an error to be returned by CurrentBranch.
func (f *FakeBranchProvider) SetError(err error) {
	f.err = err
}

// CurrentBranch returns the predetermined branch or error.
func (f *FakeBranchProvider) CurrentBranch(dir string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.branch, nil
}
