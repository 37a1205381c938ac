// Package project detects the active project for a working directory.
//
// Detection is pluggable: the git backend walks up to the enclosing
// repository, the dir backend treats the working directory itself as the
// project, and the none backend always reports no project so every mark
// lands in the fallback scope. The backend is chosen by configuration.
package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/grapple/internal/config"
	"github.com/danieljhkim/grapple/internal/gitx"
)

// ErrNoProject indicates no project could be detected for the directory.
var ErrNoProject = errors.New("no project detected")

// Project identifies a detected working context.
type Project struct {
	// Name is the display name of the project (directory basename).
	Name string

	// Root is the absolute path to the project root.
	Root string
}

// Backend detects the active project for a directory.
type Backend interface {
	// Detect returns the project containing cwd, or ErrNoProject.
	Detect(cwd string) (*Project, error)
}

// ForName returns the backend selected by a config value.
func ForName(name string) (Backend, error) {
	switch name {
	case config.BackendGit:
		return &GitBackend{}, nil
	case config.BackendDir:
		return &DirBackend{}, nil
	case config.BackendNone:
		return &NoneBackend{}, nil
	default:
		return nil, fmt.Errorf("unknown project backend: %q", name)
	}
}

// GitBackend detects the enclosing git repository as the project.
type GitBackend struct{}

// Detect walks up from cwd to the repository root.
func (b *GitBackend) Detect(cwd string) (*Project, error) {
	root, err := gitx.Discover(cwd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoProject, err)
	}
	return &Project{Name: filepath.Base(root), Root: root}, nil
}

// DirBackend treats the working directory itself as the project.
type DirBackend struct{}

// Detect returns cwd as the project root.
func (b *DirBackend) Detect(cwd string) (*Project, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoProject, err)
	}
	return &Project{Name: filepath.Base(abs), Root: abs}, nil
}

// NoneBackend never detects a project, forcing the fallback scope.
type NoneBackend struct{}

// Detect always returns ErrNoProject.
func (b *NoneBackend) Detect(cwd string) (*Project, error) {
	return nil, ErrNoProject
}

// FakeBackend implements Backend with predetermined values for testing.
type FakeBackend struct {
	project *Project
	err     error
}

// NewFakeBackend creates a FakeBackend returning project.
func NewFakeBackend(project *Project) *FakeBackend {
	return &FakeBackend{project: project}
}

// SetError sets an error to be returned by Detect.
func (b *FakeBackend) SetError(err error) {
	b.err = err
}

// Detect returns the predetermined project or error.
func (b *FakeBackend) Detect(cwd string) (*Project, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.project == nil {
		return nil, ErrNoProject
	}
	return b.project, nil
}
