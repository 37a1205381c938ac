// Package scope derives the storage key for the current working context.
//
// A scope key combines the detected project name with, optionally, the
// current git branch. The key names a flat file, so path separators in
// either component are replaced before use. Resolution never fails: when no
// project is detected the configured fallback name is used, and a failed
// branch lookup degrades to an empty branch component.
package scope

import (
	"strings"

	"github.com/danieljhkim/grapple/internal/gitx"
	"github.com/danieljhkim/grapple/internal/project"
)

const (
	// branchDelimiter joins the project and branch components of a key.
	branchDelimiter = "#"

	// separatorToken replaces path separators in key components.
	separatorToken = "%"

	// noProjectSentinel is a project name some backends report instead of
	// an error when detection comes up empty.
	noProjectSentinel = "none"
)

// Scope identifies one persisted mark set.
type Scope struct {
	// Key is the sanitized identifier naming the backing file.
	Key string

	// Root is the absolute project root, or empty when resolution fell
	// back to the default scope. Mark paths inside Root are stored
	// relative to it.
	Root string
}

// Resolver derives scope keys from pluggable project and branch providers.
type Resolver struct {
	backend          project.Backend
	branches         gitx.BranchProvider
	separateByBranch bool
	fallback         func() string
}

// NewResolver creates a Resolver. fallback supplies the scope name used
// when no project is detected; nil means "global".
func NewResolver(backend project.Backend, branches gitx.BranchProvider, separateByBranch bool, fallback func() string) *Resolver {
	if fallback == nil {
		fallback = func() string { return "global" }
	}
	return &Resolver{
		backend:          backend,
		branches:         branches,
		separateByBranch: separateByBranch,
		fallback:         fallback,
	}
}

// Resolve returns the scope for cwd. It always succeeds: detection and
// branch failures degrade to the fallback scope and an empty branch.
func (r *Resolver) Resolve(cwd string) Scope {
	proj, err := r.backend.Detect(cwd)
	if err != nil || proj == nil || proj.Name == "" || proj.Name == noProjectSentinel {
		return Scope{Key: Sanitize(r.fallback())}
	}

	key := Sanitize(proj.Name)
	if r.separateByBranch {
		branch, err := r.branches.CurrentBranch(proj.Root)
		if err != nil {
			// Branch lookup is best-effort; an empty component keeps
			// the key deterministic.
			branch = ""
		}
		key = key + branchDelimiter + Sanitize(branch)
	}

	return Scope{Key: key, Root: proj.Root}
}

// Sanitize replaces path separators so the result can name a flat file.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "/", separatorToken)
	return strings.ReplaceAll(s, "\\", separatorToken)
}
