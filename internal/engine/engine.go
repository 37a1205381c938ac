// Package engine provides the core operations behind every grapple command.
//
// The engine is the orchestration layer between the CLI and the scope,
// store, and marks packages. Every operation is one complete
// resolve -> load -> mutate -> save cycle against the scope's backing file;
// there is no cross-call cache, so each call observes the latest on-disk
// state. Concurrent writers to the same scope race last-writer-wins, an
// accepted limitation for a single-user tool.
package engine

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/grapple/internal/fsops"
	"github.com/danieljhkim/grapple/internal/marks"
	"github.com/danieljhkim/grapple/internal/scope"
	"github.com/danieljhkim/grapple/internal/store"
)

// QuickMenuLimit bounds the quick menu to a fixed number of slots.
const QuickMenuLimit = 9

// Engine coordinates scope resolution, storage, and mark operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs       fsops.FS
	store    *store.FileStore
	resolver *scope.Resolver

	// Warnf, when set, receives non-fatal degradation notices such as a
	// corrupt mark file being treated as empty.
	Warnf func(format string, args ...any)
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, st *store.FileStore, resolver *scope.Resolver) *Engine {
	return &Engine{
		fs:       fs,
		store:    st,
		resolver: resolver,
	}
}

// AddResult reports the outcome of Add.
type AddResult struct {
	// Number is the slot the path lives under.
	Number int

	// AlreadyPresent is true when the path was marked before this call
	// and nothing changed.
	AlreadyPresent bool
}

// Pick is a navigation target.
type Pick struct {
	Number int
	Path   string
}

// MenuItem is one row of the quick menu.
type MenuItem struct {
	Number int
	Label  string
	Path   string
}

// Scope returns the scope the engine would operate on from cwd.
func (e *Engine) Scope(cwd string) scope.Scope {
	return e.resolver.Resolve(cwd)
}

// Assign pins path to slot number in cwd's scope, replacing any previous
// occupant of that slot.
func (e *Engine) Assign(cwd string, number int, path string) error {
	if number < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, number)
	}

	sc := e.resolver.Resolve(cwd)
	set := e.load(sc)
	set.Assign(number, normalize(sc, cwd, path))
	return e.store.Save(sc.Key, set)
}

// Goto returns the absolute path pinned to slot number. The mark is left
// untouched even when the file has vanished; the caller decides what to
// tell the user.
func (e *Engine) Goto(cwd string, number int) (string, error) {
	sc := e.resolver.Resolve(cwd)
	set := e.load(sc)

	stored, ok := set.Get(number)
	if !ok {
		return "", fmt.Errorf("slot %d: %w", number, ErrSlotEmpty)
	}

	abs := absolute(sc, stored)
	exists, err := e.fs.Exists(abs)
	if err != nil {
		return "", fmt.Errorf("failed to check %s: %w", abs, err)
	}
	if !exists {
		return "", fmt.Errorf("%s: %w", abs, ErrFileMissing)
	}

	return abs, nil
}

// Delete removes the mark in slot number. Deleting an empty slot is a
// no-op; the slot's number is never handed out again.
func (e *Engine) Delete(cwd string, number int) error {
	sc := e.resolver.Resolve(cwd)
	set := e.load(sc)
	set.Remove(number)
	return e.store.Save(sc.Key, set)
}

// Add marks path under the next free slot number. Marking an
// already-marked path reports AlreadyPresent and changes nothing.
func (e *Engine) Add(cwd string, path string) (AddResult, error) {
	sc := e.resolver.Resolve(cwd)
	set := e.load(sc)

	number, err := set.Add(normalize(sc, cwd, path))
	if errors.Is(err, marks.ErrDuplicatePath) {
		return AddResult{Number: number, AlreadyPresent: true}, nil
	}

	if err := e.store.Save(sc.Key, set); err != nil {
		return AddResult{}, err
	}
	return AddResult{Number: number}, nil
}

// Next returns the mark after current in slot order, wrapping cyclically.
// An unknown current lands on the lowest-numbered mark.
func (e *Engine) Next(cwd string, current string) (Pick, error) {
	return e.navigate(cwd, current, marks.Next)
}

// Prev returns the mark before current in slot order, wrapping cyclically.
// An unknown current lands on the highest-numbered mark.
func (e *Engine) Prev(cwd string, current string) (Pick, error) {
	return e.navigate(cwd, current, marks.Prev)
}

func (e *Engine) navigate(cwd, current string, step func(*marks.Set, string) (marks.Mark, bool)) (Pick, error) {
	sc := e.resolver.Resolve(cwd)
	set := e.load(sc)

	if current != "" {
		current = normalize(sc, cwd, current)
	}

	m, ok := step(set, current)
	if !ok {
		return Pick{}, ErrNoMarks
	}
	return Pick{Number: m.Number, Path: absolute(sc, m.Path)}, nil
}

// Menu returns the first limit marks in slot order with disambiguated
// labels. limit <= 0 means QuickMenuLimit.
func (e *Engine) Menu(cwd string, limit int) ([]MenuItem, error) {
	if limit <= 0 {
		limit = QuickMenuLimit
	}

	sc := e.resolver.Resolve(cwd)
	set := e.load(sc)

	ordered := set.Ordered()
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}

	peers := make([]string, len(ordered))
	for i, m := range ordered {
		peers[i] = m.Path
	}

	items := make([]MenuItem, len(ordered))
	for i, m := range ordered {
		items[i] = MenuItem{
			Number: m.Number,
			Label:  marks.Label(m.Path, peers),
			Path:   absolute(sc, m.Path),
		}
	}
	return items, nil
}

// ClearAll replaces the scope's mark set with an empty one.
func (e *Engine) ClearAll(cwd string) error {
	sc := e.resolver.Resolve(cwd)
	return e.store.Save(sc.Key, marks.NewSet(nil))
}

// RawStorePath returns the scope's backing file path for direct editing,
// creating it as an empty set first when absent.
func (e *Engine) RawStorePath(cwd string) (string, error) {
	sc := e.resolver.Resolve(cwd)
	return e.store.EnsureFile(sc.Key)
}

// load fetches the scope's set, downgrading corruption to a warning.
func (e *Engine) load(sc scope.Scope) *marks.Set {
	set, err := e.store.Load(sc.Key)
	if err != nil && e.Warnf != nil {
		e.Warnf("mark file for %s unreadable, starting empty: %v", sc.Key, err)
	}
	return set
}

// normalize cleans path against cwd and stores it relative to the scope
// root when it lives inside the root. Duplicate detection relies on this
// producing one canonical spelling per file.
func normalize(sc scope.Scope, cwd, path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}
	path = filepath.Clean(path)

	if sc.Root != "" {
		if rel, err := filepath.Rel(sc.Root, path); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
	}
	return path
}

// absolute undoes normalize for presentation and file access.
func absolute(sc scope.Scope, stored string) string {
	if filepath.IsAbs(stored) {
		return stored
	}
	if sc.Root != "" {
		return filepath.Join(sc.Root, stored)
	}
	return stored
}
