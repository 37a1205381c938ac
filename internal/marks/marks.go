// Package marks implements the per-scope mark set and its operations.
//
// A mark pins one file to a slot number. Numbers are unique within a set and
// are never reused after removal, so a slot keeps its identity for the life
// of a session even as neighbors are deleted. The set is loaded in full,
// mutated in memory, and written back in full by the store.
//
// Key components:
//   - Set: get/assign/remove/add with monotonic number allocation
//   - Next/Prev: cyclic navigation over the ordered set
//   - Label: collision-free display names for the quick menu
package marks

import (
	"errors"
	"sort"
)

// ErrDuplicatePath indicates Add was called with a path already in the set.
var ErrDuplicatePath = errors.New("path already marked")

// Mark pins one file to a slot number within a scope.
type Mark struct {
	// Number is the slot number, unique within a set.
	Number int `json:"harpoon_number"`

	// Path is the marked file, relative to the scope root when one is
	// known and absolute otherwise.
	Path string `json:"filepath"`
}

// Set is the full collection of marks for one scope.
type Set struct {
	marks []Mark
}

// NewSet creates a Set from loaded records. nil means an empty set.
func NewSet(records []Mark) *Set {
	return &Set{marks: records}
}

// Len returns the number of marks in the set.
func (s *Set) Len() int {
	return len(s.marks)
}

// Get returns the path assigned to number.
func (s *Set) Get(number int) (string, bool) {
	for _, m := range s.marks {
		if m.Number == number {
			return m.Path, true
		}
	}
	return "", false
}

// Assign sets path on the slot with the given number, replacing the path of
// an existing entry or appending a new one. Other entries are untouched.
func (s *Set) Assign(number int, path string) {
	for i := range s.marks {
		if s.marks[i].Number == number {
			s.marks[i].Path = path
			return
		}
	}
	s.marks = append(s.marks, Mark{Number: number, Path: path})
}

// Remove deletes the mark with the given number. Removing an absent number
// is a no-op.
func (s *Set) Remove(number int) {
	for i, m := range s.marks {
		if m.Number == number {
			s.marks = append(s.marks[:i], s.marks[i+1:]...)
			return
		}
	}
}

// NextNumber returns the next free slot number: 1 for an empty set,
// otherwise one past the highest number ever still present. Numbers freed
// by Remove are not handed out again.
func (s *Set) NextNumber() int {
	max := 0
	for _, m := range s.marks {
		if m.Number > max {
			max = m.Number
		}
	}
	return max + 1
}

// Add marks path under the next free number. If the exact path is already
// marked it returns that mark's number and ErrDuplicatePath, leaving the
// set unchanged.
func (s *Set) Add(path string) (int, error) {
	for _, m := range s.marks {
		if m.Path == path {
			return m.Number, ErrDuplicatePath
		}
	}

	number := s.NextNumber()
	s.Assign(number, path)
	return number, nil
}

// Ordered returns the marks sorted ascending by number. This is the
// canonical view consumed by navigation, the menu, and the store.
func (s *Set) Ordered() []Mark {
	ordered := make([]Mark, len(s.marks))
	copy(ordered, s.marks)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Number < ordered[j].Number
	})
	return ordered
}
