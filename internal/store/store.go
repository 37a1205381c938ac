// Package store persists a scope's mark set as a flat JSON file.
//
// One file per scope key lives under the marks directory. Load is
// deliberately forgiving: a missing or unparsable file yields an empty set
// so a corrupt file never blocks the user, and the next save simply
// overwrites it. Saves rewrite the whole file through fsops.AtomicWrite.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/danieljhkim/grapple/internal/fsops"
	"github.com/danieljhkim/grapple/internal/marks"
)

// ErrCorrupt indicates an existing mark file failed to parse. Load still
// returns a usable empty set alongside it; callers may surface a warning.
var ErrCorrupt = errors.New("mark file corrupt")

// FileStore reads and writes mark sets on disk.
type FileStore struct {
	fs  fsops.FS
	dir string
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(fs fsops.FS, dir string) *FileStore {
	return &FileStore{
		fs:  fs,
		dir: dir,
	}
}

// Path returns the backing file path for a scope key.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the mark set for key. The returned set is always usable: a
// missing file is an empty set, and a corrupt file is an empty set paired
// with an ErrCorrupt-wrapping error for optional reporting.
func (s *FileStore) Load(key string) (*marks.Set, error) {
	data, err := s.fs.ReadFile(s.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return marks.NewSet(nil), nil
		}
		return marks.NewSet(nil), fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var records []marks.Mark
	if err := json.Unmarshal(data, &records); err != nil {
		return marks.NewSet(nil), fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	return marks.NewSet(records), nil
}

// Save writes the full mark set for key, replacing prior contents.
func (s *FileStore) Save(key string, set *marks.Set) error {
	if err := s.fs.ValidateIdentifier(key); err != nil {
		return fmt.Errorf("invalid scope key: %w", err)
	}

	records := set.Ordered()
	if records == nil {
		records = []marks.Mark{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal mark set: %w", err)
	}
	data = append(data, '\n')

	if err := s.fs.AtomicWrite(s.Path(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write mark file: %w", err)
	}

	return nil
}

// EnsureFile creates the backing file for key as an empty set when absent,
// so external editors always open valid JSON. It returns the file path.
func (s *FileStore) EnsureFile(key string) (string, error) {
	if err := s.fs.ValidateIdentifier(key); err != nil {
		return "", fmt.Errorf("invalid scope key: %w", err)
	}

	path := s.Path(key)
	exists, err := s.fs.Exists(path)
	if err != nil {
		return "", fmt.Errorf("failed to check mark file: %w", err)
	}
	if !exists {
		if err := s.fs.AtomicWrite(path, []byte("[]\n"), 0644); err != nil {
			return "", fmt.Errorf("failed to create mark file: %w", err)
		}
	}

	return path, nil
}
