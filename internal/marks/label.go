package marks

import (
	"path/filepath"
	"strings"
)

// Label formats path for menu display. Paths without a separator are shown
// as-is. Otherwise the basename is used, with the directory appended when
// another peer shares the same basename:
//
//	/x/util.py next to /y/util.py  ->  "util.py at x"
//
// peers is the bounded menu view (at most the first nine ordered marks);
// entries equal to path itself are ignored.
func Label(path string, peers []string) string {
	if !strings.ContainsAny(path, `/\`) {
		return path
	}

	base := filepath.Base(path)

	collision := false
	for _, peer := range peers {
		if peer == path {
			continue
		}
		if filepath.Base(peer) == base {
			collision = true
			break
		}
	}
	if !collision {
		return base
	}

	dir := filepath.Dir(path)
	segments := strings.FieldsFunc(dir, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	return base + " at " + strings.Join(segments, string(filepath.Separator))
}
