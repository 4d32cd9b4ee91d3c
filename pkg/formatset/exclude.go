// SPDX-License-Identifier: Apache-2.0
package formatset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// exclusions matches candidate paths against format.exclude. Every entry
// matches literally, and a literal naming a directory also covers the files
// beneath it. Entries containing glob metacharacters additionally match as
// patterns with the same grammar as format.glob: "*" stays within one path
// segment and "**" crosses any number of them, including none.
//
// Absolute entries under the project root also apply in their
// root-relative form, so they exclude files found by relative globs.
type exclusions struct {
	literals map[string]struct{}
	patterns []string
}

func newExclusions(root string, entries []string) (*exclusions, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root %s: %w", root, err)
	}

	e := &exclusions{literals: make(map[string]struct{}, len(entries))}
	for _, raw := range entries {
		entry := normalize(raw)
		if !doublestar.ValidatePattern(entry) {
			return nil, fmt.Errorf("invalid format exclude %q: %w", raw, doublestar.ErrBadPattern)
		}

		forms := []string{entry}
		if filepath.IsAbs(raw) {
			rel, err := filepath.Rel(absRoot, filepath.Clean(raw))
			if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
				forms = append(forms, normalize(rel))
			}
		}

		for _, form := range forms {
			e.literals[form] = struct{}{}
			if strings.ContainsAny(form, "*?[{") {
				e.patterns = append(e.patterns, form)
			}
		}
	}
	return e, nil
}

// matches reports whether file, a slash-separated path, is excluded.
func (e *exclusions) matches(file string) bool {
	file = normalize(file)
	if _, ok := e.literals[file]; ok {
		return true
	}
	for dir := parent(file); dir != ""; dir = parent(dir) {
		if _, ok := e.literals[dir]; ok {
			return true
		}
	}
	for _, pattern := range e.patterns {
		// Patterns were validated in newExclusions, so Match cannot fail.
		if ok, _ := doublestar.Match(pattern, file); ok {
			return true
		}
	}
	return false
}

// parent returns the directory part of a slash path, or "" at the top.
func parent(p string) string {
	i := strings.LastIndex(p, "/")
	if i <= 0 {
		return ""
	}
	return p[:i]
}
