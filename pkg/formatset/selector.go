// SPDX-License-Identifier: Apache-2.0
// Package formatset selects the source files handed to the formatter:
// format.glob expanded recursively, minus format.exclude.
package formatset

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-hclog"

	"github.com/wer-build/wer/pkg/config"
	wererrors "github.com/wer-build/wer/pkg/errors"
)

// Selector expands format globs relative to a project root.
type Selector struct {
	root   string
	logger hclog.Logger
}

// NewSelector creates a selector rooted at root ("." for the working directory).
// A nil logger discards output.
func NewSelector(root string, logger hclog.Logger) *Selector {
	if root == "" {
		root = "."
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Selector{root: root, logger: logger}
}

// Select returns the sorted files matched by format.glob and not excluded by
// format.exclude. It returns ErrNoFormatTargetsConfigured when no globs are
// configured; a configured glob that matches nothing yields an empty slice
// and no error.
func (s *Selector) Select(doc *config.Document) ([]string, error) {
	patterns, ok := doc.FormatGlobs()
	if !ok {
		return nil, wererrors.ErrNoFormatTargetsConfigured
	}

	candidates, err := s.Expand(patterns)
	if err != nil {
		return nil, err
	}

	excl, err := newExclusions(s.root, doc.FormatExcludes())
	if err != nil {
		return nil, err
	}

	selected := make([]string, 0, len(candidates))
	for _, file := range candidates {
		if excl.matches(file) {
			s.logger.Trace("🚫 Excluded from formatting", "path", file)
			continue
		}
		selected = append(selected, file)
	}

	s.logger.Debug("🎯 Selected files for formatting",
		"patterns", len(patterns),
		"candidates", len(candidates),
		"selected", len(selected))

	for i := range selected {
		selected[i] = filepath.FromSlash(selected[i])
	}
	return selected, nil
}

// Expand matches every pattern recursively ("**" crosses directories) and
// returns the deduplicated union as sorted, slash-separated paths. Relative
// patterns resolve against the selector root and produce root-relative paths.
func (s *Selector) Expand(patterns []string) ([]string, error) {
	fsys := os.DirFS(s.root)
	seen := make(map[string]struct{})

	for _, raw := range patterns {
		pattern := normalize(raw)
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid format glob %q: %w", raw, doublestar.ErrBadPattern)
		}

		var matches []string
		var err error
		switch {
		case path.IsAbs(pattern) || filepath.IsAbs(raw):
			matches, err = s.globHost(filepath.FromSlash(pattern), false)
		case pattern == ".." || strings.HasPrefix(pattern, "../"):
			// io/fs paths cannot leave the root, so go through the host filesystem.
			matches, err = s.globHost(filepath.Join(s.root, filepath.FromSlash(pattern)), true)
		default:
			matches, err = doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		}
		if err != nil {
			return nil, fmt.Errorf("failed to expand format glob %q: %w", raw, err)
		}

		s.logger.Trace("🔍 Expanded format glob", "pattern", raw, "matches", len(matches))
		for _, m := range matches {
			seen[m] = struct{}{}
		}
	}

	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}

// globHost expands a host-filesystem pattern. With relative set, matches are
// rewritten relative to the selector root.
func (s *Selector) globHost(pattern string, relative bool) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		if relative {
			if rel, err := filepath.Rel(s.root, m); err == nil {
				m = rel
			}
		}
		matches[i] = filepath.ToSlash(m)
	}
	return matches, nil
}

// normalize converts a configured path or pattern to the cleaned,
// slash-separated form used for matching.
func normalize(p string) string {
	p = filepath.ToSlash(strings.TrimSpace(p))
	p = path.Clean(p)
	return strings.TrimPrefix(p, "./")
}
