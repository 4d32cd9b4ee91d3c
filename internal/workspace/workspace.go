// SPDX-License-Identifier: Apache-2.0
// Package workspace manages the directories wer creates inside a project:
// the generator's build directory, the vcpkg checkout and vcpkg_installed.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// Layout resolves project-relative paths against a project root.
type Layout struct {
	root   string
	logger hclog.Logger
}

// NewLayout creates a layout rooted at root ("." for the working directory).
// A nil logger discards output.
func NewLayout(root string, logger hclog.Logger) *Layout {
	if root == "" {
		root = "."
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Layout{root: root, logger: logger}
}

// Root returns the project root.
func (l *Layout) Root() string {
	return l.root
}

// Path resolves a project-relative path. Absolute paths are returned as-is.
func (l *Layout) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(l.root, filepath.FromSlash(rel))
}

// DirExists reports whether rel names an existing directory.
func (l *Layout) DirExists(rel string) bool {
	info, err := os.Stat(l.Path(rel))
	return err == nil && info.IsDir()
}

// Exists reports whether rel names an existing file or directory.
func (l *Layout) Exists(rel string) bool {
	_, err := os.Stat(l.Path(rel))
	return err == nil
}

// Remove deletes rel and everything below it. It reports false, with no
// error, when there was nothing to remove.
func (l *Layout) Remove(rel string) (bool, error) {
	path := l.Path(rel)
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("🧹 Nothing to remove", "path", path)
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.RemoveAll(path); err != nil {
		return false, fmt.Errorf("failed to remove %s: %w", path, err)
	}
	l.logger.Info("🧹 Removed", "path", path)
	return true, nil
}
