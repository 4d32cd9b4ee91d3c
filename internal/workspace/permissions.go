// SPDX-License-Identifier: Apache-2.0
package workspace

import (
	"fmt"
	"io/fs"
	"os"
)

// IsExecutable checks if permissions include execute bit for owner.
func IsExecutable(perm fs.FileMode) bool {
	return perm&0o100 != 0
}

// withExecute adds an execute bit for every class that can read.
func withExecute(perm fs.FileMode) fs.FileMode {
	return perm | (perm&0o444)>>2
}

// EnsureExecutable makes rel executable for everyone who can read it.
// Scripts fetched by git keep their mode, but archives and some checkouts
// lose it, which turns the bootstrap into "permission denied".
func (l *Layout) EnsureExecutable(rel string) error {
	if !executableBitsApply {
		return nil
	}

	path := l.Path(rel)
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	perm := info.Mode().Perm()
	if IsExecutable(perm) {
		return nil
	}

	mode := withExecute(perm)
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("failed to make %s executable: %w", path, err)
	}
	l.logger.Debug("🔑 Marked executable", "path", path, "mode", fmt.Sprintf("0%o", mode))
	return nil
}
