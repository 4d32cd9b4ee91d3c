// SPDX-License-Identifier: Apache-2.0
package runner

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// versionedFallbacks lists distro-suffixed names tried when the plain
// executable is missing from PATH, newest first. Debian and Ubuntu ship
// clang-format only as clang-format-<major> unless an alternative is set.
var versionedFallbacks = map[string][]string{
	"clang-format": {
		"clang-format-20", "clang-format-19", "clang-format-18", "clang-format-17",
		"clang-format-16", "clang-format-15", "clang-format-14",
	},
}

// LookPath resolves an executable the way Run will start it.
//
// Names containing a path separator are project-relative (./vcpkg/vcpkg) and
// resolve to an absolute path under the runner directory without consulting
// PATH. Bare names are looked up in PATH, then through versioned fallbacks
// such as clang-format-18.
func (r *Runner) LookPath(name string) (string, error) {
	if strings.ContainsAny(name, `/\`) {
		path := name
		if !filepath.IsAbs(path) {
			// exec.Cmd resolves a relative Path against Dir, which is r.dir
			// already; an absolute path keeps a relative r.dir from applying twice.
			joined := filepath.Join(r.dir, filepath.FromSlash(strings.ReplaceAll(name, `\`, "/")))
			abs, err := filepath.Abs(joined)
			if err != nil {
				return "", fmt.Errorf("executable %s: %w", name, err)
			}
			path = abs
		}
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("executable %s: %w", name, err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("executable %s is a directory", name)
		}
		r.logger.Debug("✅ Resolved project executable", "input", name, "resolved", path)
		return path, nil
	}

	if resolved, err := r.lookPath(name); err == nil {
		r.logger.Debug("✅ Resolved executable via PATH", "input", name, "resolved", resolved)
		return resolved, nil
	}

	for _, fallback := range versionedFallbacks[name] {
		if resolved, err := r.lookPath(fallback); err == nil {
			r.logger.Debug("✅ Resolved executable via versioned fallback",
				"input", name,
				"fallback", fallback,
				"resolved", resolved)
			return resolved, nil
		}
	}

	r.logger.Debug("⚠️ Could not resolve executable in PATH", "executable", name)
	return "", fmt.Errorf("%s: %w", name, exec.ErrNotFound)
}
