// SPDX-License-Identifier: Apache-2.0
package command

import (
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Variables wer overlays on the generator's environment.
const (
	EnvExportCompileCommands = "CMAKE_EXPORT_COMPILE_COMMANDS"
	EnvCC                    = "CC"
	EnvCXX                   = "CXX"
)

// setenv sets key in the environment list, replacing every existing entry for it.
func setenv(env []string, key, value string) []string {
	prefix := key + "="
	out := env[:0]
	for _, e := range env {
		if !strings.HasPrefix(e, prefix) {
			out = append(out, e)
		}
	}
	return append(out, prefix+value)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LogEnvironmentTrace logs the descriptor's overlay at trace level, redacting sensitive values.
func LogEnvironmentTrace(d *Descriptor, logger hclog.Logger) {
	if !logger.IsTrace() || len(d.Env) == 0 {
		return
	}

	logger.Trace("🌍 Environment overlay passed to subprocess:", "command", d.Name)
	for _, key := range sortedKeys(d.Env) {
		value := d.Env[key]
		if isSensitiveKey(key) {
			value = "***"
		}
		logger.Trace("  →", "key", key, "value", value)
	}
}

// isSensitiveKey checks if an environment variable key is sensitive and should be redacted in logs.
func isSensitiveKey(key string) bool {
	upper := strings.ToUpper(key)
	for _, marker := range []string{"TOKEN", "SECRET", "PASSWORD", "API_KEY"} {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}
