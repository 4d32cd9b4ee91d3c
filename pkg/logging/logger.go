// SPDX-License-Identifier: Apache-2.0
// Package logging builds the hclog logger shared by every wer component.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// EnvLogLevel selects the level when --log-level is not given.
	EnvLogLevel = "WER_LOG_LEVEL"

	// EnvJSONLog switches to JSON lines when set to "1".
	EnvJSONLog = "WER_JSON_LOG"

	// DefaultLevel keeps normal runs quiet; subprocess output is what users read.
	DefaultLevel = "warn"

	linePrefix = "🔨 "
)

// NewLogger creates a logger writing to output (stderr when nil) at level.
// Plain-text lines are prefixed so they stand apart from cmake and
// clang-format output interleaved on the same terminal.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat := os.Getenv(EnvJSONLog) == "1"
	if !jsonFormat {
		output = NewPrefixWriter(linePrefix, output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// ResolveLevel picks the effective level: the flag value if set, then
// WER_LOG_LEVEL, then DefaultLevel. Unknown names are rejected.
func ResolveLevel(flagValue string) (string, error) {
	level := strings.TrimSpace(flagValue)
	if level == "" {
		level = strings.TrimSpace(os.Getenv(EnvLogLevel))
	}
	if level == "" {
		return DefaultLevel, nil
	}

	level = strings.ToLower(level)
	if hclog.LevelFromString(level) == hclog.NoLevel {
		return "", fmt.Errorf("unknown log level %q (want trace, debug, info, warn, error or off)", level)
	}
	return level, nil
}
