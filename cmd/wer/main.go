// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/wer-build/wer/cmd/wer/commands"
	"github.com/wer-build/wer/pkg/runner"
)

// Version information (set via ldflags during build)
var version = "dev"

// buildTimestamp prefers the VCS commit time embedded by the toolchain and
// falls back to the binary's modification time.
func buildTimestamp() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return "unknown"
}

// exitCode maps a command error to the process exit status. A subprocess
// that exited non-zero hands its own code through.
func exitCode(err error) int {
	var exitErr *runner.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}

func main() {
	// Interrupts cancel the context, which kills a running cmake or vcpkg.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := commands.Execute(ctx, version, buildTimestamp())
	stop()
	if err != nil {
		os.Exit(exitCode(err))
	}
}
