// SPDX-License-Identifier: Apache-2.0
// Package runner is the boundary to external processes: it resolves a
// descriptor's executable, starts it with the descriptor's environment and
// passes its exit status back unmodified.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/hashicorp/go-hclog"

	"github.com/wer-build/wer/pkg/command"
)

// ExitError reports a subprocess that ran and exited non-zero.
type ExitError struct {
	Name string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Name, e.Code)
}

// Runner starts descriptors in a working directory.
type Runner struct {
	dir    string
	logger hclog.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	environ  func() []string
	lookPath func(string) (string, error)
}

// New creates a runner that starts processes in dir with the process's own
// stdio and environment. A nil logger discards output.
func New(dir string, logger hclog.Logger) *Runner {
	if dir == "" {
		dir = "."
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Runner{
		dir:      dir,
		logger:   logger,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		environ:  os.Environ,
		lookPath: exec.LookPath,
	}
}

// WithOutput redirects the child's stdout and stderr.
func (r *Runner) WithOutput(stdout, stderr io.Writer) *Runner {
	r.stdout = stdout
	r.stderr = stderr
	return r
}

// Run starts d, waits for it and returns *ExitError when it exits non-zero.
func (r *Runner) Run(ctx context.Context, d *command.Descriptor) error {
	path, err := r.LookPath(d.Name)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, path, d.Args...)
	cmd.Dir = r.dir
	cmd.Env = d.Environ(r.environ())
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	command.LogEnvironmentTrace(d, r.logger)
	r.logger.Info("🚀 Executing command", "path", path)
	r.logger.Debug("🚀 Full command with args", "args", d.Args)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", d.Name, err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			r.logger.Info("⏹️ Process exited", "command", d.Name, "code", exitErr.ExitCode())
			return &ExitError{Name: d.Name, Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("process error: %w", err)
	}

	r.logger.Info("✅ Process completed successfully", "command", d.Name)
	return nil
}
