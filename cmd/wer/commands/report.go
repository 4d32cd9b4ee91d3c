// SPDX-License-Identifier: Apache-2.0
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/wer-build/wer/pkg/runner"
)

// hintedError attaches a remediation the user can act on.
type hintedError struct {
	err  error
	hint string
}

func (e *hintedError) Error() string { return e.err.Error() }
func (e *hintedError) Unwrap() error { return e.err }

func withHint(err error, hint string) error {
	return &hintedError{err: err, hint: hint}
}

// report prints err and its hint, if any. A subprocess that exited non-zero
// has already printed its own diagnostics and only sets the exit code.
func report(w io.Writer, err error) {
	var exitErr *runner.ExitError
	if errors.As(err, &exitErr) {
		return
	}

	fmt.Fprintf(w, "Error: %v\n", err)

	var hinted *hintedError
	if errors.As(err, &hinted) {
		c := color.New(color.FgYellow, color.Bold)
		if isTerminal(w) {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		c.Fprintf(w, "💡 %s\n", hinted.hint)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
