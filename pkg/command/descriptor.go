// SPDX-License-Identifier: Apache-2.0
// Package command synthesizes the invocations wer hands to cmake,
// clang-format, git and vcpkg. Descriptors are built fresh per invocation
// and never persisted.
package command

import (
	"strings"

	"github.com/wer-build/wer/pkg/utils/shellparse"
)

// Executables invoked by wer, looked up on PATH.
const (
	CMake       = "cmake"
	ClangFormat = "clang-format"
	Git         = "git"
)

// Descriptor is one external invocation: an executable, its ordered
// arguments and the variables overlaid on the inherited environment.
type Descriptor struct {
	Name string
	Args []string
	Env  map[string]string
}

// Argv returns the full argument vector including the executable.
func (d *Descriptor) Argv() []string {
	argv := make([]string, 0, len(d.Args)+1)
	argv = append(argv, d.Name)
	return append(argv, d.Args...)
}

// Environ returns base with the descriptor's overlay applied. Overlaid keys
// replace inherited ones; everything else in base is kept in order.
func (d *Descriptor) Environ(base []string) []string {
	env := make([]string, len(base))
	copy(env, base)
	for _, key := range sortedKeys(d.Env) {
		env = setenv(env, key, d.Env[key])
	}
	return env
}

// String renders the invocation as a shell command line, for display.
func (d *Descriptor) String() string {
	return shellparse.Join(d.Argv())
}

// CommandLine is String prefixed with the environment overlay as sorted
// KEY=value assignments, the way a shell would accept it.
func (d *Descriptor) CommandLine() string {
	words := make([]string, 0, len(d.Env)+len(d.Args)+1)
	for _, key := range sortedKeys(d.Env) {
		words = append(words, key+"="+shellparse.Quote(d.Env[key]))
	}
	words = append(words, shellparse.Quote(d.Name))
	for _, arg := range d.Args {
		words = append(words, shellparse.Quote(arg))
	}
	return strings.Join(words, " ")
}
