// SPDX-License-Identifier: Apache-2.0
package command

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/wer-build/wer/internal/workspace"
	"github.com/wer-build/wer/pkg/config"
	wererrors "github.com/wer-build/wer/pkg/errors"
	"github.com/wer-build/wer/pkg/platform"
	"github.com/wer-build/wer/pkg/toolchain"
	"github.com/wer-build/wer/pkg/utils/shellparse"
)

// Builder assembles descriptors for one project and host.
type Builder struct {
	layout *workspace.Layout
	host   platform.OS
	logger hclog.Logger
}

// NewBuilder creates a builder. Existence checks resolve against the layout root.
func NewBuilder(layout *workspace.Layout, host platform.OS, logger hclog.Logger) *Builder {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Builder{layout: layout, host: host, logger: logger}
}

// GenerateOptions are the caller-supplied inputs of the generate invocation.
type GenerateOptions struct {
	BuildDir string
	VcpkgDir string

	// ExportCompileCommands asks cmake to write compile_commands.json.
	ExportCompileCommands bool
}

// Generate builds the cmake generate invocation:
//
//	cmake -S . -B <build dir> [-G <generator>] [-DCMAKE_TOOLCHAIN_FILE=...] [build.args...]
//
// With vcpkg enabled, a missing vcpkg checkout fails with
// ErrVcpkgNotBootstrapped and no descriptor is produced. CC and CXX are only
// overlaid when resolved; otherwise the inherited toolchain stays in effect.
func (b *Builder) Generate(doc *config.Document, res toolchain.Resolution, opts GenerateOptions) (*Descriptor, error) {
	args := []string{"-S", ".", "-B", opts.BuildDir}

	if res.Generator != "" {
		args = append(args, "-G", res.Generator)
	}

	if res.Vcpkg {
		if !b.layout.DirExists(opts.VcpkgDir) {
			b.logger.Debug("⚠️ vcpkg enabled but not checked out", "dir", b.layout.Path(opts.VcpkgDir))
			return nil, fmt.Errorf("%w: %s does not exist", wererrors.ErrVcpkgNotBootstrapped, opts.VcpkgDir)
		}
		args = append(args, "-DCMAKE_TOOLCHAIN_FILE="+toolchain.VcpkgToolchainFile(opts.VcpkgDir))
	}

	if raw, ok := doc.BuildArgs(); ok {
		extra, err := shellparse.Split(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: build.args: %v", wererrors.ErrConfigMalformed, err)
		}
		args = append(args, extra...)
	}

	env := map[string]string{
		EnvExportCompileCommands: boolString(opts.ExportCompileCommands),
	}
	if res.CC != "" {
		env[EnvCC] = res.CC
	}
	if res.CXX != "" {
		env[EnvCXX] = res.CXX
	}

	d := &Descriptor{Name: CMake, Args: args, Env: env}
	b.logger.Debug("🛠️ Generate command ready", "command", d.String())
	return d, nil
}

func boolString(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
