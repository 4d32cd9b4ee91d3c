// SPDX-License-Identifier: Apache-2.0
package command

import (
	"github.com/wer-build/wer/pkg/toolchain"
)

// Build returns `cmake --build <dir>`.
func (b *Builder) Build(buildDir string) *Descriptor {
	return &Descriptor{Name: CMake, Args: []string{"--build", buildDir}}
}

// Format returns the clang-format invocation for files, which must already
// be in their final order. The style flag is added when style is non-empty
// and -i when inPlace is set.
func (b *Builder) Format(files []string, style string, inPlace bool) *Descriptor {
	args := make([]string, 0, len(files)+2)
	args = append(args, files...)
	if style != "" {
		args = append(args, "-style="+style)
	}
	if inPlace {
		args = append(args, "-i")
	}
	return &Descriptor{Name: ClangFormat, Args: args}
}

// VcpkgClone returns the git clone of the vcpkg repository into dir.
func (b *Builder) VcpkgClone(dir string) *Descriptor {
	return &Descriptor{Name: Git, Args: []string{"clone", toolchain.VcpkgRepo, dir}}
}

// VcpkgBootstrap returns the bootstrap script invocation for the builder's host.
func (b *Builder) VcpkgBootstrap() *Descriptor {
	return &Descriptor{
		Name: toolchain.ResolveVcpkgBootstrapPath(b.host),
		Args: []string{"-disableMetrics"},
	}
}

// VcpkgInstall returns `vcpkg install` for the builder's host.
func (b *Builder) VcpkgInstall() *Descriptor {
	return &Descriptor{
		Name: toolchain.ResolveVcpkgExecutablePath(b.host),
		Args: []string{"install"},
	}
}
