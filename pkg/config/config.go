// SPDX-License-Identifier: Apache-2.0
// Package config loads the wer.toml project document and exposes its keys
// through accessors that make absence explicit.
package config

import (
	"fmt"

	wererrors "github.com/wer-build/wer/pkg/errors"
)

// DefaultPath is the configuration file looked up relative to the working directory.
const DefaultPath = "wer.toml"

// Platform section keys. Unix is the fallback tier for every non-Windows host.
const (
	SectionWindows = "windows"
	SectionLinux   = "linux"
	SectionDarwin  = "darwin"
	SectionUnix    = "unix"
)

// Document is the decoded configuration. Every key is optional at decode
// time; required keys are reported by their accessor when first read.
type Document struct {
	Build   *BuildSection  `toml:"build" validate:"required"`
	Windows *Overlay       `toml:"windows"`
	Linux   *Overlay       `toml:"linux"`
	Darwin  *Overlay       `toml:"darwin"`
	Unix    *Overlay       `toml:"unix"`
	Format  *FormatSection `toml:"format"`
	Vcpkg   *VcpkgSection  `toml:"vcpkg"`

	// Enable is the top-level vcpkg switch used before the [vcpkg] table existed.
	Enable *bool `toml:"enable"`
}

// BuildSection is the [build] table.
type BuildSection struct {
	Dir       *string `toml:"dir" validate:"required,min=1"`
	Generator *string `toml:"generator"`
	Args      *string `toml:"args"`
}

// Overlay is a per-platform table that may override document-level values.
type Overlay struct {
	Generator *string `toml:"generator"`
	CC        *string `toml:"cc"`
	CXX       *string `toml:"cxx"`
}

// FormatSection is the [format] table.
type FormatSection struct {
	Glob    []string `toml:"glob" validate:"omitempty,dive,required"`
	Style   *string  `toml:"style" validate:"omitempty,clangstyle"`
	Exclude []string `toml:"exclude" validate:"omitempty,dive,required"`
}

// VcpkgSection is the [vcpkg] table.
type VcpkgSection struct {
	Enable *bool `toml:"enable"`
}

// value unwraps an optional string. Empty strings count as unset.
func value(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	return *s, true
}

// BuildDir returns build.dir, the generator output directory.
func (d *Document) BuildDir() (string, error) {
	if d.Build == nil {
		return "", fmt.Errorf("%w: build.dir", wererrors.ErrMissingKey)
	}
	dir, ok := value(d.Build.Dir)
	if !ok {
		return "", fmt.Errorf("%w: build.dir", wererrors.ErrMissingKey)
	}
	return dir, nil
}

// BuildGenerator returns the document-level fallback generator.
func (d *Document) BuildGenerator() (string, bool) {
	if d.Build == nil {
		return "", false
	}
	return value(d.Build.Generator)
}

// BuildArgs returns the raw build.args string of extra generator arguments.
func (d *Document) BuildArgs() (string, bool) {
	if d.Build == nil {
		return "", false
	}
	return value(d.Build.Args)
}

// Section returns the platform table with the given key, or nil when the
// document has no such table.
func (d *Document) Section(key string) *Overlay {
	switch key {
	case SectionWindows:
		return d.Windows
	case SectionLinux:
		return d.Linux
	case SectionDarwin:
		return d.Darwin
	case SectionUnix:
		return d.Unix
	}
	return nil
}

// FormatGlobs returns format.glob. The boolean is false when the key, or the
// whole [format] table, is absent or lists no patterns.
func (d *Document) FormatGlobs() ([]string, bool) {
	if d.Format == nil || len(d.Format.Glob) == 0 {
		return nil, false
	}
	return d.Format.Glob, true
}

// FormatStyle returns format.style.
func (d *Document) FormatStyle() (string, bool) {
	if d.Format == nil {
		return "", false
	}
	return value(d.Format.Style)
}

// FormatExcludes returns format.exclude, empty when absent.
func (d *Document) FormatExcludes() []string {
	if d.Format == nil {
		return nil
	}
	return d.Format.Exclude
}

// VcpkgEnabled reports whether vcpkg toolchain integration is on.
// vcpkg.enable wins over the legacy top-level enable key; both absent means off.
func (d *Document) VcpkgEnabled() bool {
	if d.Vcpkg != nil && d.Vcpkg.Enable != nil {
		return *d.Vcpkg.Enable
	}
	if d.Enable != nil {
		return *d.Enable
	}
	return false
}

// GeneratorName returns the overlay's generator.
func (o *Overlay) GeneratorName() (string, bool) {
	if o == nil {
		return "", false
	}
	return value(o.Generator)
}

// CCompiler returns the overlay's C compiler.
func (o *Overlay) CCompiler() (string, bool) {
	if o == nil {
		return "", false
	}
	return value(o.CC)
}

// CXXCompiler returns the overlay's C++ compiler.
func (o *Overlay) CXXCompiler() (string, bool) {
	if o == nil {
		return "", false
	}
	return value(o.CXX)
}
