// SPDX-License-Identifier: Apache-2.0
// Package platform describes the host operating system that toolchain
// resolution is evaluated against.
package platform

import (
	"fmt"
	"runtime"
	"strings"

	wererrors "github.com/wer-build/wer/pkg/errors"
)

// OS identifies a host operating system family.
type OS int

const (
	// Other is any operating system without a dedicated overlay section.
	Other OS = iota
	Windows
	Linux
	Darwin
)

// String returns the GOOS-style name of the platform.
func (o OS) String() string {
	switch o {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	case Darwin:
		return "darwin"
	default:
		return "other"
	}
}

// MarshalText renders the platform by name in JSON and YAML reports.
func (o OS) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// IsWindows reports whether the platform uses Windows path and script conventions.
func (o OS) IsWindows() bool {
	return o == Windows
}

// FromGOOS maps a runtime.GOOS value onto a platform. Unknown values map to Other.
func FromGOOS(goos string) OS {
	switch goos {
	case "windows":
		return Windows
	case "linux":
		return Linux
	case "darwin":
		return Darwin
	default:
		return Other
	}
}

// Current returns the platform the process is running on.
func Current() OS {
	return FromGOOS(runtime.GOOS)
}

// Parse parses a user-supplied platform name. It accepts the GOOS spellings
// plus "macos" and "unix" (an alias for Other).
func Parse(name string) (OS, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "windows", "win":
		return Windows, nil
	case "linux":
		return Linux, nil
	case "darwin", "macos":
		return Darwin, nil
	case "other", "unix":
		return Other, nil
	}
	return Other, fmt.Errorf("%w: %q", wererrors.ErrUnknownPlatform, name)
}
