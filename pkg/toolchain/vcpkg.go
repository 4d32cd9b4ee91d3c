// SPDX-License-Identifier: Apache-2.0
package toolchain

import (
	"strings"

	"github.com/wer-build/wer/pkg/platform"
)

const (
	// VcpkgRepo is cloned by `wer vcpkg setup`.
	VcpkgRepo = "https://github.com/Microsoft/vcpkg.git"

	// VcpkgDir is the checkout directory, relative to the project root.
	VcpkgDir = "vcpkg"

	// VcpkgInstalledDir is where manifest-mode installs land.
	VcpkgInstalledDir = "vcpkg_installed"

	// toolchainScript is the CMake integration script inside a vcpkg checkout.
	toolchainScript = "scripts/buildsystems/vcpkg.cmake"
)

// hostPath joins relative path elements under "." with the host's separator.
func hostPath(host platform.OS, elems ...string) string {
	sep := "/"
	if host.IsWindows() {
		sep = `\`
	}
	return "." + sep + strings.Join(elems, sep)
}

// ResolveVcpkgBootstrapPath returns the bootstrap script for host.
func ResolveVcpkgBootstrapPath(host platform.OS) string {
	if host.IsWindows() {
		return hostPath(host, VcpkgDir, "bootstrap-vcpkg.bat")
	}
	return hostPath(host, VcpkgDir, "bootstrap-vcpkg.sh")
}

// ResolveVcpkgExecutablePath returns the installed vcpkg executable for host.
func ResolveVcpkgExecutablePath(host platform.OS) string {
	if host.IsWindows() {
		return hostPath(host, VcpkgDir, "vcpkg.exe")
	}
	return hostPath(host, VcpkgDir, "vcpkg")
}

// VcpkgToolchainFile returns the CMake toolchain file inside vcpkgDir.
// CMake accepts forward slashes on every platform.
func VcpkgToolchainFile(vcpkgDir string) string {
	return strings.TrimSuffix(vcpkgDir, "/") + "/" + toolchainScript
}
