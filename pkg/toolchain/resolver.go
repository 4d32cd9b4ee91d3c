// SPDX-License-Identifier: Apache-2.0
// Package toolchain derives the generator, compilers and vcpkg paths for a
// host platform from the project configuration.
//
// Precedence differs per field and is deliberate:
//   - generator: the active platform overlay overrides build.generator.
//   - cc / cxx: read from the active overlay only, with no document-level fallback.
package toolchain

import (
	"github.com/hashicorp/go-hclog"

	"github.com/wer-build/wer/pkg/config"
	"github.com/wer-build/wer/pkg/platform"
)

// ResolvePlatformOverlay selects the platform table for host. Windows reads
// [windows] only; Linux and Darwin read their own table and fall back to
// [unix]; any other OS reads [unix]. The returned key names the selected
// table and is empty together with a nil overlay when nothing matched.
func ResolvePlatformOverlay(doc *config.Document, host platform.OS) (*config.Overlay, string) {
	var candidates []string
	switch host {
	case platform.Windows:
		candidates = []string{config.SectionWindows}
	case platform.Linux:
		candidates = []string{config.SectionLinux, config.SectionUnix}
	case platform.Darwin:
		candidates = []string{config.SectionDarwin, config.SectionUnix}
	default:
		candidates = []string{config.SectionUnix}
	}

	for _, key := range candidates {
		if overlay := doc.Section(key); overlay != nil {
			return overlay, key
		}
	}
	return nil, ""
}

// ResolveGenerator returns the overlay's generator when it defines one,
// otherwise build.generator. This is an override, not a merge.
func ResolveGenerator(doc *config.Document, overlay *config.Overlay) (string, bool) {
	if gen, ok := overlay.GeneratorName(); ok {
		return gen, true
	}
	return doc.BuildGenerator()
}

// ResolveCCompiler returns the overlay's cc. There is no document-level fallback.
func ResolveCCompiler(overlay *config.Overlay) (string, bool) {
	return overlay.CCompiler()
}

// ResolveCXXCompiler returns the overlay's cxx. There is no document-level fallback.
func ResolveCXXCompiler(overlay *config.Overlay) (string, bool) {
	return overlay.CXXCompiler()
}

// Resolution is the resolved toolchain for one host. Empty strings mean
// "not configured": the generator picks its default and the inherited CC/CXX stay.
type Resolution struct {
	Host      platform.OS `json:"host" yaml:"host"`
	Overlay   string      `json:"overlay,omitempty" yaml:"overlay,omitempty"`
	Generator string      `json:"generator,omitempty" yaml:"generator,omitempty"`
	CC        string      `json:"cc,omitempty" yaml:"cc,omitempty"`
	CXX       string      `json:"cxx,omitempty" yaml:"cxx,omitempty"`
	Vcpkg     bool        `json:"vcpkg" yaml:"vcpkg"`
}

// Resolver evaluates the resolution functions for a fixed host.
// It holds no state besides its inputs; every call recomputes.
type Resolver struct {
	host   platform.OS
	logger hclog.Logger
}

// NewResolver creates a resolver for host. A nil logger discards output.
func NewResolver(host platform.OS, logger hclog.Logger) *Resolver {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Resolver{host: host, logger: logger}
}

// Host returns the platform the resolver evaluates against.
func (r *Resolver) Host() platform.OS {
	return r.host
}

// Resolve computes the full toolchain resolution for doc.
func (r *Resolver) Resolve(doc *config.Document) Resolution {
	overlay, key := ResolvePlatformOverlay(doc, r.host)

	res := Resolution{
		Host:    r.host,
		Overlay: key,
		Vcpkg:   doc.VcpkgEnabled(),
	}
	res.Generator, _ = ResolveGenerator(doc, overlay)
	res.CC, _ = ResolveCCompiler(overlay)
	res.CXX, _ = ResolveCXXCompiler(overlay)

	r.logger.Debug("🔧 Resolved toolchain",
		"host", r.host,
		"overlay", key,
		"generator", res.Generator,
		"cc", res.CC,
		"cxx", res.CXX,
		"vcpkg", res.Vcpkg)
	return res
}
