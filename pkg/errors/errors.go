// SPDX-License-Identifier: Apache-2.0
// Package errors holds the sentinel errors surfaced by wer.
package errors

import "errors"

var (
	// Configuration errors 📄
	ErrConfigNotFound  = errors.New("❌ configuration file not found")
	ErrConfigMalformed = errors.New("❌ configuration file is malformed")
	ErrMissingKey      = errors.New("❌ required configuration key missing")
	ErrInvalidConfig   = errors.New("❌ configuration is invalid")

	// Platform errors 🖥️
	ErrUnknownPlatform = errors.New("❌ unknown platform")

	// Precondition errors 🧰
	ErrVcpkgNotBootstrapped      = errors.New("❌ vcpkg is not bootstrapped")
	ErrNotConfigured             = errors.New("❌ project is not configured")
	ErrFormatToolMissing         = errors.New("❌ formatter executable not found")
	ErrNoFormatTargetsConfigured = errors.New("❌ no format globs configured")
)
