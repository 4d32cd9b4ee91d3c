//go:build windows
// +build windows

package workspace

// Windows decides executability by extension, not mode bits.
const executableBitsApply = false
