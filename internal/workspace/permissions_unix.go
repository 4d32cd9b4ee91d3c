//go:build !windows
// +build !windows

package workspace

// POSIX hosts need the execute bit to run scripts.
const executableBitsApply = true
