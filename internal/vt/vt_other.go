//go:build !windows
// +build !windows

package vt

// Enable is a no-op on non-Windows platforms (terminals interpret ANSI already).
func Enable() bool { return true }

// Enabled always reports true on non-Windows platforms.
func Enabled() bool { return true }
