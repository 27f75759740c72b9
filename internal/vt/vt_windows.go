//go:build windows
// +build windows

package vt

import (
	"golang.org/x/sys/windows"
)

// Enable enables ENABLE_VIRTUAL_TERMINAL_PROCESSING on the stdout console.
// It returns false if stdout is not a console or the mode can't be changed.
func Enable() bool {
	return EnableOn(windowsConsole{}) == nil
}

// Enabled reports whether stdout currently has VT processing on.
func Enabled() bool {
	return EnabledOn(windowsConsole{})
}

var getStdHandle = windows.GetStdHandle

type windowsConsole struct{}

func (windowsConsole) Stdout() (Handle, error) {
	h, err := getStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return 0, err
	}
	// zero means no stdout is attached (e.g. a GUI process)
	if h == windows.InvalidHandle || h == 0 {
		return 0, windows.ERROR_INVALID_HANDLE
	}
	return Handle(h), nil
}

func (windowsConsole) Mode(h Handle) (uint32, error) {
	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(h), &mode); err != nil {
		return 0, err
	}
	return mode, nil
}

func (windowsConsole) SetMode(h Handle, mode uint32) error {
	return windows.SetConsoleMode(windows.Handle(h), mode)
}
