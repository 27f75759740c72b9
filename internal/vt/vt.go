// Package vt turns on virtual-terminal (ANSI escape sequence) processing for
// the process's standard output where the console needs an explicit opt-in.
package vt

import (
	"errors"
	"fmt"
)

// ModeVirtualTerminalProcessing is the console mode bit that makes the console
// interpret VT100 escape sequences instead of printing them.
const ModeVirtualTerminalProcessing uint32 = 0x0004

var (
	ErrInvalidHandle = errors.New("vt: invalid stdout handle")
	ErrGetMode       = errors.New("vt: get console mode")
	ErrSetMode       = errors.New("vt: set console mode")
)

// Handle is an OS console handle. It is borrowed, never closed.
type Handle uintptr

// Console is the read-modify-write boundary onto the OS console configuration.
type Console interface {
	Stdout() (Handle, error)
	Mode(h Handle) (uint32, error)
	SetMode(h Handle, mode uint32) error
}

// EnableOn sets ModeVirtualTerminalProcessing on c's stdout handle, keeping
// every other mode bit. The returned error wraps ErrInvalidHandle, ErrGetMode
// or ErrSetMode. A failed write is not rolled back.
func EnableOn(c Console) error {
	h, err := c.Stdout()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHandle, err)
	}

	mode, err := c.Mode(h)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGetMode, err)
	}

	if err := c.SetMode(h, mode|ModeVirtualTerminalProcessing); err != nil {
		return fmt.Errorf("%w: %v", ErrSetMode, err)
	}
	return nil
}

// EnabledOn reports whether VT processing is currently set on c's stdout.
func EnabledOn(c Console) bool {
	h, err := c.Stdout()
	if err != nil {
		return false
	}
	mode, err := c.Mode(h)
	if err != nil {
		return false
	}
	return mode&ModeVirtualTerminalProcessing != 0
}
