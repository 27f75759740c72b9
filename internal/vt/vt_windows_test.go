//go:build windows
// +build windows

package vt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestEnableRejectsUnusableStdout(t *testing.T) {
	tests := []struct {
		name   string
		handle windows.Handle
		err    error
	}{
		{name: "zero", handle: 0},
		{name: "invalid", handle: windows.InvalidHandle},
		{name: "lookup error", err: windows.ERROR_INVALID_PARAMETER},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := getStdHandle
			t.Cleanup(func() { getStdHandle = orig })
			getStdHandle = func(uint32) (windows.Handle, error) {
				return tt.handle, tt.err
			}

			assert.False(t, Enable())
			assert.False(t, Enabled())

			err := EnableOn(windowsConsole{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidHandle), "got %v", err)
		})
	}
}

func TestModeInvalidHandle(t *testing.T) {
	_, err := windowsConsole{}.Mode(Handle(windows.InvalidHandle))
	assert.Error(t, err)
}

func TestEnableRealConsole(t *testing.T) {
	c := windowsConsole{}
	h, err := c.Stdout()
	if err != nil {
		t.Skipf("no stdout handle: %v", err)
	}
	before, err := c.Mode(h)
	if err != nil {
		t.Skipf("stdout is not a console: %v", err)
	}
	t.Cleanup(func() { _ = c.SetMode(h, before) })

	require.True(t, Enable())
	after, err := c.Mode(h)
	require.NoError(t, err)
	assert.Equal(t, before|ModeVirtualTerminalProcessing, after)

	require.True(t, Enable())
	again, err := c.Mode(h)
	require.NoError(t, err)
	assert.Equal(t, after, again)
	assert.True(t, Enabled())
}
