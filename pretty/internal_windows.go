//go:build windows

package pretty

import (
	"golang.org/x/sys/windows"
)

// localSetup switches the console into virtual terminal mode, so the ANSI
// sequences the rest of the package emits actually render. Legacy consoles
// that refuse the mode leave colors disabled.
func localSetup() {
	if Disabled {
		return
	}
	for _, std := range []uint32{windows.STD_OUTPUT_HANDLE, windows.STD_ERROR_HANDLE} {
		handle, err := windows.GetStdHandle(std)
		if err != nil {
			Disabled = true
			return
		}
		var mode uint32
		if err := windows.GetConsoleMode(handle, &mode); err != nil {
			Disabled = true
			return
		}
		mode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
		if err := windows.SetConsoleMode(handle, mode); err != nil {
			Disabled = true
			return
		}
	}
}
