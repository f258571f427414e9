//go:build windows

package samevol

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// resolveMountPoint expands a path, relative or absolute, to its full form
// and asks the OS which mount point owns it. The full path buffer regrows
// to the size GetFullPathName reports when the first guess is short; the
// mount point buffer is simply generous, that call has no length query.
func resolveMountPoint(path string) (string, error) {
	wide, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return "", fmt.Errorf("encoding path %q: %w", path, err)
	}

	full := make([]uint16, 512)
	for {
		length, err := windows.GetFullPathName(wide, uint32(len(full)), &full[0], nil)
		if err != nil {
			return "", fmt.Errorf("canonicalizing %q: %w", path, err)
		}
		if int(length) < len(full) {
			break
		}
		// too small; length is the required size including terminator
		full = make([]uint16, length+1)
	}

	mountPoint := make([]uint16, 4096)
	if err := windows.GetVolumePathName(&full[0], &mountPoint[0], uint32(len(mountPoint))); err != nil {
		return "", fmt.Errorf("querying mount point of %q: %w", path, err)
	}
	decoded, err := decodeWide(mountPoint)
	if err != nil {
		return "", fmt.Errorf("decoding mount point of %q: %w", path, err)
	}
	return normalizeMountPoint(decoded), nil
}
