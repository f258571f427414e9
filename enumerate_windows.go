//go:build windows

package samevol

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/Lurito/samevol/common"
)

// volumeNameLength fits the `\\?\Volume{GUID}\` form plus terminator:
// 4 + 7 + 36 + 2 + 1 wide characters.
const volumeNameLength = 50

// buildVolumeTable enumerates every volume the system knows about and
// records one entry per mount point through which it is reachable. Only
// failure to open the enumeration is fatal; a volume whose name or path
// list cannot be decoded is skipped and the walk continues. The find
// handle is released no matter how the walk ends.
func buildVolumeTable() (map[string]ID, error) {
	entries := make(map[string]ID)
	buffer := make([]uint16, volumeNameLength)

	handle, err := windows.FindFirstVolume(&buffer[0], uint32(len(buffer)))
	if err != nil {
		return nil, fmt.Errorf("opening volume enumeration: %w", err)
	}
	defer windows.FindVolumeClose(handle)

	for {
		volumeName, err := decodeWide(buffer)
		if err != nil {
			common.Debug("skipping volume with undecodable name: %v", err)
		} else if paths, err := volumePathNames(buffer); err != nil {
			common.Debug("skipping volume %q: %v", volumeName, err)
		} else {
			for _, path := range paths {
				// duplicate mount points should not happen; last one wins
				entries[normalizeMountPoint(path)] = ID(volumeName)
			}
		}
		clear(buffer)
		if err := windows.FindNextVolume(handle, &buffer[0], uint32(len(buffer))); err != nil {
			// ERROR_NO_MORE_FILES, or a mid enumeration failure; either
			// way the walk is over and what was collected stands
			break
		}
	}
	return entries, nil
}

// volumePathNames fetches every mount point path of the volume named in
// the still NUL terminated wide buffer. The result buffer grows to the
// size the OS reports whenever the current one does not fit.
func volumePathNames(volumeName []uint16) ([]string, error) {
	buffer := make([]uint16, 1024)
	for {
		var needed uint32
		err := windows.GetVolumePathNamesForVolumeName(&volumeName[0], &buffer[0], uint32(len(buffer)), &needed)
		if err == nil {
			return splitPathList(buffer)
		}
		if err != windows.ERROR_MORE_DATA {
			return nil, fmt.Errorf("querying mount points: %w", err)
		}
		buffer = make([]uint16, needed+1)
	}
}
