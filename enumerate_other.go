//go:build !windows

package samevol

// Volume identity is a Windows concept here. Other platforms get a table
// that never builds; the portable core stays compilable and testable.

func buildVolumeTable() (map[string]ID, error) {
	return nil, ErrUnsupportedPlatform
}
