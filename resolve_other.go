//go:build !windows

package samevol

func resolveMountPoint(path string) (string, error) {
	return "", ErrUnsupportedPlatform
}
