//go:build !windows

package pretty

func localSetup() {
}
