package samevol

import "strings"

const separator = `\`

// normalizeMountPoint rewrites a mount point path into table key form:
// backslash separators only and a guaranteed trailing backslash. Table
// keys and resolved mount points both go through this, so prefix
// comparison between them is always well defined.
func normalizeMountPoint(path string) string {
	normalized := strings.ReplaceAll(path, "/", separator)
	if !strings.HasSuffix(normalized, separator) {
		normalized += separator
	}
	return normalized
}

// ownsMountPoint reports whether key, a normalized table key, is the mount
// point itself or one of its ancestors. Keys always end in a separator, so
// the prefix test cannot cross a segment boundary: `C:\Data\` never owns
// anything under `C:\Database\`.
func ownsMountPoint(key, mountPoint string) bool {
	return strings.HasPrefix(mountPoint, key)
}
