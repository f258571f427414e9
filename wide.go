package samevol

import (
	"errors"
	"unicode"
	"unicode/utf16"
)

var errInvalidWide = errors.New("invalid UTF-16 sequence")

// decodeWide converts a NUL terminated UTF-16 buffer into a string.
// Unpaired surrogates are rejected instead of smuggled through as
// replacement runes, because the results become map keys and identifiers.
func decodeWide(buffer []uint16) (string, error) {
	end := len(buffer)
	for at, wide := range buffer {
		if wide == 0 {
			end = at
			break
		}
	}
	for at := 0; at < end; at++ {
		if utf16.IsSurrogate(rune(buffer[at])) {
			if at+1 >= end || utf16.DecodeRune(rune(buffer[at]), rune(buffer[at+1])) == unicode.ReplacementChar {
				return "", errInvalidWide
			}
			at++
		}
	}
	return string(utf16.Decode(buffer[:end])), nil
}

// splitPathList walks a double NUL terminated list of UTF-16 strings, the
// wire format of the mount point query, and decodes each entry. An empty
// list is valid and yields no entries.
func splitPathList(buffer []uint16) ([]string, error) {
	var paths []string
	for at := 0; at < len(buffer) && buffer[at] != 0; {
		end := at
		for end < len(buffer) && buffer[end] != 0 {
			end++
		}
		path, err := decodeWide(buffer[at:end])
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
		at = end + 1
	}
	return paths, nil
}
