package samevol_test

import (
	"strings"
	"testing"

	"github.com/Lurito/samevol"
	"github.com/Lurito/samevol/hamlet"
)

func TestFingerprintsAreStableShortAndDistinct(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	first := samevol.ID(`\\?\Volume{9e2df05c-46a7-4ba1-9b24-d0ca393f71cc}\`)
	second := samevol.ID(`\\?\Volume{1a9a94e4-0f13-40e6-894b-79a496a7b2d1}\`)

	must.Equal(16, len(first.Fingerprint()))
	must.Equal(first.Fingerprint(), first.Fingerprint())
	wont.Equal(first.Fingerprint(), second.Fingerprint())

	must.Equal(strings.ToLower(first.Fingerprint()), first.Fingerprint())
}
