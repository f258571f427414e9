package samevol

import (
	"fmt"

	"github.com/dchest/siphash"
)

// ID is an opaque, OS assigned volume identifier in the volume GUID path
// form `\\?\Volume{xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}\`. It is stable
// across reboots and independent of drive letters and mount paths. IDs are
// only ever compared, never parsed.
type ID string

// Fixed keys keep fingerprints stable between runs on the same machine.
const (
	fingerprintKey0 = 0x2e6d756f766c6f76
	fingerprintKey1 = 0x31796d6173655776
)

// Fingerprint derives a short display token from the identifier. It is
// for diagnostics and listings only; identity comparison always uses the
// full ID.
func (it ID) Fingerprint() string {
	return fmt.Sprintf("%016x", siphash.Hash(fingerprintKey0, fingerprintKey1, []byte(it)))
}
