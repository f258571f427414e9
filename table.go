package samevol

import (
	"errors"
	"sync"

	"github.com/Lurito/samevol/common"
)

var (
	// ErrUnknownMountPoint means no table entry owns the queried mount point.
	ErrUnknownMountPoint = errors.New("samevol: no volume entry for mount point")

	// ErrTablePoisoned means an earlier panic inside the table's critical
	// section left its state suspect; the table refuses further service
	// instead of deadlocking or answering from unknown state.
	ErrTablePoisoned = errors.New("samevol: volume table poisoned by earlier failure")

	// ErrUnsupportedPlatform is returned by build and resolution on
	// anything that is not Windows.
	ErrUnsupportedPlatform = errors.New("samevol: volume identity requires windows")
)

// Table maps normalized mount point paths to volume identifiers. Several
// mount points may map to the same identifier, one per way the volume is
// reachable. A Table is safe for concurrent use; Rebuild swaps the whole
// mapping atomically, so readers see either the old or the new state,
// never a partial one.
type Table struct {
	mu       sync.Mutex
	entries  map[string]ID
	built    bool
	poisoned bool

	// seams so the portable core is testable off Windows
	build   func() (map[string]ID, error)
	resolve func(path string) (string, error)
}

// New returns an empty, unbuilt table. The first lookup through it builds
// the mapping from live system state; Rebuild refreshes it on demand.
func New() *Table {
	return &Table{
		build:   buildVolumeTable,
		resolve: resolveMountPoint,
	}
}

// trap marks the table poisoned when a panic unwinds through the critical
// section, then lets the panic continue.
func (it *Table) trap() {
	if problem := recover(); problem != nil {
		it.poisoned = true
		panic(problem)
	}
}

// ensureBuilt performs the lazy first build. A failing build is logged and
// leaves an empty table behind, deliberately: read paths should miss, not
// fail, when the system refuses enumeration. Only Rebuild callers see the
// raw error.
func (it *Table) ensureBuilt() error {
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.poisoned {
		return ErrTablePoisoned
	}
	if it.built {
		return nil
	}
	defer it.trap()
	entries, err := it.build()
	if err != nil {
		common.Error("volume table", err)
		entries = make(map[string]ID)
	}
	it.entries = entries
	it.built = true
	return nil
}

// Rebuild enumerates live system state into a fresh mapping and swaps it
// in, returning the number of mount point entries. On build failure the
// previous mapping stays untouched and the error is returned.
func (it *Table) Rebuild() (int, error) {
	stopwatch := common.Stopwatch("volume table rebuild took")
	entries, err := it.build()
	if err != nil {
		return 0, err
	}
	stopwatch.Debug()
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.poisoned {
		return 0, ErrTablePoisoned
	}
	it.entries = entries
	it.built = true
	return len(entries), nil
}

// Lookup finds the identifier of the volume owning the given mount point:
// among all table keys that are separator aligned prefixes of it, the
// longest wins, so a nested mount beats the volume hosting it. The mount
// point is normalized before matching. ErrUnknownMountPoint when nothing
// matches, ErrTablePoisoned when the table is out of service.
func (it *Table) Lookup(mountPoint string) (ID, error) {
	if err := it.ensureBuilt(); err != nil {
		return "", err
	}
	query := normalizeMountPoint(mountPoint)
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.poisoned {
		return "", ErrTablePoisoned
	}
	best, found := "", ID("")
	ok := false
	for key, id := range it.entries {
		if ownsMountPoint(key, query) && len(key) > len(best) {
			best, found, ok = key, id, true
		}
	}
	if !ok {
		return "", ErrUnknownMountPoint
	}
	return found, nil
}

// Identifier resolves a path, relative or absolute, to the identifier of
// the volume it lives on. The second return is false whenever resolution
// or lookup fails; problems are logged at debug level, never fatal here.
func (it *Table) Identifier(path string) (ID, bool) {
	mountPoint, err := it.resolve(path)
	if err != nil {
		common.Debug("resolving %q failed: %v", path, err)
		return "", false
	}
	id, err := it.Lookup(mountPoint)
	if err != nil {
		common.Debug("no volume for mount point %q of %q: %v", mountPoint, path, err)
		return "", false
	}
	return id, true
}

// SameVolume reports whether both paths reside on the same storage volume.
// Any failure on either side degrades to false: an unresolvable path never
// counts as sharing a volume with anything.
func (it *Table) SameVolume(path1, path2 string) bool {
	first, ok := it.Identifier(path1)
	if !ok {
		return false
	}
	second, ok := it.Identifier(path2)
	return ok && first == second
}

// Entries returns a snapshot copy of the current mapping for diagnostics.
func (it *Table) Entries() (map[string]ID, error) {
	if err := it.ensureBuilt(); err != nil {
		return nil, err
	}
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.poisoned {
		return nil, ErrTablePoisoned
	}
	snapshot := make(map[string]ID, len(it.entries))
	for key, id := range it.entries {
		snapshot[key] = id
	}
	return snapshot, nil
}
