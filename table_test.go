package samevol

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Lurito/samevol/hamlet"
)

func testTable(entries map[string]ID, routes map[string]string) *Table {
	return &Table{
		build: func() (map[string]ID, error) {
			copied := make(map[string]ID, len(entries))
			for key, id := range entries {
				copied[key] = id
			}
			return copied, nil
		},
		resolve: func(path string) (string, error) {
			if mountPoint, ok := routes[path]; ok {
				return mountPoint, nil
			}
			return "", errors.New("path does not resolve")
		},
	}
}

func TestLookupPrefersLongestMountPoint(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	table := testTable(map[string]ID{
		`C:\`:               "host",
		`D:\`:               "data",
		`D:\Vdisks\Wechat\`: "vhd",
	}, nil)

	id, err := table.Lookup(`D:\`)
	must.Nil(err)
	must.Equal(ID("data"), id)

	id, err = table.Lookup(`D:\Vdisks\Wechat\`)
	must.Nil(err)
	must.Equal(ID("vhd"), id)

	// lookup normalizes before matching
	id, err = table.Lookup(`D:/Vdisks/Wechat`)
	must.Nil(err)
	must.Equal(ID("vhd"), id)

	_, err = table.Lookup(`E:\`)
	wont.Nil(err)
	must.True(errors.Is(err, ErrUnknownMountPoint))
}

func TestSiblingMountPointsDoNotCollide(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	table := testTable(map[string]ID{
		`C:\Data\`: "data",
	}, nil)

	_, err := table.Lookup(`C:\Database\`)
	wont.Nil(err)
	must.True(errors.Is(err, ErrUnknownMountPoint))

	withHost := testTable(map[string]ID{
		`C:\`:      "host",
		`C:\Data\`: "data",
	}, nil)

	id, err := withHost.Lookup(`C:\Database\`)
	must.Nil(err)
	must.Equal(ID("host"), id)

	id, err = withHost.Lookup(`C:\Data\`)
	must.Nil(err)
	must.Equal(ID("data"), id)
}

func TestLazyBuildFailureLeavesEmptyTable(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	table := &Table{
		build: func() (map[string]ID, error) {
			return nil, errors.New("enumeration refused")
		},
	}

	// read paths miss instead of failing
	_, err := table.Lookup(`C:\`)
	wont.Nil(err)
	must.True(errors.Is(err, ErrUnknownMountPoint))

	// only rebuild callers see the raw error
	count, err := table.Rebuild()
	wont.Nil(err)
	must.Equal(0, count)
}

func TestRebuildReportsEntryCountAndIsIdempotent(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	table := testTable(map[string]ID{
		`C:\`:      "host",
		`D:\`:      "data",
		`D:\Temp\`: "data",
	}, nil)

	count, err := table.Rebuild()
	must.Nil(err)
	must.Equal(3, count)

	again, err := table.Rebuild()
	must.Nil(err)
	must.Equal(count, again)
}

func TestRebuildFailureKeepsPreviousTable(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	healthy := true
	table := &Table{
		build: func() (map[string]ID, error) {
			if !healthy {
				return nil, errors.New("enumeration refused")
			}
			return map[string]ID{`C:\`: "host"}, nil
		},
	}

	count, err := table.Rebuild()
	must.Nil(err)
	must.Equal(1, count)

	healthy = false
	_, err = table.Rebuild()
	wont.Nil(err)

	id, err := table.Lookup(`C:\Windows\`)
	must.Nil(err)
	must.Equal(ID("host"), id)
}

func TestPoisonedTableRefusesService(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	table := &Table{
		build: func() (map[string]ID, error) {
			panic("builder corrupted shared state")
		},
		resolve: func(path string) (string, error) {
			return `C:\`, nil
		},
	}

	must.Panic(func() {
		table.Lookup(`C:\`)
	})

	_, err := table.Lookup(`C:\`)
	wont.Nil(err)
	must.True(errors.Is(err, ErrTablePoisoned))

	// even with a healthy builder the poisoned table stays out of service
	table.build = func() (map[string]ID, error) {
		return map[string]ID{`C:\`: "host"}, nil
	}
	_, err = table.Rebuild()
	must.True(errors.Is(err, ErrTablePoisoned))

	_, err = table.Entries()
	must.True(errors.Is(err, ErrTablePoisoned))

	_, ok := table.Identifier(`C:\anything`)
	must.True(!ok)
	must.True(!table.SameVolume(`C:\a`, `C:\b`))
}

func TestSameVolumeIsReflexiveSymmetricAndConservative(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	table := testTable(map[string]ID{
		`C:\`:               "host",
		`D:\`:               "data",
		`D:\Vdisks\Wechat\`: "vhd",
	}, map[string]string{
		`C:\Windows\System32`:          `C:\`,
		`C:\Users\Public`:              `C:\`,
		`D:\`:                          `D:\`,
		`D:\Vdisks\Wechat\another.txt`: `D:\Vdisks\Wechat\`,
	})

	must.True(table.SameVolume(`C:\Windows\System32`, `C:\Windows\System32`))
	must.True(table.SameVolume(`C:\Windows\System32`, `C:\Users\Public`))
	must.Equal(
		table.SameVolume(`C:\Windows\System32`, `C:\Users\Public`),
		table.SameVolume(`C:\Users\Public`, `C:\Windows\System32`))

	// distinct drives
	must.True(!table.SameVolume(`C:\Windows\System32`, `D:\`))

	// a virtual disk mounted under the host drive is its own volume
	must.True(!table.SameVolume(`D:\`, `D:\Vdisks\Wechat\another.txt`))
	must.True(!table.SameVolume(`D:\Vdisks\Wechat\another.txt`, `D:\`))

	// unresolvable paths never share a volume with anything
	must.True(!table.SameVolume(`C:\Windows\System32`, `Z:\missing`))
	must.True(!table.SameVolume(`Z:\missing`, `Z:\missing`))
}

func TestRelativeAndAbsoluteFormsResolveAlike(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	table := testTable(map[string]ID{
		`C:\`: "host",
	}, map[string]string{
		"src":           `C:\`,
		`C:\proj\src`:   `C:\`,
		`C:\proj\.\src`: `C:\`,
	})

	relative, ok := table.Identifier("src")
	must.True(ok)
	absolute, ok := table.Identifier(`C:\proj\src`)
	must.True(ok)
	must.Equal(relative, absolute)

	dotted, ok := table.Identifier(`C:\proj\.\src`)
	must.True(ok)
	must.Equal(absolute, dotted)
}

func TestConcurrentLookupsNeverSeeTornTable(t *testing.T) {
	before := map[string]ID{`C:\`: "before"}
	after := map[string]ID{`C:\`: "after"}

	generation := atomic.Int64{}
	table := &Table{
		build: func() (map[string]ID, error) {
			if generation.Load()%2 == 0 {
				return map[string]ID{`C:\`: before[`C:\`]}, nil
			}
			return map[string]ID{`C:\`: after[`C:\`]}, nil
		},
	}

	if _, err := table.Rebuild(); err != nil {
		t.Fatalf("initial rebuild failed: %v", err)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				id, err := table.Lookup(`C:\Temp\`)
				if err != nil {
					t.Errorf("lookup failed during rebuild: %v", err)
					return
				}
				if id != "before" && id != "after" {
					t.Errorf("torn table observed: %q", id)
					return
				}
			}
		}()
	}

	for round := 0; round < 200; round++ {
		generation.Add(1)
		if _, err := table.Rebuild(); err != nil {
			t.Fatalf("rebuild round %d failed: %v", round, err)
		}
	}
	close(done)
	wg.Wait()
}
