package samevol

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/Lurito/samevol/hamlet"
)

func TestCanGroupManyPathsByVolume(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	routes := map[string]string{
		`C:\Users\alice\notes.txt`: `C:\`,
		`C:\Windows\System32`:      `C:\`,
		`D:\media\movie.mkv`:       `D:\`,
	}
	for at := 0; at < 50; at++ {
		routes[fmt.Sprintf(`D:\media\clip-%d.mp4`, at)] = `D:\`
	}

	table := testTable(map[string]ID{
		`C:\`: "host",
		`D:\`: "data",
	}, routes)

	paths := make([]string, 0, len(routes)+1)
	for path := range routes {
		paths = append(paths, path)
	}
	paths = append(paths, `Z:\unresolvable`)

	groups, missing := table.GroupByVolume(paths)

	must.Equal(2, len(groups))
	must.Equal(2, len(groups["host"]))
	must.Equal(51, len(groups["data"]))
	must.Equal([]string{`Z:\unresolvable`}, missing)

	hosts := groups["host"]
	sort.Strings(hosts)
	must.Equal([]string{`C:\Users\alice\notes.txt`, `C:\Windows\System32`}, hosts)
}

func TestGroupingSkipsEverythingWhenTableCannotBuild(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	table := &Table{
		build: func() (map[string]ID, error) {
			return nil, errors.New("enumeration refused")
		},
		resolve: func(path string) (string, error) {
			return `C:\`, nil
		},
	}

	groups, missing := table.GroupByVolume([]string{`C:\one`, `C:\two`})
	must.Equal(0, len(groups))
	must.Equal(2, len(missing))
}
