//go:build windows

package samevol_test

import (
	"os"
	"testing"

	"github.com/Lurito/samevol"
	"github.com/Lurito/samevol/hamlet"
)

func TestLiveVolumeTableAgainstThisSystem(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	table := samevol.New()
	count, err := table.Rebuild()
	must.Nil(err)
	must.True(count > 0)

	again, err := table.Rebuild()
	must.Nil(err)
	must.Equal(count, again)

	entries, err := table.Entries()
	must.Nil(err)
	must.Equal(count, len(entries))

	working, err := os.Getwd()
	must.Nil(err)

	absolute, ok := table.Identifier(working)
	must.True(ok)
	wont.Equal(samevol.ID(""), absolute)

	relative, ok := table.Identifier(".")
	must.True(ok)
	must.Equal(absolute, relative)

	must.True(table.SameVolume(".", working))
	must.True(table.SameVolume(working, working))
}
