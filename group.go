package samevol

import (
	"sync"

	"github.com/Lurito/samevol/anywork"
	"github.com/Lurito/samevol/common"
)

// GroupByVolume resolves every path in one pass over the shared worker
// pool and buckets them by owning volume. Paths that cannot be resolved
// come back in the second slice and are never placed in a bucket.
func (it *Table) GroupByVolume(paths []string) (map[ID][]string, []string) {
	var mutex sync.Mutex
	groups := make(map[ID][]string)
	var missing []string
	for _, path := range paths {
		anywork.Backlog(func() {
			id, ok := it.Identifier(path)
			mutex.Lock()
			defer mutex.Unlock()
			if ok {
				groups[id] = append(groups[id], path)
			} else {
				missing = append(missing, path)
			}
		})
	}
	if err := anywork.Sync(); err != nil {
		common.Error("group by volume", err)
	}
	return groups, missing
}
