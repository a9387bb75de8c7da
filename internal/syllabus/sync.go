package syllabus

import (
	"sort"

	"github.com/abhisek/rehearse/internal/store"
)

// Sync adds an empty record to p for every item of sources that p does not
// already track. Existing records are left untouched, so syncing an
// unchanged syllabus twice adds nothing the second time. It returns the
// added identifiers in sorted order.
func Sync(sources []Source, p store.Progress) []string {
	var added []string
	for _, src := range sources {
		for _, id := range ItemIDs(src) {
			if _, ok := p[id]; ok {
				continue
			}
			p[id] = &store.Record{}
			added = append(added, id)
		}
	}
	sort.Strings(added)
	return added
}
