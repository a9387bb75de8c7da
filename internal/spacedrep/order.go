package spacedrep

import (
	"math/rand/v2"
	"sort"

	"github.com/abhisek/rehearse/internal/store"
)

// OrderNew returns the new items in a uniformly random order. Keys are
// sorted before shuffling so a seeded rng gives a reproducible order.
func OrderNew(p store.Progress, rng *rand.Rand) []string {
	ids := p.Keys()
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	return ids
}

// OrderLearning returns the learning items furthest from their goal first,
// by ascending current/goal. Ties keep identifier order.
func OrderLearning(p store.Progress) []string {
	ids := p.Keys()
	sort.SliceStable(ids, func(i, j int) bool {
		return p[ids[i]].Ratio() < p[ids[j]].Ratio()
	})
	return ids
}

// OrderMastered returns the mastered items least recently practiced first,
// by ascending timestamp of their last history entry. Ties keep identifier
// order.
func OrderMastered(p store.Progress) []string {
	ids := p.Keys()
	sort.SliceStable(ids, func(i, j int) bool {
		return p[ids[i]].LastPracticed() < p[ids[j]].LastPracticed()
	})
	return ids
}
