package mastery

import "github.com/abhisek/rehearse/internal/store"

// Buckets is a disjoint partition of a progress map by mastery state.
// The buckets share records with the map they were built from.
type Buckets struct {
	New      store.Progress
	Learning store.Progress
	Mastered store.Progress
}

// Classify partitions p into new, learning and mastered items. Every key of
// p lands in exactly one bucket.
func Classify(p store.Progress) Buckets {
	b := Buckets{
		New:      make(store.Progress),
		Learning: make(store.Progress),
		Mastered: make(store.Progress),
	}
	for id, r := range p {
		if r == nil {
			r = &store.Record{}
		}
		b.Bucket(StateOf(r))[id] = r
	}
	return b
}

// Bucket returns the bucket holding items in state s.
func (b Buckets) Bucket(s MasteryState) store.Progress {
	switch s {
	case StateLearning:
		return b.Learning
	case StateMastered:
		return b.Mastered
	default:
		return b.New
	}
}

// Merge recombines the buckets into one progress map for persistence.
func (b Buckets) Merge() store.Progress {
	out := make(store.Progress, len(b.New)+len(b.Learning)+len(b.Mastered))
	for _, bucket := range []store.Progress{b.New, b.Learning, b.Mastered} {
		for id, r := range bucket {
			out[id] = r
		}
	}
	return out
}

// Counts returns the number of items per state.
func (b Buckets) Counts() map[MasteryState]int {
	return map[MasteryState]int{
		StateNew:      len(b.New),
		StateLearning: len(b.Learning),
		StateMastered: len(b.Mastered),
	}
}

// Len returns the total number of items across all buckets.
func (b Buckets) Len() int {
	return len(b.New) + len(b.Learning) + len(b.Mastered)
}
