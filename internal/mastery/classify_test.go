package mastery

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/rehearse/internal/store"
)

func rec(current, goal int, history ...store.Entry) *store.Record {
	return &store.Record{Current: &current, Goal: &goal, History: history}
}

func TestStateOf(t *testing.T) {
	tests := []struct {
		name string
		r    *store.Record
		want MasteryState
	}{
		{"nil record", nil, StateNew},
		{"empty record", &store.Record{}, StateNew},
		{"below goal", rec(2, 5, store.Entry{Time: 1, Score: 2}), StateLearning},
		{"zero score", rec(0, 1, store.Entry{Time: 1, Score: 0}), StateLearning},
		{"at goal", rec(5, 5, store.Entry{Time: 1, Score: 5}), StateMastered},
		{"above goal", rec(7, 5, store.Entry{Time: 1, Score: 7}), StateMastered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StateOf(tt.r))
		})
	}
}

func TestClassify_Scenario(t *testing.T) {
	p := store.Progress{
		"x": {},
		"y": rec(2, 5, store.Entry{Time: 1, Score: 2}),
		"z": rec(5, 5, store.Entry{Time: 1, Score: 5}),
	}

	b := Classify(p)

	assert.Equal(t, []string{"x"}, b.New.Keys())
	assert.Equal(t, []string{"y"}, b.Learning.Keys())
	assert.Equal(t, []string{"z"}, b.Mastered.Keys())
	assert.Equal(t, map[MasteryState]int{StateNew: 1, StateLearning: 1, StateMastered: 1}, b.Counts())
}

func TestClassify_PartitionIsComplete(t *testing.T) {
	p := make(store.Progress)
	for i := 0; i < 60; i++ {
		id := fmt.Sprintf("item-%02d", i)
		switch i % 3 {
		case 0:
			p[id] = &store.Record{}
		case 1:
			p[id] = rec(i%5, 5, store.Entry{Time: float64(i), Score: i % 5})
		default:
			p[id] = rec(10, i%10+1, store.Entry{Time: float64(i), Score: 10})
		}
	}

	b := Classify(p)

	require.Equal(t, len(p), b.Len())
	seen := make(map[string]int)
	for _, bucket := range []store.Progress{b.New, b.Learning, b.Mastered} {
		for id := range bucket {
			seen[id]++
		}
	}
	assert.Len(t, seen, len(p))
	for id, n := range seen {
		assert.Equal(t, 1, n, "item %s in %d buckets", id, n)
	}
	assert.Equal(t, p.Keys(), b.Merge().Keys())
}

func TestBuckets_MergeSharesRecords(t *testing.T) {
	p := store.Progress{"y": rec(2, 5, store.Entry{Time: 1, Score: 2})}
	b := Classify(p)

	merged := b.Merge()
	assert.Same(t, p["y"], merged["y"])
}
