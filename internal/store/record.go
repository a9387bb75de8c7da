package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Entry is one practice result: when it was captured and the score given.
// It serializes as a two-element JSON array [timestamp, score].
type Entry struct {
	Time  float64 // seconds since the Unix epoch
	Score int
}

// NewEntry captures a score at the given moment.
func NewEntry(at time.Time, score int) Entry {
	return Entry{
		Time:  float64(at.UnixNano()) / float64(time.Second),
		Score: score,
	}
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.Time, e.Score})
}

func (e *Entry) UnmarshalJSON(b []byte) error {
	var raw []float64
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode history entry: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("decode history entry: want 2 elements, got %d", len(raw))
	}
	e.Time = raw[0]
	e.Score = int(raw[1])
	return nil
}

// Record is the persisted learning state of a single item. A record with no
// fields set describes an item that has never been practiced.
//
// Field order matters: it keeps the JSON keys of a record sorted.
type Record struct {
	Current *int    `json:"current,omitempty"`
	Goal    *int    `json:"goal,omitempty"`
	History []Entry `json:"history,omitempty"`
}

// IsNew reports whether the item has never been practiced.
func (r *Record) IsNew() bool {
	return r == nil || (r.Current == nil && r.Goal == nil && len(r.History) == 0)
}

// LastPracticed returns the timestamp of the most recent history entry,
// or 0 if the history is empty.
func (r *Record) LastPracticed() float64 {
	if r == nil || len(r.History) == 0 {
		return 0
	}
	return r.History[len(r.History)-1].Time
}

// Ratio returns current/goal. A non-positive goal counts as already reached.
func (r *Record) Ratio() float64 {
	if r == nil || r.Current == nil || r.Goal == nil {
		return 0
	}
	if *r.Goal <= 0 {
		return 1
	}
	return float64(*r.Current) / float64(*r.Goal)
}

// Start sets goal and current for a first practice and seeds the history.
func (r *Record) Start(goal, current int, at time.Time) {
	r.Goal = intPtr(goal)
	r.Current = intPtr(current)
	r.History = []Entry{NewEntry(at, current)}
}

// Practice records a new current score and appends it to the history.
func (r *Record) Practice(current int, at time.Time) {
	r.Current = intPtr(current)
	r.History = append(r.History, NewEntry(at, current))
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return &Record{}
	}
	c := &Record{}
	if r.Current != nil {
		c.Current = intPtr(*r.Current)
	}
	if r.Goal != nil {
		c.Goal = intPtr(*r.Goal)
	}
	if r.History != nil {
		c.History = append([]Entry(nil), r.History...)
	}
	return c
}

func intPtr(v int) *int { return &v }

// Progress maps item identifiers to their records. It is the only state the
// scheduler persists.
type Progress map[string]*Record

// Keys returns the item identifiers in sorted order.
func (p Progress) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of the progress map.
func (p Progress) Clone() Progress {
	out := make(Progress, len(p))
	for k, r := range p {
		out[k] = r.Clone()
	}
	return out
}
