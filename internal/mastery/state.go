package mastery

import "github.com/abhisek/rehearse/internal/store"

// MasteryState represents an item's position in the learning lifecycle.
type MasteryState string

const (
	StateNew      MasteryState = "new"
	StateLearning MasteryState = "learning"
	StateMastered MasteryState = "mastered"
)

// StateOf classifies a single record. A record that has never been
// practiced is new; otherwise the current score is compared with the goal.
func StateOf(r *store.Record) MasteryState {
	if r.IsNew() || r.Current == nil || r.Goal == nil {
		return StateNew
	}
	if *r.Current < *r.Goal {
		return StateLearning
	}
	return StateMastered
}
