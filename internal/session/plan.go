package session

import (
	"math/rand/v2"

	"github.com/abhisek/rehearse/internal/mastery"
	"github.com/abhisek/rehearse/internal/spacedrep"
)

// PlanSlot is a single item in the practice order and the bucket it was
// drawn from.
type PlanSlot struct {
	ItemID string
	State  mastery.MasteryState
}

// Plan is the ordered list of items for a session.
type Plan struct {
	Slots []PlanSlot
}

// BuildPlan orders each bucket by its own policy and concatenates them:
// learning items (only when practiceLearning is set), then new items, then
// mastered items.
func BuildPlan(b mastery.Buckets, rng *rand.Rand, practiceLearning bool) *Plan {
	plan := &Plan{}
	add := func(ids []string, state mastery.MasteryState) {
		for _, id := range ids {
			plan.Slots = append(plan.Slots, PlanSlot{ItemID: id, State: state})
		}
	}

	if practiceLearning {
		add(spacedrep.OrderLearning(b.Learning), mastery.StateLearning)
	}
	add(spacedrep.OrderNew(b.New, rng), mastery.StateNew)
	add(spacedrep.OrderMastered(b.Mastered), mastery.StateMastered)
	return plan
}

// Len returns the number of slots in the plan.
func (p *Plan) Len() int {
	return len(p.Slots)
}
