package session

import (
	"context"
	"errors"

	"github.com/abhisek/rehearse/internal/mastery"
	"github.com/abhisek/rehearse/internal/store"
)

var (
	// ErrInvalidScore is returned by a Scorer that could not obtain a valid
	// integer. The session skips the item and moves on.
	ErrInvalidScore = errors.New("invalid score")

	// ErrAborted is returned by a Scorer when the user ends the session.
	ErrAborted = errors.New("session aborted")
)

// Field names the value a Scorer is asked for.
type Field string

const (
	FieldGoal    Field = "goal"
	FieldCurrent Field = "current"
)

// Request describes one value the session needs from the user.
type Request struct {
	ItemID string
	State  mastery.MasteryState
	Field  Field

	// Goal is the item's target score, if known.
	Goal *int
	// Previous is the item's latest score, if any.
	Previous *int
}

// Scorer obtains an integer score from the user.
type Scorer interface {
	Score(ctx context.Context, req Request) (int, error)
}

// ScorerFunc adapts a function to the Scorer interface.
type ScorerFunc func(ctx context.Context, req Request) (int, error)

func (f ScorerFunc) Score(ctx context.Context, req Request) (int, error) {
	return f(ctx, req)
}

// Saver persists the full progress map.
type Saver interface {
	Save(ctx context.Context, p store.Progress) error
}
