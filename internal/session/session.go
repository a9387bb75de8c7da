// Package session drives a practice run: it orders the classified items
// and, for each one, asks the user for scores, records the result and
// persists the full progress map before moving on.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/rehearse/internal/mastery"
	"github.com/abhisek/rehearse/internal/store"
)

// Session practices the items of one classified progress map.
type Session struct {
	buckets mastery.Buckets
	saver   Saver
	scorer  Scorer

	now              func() time.Time
	rng              *rand.Rand
	practiceLearning bool
	limit            int
	logger           *zap.Logger
	onProgress       func(done int, id string)

	plan *Plan
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used to timestamp history entries.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithRand sets the source used to shuffle new items.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithPracticeLearning enables the practice loop for learning items. It is
// off by default: only new and mastered items are practiced.
func WithPracticeLearning(enabled bool) Option {
	return func(s *Session) { s.practiceLearning = enabled }
}

// WithLimit caps the number of items practiced in one run. Zero means no
// limit.
func WithLimit(n int) Option {
	return func(s *Session) { s.limit = n }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithProgress registers a callback invoked after every practiced item.
func WithProgress(fn func(done int, id string)) Option {
	return func(s *Session) { s.onProgress = fn }
}

// New creates a session over b. Records in b are updated in place and the
// recombined map is handed to saver after every item.
func New(b mastery.Buckets, saver Saver, scorer Scorer, opts ...Option) *Session {
	s := &Session{
		buckets: b,
		saver:   saver,
		scorer:  scorer,
		now:     time.Now,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Plan returns the practice order. It is computed once, before any item is
// practiced.
func (s *Session) Plan() *Plan {
	if s.plan == nil {
		s.plan = BuildPlan(s.buckets, s.rng, s.practiceLearning)
	}
	return s.plan
}

// Run practices every planned item in order. A failure to persist ends the
// run with an error; the user aborting or ctx being cancelled ends it
// cleanly with the progress saved up to the last completed item.
func (s *Session) Run(ctx context.Context) (*Summary, error) {
	plan := s.Plan()
	sum := &Summary{
		SessionID: uuid.New().String(),
		Started:   s.now(),
		Planned:   plan.Len(),
		ByState:   make(map[mastery.MasteryState]int),
	}
	log := s.logger.With(zap.String("session_id", sum.SessionID))
	log.Info("session started",
		zap.Int("planned", plan.Len()),
		zap.Bool("practice_learning", s.practiceLearning),
	)

	for _, slot := range plan.Slots {
		if s.limit > 0 && sum.Practiced >= s.limit {
			log.Info("session limit reached", zap.Int("limit", s.limit))
			break
		}
		if ctx.Err() != nil {
			sum.Aborted = true
			break
		}

		err := s.practice(ctx, slot)
		switch {
		case err == nil:
			sum.Practiced++
			sum.ByState[slot.State]++
			if s.onProgress != nil {
				s.onProgress(sum.Practiced, slot.ItemID)
			}
		case errors.Is(err, ErrInvalidScore):
			log.Warn("item skipped", zap.String("item", slot.ItemID), zap.Error(err))
			sum.Skipped = append(sum.Skipped, slot.ItemID)
		case errors.Is(err, ErrAborted), errors.Is(err, context.Canceled):
			sum.Aborted = true
		default:
			sum.Finished = s.now()
			return sum, err
		}
		if sum.Aborted {
			break
		}
	}

	sum.Finished = s.now()
	log.Info("session finished",
		zap.Int("practiced", sum.Practiced),
		zap.Int("skipped", len(sum.Skipped)),
		zap.Bool("aborted", sum.Aborted),
		zap.Duration("duration", sum.Duration()),
	)
	return sum, nil
}

// practice runs the session protocol for one item. The record is only
// modified once every score has been obtained.
func (s *Session) practice(ctx context.Context, slot PlanSlot) error {
	r := s.buckets.Bucket(slot.State)[slot.ItemID]
	if r == nil {
		return fmt.Errorf("item %q not in %s bucket", slot.ItemID, slot.State)
	}

	switch slot.State {
	case mastery.StateNew:
		goal, err := s.scorer.Score(ctx, Request{ItemID: slot.ItemID, State: slot.State, Field: FieldGoal})
		if err != nil {
			return err
		}
		current, err := s.scorer.Score(ctx, Request{ItemID: slot.ItemID, State: slot.State, Field: FieldCurrent, Goal: &goal})
		if err != nil {
			return err
		}
		r.Start(goal, current, s.now())
	default:
		current, err := s.scorer.Score(ctx, Request{
			ItemID:   slot.ItemID,
			State:    slot.State,
			Field:    FieldCurrent,
			Goal:     r.Goal,
			Previous: r.Current,
		})
		if err != nil {
			return err
		}
		r.Practice(current, s.now())
	}

	if err := s.saver.Save(ctx, s.buckets.Merge()); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	s.logger.Debug("item practiced", zap.String("item", slot.ItemID), zap.String("state", string(slot.State)))
	return nil
}

// Progress returns the recombined progress map with every update made so
// far.
func (s *Session) Progress() store.Progress {
	return s.buckets.Merge()
}
