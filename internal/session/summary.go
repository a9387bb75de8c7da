package session

import (
	"time"

	"github.com/abhisek/rehearse/internal/mastery"
)

// Summary describes a finished (or interrupted) practice session.
type Summary struct {
	SessionID string
	Started   time.Time
	Finished  time.Time
	Planned   int
	Practiced int
	Skipped   []string
	ByState   map[mastery.MasteryState]int
	Aborted   bool
}

// Duration returns how long the session ran.
func (s *Summary) Duration() time.Duration {
	return s.Finished.Sub(s.Started)
}
