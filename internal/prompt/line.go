package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/rehearse/internal/session"
	"github.com/abhisek/rehearse/internal/ui/theme"
)

// LineScorer reads scores one line at a time.
type LineScorer struct {
	in          *bufio.Reader
	out         io.Writer
	maxAttempts int
	headers     headerTracker
}

var _ session.Scorer = (*LineScorer)(nil)

// NewLineScorer creates a scorer that prompts on out and reads from in.
func NewLineScorer(in io.Reader, out io.Writer, maxAttempts int) *LineScorer {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &LineScorer{
		in:          bufio.NewReader(in),
		out:         Writer(out),
		maxAttempts: maxAttempts,
	}
}

// Score asks for req.Field until an integer is entered. End of input ends
// the session; too many invalid answers skip the item.
func (s *LineScorer) Score(ctx context.Context, req session.Request) (int, error) {
	if h := s.headers.header(req); h != "" {
		fmt.Fprintln(s.out, h)
	}

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fmt.Fprint(s.out, theme.Label.Render(string(req.Field)+": "))

		line, err := s.in.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return 0, session.ErrAborted
			}
			return 0, fmt.Errorf("read score: %w", err)
		}

		answer := strings.TrimSpace(line)
		v, perr := strconv.Atoi(answer)
		if perr == nil {
			return v, nil
		}
		fmt.Fprintln(s.out, theme.Failure.Render(fmt.Sprintf("%q is not a whole number", answer)))
	}
	return 0, fmt.Errorf("%w: no %s for %s after %d attempts", session.ErrInvalidScore, req.Field, req.ItemID, s.maxAttempts)
}
