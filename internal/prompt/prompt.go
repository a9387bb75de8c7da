// Package prompt implements the console side of a practice session: it
// shows each item and reads integer scores from the user.
package prompt

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"golang.org/x/term"

	"github.com/abhisek/rehearse/internal/session"
	"github.com/abhisek/rehearse/internal/ui/layout"
)

// Mode selects how scores are read.
type Mode string

const (
	ModeAuto Mode = "auto" // TUI when stdin is a terminal, line otherwise
	ModeLine Mode = "line"
	ModeTUI  Mode = "tui"
)

// DefaultMaxAttempts is how many times a non-integer answer is re-asked
// before the item is skipped.
const DefaultMaxAttempts = 3

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAuto, ModeLine, ModeTUI:
		return m, nil
	default:
		return "", fmt.Errorf("unknown prompt mode %q (want auto, line or tui)", s)
	}
}

// New returns the scorer for mode reading from in and writing to out.
func New(mode Mode, in *os.File, out io.Writer, maxAttempts int) (session.Scorer, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if mode == ModeAuto {
		mode = ModeLine
		if term.IsTerminal(int(in.Fd())) {
			mode = ModeTUI
		}
	}
	switch mode {
	case ModeLine:
		return NewLineScorer(in, out, maxAttempts), nil
	case ModeTUI:
		return NewTUIScorer(in, out, maxAttempts), nil
	default:
		return nil, fmt.Errorf("unknown prompt mode %q", mode)
	}
}

// Writer wraps w so styled output is downsampled to what w supports.
func Writer(w io.Writer) io.Writer {
	return colorprofile.NewWriter(w, os.Environ())
}

// headerTracker prints an item's header once, on the first request for it.
type headerTracker struct {
	last string
}

func (h *headerTracker) header(req session.Request) string {
	if req.ItemID == h.last {
		return ""
	}
	h.last = req.ItemID
	return layout.RenderItemHeader(req)
}
