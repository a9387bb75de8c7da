package prompt

import (
	"context"
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/rehearse/internal/session"
	"github.com/abhisek/rehearse/internal/ui/components"
	"github.com/abhisek/rehearse/internal/ui/theme"
)

// TUIScorer reads each score with a small inline Bubble Tea program.
type TUIScorer struct {
	in          io.Reader
	out         io.Writer
	maxAttempts int
	headers     headerTracker
}

var _ session.Scorer = (*TUIScorer)(nil)

// NewTUIScorer creates a scorer that runs an inline numeric input per score.
func NewTUIScorer(in io.Reader, out io.Writer, maxAttempts int) *TUIScorer {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &TUIScorer{in: in, out: out, maxAttempts: maxAttempts}
}

func (s *TUIScorer) Score(ctx context.Context, req session.Request) (int, error) {
	m := newScoreModel(req, s.headers.header(req), s.maxAttempts)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(s.in),
		tea.WithOutput(s.out),
	)
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		return 0, fmt.Errorf("run prompt: %w", err)
	}
	return final.(scoreModel).result()
}

// scoreModel asks for one integer.
type scoreModel struct {
	req         session.Request
	header      string
	input       components.TextInput
	attempts    int
	maxAttempts int

	value     int
	done      bool
	aborted   bool
	exhausted bool
}

func newScoreModel(req session.Request, header string, maxAttempts int) scoreModel {
	return scoreModel{
		req:         req,
		header:      header,
		input:       components.NewTextInput(string(req.Field)+": ", "whole number", 9),
		maxAttempts: maxAttempts,
	}
}

func (m scoreModel) Init() tea.Cmd {
	return m.input.Init()
}

func (m scoreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			v, err := m.input.NumericValue()
			if err == nil {
				m.value = v
				m.done = true
				return m, tea.Quit
			}
			m.attempts++
			if m.attempts >= m.maxAttempts {
				m.exhausted = true
				return m, tea.Quit
			}
			m.input.Reject(fmt.Sprintf("enter a whole number (%d tries left)", m.maxAttempts-m.attempts))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m scoreModel) View() tea.View {
	content := m.input.View()
	if m.done {
		content = theme.Label.Render(string(m.req.Field)+": ") + theme.Value.Render(fmt.Sprint(m.value))
	}
	if m.header != "" {
		content = m.header + "\n" + content
	}
	return tea.NewView(content + "\n")
}

// result maps the final model state to a Scorer result.
func (m scoreModel) result() (int, error) {
	switch {
	case m.done:
		return m.value, nil
	case m.exhausted:
		return 0, fmt.Errorf("%w: no %s for %s after %d attempts", session.ErrInvalidScore, m.req.Field, m.req.ItemID, m.maxAttempts)
	default:
		return 0, session.ErrAborted
	}
}
