package prompt

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/rehearse/internal/mastery"
	"github.com/abhisek/rehearse/internal/session"
)

func intPtr(v int) *int { return &v }

func TestParseMode(t *testing.T) {
	for _, s := range []string{"auto", "line", "tui"} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, Mode(s), m)
	}
	_, err := ParseMode("gui")
	assert.Error(t, err)
}

func TestLineScorer_ReadsInteger(t *testing.T) {
	var out bytes.Buffer
	s := NewLineScorer(strings.NewReader("7\n"), &out, 3)

	v, err := s.Score(context.Background(), session.Request{
		ItemID: "guitar.toml:scales:major:C",
		State:  mastery.StateMastered,
		Field:  session.FieldCurrent,
		Goal:   intPtr(8),
	})
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Contains(t, out.String(), "guitar.toml:scales:major:C")
	assert.Contains(t, out.String(), "goal")
	assert.Contains(t, out.String(), "current: ")
}

func TestLineScorer_RepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	s := NewLineScorer(strings.NewReader("abc\n 4 \n"), &out, 3)

	v, err := s.Score(context.Background(), session.Request{ItemID: "a", Field: session.FieldGoal})
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	assert.Contains(t, out.String(), `"abc" is not a whole number`)
}

func TestLineScorer_GivesUpAfterMaxAttempts(t *testing.T) {
	var out bytes.Buffer
	s := NewLineScorer(strings.NewReader("x\ny\n5\n"), &out, 2)

	_, err := s.Score(context.Background(), session.Request{ItemID: "a", Field: session.FieldGoal})
	assert.ErrorIs(t, err, session.ErrInvalidScore)

	// The remaining input is still available to the next request.
	v, err := s.Score(context.Background(), session.Request{ItemID: "b", Field: session.FieldGoal})
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestLineScorer_EOFAborts(t *testing.T) {
	s := NewLineScorer(strings.NewReader(""), &bytes.Buffer{}, 3)

	_, err := s.Score(context.Background(), session.Request{ItemID: "a", Field: session.FieldGoal})
	assert.ErrorIs(t, err, session.ErrAborted)
}

func TestLineScorer_LastLineWithoutNewline(t *testing.T) {
	s := NewLineScorer(strings.NewReader("12"), &bytes.Buffer{}, 3)

	v, err := s.Score(context.Background(), session.Request{ItemID: "a", Field: session.FieldGoal})
	require.NoError(t, err)
	assert.Equal(t, 12, v)
}

func TestLineScorer_HeaderOncePerItem(t *testing.T) {
	var out bytes.Buffer
	s := NewLineScorer(strings.NewReader("5\n2\n"), &out, 3)
	ctx := context.Background()

	_, err := s.Score(ctx, session.Request{ItemID: "item-x", State: mastery.StateNew, Field: session.FieldGoal})
	require.NoError(t, err)
	_, err = s.Score(ctx, session.Request{ItemID: "item-x", State: mastery.StateNew, Field: session.FieldCurrent, Goal: intPtr(5)})
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out.String(), "item-x"))
}

func TestLineScorer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewLineScorer(strings.NewReader("5\n"), &bytes.Buffer{}, 3)

	_, err := s.Score(ctx, session.Request{ItemID: "a", Field: session.FieldGoal})
	assert.ErrorIs(t, err, context.Canceled)
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func update(m scoreModel, msg tea.Msg) (scoreModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(scoreModel), cmd
}

func TestScoreModel_SubmitsInteger(t *testing.T) {
	m := newScoreModel(session.Request{ItemID: "a", Field: session.FieldGoal}, "", 3)
	m, _ = update(m, keyPress('4'))
	m, _ = update(m, keyPress('2'))
	m, cmd := update(m, specialKey(tea.KeyEnter))

	require.NotNil(t, cmd)
	v, err := m.result()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestScoreModel_IgnoresLetters(t *testing.T) {
	m := newScoreModel(session.Request{ItemID: "a", Field: session.FieldGoal}, "", 3)
	m, _ = update(m, keyPress('x'))
	m, _ = update(m, keyPress('3'))

	assert.Equal(t, "3", m.input.Value())
}

func TestScoreModel_EmptyEnterRejectsThenGivesUp(t *testing.T) {
	m := newScoreModel(session.Request{ItemID: "a", Field: session.FieldCurrent}, "", 2)

	m, cmd := update(m, specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.False(t, m.exhausted)

	m, cmd = update(m, specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	_, err := m.result()
	assert.ErrorIs(t, err, session.ErrInvalidScore)
}

func TestScoreModel_EscapeAborts(t *testing.T) {
	m := newScoreModel(session.Request{ItemID: "a", Field: session.FieldCurrent}, "", 3)

	m, cmd := update(m, specialKey(tea.KeyEscape))
	require.NotNil(t, cmd)
	_, err := m.result()
	assert.ErrorIs(t, err, session.ErrAborted)
}
