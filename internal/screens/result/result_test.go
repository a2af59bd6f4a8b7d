package result

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sp80808/Highway-Code-Master/internal/content"
	"github.com/sp80808/Highway-Code-Master/internal/progression"
	quizcore "github.com/sp80808/Highway-Code-Master/internal/quiz"
	"github.com/sp80808/Highway-Code-Master/internal/router"
	"github.com/sp80808/Highway-Code-Master/internal/screen"
)

func sampleSummary() Summary {
	questions := []quizcore.Question{
		{Text: "Q0", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0, Explanation: "E0"},
		{Text: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1, Explanation: "E1"},
		{Text: "Q2", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2, Explanation: "E2"},
	}
	return Summary{
		Category:  content.CategorySigns,
		Score:     1,
		Total:     3,
		History:   []int{0, 0, 0}, // only Q0 answered correctly
		Questions: questions,
		Passed:    false,
		XPEarned:  10,
		Progress:  progression.Calculate(10),
	}
}

func TestMissedComputation(t *testing.T) {
	s := New(sampleSummary(), nil)
	assert.Equal(t, []int{1, 2}, s.missed)
}

func TestReviewNavigation(t *testing.T) {
	s := New(sampleSummary(), nil)
	require.Len(t, s.missed, 2)

	updated, _ := s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	s = updated.(*ResultScreen)
	assert.Equal(t, 1, s.reviewAt)

	// Clamped at the end.
	updated, _ = s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	s = updated.(*ResultScreen)
	assert.Equal(t, 1, s.reviewAt)

	updated, _ = s.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	s = updated.(*ResultScreen)
	assert.Equal(t, 0, s.reviewAt)
}

func TestRetryEmitsReplace(t *testing.T) {
	restarted := false
	s := New(sampleSummary(), func() screen.Screen {
		restarted = true
		return New(sampleSummary(), nil)
	})

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	require.NotNil(t, cmd)

	msg := cmd()
	_, ok := msg.(router.ReplaceScreenMsg)
	assert.True(t, ok, "expected ReplaceScreenMsg, got %T", msg)
	assert.True(t, restarted)
}

func TestReviewToleratesOutOfRangeAnswer(t *testing.T) {
	sum := sampleSummary()
	sum.History = []int{0, 9, -1}

	s := New(sum, nil)
	require.NotPanics(t, func() {
		view := s.View(100, 40)
		assert.True(t, strings.Contains(view, "Your answer: (none)"))
	})
}

func TestViewShowsOutcome(t *testing.T) {
	s := New(sampleSummary(), nil)
	view := s.View(100, 40)

	assert.True(t, strings.Contains(view, "NOT PASSED"))
	assert.True(t, strings.Contains(view, "+10 XP"))
	assert.True(t, strings.Contains(view, "Review 1/2"))

	perfect := sampleSummary()
	perfect.Score = 3
	perfect.History = []int{0, 1, 2}
	perfect.Passed = true
	s = New(perfect, nil)
	view = s.View(100, 40)
	assert.True(t, strings.Contains(view, "PASSED"))
	assert.True(t, strings.Contains(view, "nothing to review"))
}
