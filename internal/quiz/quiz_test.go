package quiz

import (
	"errors"
	"fmt"
	"testing"
)

// fourQuestions builds n questions where the correct option is always
// index 1.
func testQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			ID:           fmt.Sprintf("q-%d", i),
			Text:         fmt.Sprintf("Question %d?", i),
			Options:      []string{"A", "B", "C", "D"},
			CorrectIndex: 1,
			Explanation:  "Because rule.",
			Category:     "General Rules",
		}
	}
	return qs
}

func TestNewSessionRequiresQuestions(t *testing.T) {
	if _, err := NewSession("General Rules", nil, nil); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}
}

func TestSelectSubmitAdvanceFlow(t *testing.T) {
	s, err := NewSession("General Rules", testQuestions(3), nil)
	if err != nil {
		t.Fatal(err)
	}

	if s.Phase() != PhaseInProgress || s.Index() != 0 || s.Score() != 0 {
		t.Fatalf("fresh session: phase=%v index=%d score=%d", s.Phase(), s.Index(), s.Score())
	}

	// Submit without a selection is rejected.
	if _, err := s.Submit(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("submit without selection: %v", err)
	}

	// A later selection overwrites an earlier one.
	if err := s.Select(0); err != nil {
		t.Fatal(err)
	}
	if err := s.Select(1); err != nil {
		t.Fatal(err)
	}
	if s.Selected() != 1 {
		t.Fatalf("selected = %d, want 1", s.Selected())
	}
	if len(s.History()) != 0 {
		t.Fatal("selection must not touch history")
	}

	correct, err := s.Submit()
	if err != nil {
		t.Fatal(err)
	}
	if !correct || s.Score() != 1 {
		t.Fatalf("correct=%v score=%d", correct, s.Score())
	}
	if s.Phase() != PhaseRevealed {
		t.Fatalf("phase = %v, want revealed", s.Phase())
	}
	if got := s.History(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("history = %v", got)
	}

	// Selecting or re-submitting after reveal is rejected.
	if err := s.Select(2); !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("select after reveal: %v", err)
	}
	if _, err := s.Submit(); !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("double submit: %v", err)
	}

	res, done, err := s.Advance()
	if err != nil || done || res != nil {
		t.Fatalf("non-terminal advance: res=%v done=%v err=%v", res, done, err)
	}
	if s.Index() != 1 || s.Phase() != PhaseInProgress || s.Selected() != -1 {
		t.Fatalf("after advance: index=%d phase=%v selected=%d", s.Index(), s.Phase(), s.Selected())
	}
}

func TestAdvanceWithoutAnswerRejected(t *testing.T) {
	s, _ := NewSession("Road Signs", testQuestions(2), nil)
	if _, _, err := s.Advance(); !errors.Is(err, ErrNotAnswered) {
		t.Fatalf("err = %v, want ErrNotAnswered", err)
	}
}

func TestSelectOutOfRange(t *testing.T) {
	s, _ := NewSession("Road Signs", testQuestions(1), nil)
	if err := s.Select(4); !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("err = %v, want ErrInvalidSelection", err)
	}
	if err := s.Select(-1); !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("err = %v, want ErrInvalidSelection", err)
	}
}

func TestTerminalAdvanceReturnsResult(t *testing.T) {
	s, _ := NewSession("Motorway Rules", testQuestions(2), nil)

	// Q0 wrong, Q1 right.
	mustAnswer(t, s, 0)
	if _, done, err := s.Advance(); err != nil || done {
		t.Fatalf("advance: done=%v err=%v", done, err)
	}
	mustAnswer(t, s, 1)

	res, done, err := s.Advance()
	if err != nil {
		t.Fatal(err)
	}
	if !done || res == nil {
		t.Fatal("terminal advance must report completion")
	}
	if res.Score != 1 || res.Total != 2 || res.Category != "Motorway Rules" {
		t.Fatalf("result = %+v", res)
	}
	if len(res.History) != 2 || res.History[0] != 0 || res.History[1] != 1 {
		t.Fatalf("history = %v", res.History)
	}
	if s.Phase() != PhaseComplete || s.Current() != nil {
		t.Fatalf("phase=%v current=%v", s.Phase(), s.Current())
	}

	// Everything is rejected after completion.
	if err := s.Select(0); !errors.Is(err, ErrSessionComplete) {
		t.Fatalf("select after complete: %v", err)
	}
	if _, err := s.Submit(); !errors.Is(err, ErrSessionComplete) {
		t.Fatalf("submit after complete: %v", err)
	}
	if _, _, err := s.Advance(); !errors.Is(err, ErrSessionComplete) {
		t.Fatalf("advance after complete: %v", err)
	}
}

func TestHistoryInvariant(t *testing.T) {
	s, _ := NewSession("General Rules", testQuestions(3), nil)
	for i := 0; i < 3; i++ {
		if len(s.History()) != s.Index() {
			t.Fatalf("in-progress: len(history)=%d index=%d", len(s.History()), s.Index())
		}
		mustAnswer(t, s, 1)
		if len(s.History()) != s.Index()+1 {
			t.Fatalf("revealed: len(history)=%d index=%d", len(s.History()), s.Index())
		}
		if s.Score() > len(s.History()) {
			t.Fatalf("score %d exceeds history %d", s.Score(), len(s.History()))
		}
		s.Advance()
	}
}

func TestLastAnswer(t *testing.T) {
	s, _ := NewSession("Hazard Awareness", testQuestions(1), nil)

	if opt, _ := s.LastAnswer(); opt != -1 {
		t.Fatalf("last answer before submit = %d", opt)
	}

	mustAnswer(t, s, 3)
	opt, correct := s.LastAnswer()
	if opt != 3 || correct {
		t.Fatalf("opt=%d correct=%v", opt, correct)
	}
}

func mustAnswer(t *testing.T, s *Session, option int) {
	t.Helper()
	if err := s.Select(option); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Submit(); err != nil {
		t.Fatal(err)
	}
}
