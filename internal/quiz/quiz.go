package quiz

import (
	"errors"
	"fmt"
)

// Question is a single multiple-choice question. It is immutable once
// fetched; every question carries exactly four options.
type Question struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
	Category     string   `json:"category"`
}

// OptionCount is the number of options every question must carry.
const OptionCount = 4

// Phase is the lifecycle stage of a quiz session.
type Phase int

const (
	// PhaseInProgress means the current question awaits an answer. An
	// option may be selected but has not been submitted.
	PhaseInProgress Phase = iota
	// PhaseRevealed means the current question has been answered and
	// the correct answer (plus explanation) is being shown.
	PhaseRevealed
	// PhaseComplete means all questions have been answered and the
	// session ended.
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseInProgress:
		return "in-progress"
	case PhaseRevealed:
		return "revealed"
	case PhaseComplete:
		return "complete"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Session state machine errors.
var (
	ErrNoQuestions      = errors.New("quiz: session needs at least one question")
	ErrNoSelection      = errors.New("quiz: no option selected")
	ErrAlreadyAnswered  = errors.New("quiz: current question already answered")
	ErrNotAnswered      = errors.New("quiz: current question not yet answered")
	ErrSessionComplete  = errors.New("quiz: session is complete")
	ErrInvalidSelection = errors.New("quiz: selected option out of range")
)

// Result summarizes a finished session.
type Result struct {
	Category string
	Score    int
	Total    int
	History  []int
}

// Session walks an ordered list of questions. Each question goes
// through select -> submit -> reveal -> advance; there is no skipping
// and no way to change an answer after submit. A snapshot is persisted
// after every submit and non-terminal advance so an interrupted quiz
// can be resumed; the terminal advance clears it.
type Session struct {
	category  string
	questions []Question
	index     int
	score     int
	history   []int

	selected int // pending selection, -1 when none
	phase    Phase

	snapshots *SnapshotStore // nil disables persistence
}

// NewSession starts a session at the first question.
func NewSession(category string, questions []Question, snapshots *SnapshotStore) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{
		category:  category,
		questions: questions,
		history:   make([]int, 0, len(questions)),
		selected:  -1,
		phase:     PhaseInProgress,
		snapshots: snapshots,
	}, nil
}

// Category returns the category the session was started with.
func (s *Session) Category() string { return s.category }

// Phase returns the current lifecycle stage.
func (s *Session) Phase() Phase { return s.phase }

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Total returns the number of questions in the session.
func (s *Session) Total() int { return len(s.questions) }

// History returns the submitted option indices in question order.
func (s *Session) History() []int {
	out := make([]int, len(s.history))
	copy(out, s.history)
	return out
}

// Questions returns the session's question list.
func (s *Session) Questions() []Question { return s.questions }

// Current returns the question at the current index, or nil once the
// session is complete.
func (s *Session) Current() *Question {
	if s.phase == PhaseComplete {
		return nil
	}
	return &s.questions[s.index]
}

// Selected returns the pending selection, or -1 when nothing is
// selected yet.
func (s *Session) Selected() int { return s.selected }

// LastAnswer reports the option submitted for the current question and
// whether it was correct. Only meaningful while revealed.
func (s *Session) LastAnswer() (option int, correct bool) {
	if s.phase != PhaseRevealed || len(s.history) == 0 {
		return -1, false
	}
	option = s.history[len(s.history)-1]
	return option, option == s.questions[s.index].CorrectIndex
}

// Select records a pending choice for the current question. Selecting
// again overwrites the previous choice; history is untouched until
// Submit.
func (s *Session) Select(option int) error {
	switch s.phase {
	case PhaseComplete:
		return ErrSessionComplete
	case PhaseRevealed:
		return ErrAlreadyAnswered
	}
	if option < 0 || option >= len(s.questions[s.index].Options) {
		return ErrInvalidSelection
	}
	s.selected = option
	return nil
}

// Submit locks in the pending selection: the score is bumped on a
// match, the choice joins the history, and the answer is revealed. The
// snapshot is persisted before returning.
func (s *Session) Submit() (correct bool, err error) {
	switch s.phase {
	case PhaseComplete:
		return false, ErrSessionComplete
	case PhaseRevealed:
		return false, ErrAlreadyAnswered
	}
	if s.selected < 0 {
		return false, ErrNoSelection
	}

	correct = s.selected == s.questions[s.index].CorrectIndex
	if correct {
		s.score++
	}
	s.history = append(s.history, s.selected)
	s.phase = PhaseRevealed
	s.persist()
	return correct, nil
}

// Advance moves past a revealed answer. On a non-terminal question it
// steps to the next one and persists the snapshot; on the last question
// it completes the session, deletes the snapshot, and returns the final
// Result. done is true only for the terminal transition.
func (s *Session) Advance() (res *Result, done bool, err error) {
	switch s.phase {
	case PhaseComplete:
		return nil, false, ErrSessionComplete
	case PhaseInProgress:
		return nil, false, ErrNotAnswered
	}

	if s.index == len(s.questions)-1 {
		s.phase = PhaseComplete
		s.selected = -1
		if s.snapshots != nil {
			s.snapshots.Clear()
		}
		return &Result{
			Category: s.category,
			Score:    s.score,
			Total:    len(s.questions),
			History:  s.History(),
		}, true, nil
	}

	s.index++
	s.selected = -1
	s.phase = PhaseInProgress
	s.persist()
	return nil, false, nil
}

func (s *Session) persist() {
	if s.snapshots == nil {
		return
	}
	s.snapshots.Save(Snapshot{
		Questions:     s.questions,
		Category:      s.category,
		CurrentIndex:  s.index,
		Score:         s.score,
		AnswerHistory: s.History(),
	})
}
