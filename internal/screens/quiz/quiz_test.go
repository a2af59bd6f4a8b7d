package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/sp80808/Highway-Code-Master/internal/progression"
	quizcore "github.com/sp80808/Highway-Code-Master/internal/quiz"
	"github.com/sp80808/Highway-Code-Master/internal/router"
	"github.com/sp80808/Highway-Code-Master/internal/sound"
	"github.com/sp80808/Highway-Code-Master/internal/store"
)

// failingResultRepo rejects every append.
type failingResultRepo struct {
	appends int
}

func (r *failingResultRepo) Append(context.Context, store.QuizResult) error {
	r.appends++
	return errors.New("disk full")
}

func (r *failingResultRepo) Recent(context.Context, int) ([]store.QuizResult, error) {
	return nil, nil
}

func TestAdvanceCompletesWhenResultAppendFails(t *testing.T) {
	kv := store.NewMemoryKV()
	snaps := quizcore.NewSnapshotStore(kv)

	session, err := quizcore.NewSession("Road Signs", []quizcore.Question{
		{Text: "Q?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0},
	}, snaps)
	if err != nil {
		t.Fatal(err)
	}
	if err := session.Select(0); err != nil {
		t.Fatal(err)
	}
	if _, err := session.Submit(); err != nil {
		t.Fatal(err)
	}

	repo := &failingResultRepo{}
	s := Resume(session, nil, snaps, progression.NewXPStore(kv), repo, sound.Silent{})

	_, cmd := s.advance()
	if repo.appends != 1 {
		t.Fatalf("appends = %d, want 1", repo.appends)
	}
	if cmd == nil {
		t.Fatal("terminal advance must still swap in the results screen")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
}
