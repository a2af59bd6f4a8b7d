package quiz

import (
	"encoding/json"
	"testing"

	"github.com/sp80808/Highway-Code-Master/internal/store"
)

func newTestStore(t *testing.T) *SnapshotStore {
	t.Helper()
	return NewSnapshotStore(store.NewMemoryKV())
}

func TestSnapshotWrittenOnSubmitAndAdvance(t *testing.T) {
	st := newTestStore(t)
	s, err := NewSession("Road Signs", testQuestions(3), st)
	if err != nil {
		t.Fatal(err)
	}

	if st.Load() != nil {
		t.Fatal("no snapshot expected before first submit")
	}

	mustAnswer(t, s, 1)
	snap := st.Load()
	if snap == nil {
		t.Fatal("snapshot expected after submit")
	}
	if snap.CurrentIndex != 0 || snap.Score != 1 || len(snap.AnswerHistory) != 1 {
		t.Fatalf("snapshot = %+v", snap)
	}

	s.Advance()
	snap = st.Load()
	if snap == nil || snap.CurrentIndex != 1 || len(snap.AnswerHistory) != 1 {
		t.Fatalf("snapshot after advance = %+v", snap)
	}
}

func TestSnapshotClearedOnCompletion(t *testing.T) {
	st := newTestStore(t)
	s, _ := NewSession("Road Signs", testQuestions(1), st)

	mustAnswer(t, s, 1)
	if st.Load() == nil {
		t.Fatal("snapshot expected mid-session")
	}

	if _, done, err := s.Advance(); err != nil || !done {
		t.Fatalf("terminal advance: done=%v err=%v", done, err)
	}
	if st.Load() != nil {
		t.Fatal("snapshot must be cleared on completion")
	}
}

func TestResumeRoundTrip(t *testing.T) {
	st := newTestStore(t)
	s, _ := NewSession("Safety Margins", testQuestions(5), st)

	// Answer two questions (both correct) and advance into the third.
	mustAnswer(t, s, 1)
	s.Advance()
	mustAnswer(t, s, 1)
	s.Advance()

	snap := st.Load()
	if snap == nil {
		t.Fatal("snapshot expected")
	}
	if snap.CurrentIndex != 2 || snap.Score != 2 || len(snap.AnswerHistory) != 2 {
		t.Fatalf("snapshot = %+v", snap)
	}

	restored, err := Restore(snap, st)
	if err != nil {
		t.Fatal(err)
	}
	if restored.Index() != 2 || restored.Score() != 2 || restored.Phase() != PhaseInProgress {
		t.Fatalf("restored: index=%d score=%d phase=%v", restored.Index(), restored.Score(), restored.Phase())
	}
	if restored.Selected() != -1 {
		t.Fatal("restored question must start unanswered")
	}
	if restored.Category() != "Safety Margins" || restored.Total() != 5 {
		t.Fatalf("category=%q total=%d", restored.Category(), restored.Total())
	}

	// The restored session finishes normally.
	for i := 2; i < 5; i++ {
		mustAnswer(t, restored, 1)
		restored.Advance()
	}
	if restored.Score() != 5 || restored.Phase() != PhaseComplete {
		t.Fatalf("final: score=%d phase=%v", restored.Score(), restored.Phase())
	}
	if st.Load() != nil {
		t.Fatal("snapshot must be gone after the restored session completes")
	}
}

func TestRestoreMidRevealDropsTrailingAnswer(t *testing.T) {
	st := newTestStore(t)
	s, _ := NewSession("Road Signs", testQuestions(3), st)

	// Submit on Q0 (correct) but never advance: the snapshot is taken
	// mid-reveal with history one past the index.
	mustAnswer(t, s, 1)

	snap := st.Load()
	if snap == nil || len(snap.AnswerHistory) != snap.CurrentIndex+1 {
		t.Fatalf("snapshot = %+v", snap)
	}

	restored, err := Restore(snap, st)
	if err != nil {
		t.Fatal(err)
	}
	// The learner answers Q0 again; the earlier point is taken back.
	if restored.Index() != 0 || restored.Score() != 0 || len(restored.History()) != 0 {
		t.Fatalf("restored: index=%d score=%d history=%v", restored.Index(), restored.Score(), restored.History())
	}
}

func TestRestoreMidRevealWrongAnswerKeepsScore(t *testing.T) {
	st := newTestStore(t)
	s, _ := NewSession("Road Signs", testQuestions(2), st)

	mustAnswer(t, s, 1) // correct
	s.Advance()
	mustAnswer(t, s, 0) // wrong, mid-reveal

	restored, err := Restore(st.Load(), st)
	if err != nil {
		t.Fatal(err)
	}
	if restored.Index() != 1 || restored.Score() != 1 || len(restored.History()) != 1 {
		t.Fatalf("restored: index=%d score=%d history=%v", restored.Index(), restored.Score(), restored.History())
	}
}

func TestLoadDiscardsCorruptData(t *testing.T) {
	kv := store.NewMemoryKV()
	st := NewSnapshotStore(kv)

	cases := map[string]string{
		"garbage":             "not json at all{",
		"empty object":        "{}",
		"bad index":           `{"questions":[{"id":"q","text":"t","options":["a","b","c","d"],"correctIndex":0}],"currentIndex":5,"score":0,"answerHistory":[]}`,
		"score exceeds":       `{"questions":[{"id":"q","text":"t","options":["a","b","c","d"],"correctIndex":0}],"currentIndex":0,"score":3,"answerHistory":[]}`,
		"bad options":         `{"questions":[{"id":"q","text":"t","options":["a","b"],"correctIndex":0}],"currentIndex":0,"score":0,"answerHistory":[]}`,
		"answer out of range": `{"questions":[{"id":"q","text":"t","options":["a","b","c","d"],"correctIndex":0}],"currentIndex":0,"score":0,"answerHistory":[9]}`,
		"negative answer":     `{"questions":[{"id":"q","text":"t","options":["a","b","c","d"],"correctIndex":0}],"currentIndex":0,"score":0,"answerHistory":[-1]}`,
	}
	for name, raw := range cases {
		if err := kv.Save(store.KeyQuizSnapshot, raw); err != nil {
			t.Fatal(err)
		}
		if snap := st.Load(); snap != nil {
			t.Errorf("%s: expected nil, got %+v", name, snap)
		}
	}
}

func TestSnapshotJSONShape(t *testing.T) {
	st := newTestStore(t)
	s, _ := NewSession("Documents & Accidents", testQuestions(1), st)
	mustAnswer(t, s, 1)

	snap := st.Load()
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"questions", "category", "currentIndex", "score", "answerHistory"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
}
