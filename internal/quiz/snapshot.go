package quiz

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sp80808/Highway-Code-Master/internal/store"
)

// Snapshot is the persisted form of an in-progress session. It is
// written whole on every answer-affecting transition and deleted when
// the session completes. There is no versioning: a snapshot that fails
// to parse is treated as absent.
type Snapshot struct {
	Questions     []Question `json:"questions"`
	Category      string     `json:"category"`
	CurrentIndex  int        `json:"currentIndex"`
	Score         int        `json:"score"`
	AnswerHistory []int      `json:"answerHistory"`
}

// SnapshotStore persists quiz snapshots under a single well-known key.
type SnapshotStore struct {
	kv store.KV
}

// NewSnapshotStore wraps a KV store for snapshot persistence.
func NewSnapshotStore(kv store.KV) *SnapshotStore {
	return &SnapshotStore{kv: kv}
}

// Save serializes and durably stores the snapshot, overwriting any
// previous one. Persistence failures are logged and swallowed: a lost
// snapshot only costs the resume affordance.
func (st *SnapshotStore) Save(snap Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to encode quiz snapshot: %v\n", err)
		return
	}
	if err := st.kv.Save(store.KeyQuizSnapshot, string(data)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save quiz snapshot: %v\n", err)
	}
}

// Load returns the stored snapshot, or nil if none exists or the stored
// data does not parse or is structurally unusable.
func (st *SnapshotStore) Load() *Snapshot {
	raw, ok, err := st.kv.Load(store.KeyQuizSnapshot)
	if err != nil || !ok {
		return nil
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil
	}
	if !snap.valid() {
		return nil
	}
	return &snap
}

// Clear deletes any stored snapshot.
func (st *SnapshotStore) Clear() {
	if err := st.kv.Delete(store.KeyQuizSnapshot); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to clear quiz snapshot: %v\n", err)
	}
}

// valid applies the structural invariants a resumable snapshot must
// hold. Anything outside them is discarded rather than resumed.
func (s *Snapshot) valid() bool {
	n := len(s.Questions)
	if n == 0 {
		return false
	}
	if s.CurrentIndex < 0 || s.CurrentIndex >= n {
		return false
	}
	h := len(s.AnswerHistory)
	if h != s.CurrentIndex && h != s.CurrentIndex+1 {
		return false
	}
	for _, a := range s.AnswerHistory {
		if a < 0 || a >= OptionCount {
			return false
		}
	}
	if s.Score < 0 || s.Score > h {
		return false
	}
	for _, q := range s.Questions {
		if len(q.Options) != OptionCount || q.CorrectIndex < 0 || q.CorrectIndex >= OptionCount {
			return false
		}
	}
	return true
}

// Restore reconstructs a Session from a snapshot. The question at
// CurrentIndex is always presented unanswered: if the snapshot was
// taken mid-reveal (history runs one past the index), the trailing
// entry is dropped and the score adjusted so the learner answers that
// question again.
func Restore(snap *Snapshot, snapshots *SnapshotStore) (*Session, error) {
	if snap == nil || !snap.valid() {
		return nil, ErrNoQuestions
	}

	score := snap.Score
	history := make([]int, len(snap.AnswerHistory))
	copy(history, snap.AnswerHistory)

	if len(history) == snap.CurrentIndex+1 {
		last := history[len(history)-1]
		history = history[:len(history)-1]
		if last == snap.Questions[snap.CurrentIndex].CorrectIndex && score > 0 {
			score--
		}
	}

	return &Session{
		category:  snap.Category,
		questions: snap.Questions,
		index:     snap.CurrentIndex,
		score:     score,
		history:   history,
		selected:  -1,
		phase:     PhaseInProgress,
		snapshots: snapshots,
	}, nil
}
