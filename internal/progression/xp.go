package progression

import (
	"strconv"

	"github.com/sp80808/Highway-Code-Master/internal/store"
)

// PassMark is the UK theory test pass threshold (43/50 = 86%).
const PassMark = 0.86

// StudyTopicXP is awarded the first time a study topic is opened in a
// session.
const StudyTopicXP = 15

// QuizXP is the single authoritative XP award for a completed quiz:
// 10 XP per correct answer plus a 50 XP bonus at or above the pass
// mark. Both the award written to the store and the figure shown on
// the result screen come from here.
func QuizXP(score, total int) int {
	xp := score * 10
	if total > 0 && float64(score)/float64(total) >= PassMark {
		xp += 50
	}
	return xp
}

// XPStore is the persisted cumulative XP counter. The counter lives
// under a fixed key in the injected KV store and survives restarts for
// the lifetime of the install.
type XPStore struct {
	kv store.KV
}

// NewXPStore creates an XPStore over the given persistence.
func NewXPStore(kv store.KV) *XPStore {
	return &XPStore{kv: kv}
}

// XP returns the persisted total. Absent, unreadable or unparseable
// state degrades to 0; this never fails.
func (s *XPStore) XP() int {
	raw, ok, err := s.kv.Load(store.KeyXP)
	if err != nil || !ok {
		return 0
	}
	xp, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return xp
}

// AddXP adds amount to the stored total, persists the sum and returns
// the recomputed Progress for the new total. The write is
// fire-and-forget: a failed persist leaves the returned value ahead of
// what is durably stored, which is acceptable here.
func (s *XPStore) AddXP(amount int) Progress {
	total := s.XP() + amount
	_ = s.kv.Save(store.KeyXP, strconv.Itoa(total))
	return Calculate(total)
}
