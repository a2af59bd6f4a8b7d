package store

import (
	"database/sql"
	"errors"
	"sync"
)

// KV is the small key-value persistence surface the application state
// lives behind. Both persisted records (the XP counter and the quiz
// snapshot) are plain strings under fixed keys, so the interface stays
// deliberately narrow and tests can substitute MemoryKV.
type KV interface {
	// Load returns the stored value and whether the key exists.
	Load(key string) (string, bool, error)

	// Save stores value under key, overwriting any previous value.
	Save(key, value string) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}

// Well-known keys, carried over from the original client's local store.
const (
	KeyXP           = "highway_code_master_xp"
	KeyQuizSnapshot = "highway_code_quiz_progress"
)

// sqliteKV implements KV on the store's kv table.
type sqliteKV struct {
	db *sql.DB
}

func (s *sqliteKV) Load(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *sqliteKV) Save(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *sqliteKV) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

// MemoryKV is an in-memory KV for tests.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string]string

	// FailSaves makes Save return an error, for exercising the
	// fire-and-forget write path.
	FailSaves bool
}

// NewMemoryKV creates an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Load(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Save(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves {
		return errors.New("save disabled")
	}
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
