package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. Used in tests and when
// neither redis nor sqlite is configured; sessions die with the process.
type MemoryStore struct {
	mu   sync.Mutex
	recs map[string]memoryEntry
}

type memoryEntry struct {
	rec     Record
	expires time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{recs: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Put(_ context.Context, rec Record, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var expires time.Time
	if ttl > 0 {
		expires = time.Now().Add(ttl)
	}
	s.recs[rec.ID] = memoryEntry{rec: rec, expires: expires}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.recs[id]
	if !ok {
		return Record{}, false, nil
	}
	if !e.expires.IsZero() && time.Now().After(e.expires) {
		delete(s.recs, id)
		return Record{}, false, nil
	}
	return e.rec, true, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.recs, id)
	return nil
}
