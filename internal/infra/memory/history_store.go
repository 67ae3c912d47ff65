package memory

import (
	"context"
	"sync"

	"guidance-service/internal/domain"
)

// HistoryStore keeps assessment history in memory, newest entry first.
type HistoryStore struct {
	mu      sync.RWMutex
	entries map[string][]domain.HistoryEntry
}

func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		entries: make(map[string][]domain.HistoryEntry),
	}
}

func (s *HistoryStore) Save(_ context.Context, entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.UserID] = append([]domain.HistoryEntry{entry}, s.entries[entry.UserID]...)
	return nil
}

func (s *HistoryStore) List(_ context.Context, userID string) ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.entries[userID]
	out := make([]domain.HistoryEntry, len(entries))
	copy(out, entries)
	return out, nil
}
