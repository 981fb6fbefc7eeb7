package storage

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is a mutex-guarded in-memory ScoreStore for local runs and
// tests.
type MemoryStore struct {
	mu     sync.RWMutex
	scores map[int64]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		scores: make(map[int64]int64),
	}
}

func (s *MemoryStore) Score(ctx context.Context, chatID int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Absent chats read as 0, never as an error.
	return s.scores[chatID], nil
}

func (s *MemoryStore) IncrScore(ctx context.Context, chatID, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scores[chatID] += delta
	return s.scores[chatID], nil
}

func (s *MemoryStore) ChatIDs(ctx context.Context) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.scores))
	for id := range s.scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *MemoryStore) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
