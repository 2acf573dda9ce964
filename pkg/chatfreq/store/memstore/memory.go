package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/chatfreq/chatfreq/pkg/chatfreq/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu   sync.RWMutex
	runs map[string]store.Run
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{runs: make(map[string]store.Run)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveRun stores a run, keyed by ID.
func (s *Store) SaveRun(ctx context.Context, r store.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs[r.ID] = copyRun(r)
	return nil
}

// GetRun returns a run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.runs[id]; ok {
		return copyRun(r), true, nil
	}
	return store.Run{}, false, nil
}

// ListRuns returns archived runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	runs := make([]store.Run, 0, len(s.runs))
	for _, r := range s.runs {
		runs = append(runs, copyRun(r))
	}
	sort.Slice(runs, func(i, j int) bool {
		if !runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].CreatedAt.After(runs[j].CreatedAt)
		}
		return runs[i].ID > runs[j].ID
	})
	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// TopWords returns a run's ranked words. A negative k returns all of them.
func (s *Store) TopWords(ctx context.Context, runID string, k int) ([]store.WordCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.runs[runID]
	if !ok {
		return nil, nil
	}
	words := make([]store.WordCount, len(r.Words))
	copy(words, r.Words)
	sort.Slice(words, func(i, j int) bool { return words[i].Rank < words[j].Rank })
	if k >= 0 && len(words) > k {
		words = words[:k]
	}
	return words, nil
}

func copyRun(r store.Run) store.Run {
	words := make([]store.WordCount, len(r.Words))
	copy(words, r.Words)
	r.Words = words
	return r
}
