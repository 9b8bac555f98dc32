// Package memory provides an in-process store.Store keyed by user id. It is
// the default driver and matches the original deployment model: history lives
// for the lifetime of the process.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chronline/chronline/internal/model"
	"github.com/chronline/chronline/internal/store"
)

// New returns an empty in-memory store.
func New() store.Store {
	return &memStore{histories: map[string][]*model.StoredEntry{}}
}

type memStore struct {
	mu        sync.RWMutex
	histories map[string][]*model.StoredEntry
}

func (s *memStore) Entries() store.Entries { return &entries{s: s} }

type entries struct{ s *memStore }

func (e *entries) Append(ctx context.Context, userID string, raw []model.RawEntry) ([]*model.StoredEntry, error) {
	now := time.Now().UTC()
	created := make([]*model.StoredEntry, 0, len(raw))
	for _, r := range raw {
		created = append(created, &model.StoredEntry{
			EntryID:      uuid.New().String(),
			UserID:       userID,
			RawEntry:     r,
			CreationTime: now,
		})
	}

	e.s.mu.Lock()
	e.s.histories[userID] = append(e.s.histories[userID], created...)
	e.s.mu.Unlock()
	return created, nil
}

func (e *entries) List(ctx context.Context, userID string) ([]*model.StoredEntry, error) {
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()
	history := e.s.histories[userID]
	// Snapshot: callers must not observe later appends through the slice.
	out := make([]*model.StoredEntry, len(history))
	copy(out, history)
	return out, nil
}

func (e *entries) Count(ctx context.Context, userID string) (int, error) {
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()
	return len(e.s.histories[userID]), nil
}

func (e *entries) Clear(ctx context.Context, userID string) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	delete(e.s.histories, userID)
	return nil
}
