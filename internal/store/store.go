package store

import (
	"context"

	"github.com/chronline/chronline/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (memory, sqlite,
// postgres).
type Store interface {
	Entries() Entries
}

// Entries is the per-user screen-time entry history. Append and Clear are the
// only mutations; List returns a snapshot in insertion order.
type Entries interface {
	Append(ctx context.Context, userID string, entries []model.RawEntry) ([]*model.StoredEntry, error)
	List(ctx context.Context, userID string) ([]*model.StoredEntry, error)
	Count(ctx context.Context, userID string) (int, error)
	Clear(ctx context.Context, userID string) error
}
