// Package sqlite provides a store.Store backed by a local SQLite file via the
// pure-Go modernc driver.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/chronline/chronline/internal/model"
	"github.com/chronline/chronline/internal/store"
)

// New opens (or creates) a SQLite database file and ensures the schema.
func New(path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB wires a store from an existing connection (used by the factory
// and tests). The schema is ensured on construction.
func NewWithDB(db *sql.DB) (store.Store, error) {
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Entries() store.Entries { return &entries{db: s.db} }

// HealthPing implements health.HealthPinger.
func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type entries struct{ db *sql.DB }

func (e *entries) Append(ctx context.Context, userID string, raw []model.RawEntry) ([]*model.StoredEntry, error) {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	created := make([]*model.StoredEntry, 0, len(raw))
	for _, r := range raw {
		se := &model.StoredEntry{
			EntryID:      uuid.New().String(),
			UserID:       userID,
			RawEntry:     r,
			CreationTime: now,
		}
		var category interface{}
		if r.Category != "" {
			category = r.Category
		}
		var pickups interface{}
		if r.Pickups != nil {
			pickups = *r.Pickups
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO entries (entry_id, user_id, entry_date, app, time_minutes, category, pickups, creation_time) VALUES (?,?,?,?,?,?,?,?)`,
			se.EntryID, userID, r.Date, r.App, r.TimeMinutes.Value, category, pickups, now); err != nil {
			return nil, err
		}
		created = append(created, se)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return created, nil
}

func (e *entries) List(ctx context.Context, userID string) ([]*model.StoredEntry, error) {
	rows, err := e.db.QueryContext(ctx,
		`SELECT entry_id, entry_date, app, time_minutes, category, pickups, creation_time FROM entries WHERE user_id = ? ORDER BY rowid`, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []*model.StoredEntry{}
	for rows.Next() {
		se := &model.StoredEntry{UserID: userID}
		var minutes float64
		var category sql.NullString
		var pickups sql.NullInt64
		if err := rows.Scan(&se.EntryID, &se.Date, &se.App, &minutes, &category, &pickups, &se.CreationTime); err != nil {
			return nil, err
		}
		se.TimeMinutes = model.NewMinutes(minutes)
		if category.Valid {
			se.Category = category.String
		}
		if pickups.Valid {
			p := int(pickups.Int64)
			se.Pickups = &p
		}
		out = append(out, se)
	}
	return out, rows.Err()
}

func (e *entries) Count(ctx context.Context, userID string) (int, error) {
	var n int
	err := e.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries WHERE user_id = ?`, userID).Scan(&n)
	return n, err
}

func (e *entries) Clear(ctx context.Context, userID string) error {
	_, err := e.db.ExecContext(ctx, `DELETE FROM entries WHERE user_id = ?`, userID)
	return err
}
