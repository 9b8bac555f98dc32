// Package postgres provides a store.Store backed by PostgreSQL through the
// pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/chronline/chronline/internal/model"
	"github.com/chronline/chronline/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies
// connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Entries() store.Entries { return &entries{db: s.db} }

// HealthPing implements health.HealthPinger.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

const schema = `
CREATE TABLE IF NOT EXISTS entries (
    entry_id      TEXT PRIMARY KEY,
    user_id       TEXT NOT NULL,
    seq           BIGSERIAL,
    entry_date    TEXT NOT NULL,
    app           TEXT NOT NULL,
    time_minutes  DOUBLE PRECISION NOT NULL,
    category      TEXT,
    pickups       INTEGER,
    creation_time TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_entries_user ON entries(user_id, seq);
`

// Bootstrap ensures the schema exists. Run once at startup; safe to repeat.
func Bootstrap(ctx context.Context, dsn string) error {
	if dsn == "" {
		return nil
	}
	db, err := Open(dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	_, err = db.ExecContext(ctx, schema)
	return err
}

type entries struct{ db *sql.DB }

func (e *entries) Append(ctx context.Context, userID string, raw []model.RawEntry) ([]*model.StoredEntry, error) {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	created := make([]*model.StoredEntry, 0, len(raw))
	for _, r := range raw {
		se := &model.StoredEntry{
			EntryID:  uuid.New().String(),
			UserID:   userID,
			RawEntry: r,
		}
		var category interface{}
		if r.Category != "" {
			category = r.Category
		}
		var pickups interface{}
		if r.Pickups != nil {
			pickups = *r.Pickups
		}
		var insertedAt time.Time
		row := tx.QueryRowContext(ctx, `
            INSERT INTO entries (entry_id, user_id, entry_date, app, time_minutes, category, pickups)
            VALUES ($1,$2,$3,$4,$5,$6,$7)
            RETURNING creation_time
        `, se.EntryID, userID, r.Date, r.App, r.TimeMinutes.Value, category, pickups)
		if err := row.Scan(&insertedAt); err != nil {
			return nil, err
		}
		se.CreationTime = insertedAt
		created = append(created, se)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return created, nil
}

func (e *entries) List(ctx context.Context, userID string) ([]*model.StoredEntry, error) {
	rows, err := e.db.QueryContext(ctx, `
        SELECT entry_id, entry_date, app, time_minutes, category, pickups, creation_time
        FROM entries WHERE user_id=$1 ORDER BY seq
    `, userID)
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
	err := e.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries WHERE user_id=$1`, userID).Scan(&n)
	return n, err
}

func (e *entries) Clear(ctx context.Context, userID string) error {
	_, err := e.db.ExecContext(ctx, `DELETE FROM entries WHERE user_id=$1`, userID)
	return err
}
