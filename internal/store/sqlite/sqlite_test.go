package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/chronline/chronline/internal/store"
	"github.com/chronline/chronline/internal/store/storetest"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	db, err := sql.Open("sqlite", "file::memory:")
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	s, err := NewWithDB(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestSqliteStore_Compliance(t *testing.T) {
	storetest.Run(t, newTestStore)
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "chronline.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = db.Close() }()
	if err := EnsureSchema(db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
}
