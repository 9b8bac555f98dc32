// Package storetest holds a driver-agnostic compliance suite for store.Store
// implementations.
package storetest

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/chronline/chronline/internal/model"
	"github.com/chronline/chronline/internal/store"
)

func intPtr(v int) *int { return &v }

// Run exercises the entry-history contract against a store.Store
// implementation. makeStore must return a clean, isolated store.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()
	userID := "u-" + uuid.New().String()

	first, err := s.Entries().Append(ctx, userID, []model.RawEntry{
		{Date: "2024-01-20", App: "Instagram", TimeMinutes: model.NewMinutes(120), Pickups: intPtr(15)},
		{Date: "2024-01-20", App: "Gmail", TimeMinutes: model.NewMinutes(30), Category: "Productivity"},
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("Append returned %d entries, want 2", len(first))
	}
	for _, se := range first {
		if se.EntryID == "" || se.UserID != userID || se.CreationTime.IsZero() {
			t.Fatalf("Append produced incomplete entry: %+v", se)
		}
	}

	if _, err := s.Entries().Append(ctx, userID, []model.RawEntry{
		{Date: "2024-01-21", App: "Netflix", TimeMinutes: model.NewMinutes(45)},
	}); err != nil {
		t.Fatalf("second Append: %v", err)
	}

	list, err := s.Entries().List(ctx, userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("List returned %d entries, want 3", len(list))
	}
	// Insertion order and field round trip.
	if list[0].App != "Instagram" || list[1].App != "Gmail" || list[2].App != "Netflix" {
		t.Fatalf("List order broken: %s, %s, %s", list[0].App, list[1].App, list[2].App)
	}
	if !list[0].TimeMinutes.Valid || list[0].TimeMinutes.Value != 120 {
		t.Fatalf("minutes round trip: %+v", list[0].TimeMinutes)
	}
	if list[0].Pickups == nil || *list[0].Pickups != 15 {
		t.Fatalf("pickups round trip: %+v", list[0].Pickups)
	}
	if list[1].Category != "Productivity" {
		t.Fatalf("category round trip: %q", list[1].Category)
	}
	if list[2].Pickups != nil || list[2].Category != "" {
		t.Fatalf("absent optionals must stay absent: %+v", list[2])
	}

	if n, err := s.Entries().Count(ctx, userID); err != nil || n != 3 {
		t.Fatalf("Count: n=%d err=%v", n, err)
	}

	// Unknown users have an empty history, not an error.
	if other, err := s.Entries().List(ctx, "u-nobody"); err != nil || len(other) != 0 {
		t.Fatalf("List unknown user: n=%d err=%v", len(other), err)
	}
	if n, err := s.Entries().Count(ctx, "u-nobody"); err != nil || n != 0 {
		t.Fatalf("Count unknown user: n=%d err=%v", n, err)
	}

	if err := s.Entries().Clear(ctx, userID); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n, err := s.Entries().Count(ctx, userID); err != nil || n != 0 {
		t.Fatalf("Count after Clear: n=%d err=%v", n, err)
	}
	if list, err := s.Entries().List(ctx, userID); err != nil || len(list) != 0 {
		t.Fatalf("List after Clear: n=%d err=%v", len(list), err)
	}
}
