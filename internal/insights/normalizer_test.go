package insights

import (
	"testing"

	"github.com/chronline/chronline/internal/model"
)

func intPtr(v int) *int { return &v }

func TestNormalize_PickupInference(t *testing.T) {
	records := Normalize([]model.RawEntry{
		{Date: "2024-01-18", App: "SomeApp", TimeMinutes: model.NewMinutes(10)},
	})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Pickups != 1 {
		t.Errorf("expected inferred pickups=1, got %d", records[0].Pickups)
	}
}

func TestNormalize_ZeroPickupsWithUsage(t *testing.T) {
	records := Normalize([]model.RawEntry{
		{Date: "2024-01-18", App: "SomeApp", TimeMinutes: model.NewMinutes(10), Pickups: intPtr(0)},
	})
	if records[0].Pickups != 1 {
		t.Errorf("expected pickups bumped to 1, got %d", records[0].Pickups)
	}
}

func TestNormalize_ProvidedPickupsKept(t *testing.T) {
	records := Normalize([]model.RawEntry{
		{Date: "2024-01-18", App: "SomeApp", TimeMinutes: model.NewMinutes(10), Pickups: intPtr(7)},
	})
	if records[0].Pickups != 7 {
		t.Errorf("expected pickups=7, got %d", records[0].Pickups)
	}
}

func TestNormalize_CategoryResolution(t *testing.T) {
	records := Normalize([]model.RawEntry{
		{Date: "2024-01-18", App: "UnknownApp", TimeMinutes: model.NewMinutes(30), Pickups: intPtr(2)},
		{Date: "2024-01-18", App: "Instagram", TimeMinutes: model.NewMinutes(30)},
		{Date: "2024-01-18", App: "Instagram", TimeMinutes: model.NewMinutes(30), Category: "Custom Label"},
	})
	if records[0].Category != "Other" {
		t.Errorf("uncategorizable app: got %q, want Other", records[0].Category)
	}
	if records[1].Category != "Social Media" {
		t.Errorf("auto-categorized app: got %q, want Social Media", records[1].Category)
	}
	// Caller-supplied category is accepted verbatim.
	if records[2].Category != "Custom Label" {
		t.Errorf("provided category: got %q, want Custom Label", records[2].Category)
	}
}

func TestNormalize_DropsInvalidRows(t *testing.T) {
	records := Normalize([]model.RawEntry{
		{Date: "not-a-date", App: "Instagram", TimeMinutes: model.NewMinutes(30)},
		{Date: "2024-01-18", App: "", TimeMinutes: model.NewMinutes(30)},
		{Date: "2024-01-18", App: "Instagram", TimeMinutes: model.Minutes{}},
		{Date: "2024-01-18", App: "Instagram", TimeMinutes: model.NewMinutes(30)},
	})
	if len(records) != 1 {
		t.Fatalf("expected only the valid row retained, got %d", len(records))
	}
	if records[0].App != "Instagram" || records[0].Date.Format(DateLayout) != "2024-01-18" {
		t.Errorf("unexpected surviving record: %+v", records[0])
	}
}

func TestNormalize_DerivedHours(t *testing.T) {
	records := Normalize([]model.RawEntry{
		{Date: "2024-01-18", App: "Instagram", TimeMinutes: model.NewMinutes(90)},
	})
	if records[0].TimeHours != 1.5 {
		t.Errorf("expected 1.5h, got %v", records[0].TimeHours)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	records := Normalize(nil)
	if len(records) != 0 {
		t.Fatalf("expected empty output, got %d records", len(records))
	}
}
