package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/chronline/chronline/internal/services"
	"github.com/chronline/chronline/internal/store/memory"
)

func newTestRouter() *mux.Router {
	svc := services.NewEntryService(memory.New())
	h := NewEntryHandler(svc)

	r := mux.NewRouter()
	r.HandleFunc("/api/users/{userId}/entries", h.AddEntries).Methods("POST")
	r.HandleFunc("/api/users/{userId}/entries", h.ClearEntries).Methods("DELETE")
	r.HandleFunc("/api/users/{userId}/analytics", h.GetAnalytics).Methods("GET")
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var out map[string]interface{}
	if rr.Body.Len() > 0 {
		if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid json response %q: %v", rr.Body.String(), err)
		}
	}
	return rr, out
}

func TestAddEntriesWrappedBody(t *testing.T) {
	r := newTestRouter()

	body := `{"entries":[
		{"date":"2024-01-15","app":"Instagram","time_minutes":120,"pickups":30},
		{"date":"2024-01-15","app":"Gmail","time_minutes":30,"pickups":10}
	]}`
	rr, out := doJSON(t, r, "POST", "/api/users/alice/entries", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if out["success"] != true {
		t.Fatalf("expected success=true, got %v", out["success"])
	}
	if out["total_entries"] != float64(2) {
		t.Fatalf("total_entries = %v, want 2", out["total_entries"])
	}
	analytics, ok := out["analytics"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing analytics object: %v", out)
	}
	metrics := analytics["metrics"].(map[string]interface{})
	if metrics["total_screen_time_hours"] != 2.5 {
		t.Fatalf("total hours = %v, want 2.5", metrics["total_screen_time_hours"])
	}
}

func TestAddEntriesBareArrayBody(t *testing.T) {
	r := newTestRouter()

	body := `[{"date":"2024-01-15","app":"TikTok","time_minutes":"90"}]`
	rr, out := doJSON(t, r, "POST", "/api/users/alice/entries", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if out["total_entries"] != float64(1) {
		t.Fatalf("total_entries = %v, want 1", out["total_entries"])
	}
}

func TestAddEntriesValidation(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		name string
		path string
		body string
	}{
		{"invalid user id", "/api/users/ALICE/entries", `{"entries":[{"date":"2024-01-15","app":"X","time_minutes":5}]}`},
		{"empty batch", "/api/users/alice/entries", `{"entries":[]}`},
		{"bad json", "/api/users/alice/entries", `{"entries":`},
		{"bad date", "/api/users/alice/entries", `{"entries":[{"date":"Jan 15","app":"X","time_minutes":5}]}`},
		{"missing app", "/api/users/alice/entries", `{"entries":[{"date":"2024-01-15","app":"","time_minutes":5}]}`},
		{"non numeric minutes", "/api/users/alice/entries", `{"entries":[{"date":"2024-01-15","app":"X","time_minutes":"lots"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr, out := doJSON(t, r, "POST", tc.path, tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
			}
			if out["code"] != float64(400) {
				t.Fatalf("expected error envelope, got %v", out)
			}
		})
	}
}

func TestGetAnalyticsAccumulatesAcrossBatches(t *testing.T) {
	r := newTestRouter()

	doJSON(t, r, "POST", "/api/users/bob/entries", `{"entries":[{"date":"2024-01-15","app":"Instagram","time_minutes":60}]}`)
	doJSON(t, r, "POST", "/api/users/bob/entries", `{"entries":[{"date":"2024-01-16","app":"Netflix","time_minutes":120}]}`)

	rr, out := doJSON(t, r, "GET", "/api/users/bob/analytics", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if out["total_entries"] != float64(2) {
		t.Fatalf("total_entries = %v, want 2", out["total_entries"])
	}
	if out["processed_entries_count"] != float64(2) {
		t.Fatalf("processed_entries_count = %v, want 2", out["processed_entries_count"])
	}
	metrics := out["metrics"].(map[string]interface{})
	if metrics["total_screen_time_hours"] != 3.0 {
		t.Fatalf("total hours = %v, want 3.0", metrics["total_screen_time_hours"])
	}
	if metrics["days_tracked"] != float64(2) {
		t.Fatalf("days_tracked = %v, want 2", metrics["days_tracked"])
	}
}

func TestGetAnalyticsUnknownUser(t *testing.T) {
	r := newTestRouter()

	rr, out := doJSON(t, r, "GET", "/api/users/ghost/analytics", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if out["total_entries"] != float64(0) {
		t.Fatalf("total_entries = %v, want 0", out["total_entries"])
	}
	score := out["chronic_score"].(map[string]interface{})
	if score["level"] != "Unknown" {
		t.Fatalf("level = %v, want Unknown", score["level"])
	}
}

func TestClearEntries(t *testing.T) {
	r := newTestRouter()

	doJSON(t, r, "POST", "/api/users/carol/entries", `{"entries":[
		{"date":"2024-01-15","app":"Instagram","time_minutes":60},
		{"date":"2024-01-15","app":"Gmail","time_minutes":15}
	]}`)

	rr, out := doJSON(t, r, "DELETE", "/api/users/carol/entries", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if out["message"] != "Cleared 2 entries" {
		t.Fatalf("message = %v", out["message"])
	}

	_, out = doJSON(t, r, "GET", "/api/users/carol/analytics", "")
	if out["total_entries"] != float64(0) {
		t.Fatalf("total_entries after clear = %v, want 0", out["total_entries"])
	}
}

func TestCORSMiddleware(t *testing.T) {
	r := newTestRouter()
	h := CORS("https://app.example.com")(r)

	req := httptest.NewRequest("OPTIONS", "/api/users/alice/analytics", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("preflight expected 204, got %d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("allow-origin = %q", got)
	}
}
