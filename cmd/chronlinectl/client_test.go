package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPostEntries(t *testing.T) {
	var gotPath string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	payload := map[string]interface{}{
		"entries": []interface{}{
			map[string]interface{}{"date": "2024-01-15", "app": "Instagram", "time_minutes": 45.0},
		},
	}
	out, err := postEntries(srv.URL, "alice", payload)
	if err != nil {
		t.Fatalf("postEntries: %v", err)
	}
	if gotPath != "/api/users/alice/entries" {
		t.Fatalf("path = %q", gotPath)
	}
	var sent map[string]interface{}
	if err := json.Unmarshal(gotBody, &sent); err != nil {
		t.Fatalf("request body not json: %v", err)
	}
	if !strings.Contains(out, `"success":true`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestGetAnalyticsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Bad Request","code":400}`))
	}))
	defer srv.Close()

	if _, err := getAnalytics(srv.URL, "ALICE"); err == nil {
		t.Fatal("expected error for 400 response")
	} else if !strings.Contains(err.Error(), "http 400") {
		t.Fatalf("error should carry status: %v", err)
	}
}

func TestDeleteEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		_, _ = w.Write([]byte(`{"success":true,"message":"Cleared 3 entries"}`))
	}))
	defer srv.Close()

	out, err := deleteEntries(srv.URL, "alice")
	if err != nil {
		t.Fatalf("deleteEntries: %v", err)
	}
	if !strings.Contains(out, "Cleared 3 entries") {
		t.Fatalf("unexpected output: %s", out)
	}
}
