package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheckHealthReflectsBoundState(t *testing.T) {
	h := NewHealthHandler()

	state := false
	BindServiceHealth(func() bool { return state })
	defer BindServiceHealth(func() bool { return healthyFlag.Load() == 1 })

	req := httptest.NewRequest("GET", "/api/health", nil)
	rr := httptest.NewRecorder()
	h.CheckHealth(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["status"] != "unhealthy" {
		t.Fatalf("expected unhealthy, got %v", body["status"])
	}

	state = true
	rr = httptest.NewRecorder()
	h.CheckHealth(rr, req)
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["status"] != "healthy" {
		t.Fatalf("expected healthy, got %v", body["status"])
	}
	if body["timestamp"] == "" {
		t.Fatal("expected timestamp in body")
	}
}
