package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	respond "github.com/chronline/chronline/internal/api/respond"
	"github.com/chronline/chronline/internal/api/validate"
	"github.com/chronline/chronline/internal/model"
	"github.com/chronline/chronline/internal/services"
)

// EntryHandler serves per-user screen-time entry and analytics endpoints.
type EntryHandler struct {
	svc *services.EntryService
}

func NewEntryHandler(svc *services.EntryService) *EntryHandler { return &EntryHandler{svc: svc} }

type analyticsPayload struct {
	Metrics      model.Metrics      `json:"metrics"`
	ChronicScore model.ChronicScore `json:"chronic_score"`
	Tips         []model.Tip        `json:"tips"`
}

// AddEntries handles POST /api/users/{userId}/entries.
// Accepts either a bare JSON array of entries or {"entries": [...]}.
func (h *EntryHandler) AddEntries(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if err := validate.UserID(userID); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	entries, err := decodeEntries(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.Entries(entries); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	total, result, err := h.svc.AddEntries(r.Context(), userID, entries)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}

	respond.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success":       true,
		"message":       fmt.Sprintf("Added %d entries", len(entries)),
		"total_entries": total,
		"analytics": analyticsPayload{
			Metrics:      result.Metrics,
			ChronicScore: result.ChronicScore,
			Tips:         result.Tips,
		},
	})
}

// GetAnalytics handles GET /api/users/{userId}/analytics.
// An unknown user is not an error; it yields the empty-history analytics.
func (h *EntryHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if err := validate.UserID(userID); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	total, result, err := h.svc.Analytics(r.Context(), userID)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}

	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":                 true,
		"metrics":                 result.Metrics,
		"chronic_score":           result.ChronicScore,
		"tips":                    result.Tips,
		"processed_entries_count": result.ProcessedEntriesCount,
		"total_entries":           total,
	})
}

// ClearEntries handles DELETE /api/users/{userId}/entries.
func (h *EntryHandler) ClearEntries(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if err := validate.UserID(userID); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	removed, err := h.svc.ClearEntries(r.Context(), userID)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}

	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Cleared %d entries", removed),
	})
}

func decodeEntries(r *http.Request) ([]model.RawEntry, error) {
	dec := json.NewDecoder(r.Body)

	var body struct {
		Entries []model.RawEntry `json:"entries"`
	}
	var bare []model.RawEntry

	// Peek at the first token to decide between the two accepted shapes.
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid json")
	}
	if len(raw) > 0 && raw[0] == '[' {
		if err := json.Unmarshal(raw, &bare); err != nil {
			return nil, fmt.Errorf("invalid entries array")
		}
		return bare, nil
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("invalid request body")
	}
	return body.Entries, nil
}
