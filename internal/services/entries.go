package services

import (
	"context"

	"github.com/chronline/chronline/internal/insights"
	"github.com/chronline/chronline/internal/model"
	"github.com/chronline/chronline/internal/store"
)

// EntryService owns a user's screen-time history and derives analytics
// from it on demand.
type EntryService struct {
	store store.Store
}

func NewEntryService(s store.Store) *EntryService {
	return &EntryService{store: s}
}

// AddEntries appends a batch to the user's history and re-analyzes the
// full history including the new rows.
func (s *EntryService) AddEntries(ctx context.Context, userID string, entries []model.RawEntry) (int, *model.AnalyticsResult, error) {
	if _, err := s.store.Entries().Append(ctx, userID, entries); err != nil {
		return 0, nil, err
	}
	history, err := s.store.Entries().List(ctx, userID)
	if err != nil {
		return 0, nil, err
	}
	result := insights.Analyze(rawEntries(history))
	return len(history), &result, nil
}

// Analytics recomputes the analytics over the user's stored history.
func (s *EntryService) Analytics(ctx context.Context, userID string) (int, *model.AnalyticsResult, error) {
	history, err := s.store.Entries().List(ctx, userID)
	if err != nil {
		return 0, nil, err
	}
	result := insights.Analyze(rawEntries(history))
	return len(history), &result, nil
}

// ClearEntries drops the user's history and reports how many rows were removed.
func (s *EntryService) ClearEntries(ctx context.Context, userID string) (int, error) {
	n, err := s.store.Entries().Count(ctx, userID)
	if err != nil {
		return 0, err
	}
	if err := s.store.Entries().Clear(ctx, userID); err != nil {
		return 0, err
	}
	return n, nil
}

func rawEntries(stored []*model.StoredEntry) []model.RawEntry {
	raw := make([]model.RawEntry, 0, len(stored))
	for _, e := range stored {
		raw = append(raw, e.RawEntry)
	}
	return raw
}
