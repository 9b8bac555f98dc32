package validate

import (
	"fmt"
	"regexp"
	"time"

	"github.com/chronline/chronline/internal/insights"
	"github.com/chronline/chronline/internal/model"
)

// UserID must be lowercase letters, digits, underscore or hyphen, 1-64 chars
var userIdRx = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

// UserID validates a path user identifier.
func UserID(v string) error {
	if v == "" {
		return fmt.Errorf("userId is required")
	}
	if !userIdRx.MatchString(v) {
		return fmt.Errorf("userId must match %s", userIdRx.String())
	}
	return nil
}

// Entry validates a single screen-time entry. Rows that fail here are
// rejected up front rather than silently dropped by the pipeline.
func Entry(e model.RawEntry) error {
	if e.Date == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := time.Parse(insights.DateLayout, e.Date); err != nil {
		return fmt.Errorf("date must be formatted as %s", insights.DateLayout)
	}
	if e.App == "" {
		return fmt.Errorf("app is required")
	}
	if !e.TimeMinutes.Valid {
		return fmt.Errorf("time_minutes must be a number")
	}
	if e.TimeMinutes.Value <= 0 {
		return fmt.Errorf("time_minutes must be greater than zero")
	}
	if e.Pickups != nil && *e.Pickups < 0 {
		return fmt.Errorf("pickups must not be negative")
	}
	return nil
}

// Entries validates a submitted batch. The batch must be non-empty and
// every row must pass Entry; the first failure is reported with its index.
func Entries(entries []model.RawEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("entries must not be empty")
	}
	for i, e := range entries {
		if err := Entry(e); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return nil
}
