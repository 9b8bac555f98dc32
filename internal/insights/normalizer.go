package insights

import (
	"time"

	"github.com/chronline/chronline/internal/model"
)

// DateLayout is the calendar-date form accepted for entries.
const DateLayout = "2006-01-02"

// Normalize converts raw entries into canonical records. Records with an
// unparsable date, empty app name, or non-numeric time are dropped silently;
// data quality problems in one entry never fail the batch.
func Normalize(entries []model.RawEntry) []model.CanonicalRecord {
	records := make([]model.CanonicalRecord, 0, len(entries))
	for _, e := range entries {
		date, err := time.Parse(DateLayout, e.Date)
		if err != nil {
			continue
		}
		if e.App == "" || !e.TimeMinutes.Valid {
			continue
		}

		category := e.Category
		if category == "" {
			category = Categorize(e.App)
		}

		pickups := 0
		if e.Pickups != nil {
			pickups = *e.Pickups
		}
		// A used app was opened at least once even when pickups went unrecorded.
		if e.TimeMinutes.Value > 0 && pickups == 0 {
			pickups = 1
		}

		records = append(records, model.CanonicalRecord{
			Date:        date,
			App:         e.App,
			TimeMinutes: e.TimeMinutes.Value,
			TimeHours:   e.TimeMinutes.Value / 60.0,
			Category:    category,
			Pickups:     pickups,
		})
	}
	return records
}
