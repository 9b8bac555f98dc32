// Package insights implements the screen-time analytics pipeline:
// normalization, metric aggregation, chronic-usage scoring, and tip
// generation. Everything here is a pure function of its input; callers may
// invoke it concurrently as long as each call owns its input slice.
package insights

import "github.com/chronline/chronline/internal/model"

// Analyze runs the full pipeline over raw entries. ProcessedEntriesCount is
// the number of records retained after normalization, which may be fewer than
// the input count. Calling with an empty slice returns the documented zero
// state, never an error.
func Analyze(entries []model.RawEntry) model.AnalyticsResult {
	records := Normalize(entries)
	metrics := Aggregate(records)
	return model.AnalyticsResult{
		Metrics:               metrics,
		ChronicScore:          Score(metrics),
		Tips:                  GenerateTips(metrics, records),
		ProcessedEntriesCount: len(records),
	}
}
