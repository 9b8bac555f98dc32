package model

import "time"

// RawEntry is one manually entered screen-time record as submitted by a
// caller. Category and Pickups are optional; the normalizer resolves their
// defaults.
type RawEntry struct {
	Date        string  `json:"date"`
	App         string  `json:"app"`
	TimeMinutes Minutes `json:"time_minutes"`
	Category    string  `json:"category,omitempty"`
	Pickups     *int    `json:"pickups,omitempty"`
}

// CanonicalRecord is a normalized, fully populated usage entry derived from a
// RawEntry. Every field is valid: parsed date, non-empty app, numeric time,
// category from the taxonomy (or "Other", or the caller-supplied text).
type CanonicalRecord struct {
	Date        time.Time `json:"date"`
	App         string    `json:"app"`
	TimeMinutes float64   `json:"time_minutes"`
	TimeHours   float64   `json:"time_hours"`
	Category    string    `json:"category"`
	Pickups     int       `json:"pickups"`
}

// DailyTotal is the per-day usage rollup.
type DailyTotal struct {
	Date      string  `json:"date"`
	TimeHours float64 `json:"time_hours"`
	Pickups   int     `json:"pickups"`
}

// WeeklyTotal is the per-week usage rollup. Period is "<start>/<end>" in
// YYYY-MM-DD form, weeks starting Monday.
type WeeklyTotal struct {
	Period    string  `json:"period"`
	TimeHours float64 `json:"time_hours"`
	Pickups   int     `json:"pickups"`
}

// AppTotal is one entry in the ranked top-apps list.
type AppTotal struct {
	App       string  `json:"app"`
	TimeHours float64 `json:"time_hours"`
}

// Metrics holds all aggregates derived from a set of canonical records.
type Metrics struct {
	TotalScreenTimeHours   float64            `json:"total_screen_time_hours"`
	TotalScreenTimeMinutes int                `json:"total_screen_time_minutes"`
	DoomscrollHours        float64            `json:"doomscroll_hours"`
	TotalPickups           int                `json:"total_pickups"`
	AvgPickupsPerDay       float64            `json:"avg_pickups_per_day"`
	DaysTracked            int                `json:"days_tracked"`
	CategoryBreakdown      map[string]float64 `json:"category_breakdown"`
	DailyTotals            []DailyTotal       `json:"daily_totals"`
	WeeklyTotals           []WeeklyTotal      `json:"weekly_totals"`
	TopApps                []AppTotal         `json:"top_apps"`
}

// ScoreBreakdown exposes the sub-factors behind a chronic score.
type ScoreBreakdown struct {
	TimeScore            int     `json:"time_score"`
	DoomscrollScore      int     `json:"doomscroll_score"`
	PickupScore          int     `json:"pickup_score"`
	AvgHoursPerDay       float64 `json:"avg_hours_per_day"`
	DoomscrollPercentage float64 `json:"doomscroll_percentage"`
}

// ChronicScore is the composite 0-100 usage score. Breakdown is nil when no
// data was available (level "Unknown").
type ChronicScore struct {
	Score       int             `json:"score"`
	Level       string          `json:"level"`
	Description string          `json:"description"`
	Breakdown   *ScoreBreakdown `json:"breakdown,omitempty"`
}

// Tip priorities, highest first.
const (
	TipPriorityHigh   = "high"
	TipPriorityMedium = "medium"
	TipPriorityLow    = "low"
)

// Tip is a single behavioral recommendation.
type Tip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}

// AnalyticsResult is the full output of one analysis pass.
type AnalyticsResult struct {
	Metrics               Metrics      `json:"metrics"`
	ChronicScore          ChronicScore `json:"chronic_score"`
	Tips                  []Tip        `json:"tips"`
	ProcessedEntriesCount int          `json:"processed_entries_count"`
}

// StoredEntry is a RawEntry as persisted in a user's history.
type StoredEntry struct {
	EntryID string `json:"entryId"`
	UserID  string `json:"userId"`
	RawEntry
	CreationTime time.Time `json:"creationTime"`
}
