package insights

import (
	"math"
	"sort"
	"time"

	"github.com/chronline/chronline/internal/model"
)

const topAppsLimit = 10

// Aggregate computes summary metrics from canonical records. An empty input
// yields the zero state: all numeric fields zero, all collections empty.
func Aggregate(records []model.CanonicalRecord) model.Metrics {
	m := model.Metrics{
		CategoryBreakdown: map[string]float64{},
		DailyTotals:       []model.DailyTotal{},
		WeeklyTotals:      []model.WeeklyTotal{},
		TopApps:           []model.AppTotal{},
	}
	if len(records) == 0 {
		return m
	}

	type rollup struct {
		hours   float64
		pickups int
	}

	var totalMinutes float64
	var doomscrollHours float64
	byCategory := map[string]float64{}
	byDay := map[time.Time]*rollup{}
	byWeek := map[time.Time]*rollup{}
	byApp := map[string]float64{}

	for _, r := range records {
		totalMinutes += r.TimeMinutes
		if r.Category == categorySocialMedia {
			doomscrollHours += r.TimeHours
		}
		m.TotalPickups += r.Pickups
		byCategory[r.Category] += r.TimeHours
		byApp[r.App] += r.TimeHours

		day := r.Date
		if byDay[day] == nil {
			byDay[day] = &rollup{}
		}
		byDay[day].hours += r.TimeHours
		byDay[day].pickups += r.Pickups

		week := weekStart(r.Date)
		if byWeek[week] == nil {
			byWeek[week] = &rollup{}
		}
		byWeek[week].hours += r.TimeHours
		byWeek[week].pickups += r.Pickups
	}

	m.TotalScreenTimeMinutes = int(totalMinutes)
	m.TotalScreenTimeHours = round2(totalMinutes / 60.0)
	m.DoomscrollHours = round2(doomscrollHours)
	m.DaysTracked = len(byDay)
	if m.DaysTracked > 0 {
		m.AvgPickupsPerDay = round2(float64(m.TotalPickups) / float64(m.DaysTracked))
	}

	for cat, hours := range byCategory {
		m.CategoryBreakdown[cat] = round2(hours)
	}

	days := make([]time.Time, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	for _, d := range days {
		m.DailyTotals = append(m.DailyTotals, model.DailyTotal{
			Date:      d.Format(DateLayout),
			TimeHours: byDay[d].hours,
			Pickups:   byDay[d].pickups,
		})
	}

	weeks := make([]time.Time, 0, len(byWeek))
	for w := range byWeek {
		weeks = append(weeks, w)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })
	for _, w := range weeks {
		m.WeeklyTotals = append(m.WeeklyTotals, model.WeeklyTotal{
			Period:    weekPeriod(w),
			TimeHours: byWeek[w].hours,
			Pickups:   byWeek[w].pickups,
		})
	}

	apps := make([]model.AppTotal, 0, len(byApp))
	for app, hours := range byApp {
		apps = append(apps, model.AppTotal{App: app, TimeHours: hours})
	}
	sort.Slice(apps, func(i, j int) bool {
		if apps[i].TimeHours != apps[j].TimeHours {
			return apps[i].TimeHours > apps[j].TimeHours
		}
		return apps[i].App < apps[j].App
	})
	if len(apps) > topAppsLimit {
		apps = apps[:topAppsLimit]
	}
	for _, a := range apps {
		m.TopApps = append(m.TopApps, model.AppTotal{App: a.App, TimeHours: round2(a.TimeHours)})
	}

	return m
}

// weekStart truncates a date to the Monday of its week.
func weekStart(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// weekPeriod labels a week as "<monday>/<sunday>".
func weekPeriod(start time.Time) string {
	return start.Format(DateLayout) + "/" + start.AddDate(0, 0, 6).Format(DateLayout)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }
