package insights

import "github.com/chronline/chronline/internal/model"

// Score levels, lowest to highest.
const (
	LevelUnknown    = "Unknown"
	LevelCasual     = "Casually Online"
	LevelModerate   = "Moderately Online"
	LevelPretty     = "Pretty Online"
	LevelVery       = "Very Online"
	LevelChronic    = "Chronically Online"
	descNoData      = "No data available"
	descCasual      = "You have a healthy relationship with your devices! Keep it up."
	descModerate    = "You're spending a reasonable amount of time online. Some small adjustments could help."
	descPretty      = "You're spending quite a bit of time on your devices. Consider setting some boundaries."
	descVery        = "You're spending a lot of time online. It might be time to reassess your digital habits."
	descChronically = "You're spending excessive time online. Consider implementing significant changes to your digital routine."
)

// Score converts metrics into a composite 0-100 chronic usage score.
// Three weighted factors: average daily screen time (0-40), social-media
// share of total time (0-30), and pickup frequency (0-30).
func Score(m model.Metrics) model.ChronicScore {
	if m.DaysTracked == 0 {
		return model.ChronicScore{Score: 0, Level: LevelUnknown, Description: descNoData}
	}

	avgHoursPerDay := m.TotalScreenTimeHours / float64(m.DaysTracked)
	doomscrollRatio := 0.0
	if m.TotalScreenTimeHours > 0 {
		doomscrollRatio = m.DoomscrollHours / m.TotalScreenTimeHours * 100
	}

	var timeScore int
	switch {
	case avgHoursPerDay < 2:
		timeScore = 0
	case avgHoursPerDay < 4:
		timeScore = 10
	case avgHoursPerDay < 6:
		timeScore = 20
	case avgHoursPerDay < 8:
		timeScore = 30
	default:
		timeScore = 40
	}

	var doomscrollScore int
	switch {
	case doomscrollRatio < 20:
		doomscrollScore = 0
	case doomscrollRatio < 40:
		doomscrollScore = 10
	case doomscrollRatio < 60:
		doomscrollScore = 20
	default:
		doomscrollScore = 30
	}

	var pickupScore int
	switch {
	case m.AvgPickupsPerDay < 50:
		pickupScore = 0
	case m.AvgPickupsPerDay < 100:
		pickupScore = 10
	case m.AvgPickupsPerDay < 150:
		pickupScore = 20
	default:
		pickupScore = 30
	}

	total := timeScore + doomscrollScore + pickupScore

	var level, description string
	switch {
	case total < 20:
		level, description = LevelCasual, descCasual
	case total < 40:
		level, description = LevelModerate, descModerate
	case total < 60:
		level, description = LevelPretty, descPretty
	case total < 80:
		level, description = LevelVery, descVery
	default:
		level, description = LevelChronic, descChronically
	}

	return model.ChronicScore{
		Score:       total,
		Level:       level,
		Description: description,
		Breakdown: &model.ScoreBreakdown{
			TimeScore:            timeScore,
			DoomscrollScore:      doomscrollScore,
			PickupScore:          pickupScore,
			AvgHoursPerDay:       round2(avgHoursPerDay),
			DoomscrollPercentage: round1(doomscrollRatio),
		},
	}
}
