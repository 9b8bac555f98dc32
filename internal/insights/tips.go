package insights

import (
	"fmt"
	"sort"

	"github.com/chronline/chronline/internal/model"
)

// GenerateTips produces personalized recommendations from metrics and the
// underlying records. Conditions are evaluated independently in a fixed
// order; the final list is a stable sort by priority, so generation order is
// the tie-break among equal priorities.
func GenerateTips(m model.Metrics, records []model.CanonicalRecord) []model.Tip {
	tips := []model.Tip{}
	if len(records) == 0 {
		return tips
	}

	avgHoursPerDay := 0.0
	if m.DaysTracked > 0 {
		avgHoursPerDay = m.TotalScreenTimeHours / float64(m.DaysTracked)
	}
	doomscrollPercentage := 0.0
	if m.TotalScreenTimeHours > 0 {
		doomscrollPercentage = m.DoomscrollHours / m.TotalScreenTimeHours * 100
	}

	if avgHoursPerDay >= 6 {
		tips = append(tips, model.Tip{
			Title:       "Set Daily Screen Time Limits",
			Description: fmt.Sprintf("You're averaging %.1f hours per day. Try setting a daily limit (e.g., 4-5 hours) and use your phone's built-in screen time controls to enforce it.", avgHoursPerDay),
			Priority:    model.TipPriorityHigh,
			Category:    "general",
		})
	}

	if doomscrollPercentage >= 40 {
		tips = append(tips, model.Tip{
			Title:       "Reduce Social Media Consumption",
			Description: fmt.Sprintf("Social media accounts for %.0f%% of your screen time (%.1f hours). Try: (1) Delete apps from your home screen, (2) Set app timers, (3) Use grayscale mode to reduce appeal.", doomscrollPercentage, m.DoomscrollHours),
			Priority:    model.TipPriorityHigh,
			Category:    "social_media",
		})
	}

	if m.AvgPickupsPerDay >= 100 {
		tips = append(tips, model.Tip{
			Title:       "Reduce Phone Pickups",
			Description: fmt.Sprintf("You're picking up your phone %.0f times per day on average. Try: (1) Turn off non-essential notifications, (2) Keep your phone in another room, (3) Use 'Do Not Disturb' during focused work.", m.AvgPickupsPerDay),
			Priority:    model.TipPriorityHigh,
			Category:    "pickups",
		})
	}

	if len(m.TopApps) > 0 && m.TopApps[0].TimeHours >= 2 {
		top := m.TopApps[0]
		tips = append(tips, model.Tip{
			Title:       fmt.Sprintf("Limit Time on %s", top.App),
			Description: fmt.Sprintf("You spend %.1f hours per day on %s. Consider setting a daily limit for this app specifically, or try replacing some of this time with offline activities.", top.TimeHours, top.App),
			Priority:    model.TipPriorityMedium,
			Category:    "specific_app",
		})
	}

	if avgHoursPerDay >= 4 {
		tips = append(tips, model.Tip{
			Title:       "Create Phone-Free Zones",
			Description: "Designate certain times or places as phone-free: (1) First hour after waking, (2) During meals, (3) One hour before bed. This helps break the constant checking habit.",
			Priority:    model.TipPriorityMedium,
			Category:    "boundaries",
		})
	}

	socialHours := m.CategoryBreakdown[categorySocialMedia]
	productivityHours := m.CategoryBreakdown[categoryProductivity]
	if socialHours > 0 && productivityHours > 0 && socialHours > productivityHours*2 {
		tips = append(tips, model.Tip{
			Title:       "Balance Entertainment with Productivity",
			Description: fmt.Sprintf("You spend %.1f hours on social media vs %.1f hours on productivity. Try the '2-minute rule': when you open a social app, spend 2 minutes on a productive task first.", socialHours, productivityHours),
			Priority:    model.TipPriorityMedium,
			Category:    "balance",
		})
	}

	tips = append(tips, model.Tip{
		Title:       "Practice Mindful Phone Use",
		Description: "Before picking up your phone, ask yourself: 'What do I need to do?' If you can't answer, put it down. This simple pause can prevent mindless scrolling.",
		Priority:    model.TipPriorityLow,
		Category:    "mindfulness",
	})

	tips = append(tips, model.Tip{
		Title:       "Review Your Progress Weekly",
		Description: "Set aside 10 minutes each week to review your screen time data. Notice patterns: Are you using your phone more when stressed? Bored? Use this awareness to make intentional changes.",
		Priority:    model.TipPriorityLow,
		Category:    "tracking",
	})

	sort.SliceStable(tips, func(i, j int) bool {
		return priorityRank(tips[i].Priority) < priorityRank(tips[j].Priority)
	})
	return tips
}

func priorityRank(p string) int {
	switch p {
	case model.TipPriorityHigh:
		return 0
	case model.TipPriorityMedium:
		return 1
	case model.TipPriorityLow:
		return 2
	default:
		return 3
	}
}
