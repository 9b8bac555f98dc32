package insights

import "strings"

// CategoryOther is the fallback for apps that match no taxonomy pattern.
const CategoryOther = "Other"

// Categories referenced by the aggregator and tip generator.
const (
	categorySocialMedia  = "Social Media"
	categoryProductivity = "Productivity"
)

type categoryPatterns struct {
	name     string
	patterns []string
}

// taxonomy is an ordered list, not a map: matching is first-match-wins and
// broad patterns like "game" and "play" must be tested at their declared
// position.
var taxonomy = []categoryPatterns{
	{categorySocialMedia, []string{
		"instagram", "facebook", "twitter", "x.com", "tiktok", "snapchat",
		"linkedin", "reddit", "pinterest", "whatsapp", "telegram", "discord",
		"youtube", "twitch", "messenger", "wechat", "line", "viber",
	}},
	{categoryProductivity, []string{
		"gmail", "outlook", "slack", "notion", "trello", "asana", "todoist",
		"calendar", "notes", "reminders", "evernote", "onenote", "google docs",
		"sheets", "drive", "dropbox", "zoom", "teams", "meet",
	}},
	{"Entertainment", []string{
		"netflix", "spotify", "apple music", "disney", "hulu", "prime video",
		"hbo", "paramount", "peacock", "crunchyroll", "plex", "vudu",
	}},
	{"Gaming", []string{
		"game", "play", "roblox", "minecraft", "fortnite", "pubg", "cod",
		"among us", "candy crush", "clash", "pokemon go",
	}},
	{"News", []string{
		"news", "cnn", "bbc", "reuters", "nytimes", "washington post",
		"the guardian", "bloomberg", "wsj", "economist",
	}},
	{"Shopping", []string{
		"amazon", "ebay", "etsy", "shopify", "wish", "alibaba", "target",
		"walmart", "best buy", "zara", "nike", "adidas",
	}},
	{"Health & Fitness", []string{
		"fitness", "workout", "myfitnesspal", "strava", "nike run", "fitbit",
		"apple health", "calm", "headspace", "meditation", "yoga",
	}},
	{"Education", []string{
		"coursera", "udemy", "khan academy", "duolingo", "quizlet", "ted",
		"skillshare", "masterclass", "edx",
	}},
}

// Categorize maps an app name to its usage category by case-insensitive
// substring matching against the taxonomy. Unmatched apps fall back to
// CategoryOther.
func Categorize(app string) string {
	lower := strings.ToLower(app)
	for _, c := range taxonomy {
		for _, p := range c.patterns {
			if strings.Contains(lower, p) {
				return c.name
			}
		}
	}
	return CategoryOther
}
