package engine

import "wellquest/internal/storage"

const (
	BadgeLevel3    = "Level 3 Achiever"
	BadgeDailyTrio = "Daily Trio"
	BadgeHydration = "Hydration Hero"
)

// Badge represents an award the player can earn.
type Badge struct {
	Name        string
	Description string
	Icon        string
	Earned      bool
}

var badgeCatalog = []Badge{
	{Name: BadgeLevel3, Description: "Reach level 3", Icon: "🌟"},
	{Name: BadgeDailyTrio, Description: "Complete 3 quests in one day", Icon: "🎯"},
	{Name: BadgeHydration, Description: "Complete a hydration quest", Icon: "💧"},
}

// badgesEarned evaluates the award rules for one completion. Rules only ever
// add badges.
func badgesEarned(level int, completedToday int, tag Tag) []string {
	var out []string
	if level >= 3 {
		out = append(out, BadgeLevel3)
	}
	if completedToday >= 3 {
		out = append(out, BadgeDailyTrio)
	}
	if tag == TagHydration {
		out = append(out, BadgeHydration)
	}
	return out
}

// awardBadges adds names to rec and returns the ones that were new.
func awardBadges(rec *storage.ProgressionRecord, names []string) []string {
	have := map[string]bool{}
	for _, b := range rec.Badges {
		have[b] = true
	}
	var added []string
	for _, n := range names {
		if have[n] {
			continue
		}
		have[n] = true
		rec.Badges = append(rec.Badges, n)
		added = append(added, n)
	}
	return added
}

// Badges returns the known badge catalog with earned status, followed by any
// badges in the record that the catalog does not know about.
func Badges(rec *storage.ProgressionRecord) []Badge {
	have := map[string]bool{}
	for _, b := range rec.Badges {
		have[b] = true
	}
	known := map[string]bool{}
	out := make([]Badge, 0, len(badgeCatalog))
	for _, b := range badgeCatalog {
		b.Earned = have[b.Name]
		known[b.Name] = true
		out = append(out, b)
	}
	for _, name := range rec.Badges {
		if !known[name] {
			out = append(out, Badge{Name: name, Icon: "🏅", Earned: true})
		}
	}
	return out
}
