package engine

// baseQuests are offered every day regardless of mood.
var baseQuests = []Quest{
	{ID: "walk10", Title: "Go for a 10-minute walk", XP: 15, Tag: TagMovement, DurationMin: 10},
	{ID: "grat1", Title: "Write one good thing", XP: 10, Tag: TagGratitude},
	{ID: "breathe", Title: "Try a 3-minute breathing", XP: 15, Tag: TagBreathing, DurationMin: 3},
	{ID: "text", Title: "Text a friend hello", XP: 12, Tag: TagConnection},
	{ID: "water", Title: "Drink a tall glass of water", XP: 8, Tag: TagHydration},
	{ID: "sleep", Title: "Lights out 30 min earlier", XP: 20, Tag: TagSleep},
	{ID: "focus5", Title: "5-minute focus sprint", XP: 10, Tag: TagFocus, DurationMin: 5},
}

// moodPools hold exactly three suggestions per band, in display order.
var moodPools = map[MoodBand][]Quest{
	MoodLow: {
		{ID: "dance", Title: "2-song dance break", Description: "Pick two upbeat songs and move!", Tag: TagMovement, XP: 15},
		{ID: "mini-arcade", Title: "Play the bubble-breath mini-game", Description: "Tap to pace your breath with bubbles.", Tag: TagMiniGame, XP: 20},
		{ID: "grat3", Title: "3 tiny wins list", Description: "Write three small wins from today.", Tag: TagGratitude, XP: 18},
	},
	MoodMid: {
		{ID: "box-breath", Title: "Box breathing 4x4", Description: "Inhale-hold-exhale-hold, 4 counts each.", Tag: TagBreathing, XP: 15},
		{ID: "hydrate2", Title: "Two glasses of water", Description: "Hydrate and log it.", Tag: TagHydration, XP: 10},
		{ID: "grat-snap", Title: "Photo gratitude", Description: "Capture one thing you appreciate.", Tag: TagGratitude, XP: 12},
	},
	MoodHigh: {
		{ID: "focus10", Title: "10-minute pomodoro", Description: "Push a focused mini sprint.", Tag: TagFocus, XP: 12},
		{ID: "walk-view", Title: "Scenery walk pic", Description: "Walk 10 minutes and snap a sky/plant pic.", Tag: TagMovement, XP: 15},
		{ID: "kindness", Title: "Send a kind text", Description: "Cheer someone on today.", Tag: TagConnection, XP: 10},
	},
}

var avatars = []Avatar{
	{ID: "sprout", Name: "Sprout", MinLevel: 1},
	{ID: "spark", Name: "Spark", MinLevel: 3},
	{ID: "ranger", Name: "Ranger", MinLevel: 5},
	{ID: "guardian", Name: "Guardian", MinLevel: 8},
	{ID: "phoenix", Name: "Phoenix", MinLevel: 12},
}

var demoLeaderboard = []LeaderboardEntry{
	{Name: "Aria", XP: 620},
	{Name: "Jay", XP: 540},
	{Name: "Sam", XP: 480},
	{Name: "Mina", XP: 430},
}

var questIndex = buildQuestIndex()

func buildQuestIndex() map[string]Quest {
	idx := map[string]Quest{}
	for _, q := range baseQuests {
		idx[q.ID] = q
	}
	for _, band := range []MoodBand{MoodLow, MoodMid, MoodHigh} {
		for _, q := range moodPools[band] {
			if _, dup := idx[q.ID]; dup {
				panic("duplicate quest id " + q.ID)
			}
			idx[q.ID] = q
		}
	}
	return idx
}

// BaseQuests returns the fixed daily catalog.
func BaseQuests() []Quest {
	return append([]Quest(nil), baseQuests...)
}

// Pool returns the full, unfiltered suggestion pool for band.
func Pool(band MoodBand) []Quest {
	return append([]Quest(nil), moodPools[band]...)
}

// FindQuest resolves an id across the fixed catalog and every suggestion pool.
func FindQuest(id string) (Quest, bool) {
	q, ok := questIndex[id]
	return q, ok
}

func Avatars() []Avatar {
	return append([]Avatar(nil), avatars...)
}

func FindAvatar(id string) (Avatar, bool) {
	for _, a := range avatars {
		if a.ID == id {
			return a, true
		}
	}
	return Avatar{}, false
}
