package engine

import "time"

type Tag string

const (
	TagMovement   Tag = "movement"
	TagGratitude  Tag = "gratitude"
	TagBreathing  Tag = "breathing"
	TagConnection Tag = "connection"
	TagHydration  Tag = "hydration"
	TagSleep      Tag = "sleep"
	TagFocus      Tag = "focus"
	TagMiniGame   Tag = "mini-game"
)

// Quest is a static catalog entry. Quests are never persisted; only their ids are.
type Quest struct {
	ID          string
	Title       string
	XP          int // 0 means DefaultQuestXP
	Tag         Tag
	DurationMin int // 0 means the quest completes immediately
	Description string
}

// Reward returns the XP granted for completing q.
func (q Quest) Reward() int {
	if q.XP <= 0 {
		return DefaultQuestXP
	}
	return q.XP
}

func (q Quest) IsTimed() bool {
	return q.DurationMin > 0
}

func (q Quest) Duration() time.Duration {
	return time.Duration(q.DurationMin) * time.Minute
}

type Avatar struct {
	ID       string
	Name     string
	MinLevel int
}

// MoodBand selects which suggestion pool applies.
type MoodBand string

const (
	MoodLow  MoodBand = "low"
	MoodMid  MoodBand = "mid"
	MoodHigh MoodBand = "high"
)

const (
	MinMood     = 1
	MaxMood     = 5
	NeutralMood = 3
)
