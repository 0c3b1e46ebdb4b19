package engine

const (
	// XPPerLevel is the flat XP span of every level.
	XPPerLevel = 100

	// DefaultQuestXP is granted by quests that do not specify a reward.
	DefaultQuestXP = 12

	// WeeklyProgressStep is added to weekly progress per completion.
	WeeklyProgressStep = 5
	WeeklyProgressMax  = 100
)

// Level returns the level for a total XP value. Levels start at 1 and have no cap.
func Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// XPToNext returns how much XP is missing until the next level, always in (0, XPPerLevel].
func XPToNext(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return XPPerLevel - xp%XPPerLevel
}

// LevelProgress returns the XP earned inside the current level.
func LevelProgress(xp int) int {
	if xp < 0 {
		return 0
	}
	return xp % XPPerLevel
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
