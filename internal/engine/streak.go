package engine

import (
	"time"

	"wellquest/internal/clock"
	"wellquest/internal/storage"
)

// StreakWindow caps how many days back the workout streak looks.
const StreakWindow = 30

// IsWorkoutDay reports whether any quest completed on date is movement-tagged.
func IsWorkoutDay(rec *storage.ProgressionRecord, date string) bool {
	for _, id := range rec.Completed[date] {
		if q, ok := FindQuest(id); ok && q.Tag == TagMovement {
			return true
		}
	}
	return false
}

// WorkoutStreak counts consecutive workout days walking back from today.
// Today is included: a day without a movement quest, today or earlier, stops
// the count.
func WorkoutStreak(rec *storage.ProgressionRecord, today time.Time) int {
	streak := 0
	for i := 0; i < StreakWindow; i++ {
		if !IsWorkoutDay(rec, clock.Date(today.AddDate(0, 0, -i))) {
			break
		}
		streak++
	}
	return streak
}
