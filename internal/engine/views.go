package engine

import (
	"sort"
	"time"

	"wellquest/internal/clock"
	"wellquest/internal/storage"
)

// LeaderboardSize is how many rows the leaderboard shows.
const LeaderboardSize = 5

type LeaderboardEntry struct {
	Name   string
	XP     int
	IsUser bool
}

// Leaderboard merges the demo entries with the user and returns the top rows by
// XP. The sort is stable so ties keep their merge order.
func Leaderboard(rec *storage.ProgressionRecord) []LeaderboardEntry {
	rows := make([]LeaderboardEntry, 0, len(demoLeaderboard)+1)
	rows = append(rows, demoLeaderboard...)
	rows = append(rows, LeaderboardEntry{Name: rec.DisplayName, XP: rec.XP, IsUser: true})
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].XP > rows[j].XP })
	if len(rows) > LeaderboardSize {
		rows = rows[:LeaderboardSize]
	}
	return rows
}

// DailyReminder picks the nudge shown for date.
func DailyReminder(rec *storage.ProgressionRecord, date string) string {
	if _, ok := MoodOn(rec, date); !ok {
		return "Don't forget to log your mood today! 🌟"
	}
	if len(rec.Completed[date]) < 3 {
		return "Complete a few quests to boost your wellness streak! 💪"
	}
	return "Great job today! Keep up the good work! 🎉"
}

// CompletedOn resolves the quests completed on date. Ids no longer in the
// catalog are skipped.
func CompletedOn(rec *storage.ProgressionRecord, date string) []Quest {
	var out []Quest
	for _, id := range rec.Completed[date] {
		if q, ok := FindQuest(id); ok {
			out = append(out, q)
		}
	}
	return out
}

type CalendarDay struct {
	Date      string
	Day       int
	Workout   bool
	Completed int
}

// Month is a calendar grid for one month. Leading is the number of blank cells
// before day 1 in a Sunday-first week.
type Month struct {
	Year    int
	Month   time.Month
	Leading int
	Days    []CalendarDay
}

func MonthCalendar(rec *storage.ProgressionRecord, year int, month time.Month) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	m := Month{Year: year, Month: month, Leading: int(first.Weekday())}
	for d := 1; d <= last.Day(); d++ {
		date := clock.Date(time.Date(year, month, d, 0, 0, 0, 0, time.Local))
		m.Days = append(m.Days, CalendarDay{
			Date:      date,
			Day:       d,
			Workout:   IsWorkoutDay(rec, date),
			Completed: len(rec.Completed[date]),
		})
	}
	return m
}

// Snapshot bundles every derived view for renderers. It is recomputed on each
// call and never stored.
type Snapshot struct {
	Date            string
	DisplayName     string
	XP              int
	Level           int
	XPToNext        int
	LevelProgress   int
	WeeklyProgress  int
	SelectedAvatar  string
	UnlockedAvatars []Avatar
	Badges          []Badge
	Quests          []QuestView
	Suggested       []Quest
	MoodBand        MoodBand
	TodayMood       int
	MoodLogged      bool
	Leaderboard     []LeaderboardEntry
	Streak          int
	Reminder        string
	Task            TaskStatus
}

func (e *Engine) Snapshot() Snapshot {
	now := e.clock.Now()
	date := clock.Date(now)
	level := Level(e.rec.XP)
	mood, logged := MoodOn(e.rec, date)
	task, _ := e.ActiveTask()
	return Snapshot{
		Date:            date,
		DisplayName:     e.rec.DisplayName,
		XP:              e.rec.XP,
		Level:           level,
		XPToNext:        XPToNext(e.rec.XP),
		LevelProgress:   LevelProgress(e.rec.XP),
		WeeklyProgress:  e.rec.WeeklyProgress,
		SelectedAvatar:  e.rec.SelectedAvatar,
		UnlockedAvatars: UnlockedAvatars(level),
		Badges:          Badges(e.rec),
		Quests:          TodayQuests(e.rec, date),
		Suggested:       SuggestQuests(e.rec, date),
		MoodBand:        BandForMean(MeanMood(e.rec.MoodLog)),
		TodayMood:       mood,
		MoodLogged:      logged,
		Leaderboard:     Leaderboard(e.rec),
		Streak:          WorkoutStreak(e.rec, now),
		Reminder:        DailyReminder(e.rec, date),
		Task:            task,
	}
}
