package engine

import (
	"testing"
	"time"

	"wellquest/internal/storage"
)

func TestWorkoutStreak(t *testing.T) {
	rec := storage.DefaultRecord()
	rec.Completed = map[string][]string{
		"2026-10-17": {"water", "walk10"},
		"2026-10-16": {"dance"},
		"2026-10-15": {"walk-view"},
		"2026-10-14": {"grat1"},
		"2026-10-13": {"walk10"},
	}
	if got := WorkoutStreak(rec, testNow); got != 3 {
		t.Fatalf("streak=%d, want 3", got)
	}
}

func TestWorkoutStreakExcludesIncompleteToday(t *testing.T) {
	rec := storage.DefaultRecord()
	rec.Completed = map[string][]string{
		"2026-10-17": {"water"},
		"2026-10-16": {"walk10"},
		"2026-10-15": {"walk10"},
	}
	if got := WorkoutStreak(rec, testNow); got != 0 {
		t.Fatalf("streak=%d, want 0", got)
	}
}

func TestWorkoutStreakCappedAtWindow(t *testing.T) {
	rec := storage.DefaultRecord()
	for i := 0; i < 45; i++ {
		rec.Completed[testNow.AddDate(0, 0, -i).Format("2006-01-02")] = []string{"walk10"}
	}
	if got := WorkoutStreak(rec, testNow); got != StreakWindow {
		t.Fatalf("streak=%d, want %d", got, StreakWindow)
	}
}

func TestLeaderboardStableTop5(t *testing.T) {
	rec := storage.DefaultRecord()
	rec.DisplayName = "Robin"
	rec.XP = 540

	rows := Leaderboard(rec)
	if len(rows) != LeaderboardSize {
		t.Fatalf("rows=%d, want %d", len(rows), LeaderboardSize)
	}
	want := []string{"Aria", "Jay", "Robin", "Sam", "Mina"}
	for i, name := range want {
		if rows[i].Name != name {
			t.Fatalf("row[%d]=%s, want %s (rows=%+v)", i, rows[i].Name, name, rows)
		}
	}
	if !rows[2].IsUser {
		t.Fatalf("expected user row flagged")
	}

	rec.XP = 10
	rows = Leaderboard(rec)
	if !rows[len(rows)-1].IsUser {
		t.Fatalf("expected user last, got %+v", rows)
	}
	rec.XP = 1000
	if rows := Leaderboard(rec); rows[0].Name != "Robin" {
		t.Fatalf("expected user first, got %+v", rows)
	}
}

func TestUnlockedAvatars(t *testing.T) {
	if got := UnlockedAvatars(1); len(got) != 1 || got[0].ID != "sprout" {
		t.Fatalf("level 1 avatars=%v", got)
	}
	if got := UnlockedAvatars(5); len(got) != 3 {
		t.Fatalf("level 5 avatars=%v", got)
	}
	if got := UnlockedAvatars(50); len(got) != len(Avatars()) {
		t.Fatalf("level 50 avatars=%v", got)
	}
}

func TestDailyReminder(t *testing.T) {
	rec := storage.DefaultRecord()
	if got := DailyReminder(rec, testToday); got != "Don't forget to log your mood today! 🌟" {
		t.Fatalf("reminder=%q", got)
	}
	rec.MoodLog = []storage.MoodEntry{{Date: testToday, Mood: 3}}
	if got := DailyReminder(rec, testToday); got != "Complete a few quests to boost your wellness streak! 💪" {
		t.Fatalf("reminder=%q", got)
	}
	rec.Completed[testToday] = []string{"water", "grat1", "text"}
	if got := DailyReminder(rec, testToday); got != "Great job today! Keep up the good work! 🎉" {
		t.Fatalf("reminder=%q", got)
	}
}

func TestMonthCalendar(t *testing.T) {
	rec := storage.DefaultRecord()
	rec.Completed["2026-10-05"] = []string{"walk10", "water"}
	rec.Completed["2026-10-06"] = []string{"water"}

	m := MonthCalendar(rec, 2026, time.October)
	if len(m.Days) != 31 {
		t.Fatalf("days=%d, want 31", len(m.Days))
	}
	if m.Leading != int(time.Thursday) {
		t.Fatalf("leading=%d, want %d", m.Leading, int(time.Thursday))
	}
	if !m.Days[4].Workout || m.Days[4].Completed != 2 {
		t.Fatalf("day 5=%+v", m.Days[4])
	}
	if m.Days[5].Workout {
		t.Fatalf("day 6 should not be a workout day")
	}

	qs := CompletedOn(rec, "2026-10-05")
	if len(qs) != 2 || qs[0].Title == "" {
		t.Fatalf("CompletedOn=%v", qs)
	}
}

func TestSnapshot(t *testing.T) {
	e, _, _ := newTestEngine(t)
	s := e.Snapshot()
	if s.Date != testToday || s.Level != 1 || s.XPToNext != 100 {
		t.Fatalf("snapshot=%+v", s)
	}
	if len(s.Quests) != len(BaseQuests())+3 {
		t.Fatalf("quests=%d", len(s.Quests))
	}
	if s.MoodBand != MoodMid || s.Task.State != TaskIdle {
		t.Fatalf("snapshot=%+v", s)
	}
}

func TestParseMood(t *testing.T) {
	cases := map[string]int{"1": 1, "5": 5, "sad": 2, " Happy ": 4, "neutral": 3}
	for in, want := range cases {
		got, err := ParseMood(in)
		if err != nil || got != want {
			t.Fatalf("ParseMood(%q)=%d,%v want %d", in, got, err, want)
		}
	}
	for _, in := range []string{"0", "6", "meh", ""} {
		if _, err := ParseMood(in); err == nil {
			t.Fatalf("ParseMood(%q) expected error", in)
		}
	}
}
