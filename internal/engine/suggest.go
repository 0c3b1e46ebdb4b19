package engine

import "wellquest/internal/storage"

// MoodWindow is how many of the most recent mood-log entries feed suggestions.
const MoodWindow = 7

// MeanMood averages the last MoodWindow log entries, however far apart their
// dates are. An empty log counts as neutral.
func MeanMood(log []storage.MoodEntry) float64 {
	if len(log) == 0 {
		return NeutralMood
	}
	recent := log
	if len(recent) > MoodWindow {
		recent = recent[len(recent)-MoodWindow:]
	}
	sum := 0
	for _, m := range recent {
		sum += m.Mood
	}
	return float64(sum) / float64(len(recent))
}

// BandForMean maps a mean mood to its suggestion pool.
func BandForMean(mean float64) MoodBand {
	switch {
	case mean < 3:
		return MoodLow
	case mean >= 3.5:
		return MoodHigh
	default:
		return MoodMid
	}
}

// SuggestQuests returns the mood-adaptive pool for rec minus anything already
// completed on date. Pool order is kept and nothing is backfilled.
func SuggestQuests(rec *storage.ProgressionRecord, date string) []Quest {
	done := DoneOn(rec, date)
	var out []Quest
	for _, q := range moodPools[BandForMean(MeanMood(rec.MoodLog))] {
		if done[q.ID] {
			continue
		}
		out = append(out, q)
		if len(out) == 3 {
			break
		}
	}
	return out
}

// QuestView is a quest as offered on a given day.
type QuestView struct {
	Quest
	Suggested bool
	Done      bool
}

// TodayQuests lists the fixed catalog followed by the current suggestions.
func TodayQuests(rec *storage.ProgressionRecord, date string) []QuestView {
	done := DoneOn(rec, date)
	out := make([]QuestView, 0, len(baseQuests)+3)
	for _, q := range baseQuests {
		out = append(out, QuestView{Quest: q, Done: done[q.ID]})
	}
	for _, q := range SuggestQuests(rec, date) {
		out = append(out, QuestView{Quest: q, Suggested: true})
	}
	return out
}
