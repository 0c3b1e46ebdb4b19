package engine

import (
	"context"
	"fmt"
	"strings"

	"wellquest/internal/storage"
)

// LogMood records today's mood. An existing entry for today is replaced, so
// the log holds at most one entry per date.
func (e *Engine) LogMood(ctx context.Context, mood int, notes string) error {
	if mood < MinMood || mood > MaxMood {
		return fmt.Errorf("%w: %d", ErrInvalidMood, mood)
	}
	date := e.today()
	kept := make([]storage.MoodEntry, 0, len(e.rec.MoodLog)+1)
	for _, m := range e.rec.MoodLog {
		if m.Date != date {
			kept = append(kept, m)
		}
	}
	e.rec.MoodLog = append(kept, storage.MoodEntry{Date: date, Mood: mood, Notes: strings.TrimSpace(notes)})
	e.persist(ctx)
	e.logger.Debug("mood logged", "date", date, "mood", mood)
	return nil
}

// MoodOn returns the mood logged for date, if any.
func MoodOn(rec *storage.ProgressionRecord, date string) (int, bool) {
	for _, m := range rec.MoodLog {
		if m.Date == date {
			return m.Mood, true
		}
	}
	return 0, false
}
