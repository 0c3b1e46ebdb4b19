package engine

import (
	"context"
	"errors"
	"fmt"

	"wellquest/internal/storage"
)

type CompleteResult struct {
	QuestID     string
	XPAwarded   int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	NewBadges   []string
	// Duplicate is set when the quest was already completed today; nothing changed.
	Duplicate bool
	// Started is set when the quest is timed: a session began and no XP was granted yet.
	Started *TaskStatus
}

// DoneOn returns the set of quest ids completed on date.
func DoneOn(rec *storage.ProgressionRecord, date string) map[string]bool {
	done := map[string]bool{}
	for _, id := range rec.Completed[date] {
		done[id] = true
	}
	return done
}

// CanComplete reports whether q is completable right now: no timed task may be
// in flight and q must not already be completed today.
func (e *Engine) CanComplete(q Quest) error {
	if e.active != nil {
		return fmt.Errorf("%w: finish %q first", ErrTaskAlreadyActive, e.active.quest.Title)
	}
	if DoneOn(e.rec, e.today())[q.ID] {
		return ErrDuplicateCompletion
	}
	return nil
}

// Complete resolves id and completes the quest. See CompleteQuest.
func (e *Engine) Complete(ctx context.Context, id string) (*CompleteResult, error) {
	q, ok := FindQuest(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuest, id)
	}
	return e.CompleteQuest(ctx, q)
}

// CompleteQuest completes q. Duplicate completions are a silent no-op. Timed
// quests start the timed-task session instead of granting XP; the XP follows
// once proof is accepted.
func (e *Engine) CompleteQuest(ctx context.Context, q Quest) (*CompleteResult, error) {
	level := Level(e.rec.XP)
	if err := e.CanComplete(q); err != nil {
		if errors.Is(err, ErrDuplicateCompletion) {
			return &CompleteResult{QuestID: q.ID, LevelBefore: level, LevelAfter: level, Duplicate: true}, nil
		}
		return nil, err
	}
	if q.IsTimed() {
		st, err := e.StartTask(ctx, q)
		if err != nil {
			return nil, err
		}
		return &CompleteResult{QuestID: q.ID, LevelBefore: level, LevelAfter: level, Started: &st}, nil
	}
	return e.completeNow(ctx, q), nil
}

// completeNow is the immediate completion path. It ignores q's duration, which
// is how accepted proof finishes a timed quest.
func (e *Engine) completeNow(ctx context.Context, q Quest) *CompleteResult {
	date := e.today()
	levelBefore := Level(e.rec.XP)
	if DoneOn(e.rec, date)[q.ID] {
		return &CompleteResult{QuestID: q.ID, LevelBefore: levelBefore, LevelAfter: levelBefore, Duplicate: true}
	}

	e.rec.Completed[date] = append(e.rec.Completed[date], q.ID)
	xp := q.Reward()
	e.rec.XP += xp
	levelAfter := Level(e.rec.XP)

	added := awardBadges(e.rec, badgesEarned(levelAfter, len(e.rec.Completed[date]), q.Tag))
	e.rec.WeeklyProgress = clamp(e.rec.WeeklyProgress+WeeklyProgressStep, 0, WeeklyProgressMax)
	e.persist(ctx)

	e.logger.Debug("quest completed", "quest", q.ID, "xp", xp, "total_xp", e.rec.XP, "level", levelAfter)
	return &CompleteResult{
		QuestID:     q.ID,
		XPAwarded:   xp,
		LevelBefore: levelBefore,
		LevelAfter:  levelAfter,
		LevelUp:     levelAfter > levelBefore,
		NewBadges:   added,
	}
}
