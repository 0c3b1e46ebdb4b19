package engine

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type TaskState int

const (
	TaskIdle TaskState = iota
	TaskRunning
	// TaskExpired means the countdown reached zero and proof is pending.
	TaskExpired
)

func (s TaskState) String() string {
	switch s {
	case TaskRunning:
		return "running"
	case TaskExpired:
		return "expired"
	default:
		return "idle"
	}
}

// session is the single in-flight timed task. It is never persisted.
type session struct {
	id        string
	quest     Quest
	startedAt time.Time
	expired   bool
}

// TaskStatus is a point-in-time view of the timed-task slot.
type TaskStatus struct {
	SessionID string
	Quest     Quest
	State     TaskState
	StartedAt time.Time
	Duration  time.Duration
	Remaining time.Duration
	// JustExpired is true only on the Tick that first observes the countdown at zero.
	JustExpired bool
}

func (s *session) status(now time.Time) TaskStatus {
	d := s.quest.Duration()
	remaining := d - now.Sub(s.startedAt)
	if remaining < 0 {
		remaining = 0
	}
	st := TaskStatus{
		SessionID: s.id,
		Quest:     s.quest,
		State:     TaskRunning,
		StartedAt: s.startedAt,
		Duration:  d,
		Remaining: remaining,
	}
	if s.expired || remaining == 0 {
		st.State = TaskExpired
	}
	return st
}

// StartTask moves the slot from Idle to Running for q. A second task is
// rejected rather than replacing the first.
func (e *Engine) StartTask(ctx context.Context, q Quest) (TaskStatus, error) {
	if !q.IsTimed() {
		return TaskStatus{}, fmt.Errorf("quest %q has no duration", q.ID)
	}
	if err := e.CanComplete(q); err != nil {
		return TaskStatus{}, err
	}
	e.active = &session{
		id:        e.newID(),
		quest:     q,
		startedAt: e.clock.Now(),
	}
	e.logger.Debug("timed task started", "quest", q.ID, "session", e.active.id, "minutes", q.DurationMin)
	return e.active.status(e.active.startedAt), nil
}

// Tick advances the countdown view. Remaining time is always derived from the
// start timestamp, so missed or late ticks do not drift.
func (e *Engine) Tick(now time.Time) TaskStatus {
	if e.active == nil {
		return TaskStatus{State: TaskIdle}
	}
	st := e.active.status(now)
	if st.State == TaskExpired && !e.active.expired {
		e.active.expired = true
		st.JustExpired = true
		e.logger.Debug("timed task expired, proof required", "quest", e.active.quest.ID, "session", e.active.id)
	}
	return st
}

// ActiveTask returns the current session status without advancing it.
func (e *Engine) ActiveTask() (TaskStatus, bool) {
	if e.active == nil {
		return TaskStatus{State: TaskIdle}, false
	}
	return e.active.status(e.clock.Now()), true
}

// SubmitProof completes the active quest through the immediate completion path
// and returns the slot to Idle. Proof is accepted while Running or Expired.
func (e *Engine) SubmitProof(ctx context.Context, proof string) (*CompleteResult, error) {
	if e.active == nil {
		return nil, ErrNoActiveTask
	}
	if strings.TrimSpace(proof) == "" {
		return nil, ErrEmptyProof
	}
	q := e.active.quest
	e.logger.Debug("proof accepted", "quest", q.ID, "session", e.active.id)
	e.active = nil
	return e.completeNow(ctx, q), nil
}

// CancelTask drops the active session without granting XP or recording the
// attempt. Cancelling with nothing active is a no-op.
func (e *Engine) CancelTask() (TaskStatus, bool) {
	if e.active == nil {
		return TaskStatus{State: TaskIdle}, false
	}
	st := e.active.status(e.clock.Now())
	e.logger.Debug("timed task cancelled", "quest", e.active.quest.ID, "session", e.active.id)
	e.active = nil
	return st, true
}
