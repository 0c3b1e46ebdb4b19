package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrTaskAlreadyActive rejects starting or completing a quest while a timed task runs.
	ErrTaskAlreadyActive = errors.New("a timed task is already active")
	// ErrNoActiveTask is returned by proof submission when no session exists.
	ErrNoActiveTask = errors.New("no active timed task")
	// ErrEmptyProof rejects blank proof text; the session is kept.
	ErrEmptyProof = errors.New("proof text is required")
	// ErrDuplicateCompletion reports a quest already completed today. Complete
	// treats it as a silent no-op.
	ErrDuplicateCompletion = errors.New("quest already completed today")

	ErrUnknownQuest  = errors.New("unknown quest")
	ErrInvalidMood   = errors.New("mood must be between 1 and 5")
	ErrUnknownAvatar = errors.New("unknown avatar")
)

// AvatarLockedError indicates an avatar is locked behind a required level.
type AvatarLockedError struct {
	Avatar        string
	RequiredLevel int
	CurrentLevel  int
}

func (e AvatarLockedError) Error() string {
	return fmt.Sprintf("avatar '%s' unlocks at level %d (currently %d)", e.Avatar, e.RequiredLevel, e.CurrentLevel)
}
