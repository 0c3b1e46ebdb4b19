package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"wellquest/internal/storage"
)

var cheers = []string{
	"Keep going, you're doing great!",
	"Every step counts!",
	"You got this!",
	"Stay strong and keep pushing!",
	"Small wins lead to big victories!",
}

// SetDisplayName stores the label shown on the leaderboard. An empty name
// falls back to the placeholder; this is also what sign-out sets.
func (e *Engine) SetDisplayName(ctx context.Context, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = storage.DefaultDisplayName
	}
	e.rec.DisplayName = name
	e.persist(ctx)
	return name
}

// SelectAvatar switches the avatar if it is unlocked at the current level.
func (e *Engine) SelectAvatar(ctx context.Context, id string) error {
	if err := CanSelectAvatar(Level(e.rec.XP), id); err != nil {
		return err
	}
	e.rec.SelectedAvatar = id
	e.persist(ctx)
	return nil
}

// Cheer grants one bonus XP and returns an encouragement line.
func (e *Engine) Cheer(ctx context.Context) string {
	e.rec.XP++
	e.persist(ctx)
	return cheers[e.rng.Intn(len(cheers))]
}

// Reset replaces the record with defaults and drops any timed task.
func (e *Engine) Reset(ctx context.Context) {
	e.active = nil
	e.rec = storage.DefaultRecord()
	e.persist(ctx)
	e.logger.Info("progress reset")
}

// Export returns the record as indented JSON.
func (e *Engine) Export() ([]byte, error) {
	data, err := json.MarshalIndent(e.rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export record: %w", err)
	}
	return data, nil
}

// Import replaces the record with a previously exported payload and drops any
// timed task. The avatar selection is taken as-is even if it is above the
// imported level.
func (e *Engine) Import(ctx context.Context, data []byte) error {
	rec, err := storage.DecodeRecord(data)
	if err != nil {
		return err
	}
	e.active = nil
	e.rec = rec
	e.persist(ctx)
	e.logger.Info("progress imported", "xp", rec.XP)
	return nil
}
