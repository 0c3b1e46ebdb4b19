package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func putRaw(t *testing.T, db *sql.DB, payload string) {
	t.Helper()
	ctx := context.Background()
	repo := NewStateRepo(db)
	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		return repo.Put(ctx, tx, StateKey, payload, time.Now())
	})
	if err != nil {
		t.Fatalf("put raw: %v", err)
	}
}

func TestLoadWithoutRowReturnsDefaults(t *testing.T) {
	store := NewRecordStore(openTestDB(t), nil)
	rec := store.Load(context.Background())
	if rec.XP != 0 || rec.DisplayName != DefaultDisplayName || rec.SelectedAvatar != DefaultAvatar {
		t.Fatalf("unexpected defaults: %+v", rec)
	}
	if rec.Completed == nil || rec.MoodLog == nil || rec.Badges == nil {
		t.Fatalf("expected non-nil collections: %+v", rec)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	store := NewRecordStore(db, nil)

	rec := DefaultRecord()
	rec.XP = 305
	rec.Completed["2026-10-17"] = []string{"water", "walk10"}
	rec.MoodLog = append(rec.MoodLog, MoodEntry{Date: "2026-10-17", Mood: 4, Notes: "sunny"})
	rec.Badges = []string{"Hydration Hero"}
	rec.WeeklyProgress = 10
	rec.DisplayName = "Robin"
	store.Save(ctx, rec)

	got := NewRecordStore(db, nil).Load(ctx)
	if got.XP != 305 || got.DisplayName != "Robin" || got.WeeklyProgress != 10 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if ids := got.Completed["2026-10-17"]; len(ids) != 2 || ids[0] != "water" || ids[1] != "walk10" {
		t.Fatalf("completed=%v", ids)
	}
	if len(got.MoodLog) != 1 || got.MoodLog[0].Notes != "sunny" {
		t.Fatalf("moodLog=%+v", got.MoodLog)
	}

	// Saving again replaces the single row.
	rec.XP = 400
	store.Save(ctx, rec)
	var rows int
	if err := db.QueryRow(`SELECT COUNT(*) FROM state`).Scan(&rows); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 1 {
		t.Fatalf("rows=%d, want 1", rows)
	}
	if got := store.Load(ctx); got.XP != 400 {
		t.Fatalf("xp=%d, want 400", got.XP)
	}
}

func TestLoadUnreadablePayloadFallsBackToDefaults(t *testing.T) {
	db := openTestDB(t)
	putRaw(t, db, `{not json`)

	rec := NewRecordStore(db, nil).Load(context.Background())
	if rec.XP != 0 || rec.DisplayName != DefaultDisplayName {
		t.Fatalf("expected defaults, got %+v", rec)
	}
}

func TestLoadPartialPayloadKeepsDefaultsForMissingFields(t *testing.T) {
	db := openTestDB(t)
	putRaw(t, db, `{"xp": 120, "displayName": "", "futureField": true, "weeklyProgress": 140}`)

	rec := NewRecordStore(db, nil).Load(context.Background())
	if rec.XP != 120 {
		t.Fatalf("xp=%d, want 120", rec.XP)
	}
	if rec.DisplayName != DefaultDisplayName {
		t.Fatalf("displayName=%q, want %q", rec.DisplayName, DefaultDisplayName)
	}
	if rec.SelectedAvatar != DefaultAvatar {
		t.Fatalf("selectedAvatar=%q", rec.SelectedAvatar)
	}
	if rec.WeeklyProgress != 100 {
		t.Fatalf("weeklyProgress=%d, want clamped 100", rec.WeeklyProgress)
	}
}

func TestSaveFailureIsSwallowed(t *testing.T) {
	db := openTestDB(t)
	store := NewRecordStore(db, nil)
	_ = db.Close()

	// Must not panic or surface an error.
	store.Save(context.Background(), DefaultRecord())
	if rec := store.Load(context.Background()); rec.XP != 0 {
		t.Fatalf("expected defaults after failed load, got %+v", rec)
	}
}

func TestNormalizeRepairsInvariants(t *testing.T) {
	rec := &ProgressionRecord{
		XP:        -5,
		Completed: map[string][]string{"2026-10-17": {"water", "water", "grat1"}},
		MoodLog: []MoodEntry{
			{Date: "2026-10-16", Mood: 2},
			{Date: "2026-10-17", Mood: 1, Notes: "old"},
			{Date: "2026-10-17", Mood: 5, Notes: "new"},
			{Date: "2026-10-17", Mood: 42, Notes: "bogus"},
			{Date: "2026-10-18", Mood: -7},
			{Date: "2026-10-19", Mood: 0},
		},
		Badges: []string{"Daily Trio", "Daily Trio"},
	}
	rec.Normalize()

	if rec.XP != 0 {
		t.Fatalf("xp=%d, want 0", rec.XP)
	}
	if ids := rec.Completed["2026-10-17"]; len(ids) != 2 {
		t.Fatalf("completed=%v", ids)
	}
	if len(rec.MoodLog) != 2 || rec.MoodLog[1].Notes != "new" {
		t.Fatalf("moodLog=%+v", rec.MoodLog)
	}
	if len(rec.Badges) != 1 {
		t.Fatalf("badges=%v", rec.Badges)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	if rec := m.Load(ctx); rec.XP != 0 {
		t.Fatalf("expected defaults")
	}
	rec := DefaultRecord()
	rec.XP = 42
	m.Save(ctx, rec)
	rec.XP = 99 // later mutation must not leak into the stored copy
	if got := m.Load(ctx); got.XP != 42 {
		t.Fatalf("xp=%d, want 42", got.XP)
	}
	if m.Saves != 1 {
		t.Fatalf("saves=%d, want 1", m.Saves)
	}
}
