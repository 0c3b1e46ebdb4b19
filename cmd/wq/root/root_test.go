package root

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempState(t *testing.T, dbPath string) {
	t.Helper()
	for _, k := range []string{"WQ_DB_PATH", "WQ_LOG_LEVEL", "WQ_VISION_ENDPOINT", "WQ_VISION_KEY"} {
		t.Setenv(k, "")
	}
	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	flagDB = dbPath
	flagLogLevel = "error"
	t.Cleanup(func() {
		flagConfig, flagDB, flagLogLevel = "", "", ""
	})
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDoPersistsAcrossRuns(t *testing.T) {
	useTempState(t, filepath.Join(t.TempDir(), "wq.db"))

	out, err := run(t, newDoCmd(), "water")
	require.NoError(t, err)
	assert.Contains(t, out, "+8 XP")

	out, err = run(t, newDoCmd(), "water")
	require.NoError(t, err)
	assert.Contains(t, out, "already done")

	out, err = run(t, newStatusCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "8 (92 to level 2)")
}

func TestDoTimedQuestWithProofFlag(t *testing.T) {
	useTempState(t, filepath.Join(t.TempDir(), "wq.db"))

	out, err := run(t, newDoCmd(), "walk10", "--proof", "walked the dog")
	require.NoError(t, err)
	assert.Contains(t, out, "+15 XP")

	_, err = run(t, newDoCmd(), "nope")
	require.Error(t, err)
}

func TestMoodAndExportImport(t *testing.T) {
	dir := t.TempDir()
	useTempState(t, filepath.Join(dir, "wq.db"))

	out, err := run(t, newMoodCmd(), "1", "--note", "rough day")
	require.NoError(t, err)
	assert.Contains(t, out, "low mood")
	assert.Contains(t, out, "mini-arcade")

	_, err = run(t, newMoodCmd(), "9")
	require.Error(t, err)

	backup := filepath.Join(dir, "backup.json")
	_, err = run(t, newExportCmd(), "--out", backup)
	require.NoError(t, err)
	data, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"notes": "rough day"`)

	_, err = run(t, newResetCmd())
	require.Error(t, err)
	_, err = run(t, newResetCmd(), "--yes")
	require.NoError(t, err)

	_, err = run(t, newImportCmd(), backup)
	require.NoError(t, err)
	a, cleanup, err := openApp(context.Background())
	require.NoError(t, err)
	defer cleanup()
	require.Len(t, a.eng.Record().MoodLog, 1)
}

func TestOpenAppFallsBackToMemory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	useTempState(t, filepath.Join(blocker, "sub", "wq.db"))

	a, cleanup, err := openApp(context.Background())
	require.NoError(t, err)
	defer cleanup()

	_, err = a.eng.Complete(context.Background(), "water")
	require.NoError(t, err)
	assert.Equal(t, 8, a.eng.Record().XP)

	// Nothing reached disk, so a fresh run starts over.
	again, cleanupAgain, err := openApp(context.Background())
	require.NoError(t, err)
	defer cleanupAgain()
	assert.Equal(t, 0, again.eng.Record().XP)
}
