package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "warn", Output: &buf})

	log.Named("store").Info("hidden")
	log.Named("store").Warn("record unreadable", "key", "wellness-quest-state-v2")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "wellquest.store")
	assert.Contains(t, out, "record unreadable")
}

func TestUnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "chatty", Output: &buf})
	assert.True(t, log.IsWarn())
	assert.False(t, log.IsInfo())
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Level: "debug", JSON: true, Output: &buf}).Debug("tick", "session", "abc")
	assert.Contains(t, buf.String(), `"session":"abc"`)
}
