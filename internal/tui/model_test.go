package tui

import (
	"context"
	"math/rand"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellquest/internal/chat"
	"wellquest/internal/clock"
	"wellquest/internal/engine"
	"wellquest/internal/storage"
)

func setupBoard(t *testing.T) (boardModel, *engine.Engine, *clock.FakeClock) {
	t.Helper()
	clk := clock.NewFakeClock(time.Date(2026, 10, 17, 9, 0, 0, 0, time.Local))
	eng := engine.New(context.Background(), storage.NewMemoryStore(),
		engine.WithClock(clk),
		engine.WithSessionIDs(func() string { return "s1" }),
	)
	m := newBoardModel(context.Background(), eng, Options{
		Chat:         chat.NewResponder(rand.New(rand.NewSource(1))),
		ChatMinDelay: time.Millisecond,
		ChatMaxDelay: 2 * time.Millisecond,
	})
	return m, eng, clk
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m boardModel, msg tea.Msg) (boardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(boardModel)
	require.True(t, ok)
	return bm, cmd
}

func selectQuest(t *testing.T, m boardModel, id string) boardModel {
	t.Helper()
	for i, qv := range m.snap.Quests {
		if qv.ID == id {
			m.selected = i
			return m
		}
	}
	t.Fatalf("quest %s not listed", id)
	return m
}

func TestBoardCompletesImmediateQuest(t *testing.T) {
	m, eng, _ := setupBoard(t)
	m = selectQuest(t, m, "water")

	m, cmd := send(t, m, key("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, 8, eng.Record().XP)
	assert.Equal(t, 8, m.snap.XP)
	assert.Contains(t, m.lastLog, "+8 XP")

	// Second press is a quiet no-op.
	m, _ = send(t, m, key("c"))
	assert.Equal(t, 8, eng.Record().XP)
	assert.Contains(t, m.lastLog, "already done")
}

func TestBoardTimedQuestFlow(t *testing.T) {
	m, eng, clk := setupBoard(t)
	m = selectQuest(t, m, "walk10")

	m, cmd := send(t, m, key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, engine.TaskRunning, m.snap.Task.State)
	assert.Equal(t, 0, eng.Record().XP)

	clk.Advance(4 * time.Minute)
	m, cmd = send(t, m, tickMsg{session: "s1", at: clk.Now()})
	require.NotNil(t, cmd)
	assert.Equal(t, 6*time.Minute, m.snap.Task.Remaining)
	assert.Equal(t, modeList, m.mode)

	clk.Advance(6 * time.Minute)
	m, _ = send(t, m, tickMsg{session: "s1", at: clk.Now()})
	assert.Equal(t, modeProof, m.mode)
	assert.Equal(t, engine.TaskExpired, m.snap.Task.State)

	m, _ = send(t, m, key("enter"))
	assert.Equal(t, modeProof, m.mode)
	assert.Equal(t, "Proof can't be empty.", m.lastLog)

	m, _ = send(t, m, key("walked to the river"))
	m, _ = send(t, m, key("enter"))
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, 15, eng.Record().XP)
	assert.Equal(t, engine.TaskIdle, m.snap.Task.State)
}

func TestBoardIgnoresStaleTicks(t *testing.T) {
	m, _, clk := setupBoard(t)

	m, cmd := send(t, m, tickMsg{session: "gone", at: clk.Now()})
	assert.Nil(t, cmd)
	assert.Equal(t, engine.TaskIdle, m.snap.Task.State)

	m = selectQuest(t, m, "focus5")
	m, _ = send(t, m, key("enter"))
	m, cmd = send(t, m, tickMsg{session: "older", at: clk.Now()})
	assert.Nil(t, cmd)
	assert.Equal(t, engine.TaskRunning, m.snap.Task.State)
}

func TestBoardCancelAndBlockedCompletion(t *testing.T) {
	m, eng, _ := setupBoard(t)
	m = selectQuest(t, m, "breathe")
	m, _ = send(t, m, key("enter"))

	m = selectQuest(t, m, "water")
	m, _ = send(t, m, key("enter"))
	assert.Contains(t, m.lastLog, engine.ErrTaskAlreadyActive.Error())
	assert.Equal(t, 0, eng.Record().XP)

	m, _ = send(t, m, key("x"))
	assert.Equal(t, engine.TaskIdle, m.snap.Task.State)
	assert.Contains(t, m.lastLog, "Cancelled")

	m, _ = send(t, m, key("p"))
	assert.Equal(t, modeList, m.mode)
}

func TestBoardMoodKeysChangeSuggestions(t *testing.T) {
	m, eng, _ := setupBoard(t)
	assert.Equal(t, engine.MoodMid, m.snap.MoodBand)

	m, _ = send(t, m, key("1"))
	assert.Equal(t, engine.MoodLow, m.snap.MoodBand)
	assert.True(t, m.snap.MoodLogged)
	require.Len(t, eng.Record().MoodLog, 1)

	var ids []string
	for _, q := range m.snap.Suggested {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"dance", "mini-arcade", "grat3"}, ids)
}

func TestBoardBreathingGameCompletesOnClose(t *testing.T) {
	m, eng, _ := setupBoard(t)
	m, _ = send(t, m, key("1"))
	m = selectQuest(t, m, "mini-arcade")

	m, cmd := send(t, m, key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, modeBreath, m.mode)
	assert.Equal(t, phaseInhale, m.breath.phase)

	for i := 0; i < breathCounts; i++ {
		m, _ = send(t, m, breathTickMsg{gen: m.breath.gen})
	}
	assert.Equal(t, phaseHold, m.breath.phase)
	assert.Equal(t, breathCounts, m.breath.count)

	m, _ = send(t, m, key("esc"))
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, 20, eng.Record().XP)

	// A tick from the closed game does nothing.
	before := m.breath
	m, cmd = send(t, m, breathTickMsg{gen: before.gen - 1})
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.breath)
}

func TestBreathCycle(t *testing.T) {
	var b breathGame
	b.start()
	for i := 0; i < 3*breathCounts; i++ {
		b.step()
	}
	assert.Equal(t, phaseInhale, b.phase)
	assert.Equal(t, 1, b.cycles)
}

func TestBoardChatReplyArrivesLater(t *testing.T) {
	m, eng, _ := setupBoard(t)
	m, _ = send(t, m, key("t"))
	require.Equal(t, modeChat, m.mode)

	m, _ = send(t, m, key("so stressed"))
	m, cmd := send(t, m, key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.typing)
	last := m.chatLog[len(m.chatLog)-1]
	assert.True(t, last.fromUser)
	assert.Equal(t, "so stressed", last.text)

	m, _ = send(t, m, chatReplyMsg{text: chat.Replies(chat.TopicStress)[0]})
	assert.Equal(t, 0, m.typing)
	assert.False(t, m.chatLog[len(m.chatLog)-1].fromUser)
	assert.Equal(t, 0, eng.Record().XP)

	m, _ = send(t, m, key("esc"))
	assert.Equal(t, modeList, m.mode)
}

func TestBoardViewRenders(t *testing.T) {
	m, _, _ := setupBoard(t)
	out := m.View()
	assert.Contains(t, out, "Wellquest")
	assert.Contains(t, out, "Drink a tall glass of water")
	assert.Contains(t, out, "Leaderboard")
}
