package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type breathPhase int

const (
	phaseInhale breathPhase = iota
	phaseHold
	phaseExhale
)

// breathCounts is how many one-second counts each phase lasts.
const breathCounts = 4

func (p breathPhase) String() string {
	switch p {
	case phaseHold:
		return "hold"
	case phaseExhale:
		return "exhale"
	default:
		return "inhale"
	}
}

// breathGame paces inhale, hold and exhale at four counts each, looping until
// the player closes it.
type breathGame struct {
	phase  breathPhase
	count  int
	cycles int
	// gen invalidates ticks scheduled for an earlier run of the game.
	gen int
}

type breathTickMsg struct{ gen int }

func (b *breathGame) start() tea.Cmd {
	b.gen++
	b.phase = phaseInhale
	b.count = breathCounts
	b.cycles = 0
	return b.tick()
}

func (b breathGame) tick() tea.Cmd {
	gen := b.gen
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return breathTickMsg{gen: gen} })
}

func (b *breathGame) step() {
	b.count--
	if b.count >= 1 {
		return
	}
	b.count = breathCounts
	switch b.phase {
	case phaseInhale:
		b.phase = phaseHold
	case phaseHold:
		b.phase = phaseExhale
	default:
		b.phase = phaseInhale
		b.cycles++
	}
}

func (b breathGame) bubble() string {
	switch b.phase {
	case phaseInhale:
		return "(  ◯  )"
	case phaseExhale:
		return "  ·  "
	default:
		return " ( ◯ ) "
	}
}
