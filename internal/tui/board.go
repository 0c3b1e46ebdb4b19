package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wellquest/internal/chat"
	"wellquest/internal/engine"
)

// Options tune the interactive views. Zero values get defaults.
type Options struct {
	Chat         *chat.Responder
	ChatMinDelay time.Duration
	ChatMaxDelay time.Duration
}

func (o *Options) applyDefaults() {
	if o.Chat == nil {
		o.Chat = chat.NewResponder(nil)
	}
	if o.ChatMinDelay <= 0 {
		o.ChatMinDelay = time.Second
	}
	if o.ChatMaxDelay < o.ChatMinDelay {
		o.ChatMaxDelay = o.ChatMinDelay + time.Second
	}
}

func RunBoard(ctx context.Context, eng *engine.Engine, opts Options, out io.Writer) error {
	m := newBoardModel(ctx, eng, opts)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunTimer shows the countdown for the engine's active session and collects
// proof. It returns the completion result, or nil if the player quit first.
func RunTimer(ctx context.Context, eng *engine.Engine, out io.Writer) (*engine.CompleteResult, error) {
	m := newTimerModel(ctx, eng)
	p := tea.NewProgram(m, tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	return final.(timerModel).result, nil
}
