package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wellquest/internal/engine"
	"wellquest/internal/ui"
)

// timerModel is the single-quest countdown opened by `wq do` for timed quests.
// Proof can be entered at any time; quitting cancels the session.
type timerModel struct {
	ctx context.Context
	eng *engine.Engine

	status engine.TaskStatus
	bar    progress.Model
	proof  textinput.Model

	result *engine.CompleteResult
	note   string
}

func newTimerModel(ctx context.Context, eng *engine.Engine) timerModel {
	ti := textinput.New()
	ti.Placeholder = "Describe what you did"
	ti.CharLimit = 280
	ti.Focus()

	st, _ := eng.ActiveTask()
	return timerModel{
		ctx:    ctx,
		eng:    eng,
		status: st,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		proof:  ti,
	}
}

func (m timerModel) Init() tea.Cmd {
	if m.status.State != engine.TaskRunning {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, tickCmd(m.status.SessionID))
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.session != m.status.SessionID {
			return m, nil
		}
		m.status = m.eng.Tick(msg.at)
		if m.status.JustExpired {
			m.note = ui.Warn.Render("Time's up! Enter your proof to claim the XP.")
		}
		if m.status.State == engine.TaskRunning {
			return m, tickCmd(msg.session)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.eng.CancelTask()
			m.note = "Cancelled."
			return m, tea.Quit
		case tea.KeyEnter:
			res, err := m.eng.SubmitProof(m.ctx, m.proof.Value())
			if errors.Is(err, engine.ErrEmptyProof) {
				m.note = ui.Bad.Render("Proof can't be empty.")
				return m, nil
			}
			if err != nil {
				m.note = ui.Bad.Render(err.Error())
				return m, tea.Quit
			}
			m.result = res
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.proof, cmd = m.proof.Update(msg)
	return m, cmd
}

func (m timerModel) View() string {
	st := m.status
	if m.result != nil {
		return describeResult(st.Quest, m.result) + "\n"
	}
	elapsed := 1.0
	if st.Duration > 0 {
		elapsed = float64(st.Duration-st.Remaining) / float64(st.Duration)
	}
	lines := []string{
		ui.Heading(ui.IconTimer, st.Quest.Title),
		fmt.Sprintf("%s  %s", ui.Gold.Render(ui.Clock(int(st.Remaining.Seconds()))), ui.StatusText(st.State.String())),
		m.bar.ViewAs(elapsed),
		"",
		m.proof.View(),
	}
	if m.note != "" {
		lines = append(lines, m.note)
	}
	lines = append(lines, ui.Muted.Render("enter submit proof · esc cancel"))
	return strings.Join(lines, "\n") + "\n"
}
