package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wellquest/internal/chat"
	"wellquest/internal/engine"
	"wellquest/internal/ui"
)

type mode int

const (
	modeList mode = iota
	modeProof
	modeChat
	modeBreath
)

// maxChatLines is how much chat history stays on screen.
const maxChatLines = 8

// boardModel is the dashboard. Engine calls happen inside Update, never in a
// tea.Cmd, so the engine is only ever touched from the program's event loop.
type boardModel struct {
	ctx  context.Context
	eng  *engine.Engine
	opts Options

	width  int
	height int

	snap     engine.Snapshot
	selected int
	mode     mode

	xpBar   progress.Model
	taskBar progress.Model
	proof   textinput.Model
	message textinput.Model

	chatLog     []chatLine
	typing      int
	breath      breathGame
	breathQuest engine.Quest

	lastLog string
}

type chatLine struct {
	fromUser bool
	text     string
}

// tickMsg drives the countdown for one session. Ticks for any other session
// are stale and dropped.
type tickMsg struct {
	session string
	at      time.Time
}

type chatReplyMsg struct{ text string }

func tickCmd(session string) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg{session: session, at: t} })
}

func newBoardModel(ctx context.Context, eng *engine.Engine, opts Options) boardModel {
	opts.applyDefaults()

	pi := textinput.New()
	pi.Placeholder = "What did you do? (proof)"
	pi.CharLimit = 280

	ci := textinput.New()
	ci.Placeholder = "Say something…"
	ci.CharLimit = 280

	m := boardModel{
		ctx:     ctx,
		eng:     eng,
		opts:    opts,
		xpBar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
		taskBar: progress.New(progress.WithSolidFill("214"), progress.WithWidth(30)),
		proof:   pi,
		message: ci,
		chatLog: []chatLine{{text: chat.Greeting}},
		lastLog: "Welcome back.",
	}
	m.refresh()
	return m
}

func (m boardModel) Init() tea.Cmd {
	if m.snap.Task.State == engine.TaskRunning {
		return tickCmd(m.snap.Task.SessionID)
	}
	return nil
}

func (m *boardModel) refresh() {
	m.snap = m.eng.Snapshot()
	if m.selected >= len(m.snap.Quests) {
		m.selected = len(m.snap.Quests) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		return m.handleTick(msg)
	case breathTickMsg:
		if m.mode != modeBreath || msg.gen != m.breath.gen {
			return m, nil
		}
		m.breath.step()
		return m, m.breath.tick()
	case chatReplyMsg:
		if m.typing > 0 {
			m.typing--
		}
		m.appendChat(chatLine{text: msg.text})
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeProof:
			return m.updateProof(msg)
		case modeChat:
			return m.updateChat(msg)
		case modeBreath:
			return m.updateBreath(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m boardModel) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	active, ok := m.eng.ActiveTask()
	if !ok || active.SessionID != msg.session {
		return m, nil
	}
	st := m.eng.Tick(msg.at)
	m.snap.Task = st
	if st.JustExpired {
		m.lastLog = fmt.Sprintf("%s Time's up for %q. Add proof to claim %d XP.", ui.IconTimer, st.Quest.Title, st.Quest.Reward())
		return m, m.openProof()
	}
	if st.State == engine.TaskRunning {
		return m, tickCmd(msg.session)
	}
	return m, nil
}

func (m boardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.snap.Quests)-1 {
			m.selected++
		}
	case "c", " ", "enter":
		return m.completeSelected()
	case "p":
		if m.snap.Task.State == engine.TaskIdle {
			m.lastLog = "No timed quest in progress."
			return m, nil
		}
		return m, m.openProof()
	case "x":
		if st, ok := m.eng.CancelTask(); ok {
			m.lastLog = fmt.Sprintf("Cancelled %q. No XP granted.", st.Quest.Title)
		}
		m.refresh()
	case "1", "2", "3", "4", "5":
		mood := int(msg.String()[0] - '0')
		if err := m.eng.LogMood(m.ctx, mood, ""); err != nil {
			m.lastLog = "Mood not logged: " + err.Error()
			return m, nil
		}
		m.refresh()
		m.lastLog = fmt.Sprintf("%s Mood logged: %s. Suggestions now follow a %s mood.", ui.MoodFace(mood), engine.MoodLabel(mood), m.snap.MoodBand)
	case "!":
		m.lastLog = ui.IconSparkle + " " + m.eng.Cheer(m.ctx)
		m.refresh()
	case "t":
		m.mode = modeChat
		return m, m.message.Focus()
	}
	return m, nil
}

func (m boardModel) completeSelected() (tea.Model, tea.Cmd) {
	if m.selected < 0 || m.selected >= len(m.snap.Quests) {
		return m, nil
	}
	q := m.snap.Quests[m.selected].Quest
	if q.Tag == engine.TagMiniGame {
		if err := m.eng.CanComplete(q); err != nil {
			if errors.Is(err, engine.ErrDuplicateCompletion) {
				m.lastLog = fmt.Sprintf("%q is already done today.", q.Title)
			} else {
				m.lastLog = err.Error()
			}
			return m, nil
		}
		m.mode = modeBreath
		m.breathQuest = q
		return m, m.breath.start()
	}

	res, err := m.eng.CompleteQuest(m.ctx, q)
	if err != nil {
		m.lastLog = err.Error()
		return m, nil
	}
	m.refresh()
	if res.Started != nil {
		m.lastLog = fmt.Sprintf("%s Started %q: %s on the clock.", ui.IconTimer, q.Title, ui.Clock(int(res.Started.Remaining.Seconds())))
		return m, tickCmd(res.Started.SessionID)
	}
	m.lastLog = describeResult(q, res)
	return m, nil
}

func (m *boardModel) openProof() tea.Cmd {
	m.mode = modeProof
	m.proof.SetValue("")
	return m.proof.Focus()
}

func (m boardModel) updateProof(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode = modeList
		m.proof.Blur()
		m.lastLog = "Proof postponed. Press p when ready."
		return m, nil
	case tea.KeyEnter:
		q := m.snap.Task.Quest
		res, err := m.eng.SubmitProof(m.ctx, m.proof.Value())
		if err != nil {
			if errors.Is(err, engine.ErrEmptyProof) {
				m.lastLog = "Proof can't be empty."
				return m, nil
			}
			m.mode = modeList
			m.proof.Blur()
			m.lastLog = err.Error()
			m.refresh()
			return m, nil
		}
		m.mode = modeList
		m.proof.Blur()
		m.refresh()
		m.lastLog = describeResult(q, res)
		return m, nil
	}
	var cmd tea.Cmd
	m.proof, cmd = m.proof.Update(msg)
	return m, cmd
}

func (m boardModel) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode = modeList
		m.message.Blur()
		return m, nil
	case tea.KeyEnter:
		text := strings.TrimSpace(m.message.Value())
		if text == "" {
			return m, nil
		}
		m.message.SetValue("")
		m.appendChat(chatLine{fromUser: true, text: text})
		reply := m.opts.Chat.Reply(text)
		delay := m.opts.Chat.Delay(m.opts.ChatMinDelay, m.opts.ChatMaxDelay)
		m.typing++
		return m, tea.Tick(delay, func(time.Time) tea.Msg { return chatReplyMsg{text: reply} })
	}
	var cmd tea.Cmd
	m.message, cmd = m.message.Update(msg)
	return m, cmd
}

func (m *boardModel) appendChat(line chatLine) {
	m.chatLog = append(m.chatLog, line)
	if len(m.chatLog) > maxChatLines {
		m.chatLog = m.chatLog[len(m.chatLog)-maxChatLines:]
	}
}

func (m boardModel) updateBreath(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter", "q":
		m.mode = modeList
		m.breath.gen++
		res, err := m.eng.CompleteQuest(m.ctx, m.breathQuest)
		if err != nil {
			m.lastLog = err.Error()
			return m, nil
		}
		m.refresh()
		m.lastLog = describeResult(m.breathQuest, res)
	}
	return m, nil
}

func describeResult(q engine.Quest, res *engine.CompleteResult) string {
	if res.Duplicate {
		return fmt.Sprintf("%q is already done today.", q.Title)
	}
	line := fmt.Sprintf("%s %s +%d XP", ui.IconDone, q.Title, res.XPAwarded)
	if res.LevelUp {
		line += fmt.Sprintf(" · %s level %d", ui.BadgeLevelUp, res.LevelAfter)
	}
	for _, b := range res.NewBadges {
		line += fmt.Sprintf(" · %s %s", ui.IconTrophy, b)
	}
	return line
}

func (m boardModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.mode {
	case modeBreath:
		b.WriteString(m.renderBreath())
	case modeChat:
		b.WriteString(m.renderChat())
	default:
		b.WriteString(m.renderQuests())
		if m.snap.Task.State != engine.TaskIdle {
			b.WriteString("\n")
			b.WriteString(m.renderTask())
		}
		if m.mode == modeProof {
			b.WriteString("\n")
			b.WriteString(ui.H2.Render("Proof") + "\n" + m.proof.View() + "\n")
			b.WriteString(ui.Muted.Render("enter submit · esc later"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.renderSidebar())
	}

	b.WriteString("\n")
	b.WriteString(m.lastLog)
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(m.keyHelp()))
	return b.String()
}

func (m boardModel) renderHeader() string {
	s := m.snap
	pct := float64(s.LevelProgress) / engine.XPPerLevel
	return fmt.Sprintf("%s  %s · Level %d · %d XP %s %s",
		ui.Heading(ui.IconQuest, "Wellquest"),
		s.DisplayName, s.Level, s.XP,
		m.xpBar.ViewAs(pct),
		ui.Muted.Render(fmt.Sprintf("%d to next", s.XPToNext)),
	)
}

func (m boardModel) renderQuests() string {
	lines := []string{ui.H2.Render("Today's quests")}
	for i, qv := range m.snap.Quests {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		status := ""
		if qv.Done {
			status = " " + ui.StatusText("done")
		} else if m.snap.Task.State != engine.TaskIdle && m.snap.Task.Quest.ID == qv.ID {
			status = " " + ui.StatusText(m.snap.Task.State.String())
		}
		meta := fmt.Sprintf("+%d XP", qv.Reward())
		if qv.IsTimed() {
			meta += fmt.Sprintf(" · %d min", qv.DurationMin)
		}
		row := fmt.Sprintf("%s%s %s %s%s", cursor, ui.QuestIcon(qv.IsTimed(), qv.Suggested), qv.Title, ui.Muted.Render(meta), status)
		if i == m.selected {
			row = ui.SelectedRow.Render(row)
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m boardModel) renderTask() string {
	st := m.snap.Task
	elapsed := 1.0
	if st.Duration > 0 {
		elapsed = float64(st.Duration-st.Remaining) / float64(st.Duration)
	}
	label := fmt.Sprintf("%s %s %s", ui.IconTimer, st.Quest.Title, ui.Clock(int(st.Remaining.Seconds())))
	if st.State == engine.TaskExpired {
		label += " " + ui.Warn.Render("proof pending (p)")
	}
	return label + "\n" + m.taskBar.ViewAs(elapsed) + "\n"
}

func (m boardModel) renderSidebar() string {
	s := m.snap
	mood := ui.Muted.Render("not logged")
	if s.MoodLogged {
		mood = fmt.Sprintf("%s %s", ui.MoodFace(s.TodayMood), engine.MoodLabel(s.TodayMood))
	}
	lines := []string{
		ui.LabelValue("Mood", mood) + "  " + ui.Muted.Render("band "+string(s.MoodBand)),
		ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconFire, s.Streak)),
		ui.LabelValue("Weekly", fmt.Sprintf("%d%%", s.WeeklyProgress)),
		ui.LabelValue("Avatar", s.SelectedAvatar),
	}

	var earned []string
	for _, b := range s.Badges {
		if b.Earned {
			earned = append(earned, b.Icon+" "+b.Name)
		}
	}
	if len(earned) == 0 {
		earned = []string{ui.Muted.Render("none yet")}
	}
	lines = append(lines, ui.LabelValue("Badges", strings.Join(earned, ", ")))

	lines = append(lines, "", ui.H2.Render(ui.IconTrophy+" Leaderboard"))
	for i, row := range s.Leaderboard {
		name := row.Name
		if row.IsUser {
			name = ui.Gold.Render(name)
		}
		lines = append(lines, fmt.Sprintf("%d. %s %d XP", i+1, name, row.XP))
	}
	lines = append(lines, "", ui.Muted.Render(s.Reminder))
	return strings.Join(lines, "\n") + "\n"
}

func (m boardModel) renderBreath() string {
	b := m.breath
	return strings.Join([]string{
		ui.H2.Render(ui.IconBubble + " Bubble breath"),
		"",
		"    " + b.bubble(),
		"",
		fmt.Sprintf("%s · count %d", ui.Gold.Render(b.phase.String()), b.count),
		ui.Muted.Render(fmt.Sprintf("cycles %d", b.cycles)),
		"",
		ui.Muted.Render("esc or enter to finish"),
	}, "\n") + "\n"
}

func (m boardModel) renderChat() string {
	lines := []string{ui.H2.Render(ui.IconChat + " Support chat")}
	for _, l := range m.chatLog {
		if l.fromUser {
			lines = append(lines, ui.Key.Render("you: ")+l.text)
		} else {
			lines = append(lines, ui.Good.Render("bot: ")+l.text)
		}
	}
	if m.typing > 0 {
		lines = append(lines, ui.Muted.Render("bot is typing…"))
	}
	lines = append(lines, "", m.message.View())
	return strings.Join(lines, "\n") + "\n"
}

func (m boardModel) keyHelp() string {
	switch m.mode {
	case modeChat:
		return "enter send · esc back"
	case modeProof:
		return "enter submit · esc later"
	case modeBreath:
		return "esc finish"
	}
	return "↑/↓ move · c complete · p proof · x cancel · 1-5 mood · ! cheer · t chat · q quit"
}
