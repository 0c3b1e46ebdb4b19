package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Wellquest theme (CLI + TUI).

const (
	IconQuest   = "🌱"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconTimer   = "⏳"
	IconFire    = "🔥"
	IconChat    = "💬"
	IconMood    = "🙂"
	IconCal     = "📅"
	IconAvatar  = "🧑"
	IconBubble  = "🫧"
	IconSuggest = "💡"
	IconLock    = "🔒"
)

var moodFaces = [...]string{"😞", "🙁", "😐", "🙂", "😄"}

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
	Workout     = lipgloss.NewStyle().Bold(true).Foreground(cGood)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// StatusText styles a quest or task state label.
func StatusText(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	switch s {
	case "done":
		return Good.Render("done")
	case "running":
		return H2.Render("running")
	case "expired", "proof":
		return Warn.Render(s)
	case "locked":
		return Bad.Render("locked")
	default:
		return Muted.Render(status)
	}
}

// MoodFace returns the emoji for a 1-5 mood, or a blank face when out of range.
func MoodFace(mood int) string {
	if mood < 1 || mood > len(moodFaces) {
		return "·"
	}
	return moodFaces[mood-1]
}

// QuestIcon marks timed quests and suggestions in lists.
func QuestIcon(timed bool, suggested bool) string {
	switch {
	case timed:
		return IconTimer
	case suggested:
		return IconSuggest
	default:
		return IconQuest
	}
}

// Clock formats a countdown as m:ss.
func Clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
