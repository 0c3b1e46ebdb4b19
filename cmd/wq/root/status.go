package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wellquest/internal/engine"
	"wellquest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, mood, streak and badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s := a.eng.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, s.DisplayName+"'s wellness"))
			fmt.Fprintln(out, ui.LabelValue("Level", s.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d (%d to level %d)", s.XP, s.XPToNext, s.Level+1)))
			fmt.Fprintln(out, ui.LabelValue("Weekly goal", fmt.Sprintf("%d%%", s.WeeklyProgress)))
			fmt.Fprintln(out, ui.LabelValue("Avatar", s.SelectedAvatar))
			fmt.Fprintln(out, ui.LabelValue("Workout streak", fmt.Sprintf("%s %d days", ui.IconFire, s.Streak)))
			if s.MoodLogged {
				fmt.Fprintln(out, ui.LabelValue("Mood today", fmt.Sprintf("%s %s", ui.MoodFace(s.TodayMood), engine.MoodLabel(s.TodayMood))))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Mood today", ui.Muted.Render("not logged")))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Badges"))
			for _, b := range s.Badges {
				if b.Earned {
					fmt.Fprintf(out, "- %s %s %s\n", b.Icon, b.Name, ui.Muted.Render(b.Description))
				} else {
					fmt.Fprintf(out, "- %s %s %s\n", ui.IconLock, ui.Muted.Render(b.Name), ui.Muted.Render(b.Description))
				}
			}
			if s.Task.State != engine.TaskIdle {
				fmt.Fprintln(out, "")
				fmt.Fprintf(out, "%s %s %s\n", ui.IconTimer, s.Task.Quest.Title, ui.StatusText(s.Task.State.String()))
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Muted.Render(strings.TrimSpace(s.Reminder)))
			return nil
		},
	}

	return cmd
}
