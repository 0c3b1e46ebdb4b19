package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wellquest/internal/engine"
	"wellquest/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quests",
		Aliases: []string{"list", "ls"},
		Short:   "List today's quests and mood-based suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s := a.eng.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Today's quests "+s.Date))
			suggestedHeader := false
			for _, qv := range s.Quests {
				if qv.Suggested && !suggestedHeader {
					fmt.Fprintln(out, "")
					fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Suggested for a %s mood", ui.IconSuggest, s.MoodBand)))
					suggestedHeader = true
				}
				fmt.Fprintln(out, questRow(qv, s.Task))
			}
			if !suggestedHeader {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.Muted.Render("All suggestions done for today."))
			}
			return nil
		},
	}

	return cmd
}

func questRow(qv engine.QuestView, task engine.TaskStatus) string {
	meta := fmt.Sprintf("+%d XP", qv.Reward())
	if qv.IsTimed() {
		meta += fmt.Sprintf(", %d min", qv.DurationMin)
	}
	status := ""
	switch {
	case qv.Done:
		status = " " + ui.StatusText("done")
	case task.State != engine.TaskIdle && task.Quest.ID == qv.ID:
		status = " " + ui.StatusText(task.State.String())
	}
	return fmt.Sprintf("- %s %s %s %s%s", ui.QuestIcon(qv.IsTimed(), qv.Suggested), ui.Key.Render(qv.ID), qv.Title, ui.Muted.Render("("+meta+")"), status)
}
