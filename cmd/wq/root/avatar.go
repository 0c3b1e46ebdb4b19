package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wellquest/internal/engine"
	"wellquest/internal/ui"
)

func newAvatarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avatar [id]",
		Short: "List avatars, or select one you have unlocked",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				if err := a.eng.SelectAvatar(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s\n", ui.Good.Render(ui.IconAvatar+" Avatar set:"), args[0])
				return nil
			}

			s := a.eng.Snapshot()
			fmt.Fprintln(out, ui.Heading(ui.IconAvatar, "Avatars"))
			for _, av := range engine.Avatars() {
				marker := "  "
				if av.ID == s.SelectedAvatar {
					marker = "> "
				}
				state := ui.Good.Render("unlocked")
				if s.Level < av.MinLevel {
					state = ui.StatusText("locked") + ui.Muted.Render(fmt.Sprintf(" (level %d)", av.MinLevel))
				}
				fmt.Fprintf(out, "%s%s %s %s\n", marker, ui.Key.Render(av.ID), av.Name, state)
			}
			return nil
		},
	}

	return cmd
}
