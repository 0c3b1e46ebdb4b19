package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wellquest/internal/ui"
)

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the top players by XP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Leaderboard"))
			for i, row := range a.eng.Snapshot().Leaderboard {
				name := row.Name
				if row.IsUser {
					name = ui.Gold.Render(name + " (you)")
				}
				fmt.Fprintf(out, "%d. %s %s\n", i+1, name, ui.Muted.Render(fmt.Sprintf("%d XP", row.XP)))
			}
			return nil
		},
	}

	return cmd
}
