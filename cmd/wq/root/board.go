package root

import (
	"context"

	"github.com/spf13/cobra"

	"wellquest/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, a.eng, tui.Options{
				ChatMinDelay: a.cfg.Chat.MinDelay,
				ChatMaxDelay: a.cfg.Chat.MaxDelay,
			}, cmd.OutOrStdout())
		},
	}

	return cmd
}
