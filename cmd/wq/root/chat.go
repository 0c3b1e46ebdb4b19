package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wellquest/internal/chat"
	"wellquest/internal/ui"
)

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Talk to the support bot",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := strings.Join(args, " ")
			reply := chat.NewResponder(nil).Reply(msg)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconChat+" bot:"), reply)
			return nil
		},
	}

	return cmd
}

func newCheerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cheer",
		Short: "Get some encouragement (+1 XP)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			line := a.eng.Cheer(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.IconSparkle, line, ui.Gold.Render("+1 XP"))
			return nil
		},
	}

	return cmd
}
