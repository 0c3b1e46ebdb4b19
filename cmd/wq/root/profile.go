package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wellquest/internal/ui"
)

func newSigninCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signin <name>",
		Short: "Set the name shown on the leaderboard",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			name := a.eng.SetDisplayName(ctx, strings.Join(args, " "))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render("Signed in as"), name)
			return nil
		},
	}

	return cmd
}

func newSignoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signout",
		Short: "Clear the display name",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			a.eng.SetDisplayName(ctx, "")
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Signed out. Progress stays on this device."))
			return nil
		},
	}

	return cmd
}

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this erases XP, badges and mood history; rerun with --yes to confirm")
			}
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			a.eng.Reset(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Progress reset."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
