package root

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"wellquest/internal/engine"
	"wellquest/internal/tui"
	"wellquest/internal/ui"
)

func newDoCmd() *cobra.Command {
	var proof string

	cmd := &cobra.Command{
		Use:   "do <quest-id>",
		Short: "Complete a quest (timed quests open a countdown and ask for proof)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			q, ok := engine.FindQuest(args[0])
			if !ok {
				return fmt.Errorf("%w: %q (see `wq quests`)", engine.ErrUnknownQuest, args[0])
			}
			res, err := a.eng.CompleteQuest(ctx, q)
			if err != nil {
				return err
			}
			if res.Started != nil {
				if proof != "" {
					res, err = a.eng.SubmitProof(ctx, proof)
				} else {
					res, err = tui.RunTimer(ctx, a.eng, out)
				}
				if err != nil {
					return err
				}
				if res == nil {
					fmt.Fprintln(out, ui.Muted.Render("Timed quest cancelled. No XP granted."))
					return nil
				}
			}
			printResult(out, q, res)
			return nil
		},
	}

	cmd.Flags().StringVar(&proof, "proof", "", "proof text for a timed quest, skipping the countdown")
	return cmd
}

func printResult(out io.Writer, q engine.Quest, res *engine.CompleteResult) {
	if res.Duplicate {
		fmt.Fprintf(out, "%s %s\n", ui.Muted.Render(ui.IconInfo), ui.Muted.Render(fmt.Sprintf("%q is already done today.", q.Title)))
		return
	}
	fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconDone+" Completed"), q.Title, ui.Gold.Render(fmt.Sprintf("+%d XP", res.XPAwarded)))
	if res.LevelUp {
		fmt.Fprintf(out, "%s %s\n", ui.BadgeLevelUp, ui.LabelValue("Level", fmt.Sprintf("%d → %d", res.LevelBefore, res.LevelAfter)))
	}
	for _, b := range res.NewBadges {
		fmt.Fprintf(out, "%s %s\n", ui.Gold.Render(ui.IconTrophy+" Badge earned:"), b)
	}
}
