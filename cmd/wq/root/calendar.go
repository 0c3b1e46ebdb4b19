package root

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wellquest/internal/clock"
	"wellquest/internal/engine"
	"wellquest/internal/ui"
)

func newCalendarCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month of workout days",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			at := a.eng.Now()
			if month != "" {
				at, err = time.ParseInLocation("2006-01", month, time.Local)
				if err != nil {
					return fmt.Errorf("month must be YYYY-MM: %w", err)
				}
			}
			m := engine.MonthCalendar(a.eng.Record(), at.Year(), at.Month())
			renderMonth(cmd.OutOrStdout(), m, clock.Date(a.eng.Now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to show as YYYY-MM (default current)")
	return cmd
}

func renderMonth(out io.Writer, m engine.Month, today string) {
	fmt.Fprintln(out, ui.Heading(ui.IconCal, fmt.Sprintf("%s %d", m.Month, m.Year)))
	fmt.Fprintln(out, ui.Muted.Render("Su Mo Tu We Th Fr Sa"))

	var row strings.Builder
	row.WriteString(strings.Repeat("   ", m.Leading))
	col := m.Leading
	for _, d := range m.Days {
		cell := fmt.Sprintf("%2d", d.Day)
		switch {
		case d.Workout:
			cell = ui.Workout.Render(cell)
		case d.Date == today:
			cell = ui.Gold.Render(cell)
		}
		row.WriteString(cell)
		col++
		if col%7 == 0 {
			fmt.Fprintln(out, strings.TrimRight(row.String(), " "))
			row.Reset()
			continue
		}
		row.WriteString(" ")
	}
	if row.Len() > 0 {
		fmt.Fprintln(out, strings.TrimRight(row.String(), " "))
	}
	fmt.Fprintln(out, ui.Muted.Render("green = workout day"))
}

func newDayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day <YYYY-MM-DD>",
		Short: "Show what was completed on a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := args[0]
			if _, err := time.ParseInLocation(clock.DateLayout, date, time.Local); err != nil {
				return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
			}
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			rec := a.eng.Record()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCal, date))
			if mood, ok := engine.MoodOn(rec, date); ok {
				fmt.Fprintln(out, ui.LabelValue("Mood", fmt.Sprintf("%s %s", ui.MoodFace(mood), engine.MoodLabel(mood))))
			}
			quests := engine.CompletedOn(rec, date)
			if len(quests) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No quests completed."))
				return nil
			}
			for _, q := range quests {
				fmt.Fprintf(out, "- %s %s %s\n", ui.IconDone, q.Title, ui.Muted.Render(fmt.Sprintf("+%d XP", q.Reward())))
			}
			if engine.IsWorkoutDay(rec, date) {
				fmt.Fprintln(out, ui.Workout.Render(ui.IconFire+" Workout day"))
			}
			return nil
		},
	}

	return cmd
}
