package root

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wellquest/internal/engine"
	"wellquest/internal/ui"
	"wellquest/internal/vision"
)

func newMoodCmd() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "mood <1-5|label>",
		Short: "Log today's mood (replaces an earlier entry for today)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mood, err := engine.ParseMood(args[0])
			if err != nil {
				return err
			}
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			return logMood(ctx, cmd, a, mood, note)
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "optional note")
	cmd.AddCommand(newMoodDetectCmd())
	return cmd
}

func newMoodDetectCmd() *cobra.Command {
	var image string

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Estimate today's mood from a face photo and log it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if image == "" {
				return errors.New("--image is required")
			}
			data, err := os.ReadFile(image)
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			vc := a.cfg.Vision
			detector := vision.WithFallback(vision.NewHTTPDetector(vc.Endpoint, vc.Key, vc.Timeout), nil, a.logger)
			mood, err := detector.Detect(ctx, data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Detected mood: %s %s\n", ui.IconMood, ui.MoodFace(mood), engine.MoodLabel(mood))
			return logMood(ctx, cmd, a, mood, "")
		},
	}

	cmd.Flags().StringVar(&image, "image", "", "path to a JPEG/PNG face photo")
	return cmd
}

func logMood(ctx context.Context, cmd *cobra.Command, a *app, mood int, note string) error {
	if err := a.eng.LogMood(ctx, mood, note); err != nil {
		return err
	}
	s := a.eng.Snapshot()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconDone+" Mood logged:"), ui.MoodFace(mood), engine.MoodLabel(mood))
	fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Suggestions now follow a %s mood.", s.MoodBand)))
	for _, q := range s.Suggested {
		fmt.Fprintf(out, "- %s %s %s\n", ui.IconSuggest, ui.Key.Render(q.ID), q.Title)
	}
	return nil
}
