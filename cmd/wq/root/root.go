package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wellquest/internal/ui"
)

const Version = "0.2.0"

var (
	flagConfig   string
	flagDB       string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:           "wq",
	Short:         "Wellquest: daily wellness quests with XP, moods and streaks",
	Long:          "Wellquest is a local-first CLI/TUI wellness tracker: complete small daily quests, log your mood, and level up.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default $XDG_CONFIG_HOME/wellquest/config.yaml)")
	pf.StringVar(&flagDB, "db", "", "database path (overrides config and WQ_DB_PATH)")
	pf.StringVar(&flagLogLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(
		newStatusCmd(),
		newQuestsCmd(),
		newDoCmd(),
		newMoodCmd(),
		newAvatarCmd(),
		newLeaderboardCmd(),
		newCalendarCmd(),
		newDayCmd(),
		newChatCmd(),
		newCheerCmd(),
		newSigninCmd(),
		newSignoutCmd(),
		newResetCmd(),
		newExportCmd(),
		newImportCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
