package root

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dingonewen/oystraz/internal/engine"
	"github.com/dingonewen/oystraz/internal/storage"
	"github.com/dingonewen/oystraz/internal/ui"
)

const Version = "0.1.0"

var (
	flagUser   string
	flagDB     string
	flagConfig string
)

var rootCmd = &cobra.Command{
	Use:           "oz",
	Short:         "Oystraz: a character that lives the day you log",
	Long:          "Oystraz turns diet, exercise, sleep and work logs into a character's stamina, energy, nutrition, mood and stress, with RPG levels on top.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", storage.MainUserKey, "Character to act on")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default ~/.oystraz.db)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.config/oystraz/config.toml)")

	rootCmd.AddCommand(
		newInitCmd(),
		newLogCmd(),
		newDeleteCmd(),
		newStatusCmd(),
		newTodayCmd(),
		newListCmd(),
		newRecomputeCmd(),
		newHistoryCmd(),
		newWorkStatsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

func renderError(err error) string {
	var (
		invalid  engine.InvalidInputError
		budget   engine.BudgetError
		missing  engine.MissingCharacterError
		notFound engine.LogNotFoundError
	)
	switch {
	case errors.As(err, &budget):
		return ui.Warn.Render(ui.IconClock+" "+err.Error()) + "\n" +
			ui.Muted.Render(fmt.Sprintf("%.2fh left today", max(0, budget.Limit-budget.Used)))
	case errors.As(err, &invalid), errors.As(err, &notFound):
		return ui.Warn.Render(ui.IconWarn + " " + err.Error())
	case errors.As(err, &missing):
		return ui.Warn.Render(ui.IconWarn+" "+err.Error()) + "\n" +
			ui.Muted.Render(fmt.Sprintf("run `oz init --user %s` first", missing.User))
	default:
		return ui.Bad.Render(ui.IconError + " " + err.Error())
	}
}
