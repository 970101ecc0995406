package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dingonewen/oystraz/internal/ui"
)

func newTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's totals and remaining hour budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := svc.Today(ctx, flagUser)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Today "+t.Day.Format("2006-01-02")))
			fmt.Fprintf(out, "%s %s\n", ui.IconDiet, ui.LabelValue("Diet", fmt.Sprintf(
				"%d meals, %.0f kcal, protein %.1fg, carbs %.1fg, fat %.1fg, fiber %.1fg",
				t.Macros.Entries, t.Macros.Calories, t.Macros.Protein, t.Macros.Carbs, t.Macros.Fat, t.Macros.Fiber)))
			fmt.Fprintf(out, "%s %s\n", ui.IconExercise, ui.LabelValue("Exercise", fmt.Sprintf(
				"%d sessions, %.0f min (yoga %.0f), %.0f kcal burned",
				t.ExerciseEntries, t.Exercise.Total(), t.Exercise.Yoga, t.CaloriesOut)))
			fmt.Fprintf(out, "%s %s\n", ui.IconSleep, ui.LabelValue("Sleep", fmt.Sprintf("%.1fh", t.SleepHours)))
			fmt.Fprintf(out, "%s %s\n", ui.IconWork, ui.LabelValue("Work", fmt.Sprintf(
				"%.1fh over %d sessions, intensity %.1f", t.WorkHours, t.WorkSessions, t.AvgWorkIntensity)))
			if t.PrankedBoss {
				fmt.Fprintln(out, ui.Gold.Render(ui.IconBolt+" boss pranked today"))
			}
			fmt.Fprintln(out, ui.LabelValue("Hours used", fmt.Sprintf("%.2f of 24 (%.2f left)", t.HoursUsed(), t.HoursRemaining())))
			return nil
		},
	}

	return cmd
}
