package root

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/dingonewen/oystraz/internal/storage"
	"github.com/dingonewen/oystraz/internal/ui"
)

func newListCmd() *cobra.Command {
	var days int
	var kindFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent logs with their ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			logs, err := svc.ListLogs(ctx, flagUser, days)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			loc := svc.Location()
			if logs.Len() == 0 {
				fmt.Fprintln(out, ui.Muted.Render("no logs"))
				return nil
			}
			show := func(k storage.LogKind) bool { return kindFilter == "" || kindFilter == string(k) }

			if show(storage.KindDiet) {
				for _, l := range logs.Diet {
					printLogLine(out, storage.KindDiet, l.ID, l.OccurredAt, loc, fmt.Sprintf("%s %.0f kcal (P %.1f / C %.1f / F %.1f / Fi %.1f)",
						l.FoodName, l.Calories, l.Protein, l.Carbs, l.Fat, l.Fiber))
				}
			}
			if show(storage.KindExercise) {
				for _, l := range logs.Exercise {
					printLogLine(out, storage.KindExercise, l.ID, l.OccurredAt, loc, fmt.Sprintf("%s [%s] %.0f min, %.0f kcal",
						l.ActivityName, l.ActivityType, l.Minutes, l.CaloriesBurned))
				}
			}
			if show(storage.KindSleep) {
				for _, l := range logs.Sleep {
					printLogLine(out, storage.KindSleep, l.ID, l.OccurredAt, loc, fmt.Sprintf("%.1fh %s", l.Hours, l.Quality))
				}
			}
			if show(storage.KindWork) {
				for _, l := range logs.Work {
					line := fmt.Sprintf("%.1fh @%d", l.Hours, l.Intensity)
					if l.PrankedBoss {
						line += " " + ui.Gold.Render("prank")
					}
					if l.Notes != "" {
						line += " " + ui.Muted.Render(l.Notes)
					}
					printLogLine(out, storage.KindWork, l.ID, l.OccurredAt, loc, line)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 1, "How many days back, today included")
	cmd.Flags().StringVarP(&kindFilter, "kind", "k", "", "Only this kind (diet|exercise|sleep|work)")
	return cmd
}

func printLogLine(w io.Writer, kind storage.LogKind, id int64, at time.Time, loc *time.Location, text string) {
	fmt.Fprintf(w, "%s %s %s %s\n",
		ui.KindIcon(string(kind)),
		ui.Key.Render(fmt.Sprintf("%s #%d", kind, id)),
		ui.Muted.Render(at.In(loc).Format("01-02 15:04")),
		text,
	)
}
