package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dingonewen/oystraz/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent recomputes and the experience they awarded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			runs, err := svc.History(ctx, flagUser, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("no history"))
				return nil
			}
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "History"))
			for _, r := range runs {
				fmt.Fprintf(out, "%s %-11s lvl %d (%d xp) %s mood %.1f stress %.1f %s\n",
					ui.Muted.Render(r.CreatedAt.In(svc.Location()).Format("01-02 15:04")),
					r.Reason,
					r.Level, r.Experience,
					ui.StateText(r.EmotionalState),
					r.Mood, r.Stress,
					ui.Muted.Render(fmt.Sprintf("+%d today", r.ExperienceGain)),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "How many entries")
	return cmd
}
