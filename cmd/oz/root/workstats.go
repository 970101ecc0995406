package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dingonewen/oystraz/internal/ui"
)

func newWorkStatsCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "work-stats",
		Short: "Summarise recent work sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.WorkStats(ctx, flagUser, days)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconWork, fmt.Sprintf("Work, last %d days", st.Days)))
			fmt.Fprintln(out, ui.LabelValue("Total", fmt.Sprintf("%.1fh", st.TotalHours)))
			fmt.Fprintln(out, ui.LabelValue("Sessions", st.Sessions))
			fmt.Fprintln(out, ui.LabelValue("Avg intensity", fmt.Sprintf("%.1f", st.AvgIntensity)))
			fmt.Fprintln(out, ui.LabelValue("Boss pranks", st.Pranks))
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 7, "How many days back, today included")
	return cmd
}
