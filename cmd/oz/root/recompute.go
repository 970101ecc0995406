package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dingonewen/oystraz/internal/ui"
)

func newRecomputeCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "recompute",
		Short: "Recompute the character from today's logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if !all {
				res, err := svc.Recompute(ctx, flagUser)
				if err != nil {
					return err
				}
				printMutation(out, res)
				return nil
			}

			results, err := svc.RecomputeAll(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Heading(ui.IconLoop, fmt.Sprintf("Recomputed %d characters", len(results))))
			for _, res := range results {
				fmt.Fprintf(out, "- %s lvl %d %s %s\n",
					ui.Key.Render(res.User),
					res.After.Level,
					ui.StateText(string(res.After.EmotionalState)),
					ui.Muted.Render(fmt.Sprintf("(+%d XP today)", res.ExperienceGain)),
				)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Recompute every character")
	return cmd
}
