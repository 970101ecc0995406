package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dingonewen/oystraz/internal/engine"
	"github.com/dingonewen/oystraz/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the character's attributes, level and mood",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := svc.Character(ctx, flagUser)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCharacter, c.UserKey))
			fmt.Fprintln(out, ui.LabelValue("Body", c.BodyType))
			printState(out, engine.StateOf(c))
			fmt.Fprintln(out, ui.Muted.Render("updated "+c.UpdatedAt.In(svc.Location()).Format("2006-01-02 15:04")))
			return nil
		},
	}

	return cmd
}
