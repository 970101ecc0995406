package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dingonewen/oystraz/internal/engine"
	"github.com/dingonewen/oystraz/internal/ui"
)

func newInitCmd() *cobra.Command {
	var body string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the character at its baseline state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			c, created, err := svc.CreateCharacter(ctx, flagUser, engine.BodyType(body))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !created {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%s %q already exists (level %d)", ui.IconInfo, c.UserKey, c.Level)))
				return nil
			}
			fmt.Fprintln(out, ui.Good.Render(ui.IconSparkle+" Character created: ")+c.UserKey)
			printState(out, engine.StateOf(c))
			return nil
		},
	}

	cmd.Flags().StringVar(&body, "body", string(engine.BodyNormal), "Body type (thin|normal|overweight|obese)")
	return cmd
}
