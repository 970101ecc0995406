package root

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dingonewen/oystraz/internal/engine"
)

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <kind> <id>",
		Short: "Delete a log (undo) and recompute the character",
		Long: `Delete one diet, exercise, sleep or work log.

The character is recomputed from the remaining logs of today, so it ends up
exactly as if the log had never been written, level included.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("kind and id are required")
			}
			if _, err := strconv.ParseInt(args[1], 10, 64); err != nil {
				return errors.New("id must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := engine.ParseLogKind(args[0])
			if err != nil {
				return err
			}
			id, _ := strconv.ParseInt(args[1], 10, 64)

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.DeleteLog(ctx, flagUser, kind, id)
			if err != nil {
				return err
			}
			printMutation(cmd.OutOrStdout(), res)
			return nil
		},
	}

	return cmd
}
