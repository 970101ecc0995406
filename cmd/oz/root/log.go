package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dingonewen/oystraz/internal/engine"
)

// atLayouts are accepted by --at, tried in order.
var atLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02T15:04", time.DateOnly}

// parseAt parses --at in loc; empty means now.
func parseAt(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range atLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time %q (use RFC3339 or \"2006-01-02 15:04\")", s)
}

// parseHours parses a positional hours argument, rejecting trailing junk.
func parseHours(s string) (float64, error) {
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, engine.InvalidInputError{Field: "hours", Value: s, Reason: "must be a number"}
	}
	return h, nil
}

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log an activity and recompute the character",
	}
	cmd.AddCommand(
		newLogDietCmd(),
		newLogExerciseCmd(),
		newLogSleepCmd(),
		newLogWorkCmd(),
	)
	return cmd
}

func newLogDietCmd() *cobra.Command {
	var in engine.DietInput
	var at string

	cmd := &cobra.Command{
		Use:   "diet <food>",
		Short: "Log a meal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("food name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if in.OccurredAt, err = parseAt(at, svc.Location()); err != nil {
				return err
			}
			in.FoodName = args[0]
			res, err := svc.LogDiet(ctx, flagUser, in)
			if err != nil {
				return err
			}
			printMutation(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.MealType, "meal", "m", "", "Meal type (breakfast|lunch|dinner|snack)")
	cmd.Flags().Float64VarP(&in.Calories, "calories", "c", 0, "Calories (kcal)")
	cmd.Flags().Float64Var(&in.Protein, "protein", 0, "Protein (g)")
	cmd.Flags().Float64Var(&in.Carbs, "carbs", 0, "Carbohydrates (g)")
	cmd.Flags().Float64Var(&in.Fat, "fat", 0, "Fat (g)")
	cmd.Flags().Float64Var(&in.Fiber, "fiber", 0, "Fiber (g)")
	cmd.Flags().StringVar(&at, "at", "", "When it happened (default now)")
	return cmd
}

func newLogExerciseCmd() *cobra.Command {
	var in engine.ExerciseInput
	var typ, at string

	cmd := &cobra.Command{
		Use:   "exercise <activity>",
		Short: "Log a workout",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("activity name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := engine.ParseExerciseType(typ)
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if in.OccurredAt, err = parseAt(at, svc.Location()); err != nil {
				return err
			}
			in.ActivityName = args[0]
			in.Type = t
			res, err := svc.LogExercise(ctx, flagUser, in)
			if err != nil {
				return err
			}
			printMutation(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typ, "type", "t", "", "Exercise type (yoga|running|walking|cycling|swimming|strength|sports|cardio)")
	cmd.Flags().Float64VarP(&in.Minutes, "minutes", "m", 0, "Duration in minutes")
	cmd.Flags().Float64VarP(&in.CaloriesBurned, "calories", "c", 0, "Calories burned (kcal)")
	cmd.Flags().StringVar(&at, "at", "", "When it happened (default now)")
	return cmd
}

func newLogSleepCmd() *cobra.Command {
	var in engine.SleepInput
	var at string

	cmd := &cobra.Command{
		Use:   "sleep <hours>",
		Short: "Log sleep",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := parseHours(args[0])
			if err != nil {
				return err
			}
			in.Hours = hours

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if in.OccurredAt, err = parseAt(at, svc.Location()); err != nil {
				return err
			}
			res, err := svc.LogSleep(ctx, flagUser, in)
			if err != nil {
				return err
			}
			printMutation(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Quality, "quality", "q", "", "Sleep quality (poor|fair|good|excellent)")
	cmd.Flags().StringVar(&at, "at", "", "When it happened (default now)")
	return cmd
}

func newLogWorkCmd() *cobra.Command {
	var in engine.WorkInput
	var at string

	cmd := &cobra.Command{
		Use:   "work <hours>",
		Short: "Log a work session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := parseHours(args[0])
			if err != nil {
				return err
			}
			in.Hours = hours

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if in.OccurredAt, err = parseAt(at, svc.Location()); err != nil {
				return err
			}
			res, err := svc.LogWork(ctx, flagUser, in)
			if err != nil {
				return err
			}
			printMutation(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().IntVarP(&in.Intensity, "intensity", "i", 3, "Intensity (1-5)")
	cmd.Flags().BoolVar(&in.PrankedBoss, "prank", false, "You pranked the boss")
	cmd.Flags().StringVarP(&in.Notes, "notes", "n", "", "Notes")
	cmd.Flags().StringVar(&at, "at", "", "When it happened (default now)")
	return cmd
}
