package engine

import (
	"errors"
	"math"
	"testing"
)

func TestCheckDailyBudget(t *testing.T) {
	totals := DailyTotals{SleepHours: 8, WorkHours: 10, Exercise: ExerciseMinutes{Other: 180}}

	if err := CheckDailyBudget(totals, 3); err != nil {
		t.Fatalf("exactly 24h should be accepted: %v", err)
	}

	err := CheckDailyBudget(totals, 4)
	var be BudgetError
	if !errors.As(err, &be) {
		t.Fatalf("expected BudgetError, got %v", err)
	}
	if be.Used != 21 || be.Adding != 4 || be.Limit != DailyHourBudget {
		t.Fatalf("unexpected budget error: %+v", be)
	}

	if err := CheckDailyBudget(DailyTotals{}, 25); err == nil {
		t.Fatal("a single 25h log should be rejected")
	}
	if err := CheckDailyBudget(DailyTotals{SleepHours: 24}, 0); err != nil {
		t.Fatalf("zero-hour logs are never rejected: %v", err)
	}
}

func TestInputValidation(t *testing.T) {
	valid := []interface{ Validate() error }{
		DietInput{FoodName: "oats", Calories: 300},
		ExerciseInput{ActivityName: "flow", Type: ExerciseYoga, Minutes: 30},
		SleepInput{Hours: 24},
		WorkInput{Hours: 8, Intensity: 3},
		WorkInput{Hours: 0, Intensity: 1, PrankedBoss: true},
	}
	for i, in := range valid {
		if err := in.Validate(); err != nil {
			t.Fatalf("valid[%d]: %v", i, err)
		}
	}

	invalid := []interface{ Validate() error }{
		DietInput{FoodName: "  "},
		DietInput{FoodName: "oats", Protein: -1},
		DietInput{FoodName: "oats", Calories: math.NaN()},
		ExerciseInput{ActivityName: "run", Type: ExerciseRunning, Minutes: 0},
		ExerciseInput{ActivityName: "run", Type: ExerciseRunning, Minutes: 1441},
		ExerciseInput{ActivityName: "run", Type: "parkour", Minutes: 10},
		ExerciseInput{ActivityName: "run", Type: ExerciseRunning, Minutes: 10, CaloriesBurned: -5},
		SleepInput{Hours: 0},
		SleepInput{Hours: 25},
		SleepInput{Hours: math.Inf(1)},
		WorkInput{Hours: -1, Intensity: 3},
		WorkInput{Hours: 25, Intensity: 3},
		WorkInput{Hours: 0, Intensity: 3},
		WorkInput{Hours: 2, Intensity: 0},
		WorkInput{Hours: 2, Intensity: 6},
	}
	for i, in := range invalid {
		err := in.Validate()
		var ie InvalidInputError
		if !errors.As(err, &ie) {
			t.Fatalf("invalid[%d]: expected InvalidInputError, got %v", i, err)
		}
	}
}
