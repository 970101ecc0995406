package engine

import (
	"math"
	"strings"
	"time"
)

type DietInput struct {
	FoodName   string
	MealType   string
	Calories   float64
	Protein    float64
	Carbs      float64
	Fat        float64
	Fiber      float64
	OccurredAt time.Time // zero means now
}

type ExerciseInput struct {
	ActivityName   string
	Type           ExerciseType
	Minutes        float64
	CaloriesBurned float64
	OccurredAt     time.Time
}

type SleepInput struct {
	Hours      float64
	Quality    string
	OccurredAt time.Time
}

type WorkInput struct {
	Hours       float64
	Intensity   int
	PrankedBoss bool
	Notes       string
	OccurredAt  time.Time
}

const (
	MinWorkIntensity = 1
	MaxWorkIntensity = 5
)

func (in DietInput) Validate() error {
	if strings.TrimSpace(in.FoodName) == "" {
		return InvalidInputError{Field: "food name", Reason: "is required"}
	}
	for _, q := range []struct {
		field string
		v     float64
	}{
		{"calories", in.Calories},
		{"protein", in.Protein},
		{"carbs", in.Carbs},
		{"fat", in.Fat},
		{"fiber", in.Fiber},
	} {
		if err := nonNegative(q.field, q.v); err != nil {
			return err
		}
	}
	return nil
}

func (in ExerciseInput) Validate() error {
	if strings.TrimSpace(in.ActivityName) == "" {
		return InvalidInputError{Field: "activity name", Reason: "is required"}
	}
	if !in.Type.IsValid() {
		return InvalidInputError{Field: "exercise type", Value: in.Type, Reason: "unknown type"}
	}
	if err := finite("duration minutes", in.Minutes); err != nil {
		return err
	}
	if in.Minutes <= 0 || in.Minutes > DailyHourBudget*60 {
		return InvalidInputError{Field: "duration minutes", Value: in.Minutes, Reason: "must be in (0, 1440]"}
	}
	return nonNegative("calories burned", in.CaloriesBurned)
}

func (in ExerciseInput) Hours() float64 { return in.Minutes / 60 }

func (in SleepInput) Validate() error {
	if err := finite("sleep hours", in.Hours); err != nil {
		return err
	}
	if in.Hours <= 0 || in.Hours > DailyHourBudget {
		return InvalidInputError{Field: "sleep hours", Value: in.Hours, Reason: "must be in (0, 24]"}
	}
	return nil
}

func (in WorkInput) Validate() error {
	if err := finite("work hours", in.Hours); err != nil {
		return err
	}
	if in.Hours < 0 || in.Hours > DailyHourBudget {
		return InvalidInputError{Field: "work hours", Value: in.Hours, Reason: "must be in [0, 24]"}
	}
	if in.Hours == 0 && !in.PrankedBoss {
		return InvalidInputError{Field: "work hours", Value: in.Hours, Reason: "only a prank session may log zero hours"}
	}
	if in.Intensity < MinWorkIntensity || in.Intensity > MaxWorkIntensity {
		return InvalidInputError{Field: "work intensity", Value: in.Intensity, Reason: "must be between 1 and 5"}
	}
	return nil
}

// CheckDailyBudget rejects a log of adding hours when the day's sleep,
// exercise and work would then exceed DailyHourBudget. Reaching exactly the
// budget is allowed; logs without a duration are never rejected.
func CheckDailyBudget(totals DailyTotals, adding float64) error {
	if adding <= 0 {
		return nil
	}
	used := totals.HoursUsed()
	if used+adding > DailyHourBudget+1e-9 {
		return BudgetError{Used: used, Adding: adding, Limit: DailyHourBudget}
	}
	return nil
}

func finite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return InvalidInputError{Field: field, Value: v, Reason: "must be a finite number"}
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if err := finite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return InvalidInputError{Field: field, Value: v, Reason: "must not be negative"}
	}
	return nil
}
