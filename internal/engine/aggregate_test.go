package engine

import (
	"testing"
	"time"

	"github.com/dingonewen/oystraz/internal/storage"
)

func TestAggregateEmptyDay(t *testing.T) {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	totals := Aggregate(day, storage.DayLogs{})

	if totals.DietLogged() || totals.ExerciseLogged() || totals.SleepLogged() || totals.WorkLogged() {
		t.Fatalf("expected nothing logged: %+v", totals)
	}
	if totals.SleepHours != 0 {
		t.Fatalf("expected 0 sleep hours, got %v", totals.SleepHours)
	}
	if totals.AvgWorkIntensity != DefaultWorkIntensity {
		t.Fatalf("expected default intensity, got %v", totals.AvgWorkIntensity)
	}
	if totals.EffectiveSleepHours() != DefaultSleepHours {
		t.Fatalf("expected effective sleep %v, got %v", DefaultSleepHours, totals.EffectiveSleepHours())
	}
	if totals.HoursRemaining() != DailyHourBudget {
		t.Fatalf("expected full budget left, got %v", totals.HoursRemaining())
	}
}

func TestAggregateSumsEveryKind(t *testing.T) {
	logs := storage.DayLogs{
		Diet: []storage.DietLog{
			{Calories: 400, Protein: 20, Carbs: 50, Fat: 10, Fiber: 5},
			{Calories: 600, Protein: 30, Carbs: 70, Fat: 25, Fiber: 10},
		},
		Exercise: []storage.ExerciseLog{
			{ActivityType: "Yoga", Minutes: 30, CaloriesBurned: 100},
			{ActivityType: "running", Minutes: 45, CaloriesBurned: 400},
		},
		Sleep: []storage.SleepLog{{Hours: 6}, {Hours: 1.5}},
		Work: []storage.WorkLog{
			{Hours: 4, Intensity: 2},
			{Hours: 3, Intensity: 5, PrankedBoss: true},
		},
	}
	totals := Aggregate(time.Now(), logs)

	approx(t, "calories", totals.Macros.Calories, 1000)
	approx(t, "protein", totals.Macros.Protein, 50)
	approx(t, "fiber", totals.Macros.Fiber, 15)
	approx(t, "calories out", totals.CaloriesOut, 500)
	approx(t, "yoga", totals.Exercise.Yoga, 30)
	approx(t, "other", totals.Exercise.Other, 45)
	approx(t, "sleep", totals.SleepHours, 7.5)
	approx(t, "work", totals.WorkHours, 7)
	approx(t, "intensity", totals.AvgWorkIntensity, 3.5)
	approx(t, "hours used", totals.HoursUsed(), 7.5+1.25+7)
	if !totals.PrankedBoss {
		t.Fatal("expected prank flag from work logs")
	}
	if totals.Macros.Entries != 2 || totals.ExerciseEntries != 2 || totals.SleepEntries != 2 || totals.WorkEntries != 2 {
		t.Fatalf("unexpected entry counts: %+v", totals)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	a := storage.DayLogs{Sleep: []storage.SleepLog{{Hours: 0.1}, {Hours: 0.2}, {Hours: 0.3}, {Hours: 7}}}
	b := storage.DayLogs{Sleep: []storage.SleepLog{{Hours: 7}, {Hours: 0.3}, {Hours: 0.1}, {Hours: 0.2}}}

	if Aggregate(time.Time{}, a) != Aggregate(time.Time{}, b) {
		t.Fatal("expected identical totals regardless of log order")
	}
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	// 20:30 UTC on 1 March is 05:30 on 2 March at UTC+9.
	got := StartOfDay(time.Date(2026, 3, 1, 20, 30, 0, 0, time.UTC), loc)
	want := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("StartOfDay=%v, want %v", got, want)
	}
	if key := DayKey(got, loc); key != "2026-03-02" {
		t.Fatalf("DayKey=%s", key)
	}
}

func testDay() time.Time {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
}

func TestAggregatePrankOnlyWorkLogCarriesNoIntensity(t *testing.T) {
	logs := storage.DayLogs{
		Work: []storage.WorkLog{
			{Hours: 8, Intensity: 5},
			{Hours: 0, Intensity: 1, PrankedBoss: true},
		},
	}
	totals := Aggregate(time.Now(), logs)

	approx(t, "work", totals.WorkHours, 8)
	approx(t, "intensity", totals.AvgWorkIntensity, 5)
	if totals.WorkEntries != 2 || totals.WorkSessions != 1 {
		t.Fatalf("expected 2 entries and 1 session, got %d and %d", totals.WorkEntries, totals.WorkSessions)
	}
	if !totals.PrankedBoss {
		t.Fatal("expected prank flag from the zero-hour log")
	}

	prankOnly := Aggregate(time.Now(), storage.DayLogs{Work: []storage.WorkLog{{Intensity: 1, PrankedBoss: true}}})
	if prankOnly.AvgWorkIntensity != DefaultWorkIntensity || prankOnly.WorkSessions != 0 {
		t.Fatalf("expected default intensity and no sessions, got %+v", prankOnly)
	}
}
