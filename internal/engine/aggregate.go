package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/dingonewen/oystraz/internal/storage"
)

const (
	// DefaultWorkIntensity is the mean intensity reported when no work was logged.
	DefaultWorkIntensity = 3.0

	// DailyHourBudget caps sleep + exercise + work hours for one calendar day.
	DailyHourBudget = 24.0
)

// DailyTotals is derived from the full set of one day's logs and never stored.
// It is rebuilt on every recompute instead of being patched with a single new
// log, which would double-count earlier activity.
type DailyTotals struct {
	Day time.Time

	Macros          Macros
	CaloriesOut     float64
	Exercise        ExerciseMinutes
	ExerciseEntries int

	// SleepHours is 0 when no sleep was logged; see EffectiveSleepHours.
	SleepHours   float64
	SleepEntries int

	WorkHours        float64
	WorkEntries      int
	WorkSessions     int     // work logs with hours > 0
	AvgWorkIntensity float64 // mean over WorkSessions
	PrankedBoss      bool
}

func (t DailyTotals) DietLogged() bool     { return t.Macros.Entries > 0 }
func (t DailyTotals) ExerciseLogged() bool { return t.ExerciseEntries > 0 }
func (t DailyTotals) SleepLogged() bool    { return t.SleepEntries > 0 }
func (t DailyTotals) WorkLogged() bool     { return t.WorkEntries > 0 }

// HoursUsed is the day's sleep + exercise + work time, for admission control.
func (t DailyTotals) HoursUsed() float64 {
	return t.SleepHours + t.Exercise.Total()/60 + t.WorkHours
}

// HoursRemaining is what is left of the daily hour budget.
func (t DailyTotals) HoursRemaining() float64 {
	r := DailyHourBudget - t.HoursUsed()
	if r < 0 {
		return 0
	}
	return r
}

// StartOfDay truncates now to 00:00 of its calendar day in loc.
func StartOfDay(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = now.Location()
	}
	local := now.In(loc)
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DayKey formats the calendar day of t in loc.
func DayKey(t time.Time, loc *time.Location) string {
	return StartOfDay(t, loc).Format(time.DateOnly)
}

// IsYoga reports whether an exercise type tag restores stamina.
func IsYoga(activityType string) bool {
	return strings.EqualFold(strings.TrimSpace(activityType), string(ExerciseYoga))
}

// Aggregate folds one day's logs into DailyTotals. It is read-only and pure.
func Aggregate(day time.Time, logs storage.DayLogs) DailyTotals {
	totals := DailyTotals{Day: day}

	var calories, protein, carbs, fat, fiber []float64
	for _, l := range logs.Diet {
		calories = append(calories, l.Calories)
		protein = append(protein, l.Protein)
		carbs = append(carbs, l.Carbs)
		fat = append(fat, l.Fat)
		fiber = append(fiber, l.Fiber)
	}
	totals.Macros = Macros{
		Entries:  len(logs.Diet),
		Calories: sumSorted(calories),
		Protein:  sumSorted(protein),
		Carbs:    sumSorted(carbs),
		Fat:      sumSorted(fat),
		Fiber:    sumSorted(fiber),
	}

	var yoga, other, burned []float64
	for _, l := range logs.Exercise {
		if IsYoga(l.ActivityType) {
			yoga = append(yoga, l.Minutes)
		} else {
			other = append(other, l.Minutes)
		}
		burned = append(burned, l.CaloriesBurned)
	}
	totals.Exercise = ExerciseMinutes{Yoga: sumSorted(yoga), Other: sumSorted(other)}
	totals.ExerciseEntries = len(logs.Exercise)
	totals.CaloriesOut = sumSorted(burned)

	var sleep []float64
	for _, l := range logs.Sleep {
		sleep = append(sleep, l.Hours)
	}
	totals.SleepHours = sumSorted(sleep)
	totals.SleepEntries = len(logs.Sleep)

	var work []float64
	intensity := 0
	for _, l := range logs.Work {
		if l.PrankedBoss {
			totals.PrankedBoss = true
		}
		// A zero-hour log only records a prank and carries no work.
		if l.Hours <= 0 {
			continue
		}
		work = append(work, l.Hours)
		intensity += l.Intensity
		totals.WorkSessions++
	}
	totals.WorkHours = sumSorted(work)
	totals.WorkEntries = len(logs.Work)
	totals.AvgWorkIntensity = DefaultWorkIntensity
	if totals.WorkSessions > 0 {
		totals.AvgWorkIntensity = float64(intensity) / float64(totals.WorkSessions)
	}

	return totals
}

// sumSorted adds values in ascending order so the total does not depend on
// the order the logs were created in.
func sumSorted(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	return sum
}
