package engine

import (
	"math/rand"
	"testing"

	"github.com/dingonewen/oystraz/internal/storage"
)

var firstDay = Progression{Level: 1, Experience: 0}

func TestRecomputeWithoutLogsIsBaseline(t *testing.T) {
	base := DefaultBaseline()
	rc := Recompute(base, Aggregate(testDay(), storage.DayLogs{}), firstDay, SpecialFlags{})

	// Default sleep of 7h still applies its terms.
	approx(t, "nutrition", rc.State.Nutrition, 60)
	approx(t, "energy", rc.State.Energy, 95)
	approx(t, "stamina", rc.State.Stamina, 95)
	approx(t, "stress", rc.State.Stress, 30)
	if rc.ExperienceGain != 0 || rc.State.Level != 1 || rc.State.Experience != 0 {
		t.Fatalf("unexpected progression: %+v gain=%d", rc.State.Progression, rc.ExperienceGain)
	}
}

func TestRecomputeScenario(t *testing.T) {
	logs := storage.DayLogs{
		Sleep: []storage.SleepLog{{Hours: 8}},
		Diet:  []storage.DietLog{{Calories: 600, Protein: 50, Fiber: 25, Fat: 40}},
	}
	rc := Recompute(DefaultBaseline(), Aggregate(testDay(), logs), firstDay, SpecialFlags{})

	approx(t, "nutrition", rc.State.Nutrition, 99.9)
	approx(t, "energy", rc.State.Energy, 100)
	approx(t, "stamina", rc.State.Stamina, 100)
	approx(t, "stress", rc.State.Stress, 25)
	approx(t, "mood", rc.State.Mood, (100+100+99.9)/3-12.5)
	if rc.State.EmotionalState != StateHappy {
		t.Fatalf("expected happy, got %s", rc.State.EmotionalState)
	}
	if rc.ExperienceGain != 40 {
		t.Fatalf("expected 40 xp, got %d", rc.ExperienceGain)
	}

	logs.Work = []storage.WorkLog{{Hours: 3, Intensity: 4}}
	rc = Recompute(DefaultBaseline(), Aggregate(testDay(), logs), firstDay, SpecialFlags{})

	approx(t, "stamina", rc.State.Stamina, 91)
	approx(t, "stress", rc.State.Stress, 31)
	approx(t, "mood", rc.State.Mood, (91+100+99.9)/3-15.5)
	if rc.State.EmotionalState != StateNormal {
		t.Fatalf("expected normal, got %s", rc.State.EmotionalState)
	}
	if rc.State.Level != 2 || rc.State.Experience != 60 {
		t.Fatalf("expected level 2 / 60 xp, got %+v", rc.State.Progression)
	}
}

func TestRecomputeIgnoresPreviousAttributes(t *testing.T) {
	logs := storage.DayLogs{Work: []storage.WorkLog{{Hours: 2, Intensity: 3}}}
	a := Recompute(DefaultBaseline(), Aggregate(testDay(), logs), firstDay, SpecialFlags{})
	b := Recompute(DefaultBaseline(), Aggregate(testDay(), logs), firstDay, SpecialFlags{})
	if a != b {
		t.Fatalf("recompute is not idempotent: %+v vs %+v", a, b)
	}
}

func TestRecomputePrankFlag(t *testing.T) {
	totals := Aggregate(testDay(), storage.DayLogs{})
	plain := Recompute(DefaultBaseline(), totals, firstDay, SpecialFlags{})
	pranked := Recompute(DefaultBaseline(), totals, firstDay, SpecialFlags{PrankedBoss: true})

	approx(t, "stress drop", plain.State.Stress-pranked.State.Stress, 20)
	if pranked.ExperienceGain-plain.ExperienceGain != XPPrank {
		t.Fatalf("expected +%d xp for the prank, got %d", XPPrank, pranked.ExperienceGain-plain.ExperienceGain)
	}
}

func TestRecomputeBoundedForExtremeInputs(t *testing.T) {
	extreme := []storage.DayLogs{
		{Diet: []storage.DietLog{{Calories: 1e9, Protein: 1e9, Fat: 1e9, Fiber: 1e9}}},
		{Exercise: []storage.ExerciseLog{{ActivityType: "running", Minutes: 1440, CaloriesBurned: 1e9}}},
		{Work: []storage.WorkLog{{Hours: 24, Intensity: 5}}},
		{Exercise: []storage.ExerciseLog{{ActivityType: "yoga", Minutes: 1440}}, Sleep: []storage.SleepLog{{Hours: 24}}},
		{Sleep: []storage.SleepLog{{Hours: 0.1}}, Work: []storage.WorkLog{{Hours: 23.9, Intensity: 5, PrankedBoss: true}}},
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		extreme = append(extreme, storage.DayLogs{
			Diet:     []storage.DietLog{{Calories: rng.Float64() * 1e6, Protein: rng.Float64() * 500, Fat: rng.Float64() * 500, Fiber: rng.Float64() * 100}},
			Exercise: []storage.ExerciseLog{{ActivityType: "cardio", Minutes: rng.Float64() * 600, CaloriesBurned: rng.Float64() * 1e5}},
			Sleep:    []storage.SleepLog{{Hours: rng.Float64() * 12}},
			Work:     []storage.WorkLog{{Hours: rng.Float64() * 12, Intensity: 1 + rng.Intn(5)}},
		})
	}

	for i, logs := range extreme {
		st := Recompute(DefaultBaseline(), Aggregate(testDay(), logs), firstDay, SpecialFlags{}).State
		for name, v := range map[string]float64{
			"stamina": st.Stamina, "energy": st.Energy, "nutrition": st.Nutrition, "mood": st.Mood, "stress": st.Stress,
		} {
			if !(v >= 0 && v <= 100) {
				t.Fatalf("case %d: %s=%v out of [0,100]", i, name, v)
			}
		}
		if !st.EmotionalState.IsValid() || st.Level < 1 || st.Experience < 0 {
			t.Fatalf("case %d: invalid state %+v", i, st)
		}
	}
}
