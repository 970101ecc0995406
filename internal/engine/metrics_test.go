package engine

import (
	"math"
	"testing"
)

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("%s=%v, want %v", name, got, want)
	}
}

func TestNutritionScore(t *testing.T) {
	approx(t, "no diet logs", NutritionScore(Macros{}), BaselineNutrition)

	full := NutritionScore(Macros{Entries: 1, Protein: 50, Fiber: 25, Fat: 40})
	approx(t, "all targets met", full, 3*MacroPoints)

	approx(t, "nothing eaten but logged", NutritionScore(Macros{Entries: 1}), MacroPoints)

	// Fat at twice the limit zeroes the fat sub-score; protein/fiber overshoot is capped.
	approx(t, "fat overshoot", NutritionScore(Macros{Entries: 2, Protein: 500, Fiber: 250, Fat: 130}), 2*MacroPoints)
	approx(t, "fat half over", NutritionScore(Macros{Entries: 1, Fat: 97.5}), MacroPoints*0.5)
}

func TestEnergyDeltaTerms(t *testing.T) {
	approx(t, "surplus capped", EnergyDelta(1e9, 0, 8, 0, 3), 15+20)
	approx(t, "deficit capped", EnergyDelta(0, 1e9, 4, 0, 3), -15-10)
	approx(t, "work term", EnergyDelta(0, 0, 5, 3, 4), -3.6)
	approx(t, "work term capped", EnergyDelta(0, 0, 5, 24, 5), -20)
	approx(t, "sleep 7h", EnergyDelta(0, 0, 7, 0, 3), 15)
	approx(t, "sleep 6h", EnergyDelta(0, 0, 6.5, 0, 3), 5)
}

func TestStaminaDelta(t *testing.T) {
	approx(t, "yoga hour", StaminaDelta(ExerciseMinutes{Yoga: 60}, 5, 0), 10)
	approx(t, "run hour", StaminaDelta(ExerciseMinutes{Other: 60}, 5, 0), -3)
	approx(t, "long sleep", StaminaDelta(ExerciseMinutes{}, 9, 0), 25)
	approx(t, "overtime", StaminaDelta(ExerciseMinutes{}, 5, 10), -30-10)
	approx(t, "upper clamp", StaminaDelta(ExerciseMinutes{Yoga: 600}, 9, 0), 35)
	approx(t, "lower clamp", StaminaDelta(ExerciseMinutes{Other: 600}, 0, 16), -50)
}

func TestStressDelta(t *testing.T) {
	approx(t, "work", StressDelta(4, 5, 0, 5, false), 10)
	approx(t, "overtime", StressDelta(10, 1, 0, 5, false), 5+10)
	approx(t, "exercise capped", StressDelta(0, 3, 500, 5, false), -15)
	approx(t, "short sleep", StressDelta(0, 3, 0, 3, false), 5)
	approx(t, "prank", StressDelta(0, 3, 0, 5, true), -20)
	approx(t, "upper clamp", StressDelta(20, 5, 0, 0, false), 30)
	approx(t, "lower clamp", StressDelta(0, 3, 500, 10, true), -35)
}

func TestMoodBounds(t *testing.T) {
	approx(t, "best", Mood(100, 100, 100, 0), 100)
	approx(t, "worst", Mood(0, 0, 0, 100), 0)
	approx(t, "baseline", DefaultBaseline().Mood(), (80+80+60)/3.0-20)
}

func TestExperienceGain(t *testing.T) {
	cases := []struct {
		name string
		in   ExperienceInputs
		want int
	}{
		{"nothing", ExperienceInputs{WorkIntensity: DefaultWorkIntensity}, 0},
		{"categories", ExperienceInputs{DietLogged: true, ExerciseLogged: true, SleepLogged: true}, 35},
		{"work floors", ExperienceInputs{WorkHours: 1.25, WorkIntensity: 3}, 37},
		{"work rounding", ExperienceInputs{WorkHours: 0.7, WorkIntensity: 3}, 21},
		{"target and prank", ExperienceInputs{NutritionTargetMet: true, PrankedBoss: true}, 70},
		{"uncapped", ExperienceInputs{WorkHours: 24, WorkIntensity: 5}, 1200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExperienceGain(tc.in); got != tc.want {
				t.Fatalf("ExperienceGain=%d, want %d", got, tc.want)
			}
		})
	}
}

func TestApplyExperience(t *testing.T) {
	cases := []struct {
		level, exp, gain int
		wantL, wantE     int
	}{
		{1, 95, 150, 2, 145},
		{1, 0, 650, 4, 50},
		{1, 0, 0, 1, 0},
		{1, 99, 1, 2, 0},
		{3, 10, 0, 3, 10},
		{0, 0, 50, 1, 50},
	}
	for _, tc := range cases {
		l, e := ApplyExperience(tc.level, tc.exp, tc.gain)
		if l != tc.wantL || e != tc.wantE {
			t.Fatalf("ApplyExperience(%d,%d,%d)=(%d,%d), want (%d,%d)", tc.level, tc.exp, tc.gain, l, e, tc.wantL, tc.wantE)
		}
	}

	if got := ExperienceToNext(Progression{Level: 2, Experience: 60}); got != 140 {
		t.Fatalf("ExperienceToNext=%d, want 140", got)
	}
}

func TestClassifyPriority(t *testing.T) {
	cases := []struct {
		mood, energy, stress float64
		want                 EmotionalState
	}{
		{90, 90, 90, StateAngry},
		{90, 90, 85, StateAngry},
		{90, 90, 70, StateStressed},
		{39.9, 90, 10, StateTired},
		{90, 29, 10, StateTired},
		{80, 90, 29.9, StateHappy},
		{80, 90, 30, StateNormal},
		{60, 60, 40, StateNormal},
	}
	for _, tc := range cases {
		if got := Classify(tc.mood, tc.energy, tc.stress); got != tc.want {
			t.Fatalf("Classify(%v,%v,%v)=%s, want %s", tc.mood, tc.energy, tc.stress, got, tc.want)
		}
	}
}

func TestParseEmotionalState(t *testing.T) {
	if s, err := ParseEmotionalState(" Happy "); err != nil || s != StateHappy {
		t.Fatalf("ParseEmotionalState=%q, %v", s, err)
	}
	if _, err := ParseEmotionalState("ecstatic"); err == nil {
		t.Fatal("expected error for unknown state")
	}
}
