package engine

import "math"

const (
	ProteinTargetG = 50.0
	FiberTargetG   = 25.0
	FatLimitG      = 65.0

	// MacroPoints is the cap of each of the three nutrition sub-scores.
	MacroPoints = 33.3

	// NutritionTarget is the nutrition score that earns the target bonus.
	NutritionTarget = 80.0

	// StandardWorkHours is the workday length after which overtime penalties apply.
	StandardWorkHours = 8.0
)

// step maps "at least MinHours of sleep" to a delta. Tables are ordered by
// descending MinHours; the first match wins.
type step struct {
	MinHours float64
	Delta    float64
}

type stepTable struct {
	steps []step
	below float64 // delta when no step matches
}

func (t stepTable) lookup(hours float64) float64 {
	for _, s := range t.steps {
		if hours >= s.MinHours {
			return s.Delta
		}
	}
	return t.below
}

var (
	energySleep  = stepTable{steps: []step{{8, 20}, {7, 15}, {6, 5}, {5, 0}}, below: -10}
	staminaSleep = stepTable{steps: []step{{9, 25}, {8, 20}, {7, 15}, {6, 5}, {5, 0}}, below: -10}
	stressSleep  = stepTable{steps: []step{{9, -20}, {8, -15}, {7, -10}, {6, -5}, {5, 0}}, below: 5}
)

// Macros are one day's summed diet quantities. Entries counts diet logs.
type Macros struct {
	Entries  int
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
}

// ExerciseMinutes splits a day's exercise by effect on stamina: yoga restores,
// everything else costs.
type ExerciseMinutes struct {
	Yoga  float64
	Other float64
}

func (e ExerciseMinutes) Total() float64 {
	return e.Yoga + e.Other
}

// NutritionScore scores a day's diet in [0,100]. A day without diet logs
// scores the baseline, so not logging is never penalised.
func NutritionScore(m Macros) float64 {
	if m.Entries == 0 {
		return BaselineNutrition
	}

	protein := math.Min(1, m.Protein/ProteinTargetG) * MacroPoints
	fiber := math.Min(1, m.Fiber/FiberTargetG) * MacroPoints

	fat := MacroPoints
	if m.Fat > FatLimitG {
		fat = MacroPoints * math.Max(0, 1-(m.Fat-FatLimitG)/FatLimitG)
	}

	return clamp(protein+fiber+fat, 0, 100)
}

// EnergyDelta is unclamped; the caller clamps after adding it to the baseline.
func EnergyDelta(caloriesIn, caloriesOut, sleepHours, workHours, workIntensity float64) float64 {
	balance := clamp((caloriesIn-caloriesOut)/100, -15, 15)
	sleep := energySleep.lookup(sleepHours)
	work := -math.Min(20, workHours*workIntensity*0.3)
	return balance + sleep + work
}

// StaminaDelta is clamped to [-50, +35].
func StaminaDelta(ex ExerciseMinutes, sleepHours, workHours float64) float64 {
	exercise := ex.Yoga/60*10 - ex.Other/60*3
	sleep := staminaSleep.lookup(sleepHours)
	work := -(workHours * 3) - overtime(workHours)*5
	return clamp(exercise+sleep+work, -50, 35)
}

// StressDelta is clamped to [-35, +30].
func StressDelta(workHours, workIntensity, exerciseMinutes, sleepHours float64, prankedBoss bool) float64 {
	work := workHours*workIntensity*0.5 + overtime(workHours)*5
	exercise := -math.Min(15, exerciseMinutes/5)
	sleep := stressSleep.lookup(sleepHours)
	prank := 0.0
	if prankedBoss {
		prank = -20
	}
	return clamp(work+exercise+sleep+prank, -35, 30)
}

// Mood is the composite (stamina+energy+nutrition)/3 - stress/2, clamped to [0,100].
func Mood(stamina, energy, nutrition, stress float64) float64 {
	return clamp((stamina+energy+nutrition)/3-stress/2, 0, 100)
}

type ExperienceInputs struct {
	DietLogged         bool
	ExerciseLogged     bool
	SleepLogged        bool
	WorkHours          float64
	WorkIntensity      float64
	NutritionTargetMet bool
	PrankedBoss        bool
}

const (
	XPDiet            = 10
	XPExercise        = 15
	XPSleep           = 10
	XPWorkRate        = 10
	XPNutritionTarget = 20
	XPPrank           = 50
)

// ExperienceGain adds the per-category bonuses. There is no cap.
func ExperienceGain(in ExperienceInputs) int {
	xp := 0
	if in.DietLogged {
		xp += XPDiet
	}
	if in.ExerciseLogged {
		xp += XPExercise
	}
	if in.SleepLogged {
		xp += XPSleep
	}
	if in.WorkHours > 0 {
		// The epsilon absorbs binary rounding: 0.7*3*10 evaluates to 20.999...
		xp += int(math.Floor(in.WorkHours*in.WorkIntensity*XPWorkRate + 1e-9))
	}
	if in.NutritionTargetMet {
		xp += XPNutritionTarget
	}
	if in.PrankedBoss {
		xp += XPPrank
	}
	return xp
}

func overtime(workHours float64) float64 {
	return math.Max(0, workHours-StandardWorkHours)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
