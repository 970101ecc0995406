package engine

// DefaultSleepHours stands in for sleep on days without a sleep log, so the
// sleep terms of energy, stamina and stress do not punish not logging.
const DefaultSleepHours = 7.0

// SpecialFlags carry one-off actions that are not derivable from the totals.
type SpecialFlags struct {
	PrankedBoss bool
}

// Recomputation is the output of one full recompute.
type Recomputation struct {
	State          CharacterState
	ExperienceGain int
}

// EffectiveSleepHours is the sleep figure fed to the formulas: the logged
// total, or DefaultSleepHours when nothing was logged today.
func (t DailyTotals) EffectiveSleepHours() float64 {
	if !t.SleepLogged() {
		return DefaultSleepHours
	}
	return t.SleepHours
}

// Recompute derives a character's full state from the fixed baseline and
// today's totals. It never reads previously stored attribute values: deleting
// a log and recomputing gives the same result as never having logged it, and
// logging order does not matter.
//
// prior is the progression at the start of the day; today's experience is
// applied on top of it. The steps run in order because mood depends on the
// other four attributes.
func Recompute(base Baseline, totals DailyTotals, prior Progression, flags SpecialFlags) Recomputation {
	sleep := totals.EffectiveSleepHours()
	pranked := flags.PrankedBoss || totals.PrankedBoss

	nutrition := base.Nutrition
	if totals.DietLogged() {
		nutrition = NutritionScore(totals.Macros)
	}

	energy := clamp(base.Energy+EnergyDelta(
		totals.Macros.Calories,
		totals.CaloriesOut,
		sleep,
		totals.WorkHours,
		totals.AvgWorkIntensity,
	), 0, 100)

	stamina := clamp(base.Stamina+StaminaDelta(totals.Exercise, sleep, totals.WorkHours), 0, 100)

	stress := clamp(base.Stress+StressDelta(
		totals.WorkHours,
		totals.AvgWorkIntensity,
		totals.Exercise.Total(),
		sleep,
		pranked,
	), 0, 100)

	mood := Mood(stamina, energy, nutrition, stress)

	gain := ExperienceGain(ExperienceInputs{
		DietLogged:         totals.DietLogged(),
		ExerciseLogged:     totals.ExerciseLogged(),
		SleepLogged:        totals.SleepLogged(),
		WorkHours:          totals.WorkHours,
		WorkIntensity:      totals.AvgWorkIntensity,
		NutritionTargetMet: nutrition >= NutritionTarget,
		PrankedBoss:        pranked,
	})
	level, experience := ApplyExperience(prior.Level, prior.Experience, gain)

	return Recomputation{
		State: CharacterState{
			Attributes: Attributes{
				Stamina:   stamina,
				Energy:    energy,
				Nutrition: nutrition,
				Mood:      mood,
				Stress:    stress,
			},
			Progression:    Progression{Level: level, Experience: experience},
			EmotionalState: Classify(mood, energy, stress),
		},
		ExperienceGain: gain,
	}
}
