package engine

const (
	AngryStress    = 85.0
	StressedStress = 70.0
	TiredMood      = 40.0
	TiredEnergy    = 30.0
	HappyMood      = 80.0
	HappyStress    = 30.0
)

// Classify maps attributes to an emotional state. The checks run in strict
// priority order: angry must precede stressed (85 >= 70), and both must
// precede tired/happy so high stress always wins over a good mood.
func Classify(mood, energy, stress float64) EmotionalState {
	switch {
	case stress >= AngryStress:
		return StateAngry
	case stress >= StressedStress:
		return StateStressed
	case mood < TiredMood || energy < TiredEnergy:
		return StateTired
	case mood >= HappyMood && stress < HappyStress:
		return StateHappy
	default:
		return StateNormal
	}
}
