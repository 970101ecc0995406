package engine

import (
	"fmt"
	"strings"
)

type EmotionalState string

const (
	StateHappy    EmotionalState = "happy"
	StateTired    EmotionalState = "tired"
	StateStressed EmotionalState = "stressed"
	StateAngry    EmotionalState = "angry"
	StateNormal   EmotionalState = "normal"
)

func (s EmotionalState) IsValid() bool {
	switch s {
	case StateHappy, StateTired, StateStressed, StateAngry, StateNormal:
		return true
	default:
		return false
	}
}

// ParseEmotionalState parses a stored or user supplied state label.
func ParseEmotionalState(s string) (EmotionalState, error) {
	st := EmotionalState(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("unknown emotional state %q", s)
	}
	return st, nil
}

// BodyType is cosmetic and stored as-is; nothing derives it yet.
type BodyType string

const (
	BodyThin       BodyType = "thin"
	BodyNormal     BodyType = "normal"
	BodyOverweight BodyType = "overweight"
	BodyObese      BodyType = "obese"
)

func (b BodyType) IsValid() bool {
	switch b {
	case BodyThin, BodyNormal, BodyOverweight, BodyObese:
		return true
	default:
		return false
	}
}

// Attributes are the five bounded character metrics, each in [0,100].
type Attributes struct {
	Stamina   float64
	Energy    float64
	Nutrition float64
	Mood      float64
	Stress    float64
}

type Progression struct {
	Level      int
	Experience int
}

// CharacterState is the full snapshot a recompute produces.
type CharacterState struct {
	Attributes
	Progression
	EmotionalState EmotionalState
}

const (
	BaselineStamina   = 80.0
	BaselineEnergy    = 80.0
	BaselineNutrition = 60.0
	BaselineStress    = 40.0
)

// Baseline holds the fixed reference values every recompute starts from.
// It is never the character's previously stored state.
type Baseline struct {
	Stamina   float64
	Energy    float64
	Nutrition float64
	Stress    float64
}

func DefaultBaseline() Baseline {
	return Baseline{
		Stamina:   BaselineStamina,
		Energy:    BaselineEnergy,
		Nutrition: BaselineNutrition,
		Stress:    BaselineStress,
	}
}

func (b Baseline) Mood() float64 {
	return Mood(b.Stamina, b.Energy, b.Nutrition, b.Stress)
}

// InitialState is the state of a freshly created character.
func (b Baseline) InitialState() CharacterState {
	attrs := Attributes{
		Stamina:   b.Stamina,
		Energy:    b.Energy,
		Nutrition: b.Nutrition,
		Mood:      b.Mood(),
		Stress:    b.Stress,
	}
	return CharacterState{
		Attributes:     attrs,
		Progression:    Progression{Level: 1, Experience: 0},
		EmotionalState: Classify(attrs.Mood, attrs.Energy, attrs.Stress),
	}
}

type ExerciseType string

const (
	ExerciseGeneral  ExerciseType = "general"
	ExerciseYoga     ExerciseType = "yoga"
	ExerciseRunning  ExerciseType = "running"
	ExerciseWalking  ExerciseType = "walking"
	ExerciseCycling  ExerciseType = "cycling"
	ExerciseSwimming ExerciseType = "swimming"
	ExerciseStrength ExerciseType = "strength"
	ExerciseSports   ExerciseType = "sports"
	ExerciseCardio   ExerciseType = "cardio"
)

var knownExerciseTypes = []ExerciseType{
	ExerciseGeneral, ExerciseYoga, ExerciseRunning, ExerciseWalking, ExerciseCycling,
	ExerciseSwimming, ExerciseStrength, ExerciseSports, ExerciseCardio,
}

func (t ExerciseType) IsValid() bool {
	for _, k := range knownExerciseTypes {
		if t == k {
			return true
		}
	}
	return false
}
